package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hireflow/internal/recruit"
)

func TestFileStoreLoadMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "hireflow.json"))

	snap, err := fs.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap == nil || snap.Jobs == nil || snap.Interviews == nil {
		t.Fatalf("expected an initialized empty snapshot, got %+v", snap)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "hireflow.json")
	fs := NewFileStore(path)

	snap := recruit.NewSnapshot()
	snap.Jobs["j1"] = &recruit.JobPosting{
		ID:             "j1",
		Title:          "Backend Engineer",
		RequiredSkills: []string{"go", "sql"},
		CreatedAt:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	snap.Applications["a1"] = &recruit.Application{
		ID:     "a1",
		JobID:  "j1",
		Status: recruit.StatusApplied,
	}

	if err := fs.Save(snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	job := loaded.Job("j1")
	if job == nil || job.Title != "Backend Engineer" {
		t.Fatalf("job did not survive the round trip: %+v", job)
	}
	if !job.CreatedAt.Equal(snap.Jobs["j1"].CreatedAt) {
		t.Fatalf("created_at changed: %v", job.CreatedAt)
	}
	if app := loaded.Application("a1"); app == nil || app.Status != recruit.StatusApplied {
		t.Fatalf("application did not survive the round trip: %+v", app)
	}
	if loaded.Candidates == nil {
		t.Fatalf("expected empty collections to be allocated after load")
	}
}

func TestFileStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hireflow.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := NewFileStore(path).Load(); err == nil {
		t.Fatalf("expected an error for a corrupt file")
	}
}
