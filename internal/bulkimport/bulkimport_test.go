package bulkimport

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hireflow/internal/recruit"
)

func TestMerge(t *testing.T) {
	snap := recruit.NewSnapshot()
	snap.Jobs["j1"] = &recruit.JobPosting{ID: "j1", Title: "Existing"}

	payload := map[string]any{
		"jobs": []any{
			map[string]any{"job_id": "J1", "title": "Duplicate"},
			map[string]any{"job_id": "j2", "title": "Data Analyst", "min_salary": 40000.0, "visa_required": true},
			map[string]any{"title": "no id"},
		},
		"candidates": []any{
			map[string]any{"candidate_id": "c1", "name": "Alex Kim", "years_experience": 5.0, "skills": []any{"go", "sql"}},
		},
		"applications": []any{
			map[string]any{"application_id": "a1", "job_id": "j2", "candidate_id": "c1", "status": "applied"},
		},
	}

	report, err := Merge(snap, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Jobs.Imported != 1 || report.Jobs.Skipped != 2 {
		t.Fatalf("unexpected jobs report: %+v", report.Jobs)
	}
	if len(report.Jobs.Errors) != 1 || !strings.Contains(report.Jobs.Errors[0], "jobs[2]") {
		t.Fatalf("unexpected jobs errors: %v", report.Jobs.Errors)
	}

	// The duplicate must not overwrite the stored record.
	if snap.Jobs["j1"].Title != "Existing" {
		t.Fatalf("existing job overwritten: %+v", snap.Jobs["j1"])
	}

	job := snap.Jobs["j2"]
	if job == nil || job.MinSalary != 40000 || !job.VisaRequired {
		t.Fatalf("imported job not decoded: %+v", job)
	}

	cand := snap.Candidates["c1"]
	if cand == nil || cand.YearsExperience != 5 || len(cand.Skills) != 2 {
		t.Fatalf("imported candidate not decoded: %+v", cand)
	}

	app := snap.Applications["a1"]
	if app == nil || app.Status != recruit.StatusApplied {
		t.Fatalf("imported application not decoded: %+v", app)
	}

	if report.Interviews.Imported != 0 || report.Interviews.Skipped != 0 {
		t.Fatalf("missing section must stay empty: %+v", report.Interviews)
	}
}

func TestMergeCoercesNumericIDs(t *testing.T) {
	snap := recruit.NewSnapshot()

	payload := map[string]any{
		"jobs": []any{
			map[string]any{"job_id": 123.0, "title": "Numeric ID"},
			map[string]any{"job_id": json.Number("456"), "title": "Number Type"},
		},
	}

	report, err := Merge(snap, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Jobs.Imported != 2 || report.Jobs.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report.Jobs)
	}
	if job := snap.Jobs["123"]; job == nil || job.Title != "Numeric ID" {
		t.Fatalf("numeric id not imported under its decimal form: %+v", job)
	}
	if job := snap.Jobs["456"]; job == nil || job.Title != "Number Type" {
		t.Fatalf("json.Number id not imported: %+v", job)
	}
}

func TestMergeDecodesTimestamps(t *testing.T) {
	snap := recruit.NewSnapshot()

	payload := map[string]any{
		"interviews": []any{
			map[string]any{
				"interview_id":     "i1",
				"application_id":   "a1",
				"scheduled_time":   "2026-03-12T10:00:00Z",
				"duration_minutes": 60.0,
				"interviewer":      "jane doe",
				"location":         "online",
			},
		},
	}

	report, err := Merge(snap, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Interviews.Imported != 1 {
		t.Fatalf("unexpected report: %+v", report.Interviews)
	}

	want := time.Date(2026, 3, 12, 10, 0, 0, 0, time.UTC)
	if got := snap.Interviews["i1"].ScheduledAt; !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMergeRecordsDecodeErrors(t *testing.T) {
	snap := recruit.NewSnapshot()

	payload := map[string]any{
		"jobs": []any{
			map[string]any{"job_id": "j1", "min_salary": "not-a-number"},
			map[string]any{"job_id": "j2", "title": "Fine"},
		},
	}

	report, err := Merge(snap, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Jobs.Imported != 1 || report.Jobs.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report.Jobs)
	}
	if len(report.Jobs.Errors) != 1 || !strings.Contains(report.Jobs.Errors[0], "jobs[0]") {
		t.Fatalf("unexpected errors: %v", report.Jobs.Errors)
	}
	if _, ok := snap.Jobs["j1"]; ok {
		t.Fatalf("undecodable job must not be stored")
	}
	if _, ok := snap.Jobs["j2"]; !ok {
		t.Fatalf("valid job missing after partial failure")
	}
}

func TestMergeRejectsNonListSection(t *testing.T) {
	snap := recruit.NewSnapshot()

	_, err := Merge(snap, map[string]any{"jobs": map[string]any{"job_id": "j1"}})
	if !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bulk.json")
	doc := `{"jobs": [{"job_id": "j1", "title": "Backend Engineer"}]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	snap := recruit.NewSnapshot()
	report, err := FromFile(path, snap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Jobs.Imported != 1 {
		t.Fatalf("unexpected report: %+v", report.Jobs)
	}
}

func TestFromFileErrors(t *testing.T) {
	snap := recruit.NewSnapshot()

	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.json"), snap); !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error for missing file, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("[1, 2]"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := FromFile(path, snap); !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error for non-object, got %v", err)
	}
}
