package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"hireflow/internal/recruit"
	"hireflow/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestService() (*Service, *store.Memory) {
	mem := store.NewMemory()
	svc := New(mem, nil)
	svc.now = func() time.Time { return testNow }
	return svc, mem
}

func seedJob(mem *store.Memory) {
	mem.Snapshot.Jobs["j1"] = &recruit.JobPosting{
		ID:        "j1",
		Title:     "Backend Engineer",
		Location:  "Berlin",
		JobType:   "full_time",
		MinSalary: 50000,
		MaxSalary: 90000,
	}
}

func seedCandidate(mem *store.Memory) {
	mem.Snapshot.Candidates["c1"] = &recruit.CandidateProfile{
		ID:    "c1",
		Name:  "Alex Kim",
		Email: "alex@example.com",
	}
}

func TestCreateJob(t *testing.T) {
	svc, mem := newTestService()

	job, err := svc.CreateJob(JobParams{
		ID:             " J1 ",
		Title:          "  Backend   Engineer ",
		Location:       "Berlin",
		JobType:        " Full_Time ",
		MinSalary:      50000,
		MaxSalary:      90000,
		RequiredSkills: []string{" Go ", "SQL", "go"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.ID != "j1" || job.Title != "Backend Engineer" || job.JobType != "full_time" {
		t.Fatalf("fields not normalized: %+v", job)
	}
	if !reflect.DeepEqual(job.RequiredSkills, []string{"go", "sql"}) {
		t.Fatalf("skills not deduplicated: %v", job.RequiredSkills)
	}
	if !job.CreatedAt.Equal(testNow) {
		t.Fatalf("expected injected clock, got %v", job.CreatedAt)
	}
	if mem.Saves != 1 {
		t.Fatalf("expected one save, got %d", mem.Saves)
	}
}

func TestCreateJobValidation(t *testing.T) {
	cases := []struct {
		name   string
		params JobParams
	}{
		{name: "empty id", params: JobParams{Title: "x", Location: "y", JobType: "z"}},
		{name: "empty title", params: JobParams{ID: "j1", Location: "y", JobType: "z"}},
		{name: "inverted salary", params: JobParams{ID: "j1", Title: "x", Location: "y", JobType: "z", MinSalary: 9, MaxSalary: 1}},
		{name: "negative experience", params: JobParams{ID: "j1", Title: "x", Location: "y", JobType: "z", MinExperienceYears: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mem := newTestService()
			if _, err := svc.CreateJob(tc.params); !errors.Is(err, recruit.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if mem.Saves != 0 {
				t.Fatalf("failed create must not save")
			}
		})
	}
}

func TestCreateJobDuplicateID(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)

	_, err := svc.CreateJob(JobParams{ID: "J1", Title: "x", Location: "y", JobType: "z"})
	if !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEditJob(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)

	job, err := svc.EditJob("J1", map[string]any{
		"title":      " Senior  Backend Engineer ",
		"min_salary": "60000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if job.Title != "Senior Backend Engineer" {
		t.Fatalf("unexpected title: %q", job.Title)
	}
	if job.MinSalary != 60000 || job.MaxSalary != 90000 {
		t.Fatalf("unexpected salary range: %d-%d", job.MinSalary, job.MaxSalary)
	}
	if job.Location != "Berlin" {
		t.Fatalf("untouched field changed: %q", job.Location)
	}
}

func TestEditJobRejectsUnknownField(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)

	_, err := svc.EditJob("j1", map[string]any{"job_id": "j2"})
	if !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error for immutable field, got %v", err)
	}
	if mem.Saves != 0 {
		t.Fatalf("failed edit must not save")
	}
	if mem.Snapshot.Jobs["j1"].ID != "j1" {
		t.Fatalf("stored job mutated")
	}
}

func TestEditJobValidatesMergedSalaryRange(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)

	// Raising only the lower bound above the stored upper bound must fail.
	_, err := svc.EditJob("j1", map[string]any{"min_salary": 100000})
	if !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if mem.Snapshot.Jobs["j1"].MinSalary != 50000 {
		t.Fatalf("stored job mutated by failed edit")
	}
}

func TestSearchJobs(t *testing.T) {
	svc, mem := newTestService()
	mem.Snapshot.Jobs["j1"] = &recruit.JobPosting{ID: "j1", Title: "Backend Engineer", Location: "Berlin", JobType: "full_time"}
	mem.Snapshot.Jobs["j2"] = &recruit.JobPosting{ID: "j2", Title: "Backend Engineer", Location: "Amsterdam", JobType: "full_time"}
	mem.Snapshot.Jobs["j3"] = &recruit.JobPosting{ID: "j3", Title: "Data Analyst", Location: "Berlin", JobType: "contract"}

	jobs, err := svc.SearchJobs("backend", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(jobs))
	}
	// Equal titles sort by location.
	if jobs[0].ID != "j2" || jobs[1].ID != "j1" {
		t.Fatalf("unexpected order: %s, %s", jobs[0].ID, jobs[1].ID)
	}

	jobs, err = svc.SearchJobs("", "berl", "contract")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != "j3" {
		t.Fatalf("expected only j3, got %+v", jobs)
	}

	jobs, err = svc.SearchJobs("", "", "part_time")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no matches, got %d", len(jobs))
	}
}

func TestCreateCandidate(t *testing.T) {
	svc, mem := newTestService()

	candidate, err := svc.CreateCandidate(CandidateParams{
		ID:     "C1",
		Name:   " Alex  Kim ",
		Email:  "alex@example.com",
		Phone:  "+12025550123",
		Location: "Berlin",
		Skills: []string{"Go", "go", "SQL"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if candidate.ID != "c1" || candidate.Name != "Alex Kim" {
		t.Fatalf("fields not normalized: %+v", candidate)
	}
	if candidate.EducationLevel != "unknown" || candidate.VisaStatus != "unknown" {
		t.Fatalf("expected unknown defaults, got %q/%q", candidate.EducationLevel, candidate.VisaStatus)
	}
	if !reflect.DeepEqual(candidate.Skills, []string{"go", "sql"}) {
		t.Fatalf("skills not deduplicated: %v", candidate.Skills)
	}
	if mem.Saves != 1 {
		t.Fatalf("expected one save, got %d", mem.Saves)
	}
}

func TestCreateCandidateDuplicateEmail(t *testing.T) {
	svc, mem := newTestService()
	seedCandidate(mem)

	_, err := svc.CreateCandidate(CandidateParams{
		ID:       "c2",
		Name:     "Sam Lee",
		Email:    " ALEX@Example.com ",
		Phone:    "+12025550124",
		Location: "Berlin",
	})
	if !errors.Is(err, recruit.ErrValidation) {
		t.Fatalf("expected validation error for duplicate email, got %v", err)
	}
}

func TestUpdateCandidate(t *testing.T) {
	svc, mem := newTestService()
	seedCandidate(mem)

	candidate, err := svc.UpdateCandidate("C1", map[string]any{
		"skills":           "Go, SQL ,docker",
		"years_experience": 4.0,
		"visa_status":      "Citizen",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(candidate.Skills, []string{"go", "sql", "docker"}) {
		t.Fatalf("unexpected skills: %v", candidate.Skills)
	}
	if candidate.YearsExperience != 4 {
		t.Fatalf("unexpected experience: %d", candidate.YearsExperience)
	}
	if candidate.VisaStatus != "citizen" {
		t.Fatalf("unexpected visa status: %q", candidate.VisaStatus)
	}
	if !candidate.UpdatedAt.Equal(testNow) {
		t.Fatalf("expected injected clock, got %v", candidate.UpdatedAt)
	}
}

func TestUpdateCandidateKeepingOwnEmail(t *testing.T) {
	svc, mem := newTestService()
	seedCandidate(mem)

	// Re-submitting the candidate's own email is not a conflict.
	if _, err := svc.UpdateCandidate("c1", map[string]any{"email": "alex@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitAndAdvanceApplication(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)
	seedCandidate(mem)

	app, err := svc.SubmitApplication("a1", "j1", "c1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != recruit.StatusApplied {
		t.Fatalf("unexpected status: %s", app.Status)
	}

	if _, err := svc.AdvanceApplication("a1", "screened", "looks good"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view, err := svc.ApplicationStatus("A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != recruit.StatusScreened {
		t.Fatalf("unexpected status: %s", view.Status)
	}
	if len(view.AuditTrail) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(view.AuditTrail))
	}

	if mem.Saves != 2 {
		t.Fatalf("expected 2 saves, got %d", mem.Saves)
	}
}

func TestAdvanceApplicationFailureDoesNotSave(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)
	seedCandidate(mem)

	if _, err := svc.SubmitApplication("a1", "j1", "c1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saves := mem.Saves

	if _, err := svc.AdvanceApplication("a1", "interview_scheduled", ""); !errors.Is(err, recruit.ErrState) {
		t.Fatalf("expected state error, got %v", err)
	}
	if mem.Saves != saves {
		t.Fatalf("failed advance must not save")
	}
}

func TestScheduleInterviewPersistsBothMutations(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)
	seedCandidate(mem)
	mem.Snapshot.Applications["a1"] = &recruit.Application{
		ID: "a1", JobID: "j1", CandidateID: "c1", Status: recruit.StatusShortlisted,
	}

	interview, err := svc.ScheduleInterview("i1", "a1", "2026-03-12T10:00:00Z", 60, "Jane Doe", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mem.Snapshot.Interviews["i1"] != interview {
		t.Fatalf("interview missing from saved snapshot")
	}
	if mem.Snapshot.Applications["a1"].Status != recruit.StatusInterviewScheduled {
		t.Fatalf("application status not persisted")
	}
	if mem.Saves != 1 {
		t.Fatalf("expected one save, got %d", mem.Saves)
	}
}

func TestListApplicationsForJob(t *testing.T) {
	svc, mem := newTestService()
	seedJob(mem)
	mem.Snapshot.Applications["a1"] = &recruit.Application{ID: "a1", JobID: "j1"}
	mem.Snapshot.Applications["a2"] = &recruit.Application{ID: "a2", JobID: "other"}

	apps, err := svc.ListApplicationsForJob("j1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 1 || apps[0].ID != "a1" {
		t.Fatalf("unexpected applications: %+v", apps)
	}

	if _, err := svc.ListApplicationsForJob("ghost"); !errors.Is(err, recruit.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOperationsSurfaceStoreErrors(t *testing.T) {
	mem := store.NewMemory()
	mem.LoadErr = errors.New("disk gone")
	svc := New(mem, nil)

	if _, err := svc.SearchJobs("", "", ""); err == nil {
		t.Fatalf("expected load error to surface")
	}
}
