package service

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"hireflow/internal/recruit"
)

// JobParams carries the caller-supplied fields for a new job posting.
type JobParams struct {
	ID                 string
	Title              string
	Location           string
	JobType            string
	MinSalary          int
	MaxSalary          int
	RequiredSkills     []string
	MinExperienceYears int
	VisaRequired       bool
}

func (s *Service) CreateJob(p JobParams) (*recruit.JobPosting, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if err := recruit.RequireNonEmpty("job_id", p.ID); err != nil {
		return nil, err
	}
	if err := recruit.RequireNonEmpty("title", p.Title); err != nil {
		return nil, err
	}
	if err := recruit.RequireNonEmpty("location", p.Location); err != nil {
		return nil, err
	}
	if err := recruit.RequireNonEmpty("job_type", p.JobType); err != nil {
		return nil, err
	}
	if err := recruit.ValidateSalaryRange(p.MinSalary, p.MaxSalary); err != nil {
		return nil, err
	}
	if p.MinExperienceYears < 0 {
		return nil, recruit.Errorf(recruit.ErrValidation, "minimum experience years cannot be negative")
	}

	jid := recruit.NormalizeText(p.ID)
	if _, ok := snap.Jobs[jid]; ok {
		return nil, recruit.Errorf(recruit.ErrValidation, "job id already exists: %s", jid)
	}

	job := &recruit.JobPosting{
		ID:                 jid,
		Title:              recruit.CollapseSpaces(p.Title),
		Location:           recruit.CollapseSpaces(p.Location),
		JobType:            recruit.NormalizeText(p.JobType),
		MinSalary:          p.MinSalary,
		MaxSalary:          p.MaxSalary,
		RequiredSkills:     recruit.NormalizeSkills(p.RequiredSkills),
		MinExperienceYears: p.MinExperienceYears,
		VisaRequired:       p.VisaRequired,
		CreatedAt:          s.now(),
	}
	snap.Jobs[jid] = job

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("job created",
		zap.String("job_id", job.ID),
		zap.String("title", job.Title),
		zap.Int("required_skills", len(job.RequiredSkills)),
	)
	return job, nil
}

// editableJobFields is the allowlist for EditJob; identity is immutable.
var editableJobFields = map[string]bool{
	"title":                true,
	"location":             true,
	"job_type":             true,
	"min_salary":           true,
	"max_salary":           true,
	"required_skills":      true,
	"min_experience_years": true,
	"visa_required":        true,
}

// EditJob applies a partial update. Unknown fields fail before anything is
// changed; the salary pair is validated against the merged values so editing
// only one bound cannot invert the range.
func (s *Service) EditJob(jobID string, updates map[string]any) (*recruit.JobPosting, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	jid := recruit.NormalizeText(jobID)
	job, ok := snap.Jobs[jid]
	if !ok {
		return nil, recruit.Errorf(recruit.ErrNotFound, "job not found: %s", jid)
	}

	for field := range updates {
		if !editableJobFields[field] {
			return nil, recruit.Errorf(recruit.ErrValidation, "field not editable: %s", field)
		}
	}

	updated := *job
	updated.RequiredSkills = append([]string(nil), job.RequiredSkills...)

	if v, ok := updates["title"]; ok {
		title, err := stringValue("title", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.RequireNonEmpty("title", title); err != nil {
			return nil, err
		}
		updated.Title = recruit.CollapseSpaces(title)
	}
	if v, ok := updates["location"]; ok {
		loc, err := stringValue("location", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.RequireNonEmpty("location", loc); err != nil {
			return nil, err
		}
		updated.Location = recruit.CollapseSpaces(loc)
	}
	if v, ok := updates["job_type"]; ok {
		jt, err := stringValue("job_type", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.RequireNonEmpty("job_type", jt); err != nil {
			return nil, err
		}
		updated.JobType = recruit.NormalizeText(jt)
	}
	if v, ok := updates["required_skills"]; ok {
		skills, err := stringSliceValue("required_skills", v)
		if err != nil {
			return nil, err
		}
		updated.RequiredSkills = recruit.NormalizeSkills(skills)
	}

	minSalary := updated.MinSalary
	if v, ok := updates["min_salary"]; ok {
		if minSalary, err = intValue("min_salary", v); err != nil {
			return nil, err
		}
	}
	maxSalary := updated.MaxSalary
	if v, ok := updates["max_salary"]; ok {
		if maxSalary, err = intValue("max_salary", v); err != nil {
			return nil, err
		}
	}
	if err := recruit.ValidateSalaryRange(minSalary, maxSalary); err != nil {
		return nil, err
	}
	updated.MinSalary = minSalary
	updated.MaxSalary = maxSalary

	if v, ok := updates["min_experience_years"]; ok {
		exp, err := intValue("min_experience_years", v)
		if err != nil {
			return nil, err
		}
		if exp < 0 {
			return nil, recruit.Errorf(recruit.ErrValidation, "minimum experience years cannot be negative")
		}
		updated.MinExperienceYears = exp
	}
	if v, ok := updates["visa_required"]; ok {
		visa, err := boolValue("visa_required", v)
		if err != nil {
			return nil, err
		}
		updated.VisaRequired = visa
	}

	snap.Jobs[jid] = &updated

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("job updated", zap.String("job_id", jid), zap.Int("fields", len(updates)))
	return &updated, nil
}

func (s *Service) GetJob(jobID string) (*recruit.JobPosting, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	jid := recruit.NormalizeText(jobID)
	job, ok := snap.Jobs[jid]
	if !ok {
		return nil, recruit.Errorf(recruit.ErrNotFound, "job not found: %s", jid)
	}
	return job, nil
}

// SearchJobs matches a keyword against titles, a location substring and an
// exact job type, all case-insensitively. Results sort by title then location.
func (s *Service) SearchJobs(keyword, location, jobType string) ([]*recruit.JobPosting, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	k := recruit.NormalizeText(keyword)
	loc := recruit.NormalizeText(location)
	jt := recruit.NormalizeText(jobType)

	results := make([]*recruit.JobPosting, 0)
	for _, job := range snap.Jobs {
		if k != "" && !strings.Contains(recruit.NormalizeText(job.Title), k) {
			continue
		}
		if loc != "" && !strings.Contains(recruit.NormalizeText(job.Location), loc) {
			continue
		}
		if jt != "" && jt != job.JobType {
			continue
		}
		results = append(results, job)
	}

	sort.Slice(results, func(i, j int) bool {
		ti, tj := recruit.NormalizeText(results[i].Title), recruit.NormalizeText(results[j].Title)
		if ti != tj {
			return ti < tj
		}
		return recruit.NormalizeText(results[i].Location) < recruit.NormalizeText(results[j].Location)
	})

	return results, nil
}
