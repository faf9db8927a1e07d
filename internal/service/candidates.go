package service

import (
	"strings"

	"go.uber.org/zap"

	"hireflow/internal/recruit"
)

// CandidateParams carries the caller-supplied fields for a new profile.
type CandidateParams struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	Location        string
	YearsExperience int
	Skills          []string
	EducationLevel  string
	VisaStatus      string
}

func (s *Service) CreateCandidate(p CandidateParams) (*recruit.CandidateProfile, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	if err := recruit.RequireNonEmpty("candidate_id", p.ID); err != nil {
		return nil, err
	}
	if err := recruit.RequireNonEmpty("name", p.Name); err != nil {
		return nil, err
	}
	if err := recruit.ValidateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := recruit.ValidatePhone(p.Phone); err != nil {
		return nil, err
	}
	if err := recruit.RequireNonEmpty("location", p.Location); err != nil {
		return nil, err
	}
	if p.YearsExperience < 0 {
		return nil, recruit.Errorf(recruit.ErrValidation, "years of experience cannot be negative")
	}

	cid := recruit.NormalizeText(p.ID)
	if _, ok := snap.Candidates[cid]; ok {
		return nil, recruit.Errorf(recruit.ErrValidation, "candidate id already exists: %s", cid)
	}
	if err := ensureEmailUnique(snap, p.Email, cid); err != nil {
		return nil, err
	}

	education := p.EducationLevel
	if strings.TrimSpace(education) == "" {
		education = "unknown"
	}
	visa := p.VisaStatus
	if strings.TrimSpace(visa) == "" {
		visa = "unknown"
	}

	candidate := &recruit.CandidateProfile{
		ID:              cid,
		Name:            recruit.CollapseSpaces(p.Name),
		Email:           strings.TrimSpace(p.Email),
		Phone:           strings.TrimSpace(p.Phone),
		Location:        recruit.CollapseSpaces(p.Location),
		YearsExperience: p.YearsExperience,
		Skills:          recruit.NormalizeSkills(p.Skills),
		EducationLevel:  recruit.NormalizeText(education),
		VisaStatus:      recruit.NormalizeText(visa),
		UpdatedAt:       s.now(),
	}
	snap.Candidates[cid] = candidate

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("candidate created",
		zap.String("candidate_id", candidate.ID),
		zap.Int("skills", len(candidate.Skills)),
	)
	return candidate, nil
}

var editableCandidateFields = map[string]bool{
	"name":             true,
	"email":            true,
	"phone":            true,
	"location":         true,
	"years_experience": true,
	"skills":           true,
	"education_level":  true,
	"visa_status":      true,
}

// UpdateCandidate applies a partial update with the same allowlist semantics
// as EditJob. Email uniqueness is re-checked against every other profile.
func (s *Service) UpdateCandidate(candidateID string, updates map[string]any) (*recruit.CandidateProfile, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	cid := recruit.NormalizeText(candidateID)
	candidate, ok := snap.Candidates[cid]
	if !ok {
		return nil, recruit.Errorf(recruit.ErrNotFound, "candidate not found: %s", cid)
	}

	for field := range updates {
		if !editableCandidateFields[field] {
			return nil, recruit.Errorf(recruit.ErrValidation, "field not editable: %s", field)
		}
	}

	updated := *candidate
	updated.Skills = append([]string(nil), candidate.Skills...)

	if v, ok := updates["name"]; ok {
		name, err := stringValue("name", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.RequireNonEmpty("name", name); err != nil {
			return nil, err
		}
		updated.Name = recruit.CollapseSpaces(name)
	}
	if v, ok := updates["email"]; ok {
		email, err := stringValue("email", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.ValidateEmail(email); err != nil {
			return nil, err
		}
		if err := ensureEmailUnique(snap, email, cid); err != nil {
			return nil, err
		}
		updated.Email = strings.TrimSpace(email)
	}
	if v, ok := updates["phone"]; ok {
		phone, err := stringValue("phone", v)
		if err != nil {
			return nil, err
		}
		if err := recruit.ValidatePhone(phone); err != nil {
			return nil, err
		}
		updated.Phone = strings.TrimSpace(phone)
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
	if v, ok := updates["years_experience"]; ok {
		years, err := intValue("years_experience", v)
		if err != nil {
			return nil, err
		}
		if years < 0 {
			return nil, recruit.Errorf(recruit.ErrValidation, "years of experience cannot be negative")
		}
		updated.YearsExperience = years
	}
	if v, ok := updates["skills"]; ok {
		skills, err := stringSliceValue("skills", v)
		if err != nil {
			return nil, err
		}
		updated.Skills = recruit.NormalizeSkills(skills)
	}
	if v, ok := updates["education_level"]; ok {
		edu, err := stringValue("education_level", v)
		if err != nil {
			return nil, err
		}
		updated.EducationLevel = recruit.NormalizeText(edu)
	}
	if v, ok := updates["visa_status"]; ok {
		visa, err := stringValue("visa_status", v)
		if err != nil {
			return nil, err
		}
		updated.VisaStatus = recruit.NormalizeText(visa)
	}

	updated.UpdatedAt = s.now()
	snap.Candidates[cid] = &updated

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("candidate updated", zap.String("candidate_id", cid), zap.Int("fields", len(updates)))
	return &updated, nil
}

func (s *Service) GetCandidate(candidateID string) (*recruit.CandidateProfile, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	cid := recruit.NormalizeText(candidateID)
	candidate, ok := snap.Candidates[cid]
	if !ok {
		return nil, recruit.Errorf(recruit.ErrNotFound, "candidate not found: %s", cid)
	}
	return candidate, nil
}

// ensureEmailUnique scans all profiles except selfID for the same normalized
// email address.
func ensureEmailUnique(snap *recruit.Snapshot, email, selfID string) error {
	norm := recruit.NormalizeText(email)
	for id, other := range snap.Candidates {
		if id == selfID {
			continue
		}
		if recruit.NormalizeText(other.Email) == norm {
			return recruit.Errorf(recruit.ErrValidation, "email already exists: %s", norm)
		}
	}
	return nil
}
