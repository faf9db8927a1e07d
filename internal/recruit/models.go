package recruit

import "time"

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusApplied            ApplicationStatus = "applied"
	StatusScreened           ApplicationStatus = "screened"
	StatusShortlisted        ApplicationStatus = "shortlisted"
	StatusRejected           ApplicationStatus = "rejected"
	StatusWithdrawn          ApplicationStatus = "withdrawn"
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled"
)

var knownStatuses = map[ApplicationStatus]bool{
	StatusApplied:            true,
	StatusScreened:           true,
	StatusShortlisted:        true,
	StatusRejected:           true,
	StatusWithdrawn:          true,
	StatusInterviewScheduled: true,
}

// ParseStatus normalizes the raw value and checks it against the known statuses.
func ParseStatus(raw string) (ApplicationStatus, error) {
	status := ApplicationStatus(NormalizeText(raw))
	if !knownStatuses[status] {
		return "", Errorf(ErrValidation, "unknown status: %s", raw)
	}
	return status, nil
}

type JobPosting struct {
	ID                 string    `json:"job_id"`
	Title              string    `json:"title"`
	Location           string    `json:"location"`
	JobType            string    `json:"job_type"`
	MinSalary          int       `json:"min_salary"`
	MaxSalary          int       `json:"max_salary"`
	RequiredSkills     []string  `json:"required_skills"`
	MinExperienceYears int       `json:"min_experience_years"`
	VisaRequired       bool      `json:"visa_required"`
	CreatedAt          time.Time `json:"created_at"`
}

type CandidateProfile struct {
	ID              string    `json:"candidate_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Location        string    `json:"location"`
	YearsExperience int       `json:"years_experience"`
	Skills          []string  `json:"skills"`
	EducationLevel  string    `json:"education_level"`
	VisaStatus      string    `json:"visa_status"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AuditEntry is a single record in an application's append-only audit trail.
type AuditEntry struct {
	Timestamp time.Time         `json:"ts"`
	Action    string            `json:"action"`
	Details   map[string]string `json:"details"`
}

type Application struct {
	ID          string            `json:"application_id"`
	JobID       string            `json:"job_id"`
	CandidateID string            `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	AuditTrail  []AuditEntry      `json:"audit_trail"`
}

func (a *Application) appendAudit(now time.Time, action string, details map[string]string) {
	if details == nil {
		details = map[string]string{}
	}
	a.AuditTrail = append(a.AuditTrail, AuditEntry{
		Timestamp: now,
		Action:    action,
		Details:   details,
	})
	a.UpdatedAt = now
}

type Interview struct {
	ID              string    `json:"interview_id"`
	ApplicationID   string    `json:"application_id"`
	ScheduledAt     time.Time `json:"scheduled_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Interviewer     string    `json:"interviewer"`
	Location        string    `json:"location"`
	Cancelled       bool      `json:"cancelled"`
}

// End returns the exclusive end of the interview slot.
func (i *Interview) End() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}
