package recruit

import "time"

// transitions is the generic reachability table. Rejected, withdrawn and
// interview_scheduled have no outgoing edges here; Withdraw is a separate
// entry point with its own rule and must not be folded into this table.
var transitions = map[ApplicationStatus][]ApplicationStatus{
	StatusApplied:            {StatusScreened, StatusRejected},
	StatusScreened:           {StatusShortlisted, StatusRejected},
	StatusShortlisted:        {StatusInterviewScheduled, StatusRejected},
	StatusRejected:           {},
	StatusWithdrawn:          {},
	StatusInterviewScheduled: {},
}

func canTransition(from, to ApplicationStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Submit creates a new application in status "applied". It fails when either
// reference does not resolve, when the identifier is taken, or when a
// non-withdrawn application already links the same job and candidate.
func Submit(snap *Snapshot, applicationID, jobID, candidateID string, now time.Time) (*Application, error) {
	if err := RequireNonEmpty("application_id", applicationID); err != nil {
		return nil, err
	}

	aid := NormalizeText(applicationID)
	jid := NormalizeText(jobID)
	cid := NormalizeText(candidateID)

	if _, ok := snap.Jobs[jid]; !ok {
		return nil, Errorf(ErrNotFound, "job not found: %s", jid)
	}
	if _, ok := snap.Candidates[cid]; !ok {
		return nil, Errorf(ErrNotFound, "candidate not found: %s", cid)
	}
	if _, ok := snap.Applications[aid]; ok {
		return nil, Errorf(ErrValidation, "application id already exists: %s", aid)
	}

	for _, existing := range snap.Applications {
		if existing.JobID == jid && existing.CandidateID == cid && existing.Status != StatusWithdrawn {
			return nil, Errorf(ErrConflict, "duplicate application for job %s and candidate %s", jid, cid)
		}
	}

	app := &Application{
		ID:          aid,
		JobID:       jid,
		CandidateID: cid,
		Status:      StatusApplied,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	app.appendAudit(now, "created", map[string]string{
		"job_id":       jid,
		"candidate_id": cid,
	})

	snap.Applications[aid] = app
	return app, nil
}

// Advance moves the application along the generic transition table and
// records a status_change audit entry.
func Advance(app *Application, newStatus, reason string, now time.Time) error {
	status, err := ParseStatus(newStatus)
	if err != nil {
		return err
	}
	if status == app.Status {
		return Errorf(ErrValidation, "status unchanged: %s", status)
	}
	if !canTransition(app.Status, status) {
		return Errorf(ErrState, "invalid transition: %s -> %s", app.Status, status)
	}

	from := app.Status
	app.Status = status
	app.appendAudit(now, "status_change", map[string]string{
		"from":   string(from),
		"to":     string(status),
		"reason": reason,
	})
	return nil
}

// Withdraw moves the application to withdrawn from any status except
// rejected and withdrawn. It deliberately bypasses the generic table, so an
// interview_scheduled application can still be withdrawn.
func Withdraw(app *Application, now time.Time) error {
	if app.Status == StatusRejected || app.Status == StatusWithdrawn {
		return Errorf(ErrState, "cannot withdraw a %s application", app.Status)
	}

	app.Status = StatusWithdrawn
	app.appendAudit(now, "withdrawn", nil)
	return nil
}
