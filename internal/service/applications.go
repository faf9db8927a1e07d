package service

import (
	"time"

	"go.uber.org/zap"

	"hireflow/internal/recruit"
)

func (s *Service) SubmitApplication(applicationID, jobID, candidateID string) (*recruit.Application, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	app, err := recruit.Submit(snap, applicationID, jobID, candidateID, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("job_id", app.JobID),
		zap.String("candidate_id", app.CandidateID),
	)
	return app, nil
}

func (s *Service) WithdrawApplication(applicationID string) (*recruit.Application, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	app := snap.Application(applicationID)
	if app == nil {
		return nil, recruit.Errorf(recruit.ErrNotFound, "application not found: %s", recruit.NormalizeText(applicationID))
	}
	if err := recruit.Withdraw(app, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("application withdrawn", zap.String("application_id", app.ID))
	return app, nil
}

// AdvanceApplication moves an application along the generic transition table.
func (s *Service) AdvanceApplication(applicationID, newStatus, reason string) (*recruit.Application, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	app := snap.Application(applicationID)
	if app == nil {
		return nil, recruit.Errorf(recruit.ErrNotFound, "application not found: %s", recruit.NormalizeText(applicationID))
	}

	from := app.Status
	if err := recruit.Advance(app, newStatus, reason, s.now()); err != nil {
		return nil, err
	}

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("application status changed",
		zap.String("application_id", app.ID),
		zap.String("from", string(from)),
		zap.String("to", string(app.Status)),
	)
	return app, nil
}

// ApplicationStatusView is the read model returned by ApplicationStatus.
type ApplicationStatusView struct {
	ApplicationID string                    `json:"application_id"`
	Status        recruit.ApplicationStatus `json:"status"`
	UpdatedAt     time.Time                 `json:"updated_at"`
	AuditTrail    []recruit.AuditEntry      `json:"audit_trail"`
}

func (s *Service) ApplicationStatus(applicationID string) (*ApplicationStatusView, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	app := snap.Application(applicationID)
	if app == nil {
		return nil, recruit.Errorf(recruit.ErrNotFound, "application not found: %s", recruit.NormalizeText(applicationID))
	}

	return &ApplicationStatusView{
		ApplicationID: app.ID,
		Status:        app.Status,
		UpdatedAt:     app.UpdatedAt,
		AuditTrail:    app.AuditTrail,
	}, nil
}

func (s *Service) ListApplicationsForJob(jobID string) ([]*recruit.Application, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	jid := recruit.NormalizeText(jobID)
	if _, ok := snap.Jobs[jid]; !ok {
		return nil, recruit.Errorf(recruit.ErrNotFound, "job not found: %s", jid)
	}

	apps := make([]*recruit.Application, 0)
	for _, app := range snap.Applications {
		if app.JobID == jid {
			apps = append(apps, app)
		}
	}
	return apps, nil
}
