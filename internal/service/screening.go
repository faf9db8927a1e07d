package service

import (
	"go.uber.org/zap"

	"hireflow/internal/recruit"
)

// FilterEligibility screens candidates against a job. Read-only: the
// snapshot is never saved back.
func (s *Service) FilterEligibility(jobID string, candidateIDs []string) ([]recruit.EligibilityResult, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	results, err := recruit.FilterEligibility(snap, jobID, candidateIDs)
	if err != nil {
		return nil, err
	}

	eligible := 0
	for _, r := range results {
		if r.Eligible {
			eligible++
		}
	}
	s.logger.Info("eligibility screened",
		zap.String("job_id", recruit.NormalizeText(jobID)),
		zap.Int("screened", len(results)),
		zap.Int("eligible", eligible),
	)
	return results, nil
}

// RankCandidates scores candidates against a job. A nil weights pointer
// selects the default split; caller weights are applied exactly as given.
func (s *Service) RankCandidates(jobID string, candidateIDs []string, weights *recruit.RankWeights) ([]recruit.RankResult, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	results, err := recruit.RankCandidates(snap, jobID, candidateIDs, weights)
	if err != nil {
		return nil, err
	}

	s.logger.Info("candidates ranked",
		zap.String("job_id", recruit.NormalizeText(jobID)),
		zap.Int("ranked", len(results)),
	)
	return results, nil
}

func (s *Service) ScheduleInterview(interviewID, applicationID, startRaw string, durationMinutes int, interviewer, location string) (*recruit.Interview, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	interview, err := recruit.ScheduleInterview(snap, interviewID, applicationID, startRaw, durationMinutes, interviewer, location, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("interview scheduled",
		zap.String("interview_id", interview.ID),
		zap.String("application_id", interview.ApplicationID),
		zap.String("interviewer", interview.Interviewer),
		zap.Time("scheduled_at", interview.ScheduledAt),
	)
	return interview, nil
}
