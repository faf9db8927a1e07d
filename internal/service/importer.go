package service

import (
	"go.uber.org/zap"

	"hireflow/internal/bulkimport"
)

// BulkImport merges a bulk JSON file into the stored snapshot and persists
// the result. Per-item failures land in the report; only unreadable or
// malformed files fail the operation as a whole.
func (s *Service) BulkImport(path string) (*bulkimport.Report, error) {
	snap, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	report, err := bulkimport.FromFile(path, snap)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(snap); err != nil {
		return nil, err
	}

	s.logger.Info("bulk import finished",
		zap.String("path", path),
		zap.Int("jobs_imported", report.Jobs.Imported),
		zap.Int("candidates_imported", report.Candidates.Imported),
		zap.Int("applications_imported", report.Applications.Imported),
		zap.Int("interviews_imported", report.Interviews.Imported),
	)
	return report, nil
}
