// Package service binds the recruiting engines to a snapshot store. Every
// public operation performs exactly one load-mutate-save cycle; all checks
// run before any mutation, so a failed operation leaves the stored document
// untouched.
package service

import (
	"time"

	"go.uber.org/zap"

	"hireflow/internal/store"
)

type Service struct {
	store  store.Store
	logger *zap.Logger
	now    func() time.Time
}

func New(st store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  st,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}
