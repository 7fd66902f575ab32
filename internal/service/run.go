package service

import (
	"context"
	"time"

	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/logger"
	"skills-tracker-backend/internal/metrics"
	"skills-tracker-backend/internal/operation"
)

// run executes op and records its outcome in the logs and metrics
func run[T any](ctx context.Context, m *metrics.Metrics, op operation.Executable[T]) (T, error) {
	started := time.Now()
	result, err := op.Execute(ctx)
	m.ObserveOperation(op.Name(), started, err)

	log := logger.WithContext(ctx).WithField("operation", op.Name())
	switch {
	case err == nil:
		log.Info("operation completed")
	case apperrors.IsAuthorization(err), apperrors.IsValidation(err), apperrors.IsSkillSelfPrerequisite(err):
		log.WithError(err).Warn("operation rejected")
	case apperrors.IsNotFound(err), apperrors.IsAlreadyExists(err):
		log.WithError(err).Info("operation failed")
	default:
		log.WithError(err).Error("operation failed")
	}
	return result, err
}
