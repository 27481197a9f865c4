package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sakha-landing/pkg/models"
	"sakha-landing/pkg/phone"
	"sakha-landing/pkg/utils"
	"sakha-landing/pkg/validation"
)

// ErrRejected is returned when a snapshot fails the submitter's own checks.
var ErrRejected = errors.New("submission rejected")

// Submitter receives a captured form. A backend endpoint is expected to
// implement it eventually; today only the local simulation exists.
type Submitter interface {
	Submit(ctx context.Context, data models.FormSubmission) (models.SubmissionResult, error)
}

type localSubmitterImpl struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewLocalSubmitter creates a submitter that accepts every well-formed
// snapshot without any I/O.
func NewLocalSubmitter(logger *zap.Logger) Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &localSubmitterImpl{
		logger: logger,
		now:    time.Now,
	}
}

// Submit checks the snapshot and simulates an accepted callback request
func (s *localSubmitterImpl) Submit(ctx context.Context, data models.FormSubmission) (models.SubmissionResult, error) {
	if err := ctx.Err(); err != nil {
		return models.SubmissionResult{}, err
	}

	phoneHash := hashPhone(data.Phone)

	if fields := validation.Struct(data); fields != nil {
		s.logger.Debug("callback request rejected",
			zap.String("phone_hash", phoneHash),
			zap.Any("fields", fields),
		)
		return models.SubmissionResult{}, fmt.Errorf("%w: %v", ErrRejected, fields)
	}

	result := models.SubmissionResult{
		ReferenceID: uuid.NewString(),
		Phone:       data.Phone,
		AcceptedAt:  s.now(),
	}

	s.logger.Info("callback request accepted",
		zap.String("reference_id", result.ReferenceID),
		zap.String("phone", utils.MaskPhone(data.Phone)),
		zap.String("phone_hash", phoneHash),
		zap.String("language", data.Language),
		zap.String("call_time", data.CallTime),
	)
	return result, nil
}

// hashPhone hashes the E.164 form of a valid number so every spelling of
// the same number shares one hash. Invalid input is hashed by its digits.
func hashPhone(s string) string {
	key, err := phone.E164(s)
	if err != nil {
		key = phone.Digits(s)
	}
	return utils.HashString(key)
}
