package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"supportcenter/internal/logger"
	"supportcenter/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const timeLayout = time.RFC3339

// parseID turns a caller-supplied id into a UUID, failing with a validation error.
func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, apperror.Validation("invalid %s id %q", entity, raw)
	}
	return id, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// classify converts a repository error into the apperror taxonomy. Errors that
// are already classified pass through untouched.
func classify(op string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &apperror.Error{Kind: apperror.KindConflict, Message: op + ": value already exists", Err: err}
	}
	return apperror.Storage(op, err)
}

// fail records err against op and returns it. Storage failures are logged as
// errors, caller mistakes as warnings.
func fail(log logger.Recorder, op string, err error) error {
	severity := logger.SeverityWarn
	if k := apperror.KindOf(err); k == apperror.KindStorage || k == apperror.KindUnknown {
		severity = logger.SeverityError
	}
	log.Record(fmt.Sprintf("Failed to %s: %v", op, err), severity)
	return err
}

// trimmed returns the trimmed value of p, or nil when p is nil.
func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
