package repository

import (
	"errors"
	"strings"

	apperrors "skills-tracker-backend/internal/errors"
	"skills-tracker-backend/internal/validation"

	"gorm.io/gorm"
)

var structValidator = validation.New()

// validate checks a candidate row before it is written
func validate(candidate interface{}) error {
	return validation.Translate(structValidator.Struct(candidate))
}

// translateError maps constraint violations onto the application error kinds.
// exists is returned for unique violations so racing writers see the same error
// as the application-level duplicate check.
func translateError(err error, exists error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return exists
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperrors.NewValidationError("", "referenced record does not exist")
	}

	// Drivers that do not implement gorm's ErrorTranslator
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value"):
		return exists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"):
		return apperrors.NewValidationError("", "referenced record does not exist")
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "violates check constraint"):
		return apperrors.NewValidationError("", "check constraint violated")
	}
	return err
}
