// Package apperr defines the error taxonomy surfaced by the service layer:
// missing rows and storage constraint violations. Everything else propagates
// as-is and rolls back the enclosing transaction.
package apperr

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound marks operations referencing a user or book id that does
	// not exist in the store.
	ErrNotFound = errors.New("not found")
	// ErrConstraint marks writes rejected by a storage integrity constraint.
	ErrConstraint = errors.New("constraint violation")
)

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// FromDB classifies a storage error into the taxonomy. GORM translates
// duplicate-key and FK failures into sentinels; NOT NULL rejections only
// surface as driver messages, so those are matched textually.
func FromDB(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%v: %w", err, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return fmt.Errorf("%v: %w", err, ErrConstraint)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not null") ||
		strings.Contains(msg, "null value") ||
		strings.Contains(msg, "constraint") {
		return fmt.Errorf("%v: %w", err, ErrConstraint)
	}
	return err
}
