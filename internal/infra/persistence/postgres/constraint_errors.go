package postgres

import (
	"strings"

	domainerrors "bitefeed/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeError classifies an unexpected database failure as transient so the
// delivery layer reports it as UNAVAILABLE instead of a generic 500. Sentinel
// conditions (not found, constraint violations) are mapped before this.
func storeError(err error, details string) error {
	return domainerrors.NewStoreUnavailableError(err, details)
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The go-lib postgres driver does not always translate errors, so fall
	// back to the SQLSTATE code and message patterns.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505") // PostgreSQL unique_violation error code
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") ||
		strings.Contains(errMsg, "23503") // PostgreSQL foreign_key_violation error code
}
