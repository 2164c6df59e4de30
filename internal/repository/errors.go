package repository

import (
	"errors"
	"fmt"
	"wellnessa_backend/internal/util"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the util error classes. notFound is the
// specific sentinel to report for a missing row.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", util.ErrNotFound, notFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", util.ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", util.ErrPersistence, err)
}
