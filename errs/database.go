package errs

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// NewDatabaseError maps a gorm failure to an ApiErr. Duplicate-key violations
// become Conflict so the storage-level unique index resolves create races the
// same way the repository pre-check does; missing records become NotFound.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	switch {
	case errors.Is(cause, gorm.ErrDuplicatedKey):
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        fmt.Errorf("%s already exists", entity),
			kind:       ErrConflict,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrRecordNotFound):
		return &ApiErr{
			StatusCode: http.StatusNotFound,
			err:        fmt.Errorf("%s not found", entity),
			kind:       ErrNotFound,
			Cause:      cause,
		}
	case errors.Is(cause, gorm.ErrForeignKeyViolated):
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("invalid reference in %s", entity),
			kind:       ErrBadRequest,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("failed to %s %s", operation, entity),
		kind:       ErrInternal,
		Cause:      cause,
	}
}
