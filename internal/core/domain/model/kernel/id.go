package kernel

import (
	"fmt"
	"strconv"

	"foodexpress/internal/pkg/errs"
)

// ID is the single identifier type used across all layers and aggregates.
// Storage assigns values at creation time; zero and negative values are
// invalid everywhere. Keeping one wide integer type end to end avoids the
// narrowing bugs that appear when layers disagree on identifier width.
type ID int64

// NewID wraps a raw storage-assigned identifier.
//
// Returns:
//   - ID: the wrapped identifier
//   - error: ValueIsInvalidError when the raw value is not positive
func NewID(raw int64) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the identifier carries a storage-assigned value.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not a valid id", int64(id)))
	}
	return nil
}

// IsEqual compares two identifiers by value.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Int64 returns the raw identifier value for persistence.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation, used in error messages and logs.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
