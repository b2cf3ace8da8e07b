package shared

import "points-rewards/internal/pkg/errs"

// Persistence outcomes use cases branch on. Repository errors match them
// through errors.Is.
var (
	ErrNotFound         = errs.New("record not found")
	ErrDuplicate        = errs.New("record already exists")
	ErrReferenceMissing = errs.New("referenced record does not exist")
)
