//go:build unit

package errs_test

import (
	"testing"

	"points-rewards/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("connection reset"), "failed to debit points")

	all := errs.ExtractStackLines(err, 0)
	assert.Greater(t, len(all), 3)
	assert.Contains(t, all[0], "failed to debit points")

	assert.Len(t, errs.ExtractStackLines(err, 3), 3)
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
