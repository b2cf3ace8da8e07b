//go:build unit

package benefit_test

import (
	"strings"
	"testing"
	"time"

	"points-rewards/internal/domain/benefit"
	"points-rewards/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var later = time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewBenefit(t *testing.T) {
	name, err := benefit.NewName("  Gift card ")
	require.NoError(t, err)
	cost, err := benefit.NewCost(0)
	require.NoError(t, err)

	b := benefit.NewBenefit(name, "", cost, benefit.ImageURL{}, false, later)

	assert.Equal(t, "Gift card", b.Name().Value())
	assert.Equal(t, "gift card", b.Name().Key())
	assert.True(t, b.IsActive())
	assert.Equal(t, later, b.CreatedAt())
}

func TestValueObjects(t *testing.T) {
	_, err := benefit.NewName("")
	require.ErrorIs(t, err, benefit.ErrInvalidName)
	_, err = benefit.NewName(strings.Repeat("b", 201))
	require.ErrorIs(t, err, benefit.ErrInvalidName)
	_, err = benefit.NewCost(-1)
	require.ErrorIs(t, err, benefit.ErrInvalidCost)
	_, err = benefit.NewImageURL(strings.Repeat("u", 501))
	require.ErrorIs(t, err, benefit.ErrInvalidImageURL)
}

func TestApply(t *testing.T) {
	b := builder.NewBenefitBuilder().BuildStored()
	cost, _ := benefit.NewCost(500)
	requires := true

	b.Apply(benefit.Patch{Cost: &cost, RequiresJourney: &requires}, later)

	assert.Equal(t, int64(500), b.Cost().Value())
	assert.True(t, b.RequiresJourney())
	assert.Equal(t, "Día libre", b.Name().Value())
	assert.Equal(t, later, b.UpdatedAt())

	b.Deactivate(later)
	assert.False(t, b.IsActive())
	b.Activate(later)
	assert.True(t, b.IsActive())
}

func TestImageValidate(t *testing.T) {
	tests := []struct {
		name  string
		img   benefit.Image
		max   int64
		errIs error
	}{
		{"png ok", benefit.Image{Filename: "a.png", ContentType: "image/png", Size: 10}, 100, nil},
		{"jpeg with .jpg", benefit.Image{Filename: "a.JPG", ContentType: "image/jpeg", Size: 10}, 100, nil},
		{"empty", benefit.Image{Filename: "a.png", ContentType: "image/png"}, 100, benefit.ErrImageMissing},
		{"no filename", benefit.Image{ContentType: "image/png", Size: 10}, 100, benefit.ErrImageMissing},
		{"pdf", benefit.Image{Filename: "a.pdf", ContentType: "application/pdf", Size: 10}, 100, benefit.ErrImageTypeInvalid},
		{"extension mismatch", benefit.Image{Filename: "a.gif", ContentType: "image/png", Size: 10}, 100, benefit.ErrImageTypeInvalid},
		{"too large", benefit.Image{Filename: "a.webp", ContentType: "image/webp", Size: 101}, 100, benefit.ErrImageTooLarge},
		{"default max", benefit.Image{Filename: "a.webp", ContentType: "image/webp", Size: benefit.DefaultMaxImageBytes}, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.img.Validate(tt.max)
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}
