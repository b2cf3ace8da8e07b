//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/shared"
	"points-rewards/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func (f *fixture) benefitUseCase() commands.BenefitCommands {
	return commands.NewBenefitUseCase(f.uow, f.images, f.audit, f.clock, commands.BenefitConfig{MaxImageBytes: 1024})
}

func pngUpload(size int64) *commands.ImageUpload {
	return &commands.ImageUpload{
		Filename:    "gift.png",
		ContentType: "image/png",
		Size:        size,
		Body:        strings.NewReader("png"),
	}
}

func TestBenefitCreate(t *testing.T) {
	t.Run("uploads the image and stores its URL", func(t *testing.T) {
		f := newFixture(t)
		f.images.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, img commands.ImageUpload) (string, error) {
				assert.True(t, strings.HasSuffix(key, ".png"))
				return "https://cdn.example.com/beneficios/" + key, nil
			})
		f.benefits.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *benefit.Benefit) error {
				assert.True(t, strings.HasPrefix(b.Image().Value(), "https://cdn.example.com/"))
				return nil
			})
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.benefitUseCase().Create(context.Background(), admin, commands.CreateBenefitInput{
			Name: "Gift card", Cost: 200, Image: pngUpload(512),
		})

		require.NoError(t, err)
		assert.Equal(t, "ACTIVE", view.Status)
		assert.NotEmpty(t, view.ImageURL)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.benefits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(shared.ErrDuplicate)

		_, err := f.benefitUseCase().Create(context.Background(), admin, commands.CreateBenefitInput{Name: "Gift card", Cost: 200})

		requireAppError(t, err, errs.KindConflict)
	})

	t.Run("negative cost is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.benefitUseCase().Create(context.Background(), admin, commands.CreateBenefitInput{Name: "Gift card", Cost: -1})

		requireAppError(t, err, errs.KindValidation)
	})

	fileCases := []struct {
		name string
		img  *commands.ImageUpload
		code string
	}{
		{"empty file", pngUpload(0), errs.CodeFileMissing},
		{"too large", pngUpload(2048), errs.CodeFileTooLarge},
		{"wrong type", &commands.ImageUpload{Filename: "doc.pdf", ContentType: "application/pdf", Size: 10}, errs.CodeFileType},
		{"extension mismatch", &commands.ImageUpload{Filename: "gift.gif", ContentType: "image/png", Size: 10}, errs.CodeFileType},
	}
	for _, tt := range fileCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.benefitUseCase().Create(context.Background(), admin, commands.CreateBenefitInput{
				Name: "Gift card", Cost: 200, Image: tt.img,
			})

			appErr := requireAppError(t, err, errs.KindValidation)
			assert.Equal(t, tt.code, appErr.Code)
		})
	}
}

func TestBenefitUpdate(t *testing.T) {
	f := newFixture(t)
	ben := builder.NewBenefitBuilder().BuildStored()
	cost := int64(400)

	f.benefits.EXPECT().FindByID(gomock.Any(), ben.ID()).Return(ben, nil)
	f.benefits.EXPECT().Update(gomock.Any(), ben).Return(nil)
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	view, err := f.benefitUseCase().Update(context.Background(), admin, ben.ID(), commands.UpdateBenefitInput{Cost: &cost})

	require.NoError(t, err)
	assert.Equal(t, int64(400), view.Cost)
	assert.Equal(t, ben.Name().Value(), view.Name)
}

func TestBenefitDeactivate_NotFound(t *testing.T) {
	f := newFixture(t)
	ben := builder.NewBenefitBuilder().BuildStored()
	f.benefits.EXPECT().FindByID(gomock.Any(), ben.ID()).Return(nil, shared.ErrNotFound)

	_, err := f.benefitUseCase().Deactivate(context.Background(), admin, ben.ID())

	requireAppError(t, err, errs.KindNotFound)
}
