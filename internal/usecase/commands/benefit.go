package commands

import (
	"context"
	"errors"

	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/pkg/clock"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBenefitInput struct {
	Name            string
	Detail          string
	Cost            int64
	RequiresJourney bool
	Image           *ImageUpload
}

type UpdateBenefitInput struct {
	Name            *string
	Detail          *string
	Cost            *int64
	RequiresJourney *bool
}

type BenefitCommands interface {
	Create(ctx context.Context, actor shared.Principal, in CreateBenefitInput) (*queries.BenefitView, error)
	Update(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateBenefitInput) (*queries.BenefitView, error)
	ReplaceImage(ctx context.Context, actor shared.Principal, id uuid.UUID, img ImageUpload) (*queries.BenefitView, error)
	Deactivate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.BenefitView, error)
	Activate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.BenefitView, error)
}

type BenefitConfig struct {
	MaxImageBytes int64
}

type benefitUseCaseImpl struct {
	uow     shared.UnitOfWork
	images  ImageStore
	effects sideEffects
	clock   clock.Clock
	cfg     BenefitConfig
}

func NewBenefitUseCase(uow shared.UnitOfWork, images ImageStore, audit AuditGateway, clk clock.Clock, cfg BenefitConfig) BenefitCommands {
	if cfg.MaxImageBytes <= 0 {
		cfg.MaxImageBytes = benefit.DefaultMaxImageBytes
	}
	return &benefitUseCaseImpl{
		uow:     uow,
		images:  images,
		effects: sideEffects{audit: audit},
		clock:   clk,
		cfg:     cfg,
	}
}

func (uc *benefitUseCaseImpl) Create(ctx context.Context, actor shared.Principal, in CreateBenefitInput) (*queries.BenefitView, error) {
	name, err := benefit.NewName(in.Name)
	if err != nil {
		return nil, errs.Validation(err, "invalid benefit name", nil)
	}
	cost, err := benefit.NewCost(in.Cost)
	if err != nil {
		return nil, errs.Validation(err, "invalid benefit cost", map[string]any{"valor": in.Cost})
	}

	b := benefit.NewBenefit(name, in.Detail, cost, benefit.ImageURL{}, in.RequiresJourney, uc.clock.Now())

	if in.Image != nil {
		url, uerr := uc.upload(ctx, b.ID(), *in.Image)
		if uerr != nil {
			return nil, uerr
		}
		b.Apply(benefit.Patch{Image: &url}, uc.clock.Now())
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Benefits().Create(ctx, b); derr != nil {
			return benefitWriteError(derr, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.effects.record(ctx, actor, "benefit.created", "benefit", b.ID().String(),
		map[string]any{"name": name.Value(), "cost": cost.Value()}, uc.clock.Now())
	return benefitView(b), nil
}

func (uc *benefitUseCaseImpl) Update(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateBenefitInput) (*queries.BenefitView, error) {
	var patch benefit.Patch
	if in.Name != nil {
		name, err := benefit.NewName(*in.Name)
		if err != nil {
			return nil, errs.Validation(err, "invalid benefit name", nil)
		}
		patch.Name = &name
	}
	if in.Cost != nil {
		cost, err := benefit.NewCost(*in.Cost)
		if err != nil {
			return nil, errs.Validation(err, "invalid benefit cost", map[string]any{"valor": *in.Cost})
		}
		patch.Cost = &cost
	}
	patch.Detail = in.Detail
	patch.RequiresJourney = in.RequiresJourney

	b, err := uc.mutate(ctx, id, func(b *benefit.Benefit) {
		b.Apply(patch, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.effects.record(ctx, actor, "benefit.updated", "benefit", id.String(), nil, uc.clock.Now())
	return benefitView(b), nil
}

func (uc *benefitUseCaseImpl) ReplaceImage(ctx context.Context, actor shared.Principal, id uuid.UUID, img ImageUpload) (*queries.BenefitView, error) {
	if err := uc.validateImage(img); err != nil {
		return nil, err
	}
	// Check existence before uploading so a bad id leaves no orphan object.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Benefits().FindByID(ctx, id); derr != nil {
			return lookupError(derr, "benefit", id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	url, err := uc.upload(ctx, id, img)
	if err != nil {
		return nil, err
	}

	b, err := uc.mutate(ctx, id, func(b *benefit.Benefit) {
		b.Apply(benefit.Patch{Image: &url}, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.effects.record(ctx, actor, "benefit.image_replaced", "benefit", id.String(),
		map[string]any{"image_url": url.Value()}, uc.clock.Now())
	return benefitView(b), nil
}

func (uc *benefitUseCaseImpl) Deactivate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.BenefitView, error) {
	b, err := uc.mutate(ctx, id, func(b *benefit.Benefit) {
		b.Deactivate(uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	uc.effects.record(ctx, actor, "benefit.deactivated", "benefit", id.String(), nil, uc.clock.Now())
	return benefitView(b), nil
}

func (uc *benefitUseCaseImpl) Activate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.BenefitView, error) {
	b, err := uc.mutate(ctx, id, func(b *benefit.Benefit) {
		b.Activate(uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	uc.effects.record(ctx, actor, "benefit.activated", "benefit", id.String(), nil, uc.clock.Now())
	return benefitView(b), nil
}

func (uc *benefitUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(b *benefit.Benefit)) (*benefit.Benefit, error) {
	var b *benefit.Benefit
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		b, derr = tx.Benefits().FindByID(ctx, id)
		if derr != nil {
			return lookupError(derr, "benefit", id)
		}
		fn(b)
		if derr = tx.Benefits().Update(ctx, b); derr != nil {
			return benefitWriteError(derr, b.Name())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *benefitUseCaseImpl) validateImage(img ImageUpload) error {
	err := benefit.Image{Filename: img.Filename, ContentType: img.ContentType, Size: img.Size}.Validate(uc.cfg.MaxImageBytes)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, benefit.ErrImageMissing):
		return errs.File(errs.CodeFileMissing, err, "image file is required", nil)
	case errors.Is(err, benefit.ErrImageTypeInvalid):
		return errs.File(errs.CodeFileType, err, "image type not allowed", map[string]any{
			"content_type":  img.ContentType,
			"allowed_types": benefit.AllowedImageTypes(),
		})
	case errors.Is(err, benefit.ErrImageTooLarge):
		return errs.File(errs.CodeFileTooLarge, err, "image too large", map[string]any{
			"size":      img.Size,
			"max_bytes": uc.cfg.MaxImageBytes,
		})
	default:
		return errs.File(errs.CodeFileUpload, err, "invalid image", nil)
	}
}

func (uc *benefitUseCaseImpl) upload(ctx context.Context, id uuid.UUID, img ImageUpload) (benefit.ImageURL, error) {
	if err := uc.validateImage(img); err != nil {
		return benefit.ImageURL{}, err
	}
	if uc.images == nil {
		return benefit.ImageURL{}, errs.File(errs.CodeFileUpload, nil, "image storage is not configured", nil)
	}

	ext := benefit.Image{Filename: img.Filename}.Extension()
	key := id.String() + "/" + uuid.NewString() + ext
	raw, err := uc.images.Upload(ctx, key, img)
	if err != nil {
		return benefit.ImageURL{}, errs.File(errs.CodeFileUpload, err, "failed to upload image", nil)
	}
	url, err := benefit.NewImageURL(raw)
	if err != nil {
		return benefit.ImageURL{}, errs.File(errs.CodeFileUpload, err, "stored image URL too long", nil)
	}
	return url, nil
}

func benefitWriteError(err error, name benefit.Name) error {
	if errors.Is(err, shared.ErrDuplicate) {
		return errs.Conflict(err, "benefit name already exists", map[string]any{"nombre": name.Value()})
	}
	return errs.Infrastructure(err, "failed to save benefit")
}
