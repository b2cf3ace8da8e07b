package commands

import (
	"points-rewards/internal/domain/account"
	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/usecase/queries"
)

// Write-side results reuse the read models so handlers render one shape.

func redemptionView(r *redemption.Redemption, benefitName string, remaining int64) *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:              r.ID(),
		UserID:          r.UserID(),
		BenefitID:       r.BenefitID(),
		BenefitName:     benefitName,
		Points:          r.Points(),
		RedeemedAt:      r.RedeemedAt(),
		UseAt:           r.UseAt(),
		Status:          r.Status().String(),
		Notes:           r.Notes().Value(),
		Journey:         r.Journey().Value(),
		RemainingPoints: remaining,
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

func accountView(a *account.Account) *queries.AccountView {
	return &queries.AccountView{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Email:     a.Email().Value(),
		FirstName: a.FirstName().Value(),
		LastName:  a.LastName().Value(),
		Points:    a.Points(),
		Role:      a.Role().String(),
		Status:    a.Status().String(),
		LastLogin: a.LastLogin(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func benefitView(b *benefit.Benefit) *queries.BenefitView {
	return &queries.BenefitView{
		ID:              b.ID(),
		Name:            b.Name().Value(),
		Detail:          b.Detail(),
		Cost:            b.Cost().Value(),
		ImageURL:        b.Image().Value(),
		RequiresJourney: b.RequiresJourney(),
		Status:          string(b.Status()),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
