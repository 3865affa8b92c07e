package dto

import (
	"time"

	"kostera/internal/domain/subscription"
)

// PlanDTO is the external representation of a plan. KostLimit is derived
// from AllowMultiBranch and is not a stored column.
type PlanDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Price            uint64 `json:"price"`
	MaxRooms         int    `json:"max_rooms"`
	MaxStaff         int    `json:"max_staff"`
	MaxAPICalls      int    `json:"max_api_calls"`
	KostLimit        int    `json:"kost_limit"`
	AllowMultiBranch bool   `json:"allow_multi_branch"`
	AllowFinance     bool   `json:"allow_finance"`
	AllowExport      bool   `json:"allow_export"`
}

type SubscriptionDTO struct {
	ID        uint      `json:"id"`
	TenantID  uint      `json:"tenant_id"`
	PlanID    uint      `json:"plan_id"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// UsageDTO carries live counts taken at read time, never cached tallies.
type UsageDTO struct {
	Rooms int64 `json:"rooms"`
	Staff int64 `json:"staff"`
}

// CurrentPlanDTO is the entitlement snapshot for a tenant.
type CurrentPlanDTO struct {
	Plan         PlanDTO         `json:"plan"`
	Subscription SubscriptionDTO `json:"subscription"`
	Usage        UsageDTO        `json:"usage"`
}

func PlanToDTO(p *subscription.Plan) PlanDTO {
	return PlanDTO{
		ID:               p.ID(),
		Name:             p.Name(),
		Price:            p.Price(),
		MaxRooms:         p.MaxRooms(),
		MaxStaff:         p.MaxStaff(),
		MaxAPICalls:      p.MaxAPICalls(),
		KostLimit:        p.KostLimit(),
		AllowMultiBranch: p.AllowMultiBranch(),
		AllowFinance:     p.AllowFinance(),
		AllowExport:      p.AllowExport(),
	}
}

func SubscriptionToDTO(s *subscription.Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		ID:        s.ID(),
		TenantID:  s.TenantID(),
		PlanID:    s.PlanID(),
		Status:    s.Status().String(),
		StartDate: s.StartDate(),
		EndDate:   s.EndDate(),
	}
}
