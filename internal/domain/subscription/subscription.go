package subscription

import (
	"fmt"
	"time"

	vo "kostera/internal/domain/subscription/valueobjects"
)

// Subscription represents the subscription aggregate root. A tenant holds at
// most one ACTIVE subscription at any time; assigning a new plan deactivates
// the previous one in the same transaction.
type Subscription struct {
	id        uint
	tenantID  uint
	planID    uint
	status    vo.SubscriptionStatus
	startDate time.Time
	endDate   time.Time
	createdAt time.Time
	updatedAt time.Time
}

// NewSubscription creates a new subscription in the given status.
func NewSubscription(tenantID, planID uint, status vo.SubscriptionStatus, startDate, endDate time.Time) (*Subscription, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := time.Now()
	return &Subscription{
		tenantID:  tenantID,
		planID:    planID,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructSubscription reconstructs a subscription from persistence
func ReconstructSubscription(
	id, tenantID, planID uint,
	status vo.SubscriptionStatus,
	startDate, endDate time.Time,
	createdAt, updatedAt time.Time,
) (*Subscription, error) {
	if id == 0 {
		return nil, fmt.Errorf("subscription ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !vo.ValidStatuses[status] {
		return nil, fmt.Errorf("invalid subscription status: %s", status)
	}

	return &Subscription{
		id:        id,
		tenantID:  tenantID,
		planID:    planID,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (s *Subscription) ID() uint {
	return s.id
}

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("subscription ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("subscription ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Subscription) TenantID() uint {
	return s.tenantID
}

func (s *Subscription) PlanID() uint {
	return s.planID
}

func (s *Subscription) Status() vo.SubscriptionStatus {
	return s.status
}

func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

func (s *Subscription) EndDate() time.Time {
	return s.endDate
}

func (s *Subscription) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Subscription) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsActive reports whether the subscription currently entitles its tenant.
// Only ACTIVE counts; TRIAL tenants are not entitled until upgraded.
func (s *Subscription) IsActive() bool {
	return s.status.IsActive()
}

// Activate promotes the subscription to ACTIVE.
func (s *Subscription) Activate() error {
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot transition subscription from %s to %s", s.status, vo.StatusActive)
	}
	s.status = vo.StatusActive
	s.updatedAt = time.Now()
	return nil
}

// Deactivate retires the subscription and closes its period at the given
// instant.
func (s *Subscription) Deactivate(at time.Time) error {
	if s.status == vo.StatusInactive {
		return nil
	}
	if !s.status.CanTransitionTo(vo.StatusInactive) {
		return fmt.Errorf("cannot transition subscription from %s to %s", s.status, vo.StatusInactive)
	}
	s.status = vo.StatusInactive
	s.endDate = at
	s.updatedAt = time.Now()
	return nil
}
