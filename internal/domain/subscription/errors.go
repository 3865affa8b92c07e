package subscription

import (
	"errors"
	"fmt"

	vo "kostera/internal/domain/subscription/valueobjects"
)

var (
	ErrNoActiveSubscription    = errors.New("No active subscription found")
	ErrSubscriptionNotFound    = errors.New("subscription not found")
	ErrPlanNotFound            = errors.New("plan not found")
	ErrPlanNameExists          = errors.New("plan name already exists")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrLimitReached            = errors.New("plan limit reached")
	ErrFeatureNotSupported     = errors.New("plan feature not supported")
)

// LimitReachedError is returned when a countable resource sits at or above
// its plan ceiling. Its message is the client-facing denial text.
type LimitReachedError struct {
	Resource vo.LimitResource
	Limit    int
}

func (e *LimitReachedError) Error() string {
	return fmt.Sprintf("Plan limit reached for %s (%d)", e.Resource, e.Limit)
}

func (e *LimitReachedError) Unwrap() error {
	return ErrLimitReached
}

// FeatureNotSupportedError is returned when the current plan does not carry
// the requested feature flag.
type FeatureNotSupportedError struct {
	Feature vo.Feature
}

func (e *FeatureNotSupportedError) Error() string {
	return fmt.Sprintf("Plan does not support feature: %s", e.Feature)
}

func (e *FeatureNotSupportedError) Unwrap() error {
	return ErrFeatureNotSupported
}
