package valueobjects

// SubscriptionStatus is the lifecycle state of a tenant's subscription.
type SubscriptionStatus string

const (
	// StatusTrial is the 14-day trial created at tenant registration.
	StatusTrial SubscriptionStatus = "TRIAL"
	// StatusActive is the single entitling state. Plan resolution only
	// considers ACTIVE subscriptions.
	StatusActive SubscriptionStatus = "ACTIVE"
	// StatusInactive is a terminal state reached when a new plan is
	// assigned or the subscription ends.
	StatusInactive SubscriptionStatus = "INACTIVE"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// IsActive reports whether the subscription entitles the tenant.
func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// CanTransitionTo reports whether the transition to target is allowed.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusTrial:    {StatusActive, StatusInactive},
		StatusActive:   {StatusInactive},
		StatusInactive: {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusTrial:    true,
	StatusActive:   true,
	StatusInactive: true,
}
