package subscription

import (
	"fmt"
	"time"

	vo "kostera/internal/domain/subscription/valueobjects"
)

const (
	// multiBranchKostLimit is the kost ceiling for plans that allow multiple
	// branches. Single-branch plans are pinned to exactly one kost.
	multiBranchKostLimit = 100
	singleBranchKostLimit = 1
)

type Plan struct {
	id               uint
	name             string
	price            uint64
	maxRooms         int
	maxStaff         int
	maxAPICalls      int
	allowMultiBranch bool
	allowFinance     bool
	allowExport      bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewPlan(name string, price uint64, maxRooms, maxStaff, maxAPICalls int,
	allowMultiBranch, allowFinance, allowExport bool) (*Plan, error) {

	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("plan name too long (max 100 characters)")
	}
	if maxRooms < 0 {
		return nil, fmt.Errorf("max rooms cannot be negative")
	}
	if maxStaff < 0 {
		return nil, fmt.Errorf("max staff cannot be negative")
	}
	if maxAPICalls < 0 {
		return nil, fmt.Errorf("max API calls cannot be negative")
	}

	now := time.Now()
	return &Plan{
		name:             name,
		price:            price,
		maxRooms:         maxRooms,
		maxStaff:         maxStaff,
		maxAPICalls:      maxAPICalls,
		allowMultiBranch: allowMultiBranch,
		allowFinance:     allowFinance,
		allowExport:      allowExport,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructPlan(id uint, name string, price uint64, maxRooms, maxStaff,
	maxAPICalls int, allowMultiBranch, allowFinance, allowExport bool,
	createdAt, updatedAt time.Time) (*Plan, error) {

	if id == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}

	return &Plan{
		id:               id,
		name:             name,
		price:            price,
		maxRooms:         maxRooms,
		maxStaff:         maxStaff,
		maxAPICalls:      maxAPICalls,
		allowMultiBranch: allowMultiBranch,
		allowFinance:     allowFinance,
		allowExport:      allowExport,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (p *Plan) ID() uint {
	return p.id
}

func (p *Plan) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) Price() uint64 {
	return p.price
}

func (p *Plan) MaxRooms() int {
	return p.maxRooms
}

func (p *Plan) MaxStaff() int {
	return p.maxStaff
}

func (p *Plan) MaxAPICalls() int {
	return p.maxAPICalls
}

func (p *Plan) AllowMultiBranch() bool {
	return p.allowMultiBranch
}

func (p *Plan) AllowFinance() bool {
	return p.allowFinance
}

func (p *Plan) AllowExport() bool {
	return p.allowExport
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}

// KostLimit derives the kost ceiling from the multi-branch flag. The limit is
// not stored on the plan row; it always follows the flag.
func (p *Plan) KostLimit() int {
	if p.allowMultiBranch {
		return multiBranchKostLimit
	}
	return singleBranchKostLimit
}

// LimitFor returns the numeric ceiling for a countable resource.
func (p *Plan) LimitFor(resource vo.LimitResource) (int, error) {
	switch resource {
	case vo.LimitRooms:
		return p.maxRooms, nil
	case vo.LimitStaff:
		return p.maxStaff, nil
	case vo.LimitKosts:
		return p.KostLimit(), nil
	}
	return 0, fmt.Errorf("unknown limit resource: %s", resource)
}

func (p *Plan) HasFeature(feature vo.Feature) bool {
	switch feature {
	case vo.FeatureFinance:
		return p.allowFinance
	case vo.FeatureExport:
		return p.allowExport
	}
	return false
}

func (p *Plan) UpdatePrice(price uint64) {
	p.price = price
	p.updatedAt = time.Now()
}

func (p *Plan) UpdateLimits(maxRooms, maxStaff, maxAPICalls int) error {
	if maxRooms < 0 {
		return fmt.Errorf("max rooms cannot be negative")
	}
	if maxStaff < 0 {
		return fmt.Errorf("max staff cannot be negative")
	}
	if maxAPICalls < 0 {
		return fmt.Errorf("max API calls cannot be negative")
	}
	p.maxRooms = maxRooms
	p.maxStaff = maxStaff
	p.maxAPICalls = maxAPICalls
	p.updatedAt = time.Now()
	return nil
}

func (p *Plan) UpdateFlags(allowMultiBranch, allowFinance, allowExport bool) {
	p.allowMultiBranch = allowMultiBranch
	p.allowFinance = allowFinance
	p.allowExport = allowExport
	p.updatedAt = time.Now()
}

func (p *Plan) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("plan name too long (max 100 characters)")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}
