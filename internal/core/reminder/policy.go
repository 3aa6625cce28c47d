package reminder

import (
	"fmt"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
)

// Interval is how often a service type is due, in kilometers and/or
// days. At least one bound must be set; bounds must be positive.
type Interval struct {
	KM   *int
	Days *int
}

// PolicyEntry binds a service type to its interval. Entries keep
// declaration order so reminder output is deterministic.
type PolicyEntry struct {
	ServiceType domain.ServiceType
	Interval    Interval
}

// Policy is the static interval table, the single source of truth for
// how often each service type is due.
type Policy struct {
	entries []PolicyEntry
	byType  map[domain.ServiceType]Interval
}

// NewPolicy validates the table eagerly so a bad configuration fails
// at startup instead of corrupting individual reminders.
func NewPolicy(entries []PolicyEntry) (*Policy, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty policy table", domain.ErrInvalidPolicy)
	}

	byType := make(map[domain.ServiceType]Interval, len(entries))
	for _, e := range entries {
		if e.ServiceType == "" {
			return nil, fmt.Errorf("%w: entry with empty service type", domain.ErrInvalidPolicy)
		}
		if _, dup := byType[e.ServiceType]; dup {
			return nil, fmt.Errorf("%w: duplicate entry for %q", domain.ErrInvalidPolicy, e.ServiceType)
		}
		if e.Interval.KM == nil && e.Interval.Days == nil {
			return nil, fmt.Errorf("%w: %q has neither km nor days interval", domain.ErrInvalidPolicy, e.ServiceType)
		}
		if e.Interval.KM != nil && *e.Interval.KM <= 0 {
			return nil, fmt.Errorf("%w: %q has non-positive km interval %d", domain.ErrInvalidPolicy, e.ServiceType, *e.Interval.KM)
		}
		if e.Interval.Days != nil && *e.Interval.Days <= 0 {
			return nil, fmt.Errorf("%w: %q has non-positive days interval %d", domain.ErrInvalidPolicy, e.ServiceType, *e.Interval.Days)
		}
		byType[e.ServiceType] = e.Interval
	}

	return &Policy{entries: entries, byType: byType}, nil
}

// IntervalFor looks up the interval for a service type.
func (p *Policy) IntervalFor(serviceType domain.ServiceType) (Interval, error) {
	interval, ok := p.byType[serviceType]
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", domain.ErrUnknownServiceType, serviceType)
	}
	return interval, nil
}

// Knows reports whether the service type is in the table.
func (p *Policy) Knows(serviceType domain.ServiceType) bool {
	_, ok := p.byType[serviceType]
	return ok
}

// Entries returns the table in declaration order.
func (p *Policy) Entries() []PolicyEntry {
	return p.entries
}

func intPtr(v int) *int { return &v }

// DefaultPolicy is the stock interval table.
func DefaultPolicy() *Policy {
	policy, err := NewPolicy([]PolicyEntry{
		{ServiceType: domain.OilChange, Interval: Interval{KM: intPtr(5000), Days: intPtr(180)}},
		{ServiceType: domain.TireRotation, Interval: Interval{KM: intPtr(10000), Days: intPtr(365)}},
		{ServiceType: domain.BrakeInspection, Interval: Interval{KM: intPtr(20000), Days: intPtr(365)}},
		{ServiceType: domain.AirFilter, Interval: Interval{KM: intPtr(15000), Days: intPtr(365)}},
		{ServiceType: domain.BatteryCheck, Interval: Interval{KM: intPtr(30000), Days: intPtr(730)}},
	})
	if err != nil {
		panic(err)
	}
	return policy
}
