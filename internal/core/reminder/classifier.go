package reminder

import (
	"fmt"
	"sort"
	"time"

	"github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"
)

const (
	DefaultWarnKM   = 1000
	DefaultWarnDays = 30
)

// Engine computes reminders from a vehicle's maintenance history and
// the interval policy. It is a pure computation: "today" is injected
// by the caller, never read from the system clock here.
type Engine struct {
	policy   *Policy
	warnKM   int
	warnDays int
}

// NewEngine rejects bad configuration eagerly: a nil policy or a
// negative warning window is fatal to startup, not a per-call error.
func NewEngine(policy *Policy, warnKM, warnDays int) (*Engine, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: nil policy", domain.ErrInvalidPolicy)
	}
	if warnKM < 0 || warnDays < 0 {
		return nil, fmt.Errorf("%w: negative warning window (km=%d days=%d)", domain.ErrInvalidPolicy, warnKM, warnDays)
	}
	return &Engine{policy: policy, warnKM: warnKM, warnDays: warnDays}, nil
}

// Policy exposes the engine's interval table.
func (e *Engine) Policy() *Policy {
	return e.policy
}

// ComputeReminders produces one reminder per policy entry, including
// service types the vehicle has never had, so the user is prompted
// for the first service too. Output is sorted most urgent first
// (overdue, due_soon, ok) with policy order preserved within a class.
func (e *Engine) ComputeReminders(vehicle *domain.Vehicle, history []*domain.MaintenanceEvent, today time.Time) []domain.Reminder {
	reminders := make([]domain.Reminder, 0, len(e.policy.Entries()))

	for _, entry := range e.policy.Entries() {
		reminders = append(reminders, e.remindFor(entry, vehicle, history, today))
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].Status.Urgency() < reminders[j].Status.Urgency()
	})
	return reminders
}

func (e *Engine) remindFor(entry PolicyEntry, vehicle *domain.Vehicle, history []*domain.MaintenanceEvent, today time.Time) domain.Reminder {
	r := domain.Reminder{ServiceType: entry.ServiceType}

	last := LastServiceFor(entry.ServiceType, history)
	if last == nil {
		// Never serviced: exactly one full interval away.
		if entry.Interval.KM != nil {
			r.DueInKM = intPtr(*entry.Interval.KM)
		}
		if entry.Interval.Days != nil {
			r.DueInDays = intPtr(*entry.Interval.Days)
		}
	} else {
		lastDate := last.Date
		lastMileage := last.Mileage
		r.LastServiceDate = &lastDate
		r.LastServiceMileage = &lastMileage

		if entry.Interval.KM != nil {
			r.DueInKM = intPtr(lastMileage + *entry.Interval.KM - vehicle.CurrentMileage)
		}
		if entry.Interval.Days != nil {
			r.DueInDays = intPtr(*entry.Interval.Days - wholeDays(today.Sub(lastDate)))
		}
	}

	r.Status = e.classify(r.DueInKM, r.DueInDays)
	return r
}

// classify combines the available bounds worst-case first:
// overdue beats due_soon beats ok. Warning windows are inclusive.
func (e *Engine) classify(dueInKM, dueInDays *int) domain.ReminderStatus {
	if (dueInKM != nil && *dueInKM <= 0) || (dueInDays != nil && *dueInDays <= 0) {
		return domain.StatusOverdue
	}
	if (dueInKM != nil && *dueInKM <= e.warnKM) || (dueInDays != nil && *dueInDays <= e.warnDays) {
		return domain.StatusDueSoon
	}
	return domain.StatusOK
}

func wholeDays(d time.Duration) int {
	return int(d.Hours() / 24)
}
