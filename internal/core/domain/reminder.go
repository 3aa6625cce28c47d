package domain

import "time"

type ReminderStatus string

const (
	StatusOverdue ReminderStatus = "overdue"
	StatusDueSoon ReminderStatus = "due_soon"
	StatusOK      ReminderStatus = "ok"
)

// Reminder is the derived due/overdue state for one service type of
// one vehicle. It is recomputed on every request and never persisted.
// DueInKM and DueInDays are signed: negative means overdue by that
// amount. A nil bound means the policy has no interval of that kind.
type Reminder struct {
	ServiceType        ServiceType    `json:"service_type"`
	Status             ReminderStatus `json:"status"`
	DueInKM            *int           `json:"due_in_km"`
	DueInDays          *int           `json:"due_in_days"`
	LastServiceDate    *time.Time     `json:"last_service_date"`
	LastServiceMileage *int           `json:"last_service_mileage"`
}

// Urgency orders statuses most-urgent first for reminder sorting.
func (s ReminderStatus) Urgency() int {
	switch s {
	case StatusOverdue:
		return 0
	case StatusDueSoon:
		return 1
	default:
		return 2
	}
}
