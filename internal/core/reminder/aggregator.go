package reminder

import "github.com/Tileni97/vehicle-maintenance-tracker/internal/core/domain"

// LastServiceFor returns the most recent event of the given type, or
// nil when the vehicle has no history for it. The latest date wins;
// equal dates fall back to the highest mileage, then to the highest
// event id so the result is deterministic for identical input.
func LastServiceFor(serviceType domain.ServiceType, history []*domain.MaintenanceEvent) *domain.MaintenanceEvent {
	var best *domain.MaintenanceEvent
	for _, event := range history {
		if event == nil || event.Type != serviceType {
			continue
		}
		if best == nil || moreRecent(event, best) {
			best = event
		}
	}
	return best
}

func moreRecent(a, b *domain.MaintenanceEvent) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if a.Mileage != b.Mileage {
		return a.Mileage > b.Mileage
	}
	return a.ID.String() > b.ID.String()
}
