package booking

import "doctorsportal/models"

// ComputeAvailability annotates every service with the slots not taken by a
// booking for that treatment. bookings must all belong to the same date.
// Slot order follows the service inventory.
func ComputeAvailability(services []models.Service, bookings []models.Booking) []models.AvailableService {
	out := make([]models.AvailableService, 0, len(services))
	for _, svc := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == svc.Name {
				booked[b.Slot] = struct{}{}
			}
		}

		available := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}
		out = append(out, models.AvailableService{Service: svc, Available: available})
	}
	return out
}
