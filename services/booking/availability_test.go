package booking

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability_Scenario(t *testing.T) {
	services := []models.Service{{Name: "Cleaning", Slots: []string{"9am", "10am"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Date: "2024-01-01", Slot: "9am"}}

	got := ComputeAvailability(services, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"10am"}, got[0].Available)
	assert.Equal(t, []string{"9am", "10am"}, got[0].Slots, "inventory is left untouched")
}

func TestComputeAvailability_OnlyMatchingTreatment(t *testing.T) {
	services := []models.Service{
		{Name: "Cleaning", Slots: []string{"9am", "10am", "11am"}},
		{Name: "Whitening", Slots: []string{"9am", "10am"}},
	}
	bookings := []models.Booking{
		{Treatment: "Whitening", Slot: "9am"},
		{Treatment: "Cleaning", Slot: "11am"},
		{Treatment: "Braces", Slot: "10am"},
	}

	got := ComputeAvailability(services, bookings)

	require.Len(t, got, 2)
	assert.Equal(t, []string{"9am", "10am"}, got[0].Available)
	assert.Equal(t, []string{"10am"}, got[1].Available)
}

func TestComputeAvailability_FullyBookedIsEmptyNotNil(t *testing.T) {
	services := []models.Service{{Name: "X-Ray", Slots: []string{"8am"}}}
	bookings := []models.Booking{{Treatment: "X-Ray", Slot: "8am"}, {Treatment: "X-Ray", Slot: "8am"}}

	got := ComputeAvailability(services, bookings)

	require.Len(t, got, 1)
	assert.NotNil(t, got[0].Available)
	assert.Empty(t, got[0].Available)
}

func TestComputeAvailability_NoBookings(t *testing.T) {
	services := []models.Service{{Name: "Cleaning", Slots: []string{"9am", "10am"}}}

	got := ComputeAvailability(services, nil)

	assert.Equal(t, []string{"9am", "10am"}, got[0].Available)
	assert.Empty(t, ComputeAvailability(nil, nil))
}

// A slot is available iff it is in the inventory and no booking of that
// treatment uses it.
func TestComputeAvailability_Property(t *testing.T) {
	slots := []string{"08:00", "09:00", "10:00", "11:00", "12:00"}
	services := []models.Service{
		{Name: "A", Slots: slots},
		{Name: "B", Slots: slots[1:4]},
	}
	bookings := []models.Booking{
		{Treatment: "A", Slot: "09:00"},
		{Treatment: "A", Slot: "12:00"},
		{Treatment: "B", Slot: "08:00"},
		{Treatment: "B", Slot: "10:00"},
	}

	got := ComputeAvailability(services, bookings)

	for _, svc := range got {
		for _, slot := range slots {
			inInventory := contains(svc.Slots, slot)
			taken := false
			for _, b := range bookings {
				if b.Treatment == svc.Name && b.Slot == slot {
					taken = true
				}
			}
			assert.Equal(t, inInventory && !taken, contains(svc.Available, slot), "service %s slot %s", svc.Name, slot)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
