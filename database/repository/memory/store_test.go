package memory

import (
	"context"
	"sync"
	"testing"

	"doctorsportal/database"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpsert_SingleRecordPerEmail(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Repositories().Users

	res, err := users.Upsert(ctx, "a@example.com", models.UserUpdate{"name": "A"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.UpsertedCount)
	assert.NotNil(t, res.UpsertedID)

	res, err = users.Upsert(ctx, "a@example.com", models.UserUpdate{"name": "Alice"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 1, res.ModifiedCount)
	assert.Zero(t, res.UpsertedCount)

	all, err := users.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Alice", all[0].Name)
}

func TestUserGetByEmail_Miss(t *testing.T) {
	_, err := NewStore().Repositories().Users.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUserSetRole(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Repositories().Users

	res, err := users.SetRole(ctx, "ghost@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)

	_, err = users.Upsert(ctx, "a@example.com", models.UserUpdate{})
	require.NoError(t, err)
	res, err = users.SetRole(ctx, "a@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)

	u, err := users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	// promoting twice matches without modifying
	res, err = users.SetRole(ctx, "a@example.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.Zero(t, res.ModifiedCount)
}

func TestBookingCreate_RejectsDuplicateKey(t *testing.T) {
	ctx := context.Background()
	bookings := NewStore().Repositories().Bookings

	b := models.Booking{Patient: "p@example.com", Treatment: "Cleaning", Date: "May 1, 2022", Slot: "9am"}
	first := b
	res, err := bookings.Create(ctx, &first)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, first.ID, res.InsertedID)

	second := b
	second.Slot = "10am"
	_, err = bookings.Create(ctx, &second)
	assert.ErrorIs(t, err, database.ErrDuplicate)

	existing, err := bookings.FindExisting(ctx, "Cleaning", "May 1, 2022", "p@example.com")
	require.NoError(t, err)
	assert.Equal(t, "9am", existing.Slot)

	_, err = bookings.FindExisting(ctx, "Cleaning", "May 2, 2022", "p@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestBookingCreate_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	bookings := NewStore().Repositories().Bookings

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := models.Booking{Patient: "p@example.com", Treatment: "Cleaning", Date: "May 1, 2022", Slot: "9am"}
			if _, err := bookings.Create(ctx, &b); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	found, err := bookings.FindByPatient(ctx, "p@example.com")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestBookingFindByDate_EmptyIsNotNil(t *testing.T) {
	found, err := NewStore().Repositories().Bookings.FindByDate(context.Background(), "May 1, 2022")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestServiceGetAllNames_OmitsSlots(t *testing.T) {
	ctx := context.Background()
	services := NewStore().Repositories().Services

	_, err := services.UpsertByName(ctx, models.Service{Name: "Cleaning", Slots: []string{"9am"}})
	require.NoError(t, err)

	names, err := services.GetAllNames(ctx)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, "Cleaning", names[0].Name)
	assert.Nil(t, names[0].Slots)

	full, err := services.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"9am"}, full[0].Slots)

	// callers cannot mutate stored slots
	full[0].Slots[0] = "changed"
	again, err := services.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "9am", again[0].Slots[0])
}

func TestDoctorDeleteByEmail(t *testing.T) {
	ctx := context.Background()
	doctors := NewStore().Repositories().Doctors

	_, err := doctors.Create(ctx, &models.Doctor{Name: "Dr. Who", Email: "dr@example.com"})
	require.NoError(t, err)

	res, err := doctors.DeleteByEmail(ctx, "missing@example.com")
	require.NoError(t, err)
	assert.Zero(t, res.DeletedCount)

	res, err = doctors.DeleteByEmail(ctx, "dr@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	all, err := doctors.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUserUpsert_KeepsEveryBodyField(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Repositories().Users

	_, err := users.Upsert(ctx, "a@example.com", models.UserUpdate{
		"email": "spoofed@example.com",
		"name":  "Ann",
		"phone": "123",
	})
	require.NoError(t, err)

	u, err := users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "123", u.Extra["phone"])

	// the same body again changes nothing
	res, err := users.Upsert(ctx, "a@example.com", models.UserUpdate{"name": "Ann", "phone": "123"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.Zero(t, res.ModifiedCount)

	// a later body overwrites only the fields it carries
	_, err = users.Upsert(ctx, "a@example.com", models.UserUpdate{"phone": "456"})
	require.NoError(t, err)
	u, err = users.GetByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "456", u.Extra["phone"])

	_, err = users.GetByEmail(ctx, "spoofed@example.com")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestDoctorCreate_KeepsExtraFields(t *testing.T) {
	ctx := context.Background()
	doctors := NewStore().Repositories().Doctors

	_, err := doctors.Create(ctx, &models.Doctor{
		Name:  "Dr. Who",
		Email: "dr@example.com",
		Extra: models.Extra{"phone": "555"},
	})
	require.NoError(t, err)

	all, err := doctors.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "555", all[0].Extra["phone"])

	all[0].Extra["phone"] = "changed"
	again, err := doctors.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "555", again[0].Extra["phone"])
}
