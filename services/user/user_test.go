package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctorsportal/database/repository"
	"doctorsportal/database/repository/memory"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCache struct {
	roles   map[string]string
	gets    int
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{roles: map[string]string{}}
}

func (c *fakeCache) Get(_ context.Context, email string) (string, bool, error) {
	c.gets++
	if c.failGet {
		return "", false, errors.New("redis down")
	}
	role, ok := c.roles[email]
	return role, ok, nil
}

func (c *fakeCache) Set(_ context.Context, email, role string) error {
	c.roles[email] = role
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, email string) error {
	delete(c.roles, email)
	return nil
}

func newTestService(cache RoleCache) (*DefaultUserService, repository.Repositories) {
	repos := memory.NewStore().Repositories()
	return &DefaultUserService{
		Repo:   repos.Users,
		Tokens: utils.NewTokenManager("secret", time.Hour),
		Cache:  cache,
		Logger: zap.NewNop(),
	}, repos
}

func TestLogin_UpsertTwiceKeepsOneUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	first, err := svc.Login(ctx, "a@example.com", models.UserUpdate{"name": "Old"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Result.UpsertedCount)
	assert.NotEmpty(t, first.Token)

	second, err := svc.Login(ctx, "a@example.com", models.UserUpdate{"name": "New"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.Result.MatchedCount)

	users, err := svc.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "New", users[0].Name)

	claims, err := utils.NewTokenManager("secret", time.Hour).ValidateToken(second.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestIsAdmin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	ok, err := svc.IsAdmin(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "unknown user is not an admin")

	_, err = svc.Login(ctx, "a@example.com", models.UserUpdate{})
	require.NoError(t, err)
	ok, err = svc.IsAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)

	res, err := svc.MakeAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	ok, err = svc.IsAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMakeAdmin_UnknownEmailMatchesNothing(t *testing.T) {
	svc, _ := newTestService(nil)

	res, err := svc.MakeAdmin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestIsAdmin_UsesAndInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	svc, _ := newTestService(cache)

	_, err := svc.Login(ctx, "a@example.com", models.UserUpdate{})
	require.NoError(t, err)

	ok, err := svc.IsAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, roleNone, cache.roles["a@example.com"])

	_, err = svc.MakeAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	_, cached := cache.roles["a@example.com"]
	assert.False(t, cached, "promotion invalidates the cached role")

	ok, err = svc.IsAdmin(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, models.RoleAdmin, cache.roles["a@example.com"])
}

func TestIsAdmin_CacheFailureFallsBackToDatabase(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	cache.failGet = true
	svc, repos := newTestService(cache)

	_, err := repos.Users.Upsert(ctx, "root@example.com", models.UserUpdate{})
	require.NoError(t, err)
	_, err = repos.Users.SetRole(ctx, "root@example.com", models.RoleAdmin)
	require.NoError(t, err)

	ok, err := svc.IsAdmin(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, cache.gets)
}

func TestLogin_RoleFromBody(t *testing.T) {
	ctx := context.Background()

	t.Run("stored by default", func(t *testing.T) {
		svc, _ := newTestService(nil)
		_, err := svc.Login(ctx, "a@example.com", models.UserUpdate{"role": models.RoleAdmin})
		require.NoError(t, err)

		ok, err := svc.IsAdmin(ctx, "a@example.com")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("dropped when stripping", func(t *testing.T) {
		svc, _ := newTestService(nil)
		svc.StripRole = true
		_, err := svc.Login(ctx, "a@example.com", models.UserUpdate{"role": models.RoleAdmin, "phone": "123"})
		require.NoError(t, err)

		ok, err := svc.IsAdmin(ctx, "a@example.com")
		require.NoError(t, err)
		assert.False(t, ok)

		users, err := svc.GetAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "123", users[0].Extra["phone"])
	})
}
