package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrypal/internal/common"
	"pantrypal/internal/cryptox"
	"pantrypal/internal/idgen"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
	"pantrypal/internal/repositories/notifications"
	"pantrypal/internal/repositories/pantry"
	"pantrypal/internal/repositories/users"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	log := logging.Discard()

	u := users.NewFileRepository(filepath.Join(dir, "users.csv"), cryptox.NewHasher(false), idgen.NewAllocator(), log)
	p := pantry.NewFileRepository(filepath.Join(dir, "pantry.csv"), log)
	n := notifications.NewFileRepository(filepath.Join(dir, "notifications.csv"), log)

	return New(u, p, n, log)
}

func login(t *testing.T, s *Session, username, password string) *models.User {
	t.Helper()
	ctx := context.Background()
	_, err := s.Register(ctx, username, password)
	require.NoError(t, err)
	u, err := s.Login(ctx, username, password)
	require.NoError(t, err)
	return u
}

func TestRegisterLoginLogout(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	created, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Nil(t, s.CurrentUser(), "registration must not authenticate")

	got, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Equal(t, created.ID, s.CurrentUser().ID)

	s.Logout()
	assert.Nil(t, s.CurrentUser())
}

func TestLogin_WrongPasswordLeavesStateUnauth(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "pw1")
	require.NoError(t, err)

	_, err = s.Login(ctx, "alice", "pw2")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Nil(t, s.CurrentUser())
}

func TestRegister_PermittedWhileSignedIn(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	alice := login(t, s, "alice", "pw1")

	_, err := s.Register(ctx, "bob", "pw2")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, s.CurrentUser().ID, "current user unchanged")
}

func TestUnauthenticatedOperationsFail(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	item := models.PantryItem{Name: "Milk", Quantity: 1, Unit: "L",
		ExpirationDate: time.Now().AddDate(1, 0, 0), Category: "Dairy"}

	assert.ErrorIs(t, s.AddPantryItem(ctx, item), common.ErrNotAuthenticated)
	_, err := s.RemovePantryItem(ctx, "Milk")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	_, err = s.PantryItems(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.ErrorIs(t, s.AddShoppingItem(models.NewShoppingListItem("Bread", 1, "")), common.ErrNotAuthenticated)
	_, err = s.ShoppingItems()
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.ErrorIs(t, s.AddNotification(ctx, "hello"), common.ErrNotAuthenticated)
	_, err = s.Notifications(ctx)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
	assert.ErrorIs(t, s.ClearNotifications(ctx), common.ErrNotAuthenticated)
}

func TestPantryFlowThroughSession(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	login(t, s, "alice", "pw1")

	item := models.PantryItem{Name: "Milk", Quantity: 2, Unit: "L",
		ExpirationDate: time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC), Category: "Dairy"}
	require.NoError(t, s.AddPantryItem(ctx, item))

	items, err := s.PantryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	removed, err := s.RemovePantryItem(ctx, "Milk")
	require.NoError(t, err)
	assert.True(t, removed)

	items, err = s.PantryItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestPantryIsolationBetweenUsers(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	login(t, s, "alice", "pw1")
	require.NoError(t, s.AddPantryItem(ctx, models.PantryItem{Name: "Milk", Quantity: 1,
		Unit: "L", ExpirationDate: time.Now().AddDate(1, 0, 0), Category: "Dairy"}))
	s.Logout()

	login(t, s, "bob", "pw2")
	items, err := s.PantryItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCheckExpirations_NotifiesPerExpiredItem(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	login(t, s, "alice", "pw1")

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	require.NoError(t, s.AddPantryItem(ctx, models.PantryItem{Name: "Milk", Quantity: 1,
		Unit: "L", ExpirationDate: yesterday, Category: "Dairy"}))
	require.NoError(t, s.AddPantryItem(ctx, models.PantryItem{Name: "Bread", Quantity: 1,
		Unit: "loaf", ExpirationDate: tomorrow, Category: "Bakery"}))

	expired, err := s.CheckExpirations(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "Milk", expired[0].Name)

	notes, err := s.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "Milk expired on "+yesterday.Format(models.DateLayout))
}

func TestShoppingListLifecycle(t *testing.T) {
	s := newSession(t)
	login(t, s, "alice", "pw1")

	require.NoError(t, s.AddShoppingItem(models.NewShoppingListItem("Bread", 1, "")))
	require.NoError(t, s.AddShoppingItem(models.NewShoppingListItem("bread", 2, models.PriorityHigh)))

	removed, err := s.RemoveShoppingItem("BREAD")
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := s.ShoppingItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLogout_DiscardsShoppingList(t *testing.T) {
	s := newSession(t)
	login(t, s, "alice", "pw1")

	require.NoError(t, s.AddShoppingItem(models.NewShoppingListItem("Bread", 1, "")))
	s.Logout()

	_, err := s.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	items, err := s.ShoppingItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestNotificationsThroughSession(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	login(t, s, "alice", "pw1")

	require.NoError(t, s.AddNotification(ctx, "A"))
	require.NoError(t, s.AddNotification(ctx, "B"))

	notes, err := s.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, notes)

	require.NoError(t, s.ClearNotifications(ctx))
	notes, err = s.Notifications(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
