// Package services holds the application object sitting between the UI and
// the file-backed stores.
package services

import (
	"context"
	"fmt"

	"pantrypal/internal/common"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
	"pantrypal/internal/repositories/notifications"
	"pantrypal/internal/repositories/pantry"
	"pantrypal/internal/repositories/users"
)

// Session holds the currently authenticated user and the transient
// in-memory shopping list, and routes every domain operation to the stores.
//
// One Session exists per process. It is not internally synchronized; the UI
// serializes all calls (the stores take no locks either).
type Session struct {
	users         users.Repository
	pantry        pantry.Repository
	notifications notifications.Repository
	log           logging.Logger

	current *models.User
	list    *models.ShoppingList
}

// New wires a Session over its three stores.
func New(u users.Repository, p pantry.Repository, n notifications.Repository, log logging.Logger) *Session {
	return &Session{
		users:         u,
		pantry:        p,
		notifications: n,
		log:           log,
		list:          models.NewShoppingList(),
	}
}

// Register creates and persists a new user. Registration is permitted in
// any authentication state and does not change the current user.
func (s *Session) Register(ctx context.Context, username, password string) (*models.User, error) {
	return s.users.Create(ctx, username, password)
}

// Login authenticates and records the current user.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	s.current = u
	s.log.Info(ctx, "user logged in", "username", u.Username)
	return u, nil
}

// Logout clears the current user and discards the in-memory shopping list.
// Safe to call when not authenticated.
func (s *Session) Logout() {
	s.current = nil
	s.list.Clear()
}

// CurrentUser returns the authenticated user, or nil.
func (s *Session) CurrentUser() *models.User {
	return s.current
}

func (s *Session) requireUser() (*models.User, error) {
	if s.current == nil {
		return nil, common.ErrNotAuthenticated
	}
	return s.current, nil
}

// AddPantryItem appends an item to the current user's pantry.
func (s *Session) AddPantryItem(ctx context.Context, item models.PantryItem) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return s.pantry.Append(ctx, u.ID, item)
}

// RemovePantryItem removes the first pantry row matching the item name,
// reporting whether one was removed.
func (s *Session) RemovePantryItem(ctx context.Context, itemName string) (bool, error) {
	u, err := s.requireUser()
	if err != nil {
		return false, err
	}
	return s.pantry.RemoveFirst(ctx, u.ID, itemName)
}

// PantryItems returns the current user's pantry in file order.
func (s *Session) PantryItems(ctx context.Context) ([]models.PantryItem, error) {
	u, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	return s.pantry.ListFor(ctx, u.ID)
}

// CheckExpirations scans the pantry and appends one notification per expired
// item. The expired items are returned for display.
func (s *Session) CheckExpirations(ctx context.Context) ([]models.PantryItem, error) {
	items, err := s.PantryItems(ctx)
	if err != nil {
		return nil, err
	}

	var expired []models.PantryItem
	for _, item := range items {
		if !item.IsExpired() {
			continue
		}
		expired = append(expired, item)
		msg := fmt.Sprintf("%s expired on %s", item.Name, item.ExpirationDate.Format(models.DateLayout))
		if err := s.AddNotification(ctx, msg); err != nil {
			return nil, err
		}
	}
	return expired, nil
}

// AddShoppingItem appends to the in-memory shopping list.
func (s *Session) AddShoppingItem(item models.ShoppingListItem) error {
	if _, err := s.requireUser(); err != nil {
		return err
	}
	s.list.Add(item)
	return nil
}

// RemoveShoppingItem removes every list entry matching name, ignoring case.
func (s *Session) RemoveShoppingItem(name string) (bool, error) {
	if _, err := s.requireUser(); err != nil {
		return false, err
	}
	return s.list.RemoveByName(name), nil
}

// ShoppingItems returns a snapshot of the in-memory list.
func (s *Session) ShoppingItems() ([]models.ShoppingListItem, error) {
	if _, err := s.requireUser(); err != nil {
		return nil, err
	}
	return s.list.Items(), nil
}

// ClearShoppingList empties the in-memory list.
func (s *Session) ClearShoppingList() error {
	if _, err := s.requireUser(); err != nil {
		return err
	}
	s.list.Clear()
	return nil
}

// AddNotification persists a message for the current user. The persisted
// store is authoritative; there is no in-memory mirror.
func (s *Session) AddNotification(ctx context.Context, message string) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return s.notifications.Append(ctx, u.ID, message)
}

// Notifications returns the current user's messages in file order.
func (s *Session) Notifications(ctx context.Context) ([]string, error) {
	u, err := s.requireUser()
	if err != nil {
		return nil, err
	}
	return s.notifications.ListFor(ctx, u.ID)
}

// ClearNotifications drops the current user's persisted messages.
func (s *Session) ClearNotifications(ctx context.Context) error {
	u, err := s.requireUser()
	if err != nil {
		return err
	}
	return s.notifications.ClearFor(ctx, u.ID)
}
