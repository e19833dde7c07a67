package models

import (
	"fmt"
	"strings"
)

// Priority of a shopping-list item.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ShoppingListItem is an in-memory item to purchase. Identity is the
// case-insensitive name; quantity and priority don't participate in equality.
type ShoppingListItem struct {
	Name     string
	Quantity int
	Priority Priority
}

// NewShoppingListItem normalizes its inputs: a non-positive quantity becomes
// 1 and an empty priority becomes Medium.
func NewShoppingListItem(name string, quantity int, priority Priority) ShoppingListItem {
	if quantity <= 0 {
		quantity = 1
	}
	if priority == "" {
		priority = PriorityMedium
	}
	return ShoppingListItem{Name: name, Quantity: quantity, Priority: priority}
}

// Equal reports whether other names the same item, ignoring case.
func (i ShoppingListItem) Equal(other ShoppingListItem) bool {
	return strings.EqualFold(i.Name, other.Name)
}

// Key returns the lowercased name, usable as a map key with the same
// equivalence as Equal.
func (i ShoppingListItem) Key() string {
	return strings.ToLower(i.Name)
}

// UpdateQuantity adjusts the quantity by delta, clamping at zero.
func (i *ShoppingListItem) UpdateQuantity(delta int) {
	i.Quantity += delta
	if i.Quantity < 0 {
		i.Quantity = 0
	}
}

// String renders the item for display.
func (i ShoppingListItem) String() string {
	return fmt.Sprintf("%s (Quantity: %d, Priority: %s)", i.Name, i.Quantity, i.Priority)
}

// ShoppingList is an ordered in-memory container of items to purchase. It is
// discarded at process exit and never persisted.
type ShoppingList struct {
	items []ShoppingListItem
}

// NewShoppingList returns an empty list.
func NewShoppingList() *ShoppingList {
	return &ShoppingList{}
}

// Add appends an item.
func (l *ShoppingList) Add(item ShoppingListItem) {
	l.items = append(l.items, item)
}

// RemoveByName deletes every item whose name matches, ignoring case, and
// reports whether anything was removed.
func (l *ShoppingList) RemoveByName(name string) bool {
	kept := l.items[:0]
	removed := false
	for _, item := range l.items {
		if strings.EqualFold(item.Name, name) {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}

// Items returns a defensive copy in insertion order.
func (l *ShoppingList) Items() []ShoppingListItem {
	out := make([]ShoppingListItem, len(l.items))
	copy(out, l.items)
	return out
}

// Clear drops all items.
func (l *ShoppingList) Clear() {
	l.items = nil
}

// Len returns the item count.
func (l *ShoppingList) Len() int {
	return len(l.items)
}
