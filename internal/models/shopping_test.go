package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewShoppingListItem_Normalizes(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		priority     Priority
		wantQuantity int
		wantPriority Priority
	}{
		{"positive quantity kept", 3, PriorityHigh, 3, PriorityHigh},
		{"zero quantity becomes one", 0, PriorityLow, 1, PriorityLow},
		{"negative quantity becomes one", -5, PriorityLow, 1, PriorityLow},
		{"empty priority becomes medium", 2, "", 2, PriorityMedium},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := NewShoppingListItem("Bread", tc.quantity, tc.priority)
			assert.Equal(t, tc.wantQuantity, item.Quantity)
			assert.Equal(t, tc.wantPriority, item.Priority)
		})
	}
}

func TestShoppingListItem_EqualityIgnoresCaseQuantityPriority(t *testing.T) {
	a := NewShoppingListItem("Bread", 1, PriorityHigh)
	b := NewShoppingListItem("bReAd", 7, PriorityLow)
	c := NewShoppingListItem("Butter", 1, PriorityHigh)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestShoppingListItem_UpdateQuantity_ClampsAtZero(t *testing.T) {
	item := NewShoppingListItem("Bread", 2, "")

	item.UpdateQuantity(3)
	assert.Equal(t, 5, item.Quantity)

	item.UpdateQuantity(-100)
	assert.Equal(t, 0, item.Quantity)
}

func TestShoppingList_AddRemoveClear(t *testing.T) {
	l := NewShoppingList()
	l.Add(NewShoppingListItem("Bread", 1, ""))
	l.Add(NewShoppingListItem("bread", 2, ""))
	l.Add(NewShoppingListItem("Milk", 1, ""))

	assert.Equal(t, 3, l.Len())

	// case-insensitive removal takes out both bread entries
	assert.True(t, l.RemoveByName("BREAD"))
	items := l.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].Name)

	assert.False(t, l.RemoveByName("BREAD"))

	l.Clear()
	assert.Zero(t, l.Len())
}

func TestShoppingList_ItemsReturnsDefensiveCopy(t *testing.T) {
	l := NewShoppingList()
	l.Add(NewShoppingListItem("Bread", 1, ""))

	snapshot := l.Items()
	snapshot[0].Name = "Hijacked"

	assert.Equal(t, "Bread", l.Items()[0].Name)
}

func TestShoppingList_PreservesInsertionOrder(t *testing.T) {
	l := NewShoppingList()
	for _, name := range []string{"c", "a", "b"} {
		l.Add(NewShoppingListItem(name, 1, ""))
	}

	items := l.Items()
	assert.Equal(t, "c", items[0].Name)
	assert.Equal(t, "a", items[1].Name)
	assert.Equal(t, "b", items[2].Name)
}
