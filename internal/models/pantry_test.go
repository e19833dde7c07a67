package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrypal/internal/common"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPantryItem_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		want    int
		wantErr bool
	}{
		{"increase", 2, 3, 5, false},
		{"decrease to zero", 2, -2, 0, false},
		{"below zero fails", 2, -3, 2, true},
		{"zero delta", 2, 0, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := PantryItem{Name: "Milk", Quantity: tc.start}
			err := item.UpdateQuantity(tc.delta)
			if tc.wantErr {
				require.ErrorIs(t, err, common.ErrNegativeQuantity)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.want, item.Quantity)
		})
	}
}

func TestPantryItem_IsExpiredAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 13, 45, 0, 0, time.Local)

	tests := []struct {
		name    string
		expires time.Time
		want    bool
	}{
		{"yesterday", date(2026, time.March, 14), true},
		{"today", date(2026, time.March, 15), false},
		{"tomorrow", date(2026, time.March, 16), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := PantryItem{Name: "Milk", ExpirationDate: tc.expires}
			assert.Equal(t, tc.want, item.IsExpiredAt(now))
		})
	}
}

func TestPantryItem_IsExpired_AgainstWallClock(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	assert.True(t, (&PantryItem{ExpirationDate: yesterday}).IsExpired())
	assert.False(t, (&PantryItem{ExpirationDate: tomorrow}).IsExpired())
	assert.False(t, (&PantryItem{ExpirationDate: time.Now()}).IsExpired())
}

func TestPantryItem_String_IncludesAllAttributes(t *testing.T) {
	item := PantryItem{
		Name:           "Milk",
		Quantity:       2,
		Unit:           "L",
		ExpirationDate: date(2030, time.January, 15),
		Category:       "Dairy",
	}

	s := item.String()
	for _, want := range []string{"Milk", "2", "L", "2030-01-15", "Dairy"} {
		assert.Contains(t, s, want)
	}
}
