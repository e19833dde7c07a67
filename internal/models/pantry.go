package models

import (
	"fmt"
	"time"

	"pantrypal/internal/common"
)

// DateLayout is the ISO-8601 extended date form used for expiration dates,
// both on disk and in UI input.
const DateLayout = "2006-01-02"

// PantryItem is a detached pantry value; the store hands out fresh instances
// on every query.
type PantryItem struct {
	Name           string
	Quantity       int
	Unit           string
	ExpirationDate time.Time
	Category       string
}

// UpdateQuantity adjusts the quantity by delta. The quantity is left
// unchanged and common.ErrNegativeQuantity returned if the sum would drop
// below zero.
func (p *PantryItem) UpdateQuantity(delta int) error {
	if p.Quantity+delta < 0 {
		return common.ErrNegativeQuantity
	}
	p.Quantity += delta
	return nil
}

// IsExpired reports whether today's calendar date is strictly after the
// expiration date.
func (p *PantryItem) IsExpired() bool {
	return p.IsExpiredAt(time.Now())
}

// IsExpiredAt is IsExpired against an arbitrary reference instant. Only the
// calendar dates are compared.
func (p *PantryItem) IsExpiredAt(now time.Time) bool {
	ny, nm, nd := now.Date()
	ey, em, ed := p.ExpirationDate.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	expires := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return today.After(expires)
}

// String renders the item on one line for display. Not a parse target.
func (p PantryItem) String() string {
	return fmt.Sprintf("%s: %d %s, expires %s (%s)",
		p.Name, p.Quantity, p.Unit, p.ExpirationDate.Format(DateLayout), p.Category)
}
