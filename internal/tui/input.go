package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pantrypal/internal/common"
	"pantrypal/internal/models"
)

// ParseQuantity reads a signed decimal integer from user input.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("quantity must be a whole number: %w", common.ErrInvalidInput)
	}
	return n, nil
}

// ParseDate reads an ISO date (YYYY-MM-DD) from user input.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", common.ErrInvalidInput)
	}
	return d, nil
}

// ParsePriority reads a shopping-list priority from user input. Matching is
// case-insensitive and empty input means Medium.
func ParsePriority(s string) (models.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return models.PriorityMedium, nil
	case "high", "h":
		return models.PriorityHigh, nil
	case "medium", "m":
		return models.PriorityMedium, nil
	case "low", "l":
		return models.PriorityLow, nil
	default:
		return "", fmt.Errorf("priority must be High, Medium or Low: %w", common.ErrInvalidInput)
	}
}
