package pantry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"pantrypal/internal/common"
	"pantrypal/internal/filex"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
)

const fieldCount = 6 // userId,itemName,quantity,unit,expirationDate,category

// FileRepository implements Repository over a line-oriented CSV-style file.
// Not internally synchronized; callers serialize access.
type FileRepository struct {
	path string
	log  logging.Logger
}

// NewFileRepository returns a repository writing to the file at path.
func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

func (r *FileRepository) Append(ctx context.Context, userID string, item models.PantryItem) error {
	if userID == "" {
		return fmt.Errorf("user id: %w", common.ErrInvalidInput)
	}
	if item.Quantity < 0 {
		return common.ErrNegativeQuantity
	}
	for name, val := range map[string]string{
		"item name": item.Name,
		"unit":      item.Unit,
		"category":  item.Category,
	} {
		if err := common.CheckFieldText(val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if item.Name == "" {
		return fmt.Errorf("item name: %w", common.ErrInvalidInput)
	}

	if err := filex.EnsureParent(r.path); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s,%s,%d,%s,%s,%s\n",
		userID, item.Name, item.Quantity, item.Unit,
		item.ExpirationDate.Format(models.DateLayout), item.Category)
	if err != nil {
		return fmt.Errorf("append %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "pantry row appended", "user_id", userID, "item", item.Name)
	return nil
}

func (r *FileRepository) RemoveFirst(ctx context.Context, userID, itemName string) (bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", r.path, err)
	}

	lines := splitLines(string(data))
	kept := make([]string, 0, len(lines))
	removed := false

	for _, line := range lines {
		parts := strings.Split(line, ",")
		if !removed && len(parts) == fieldCount && parts[0] == userID && parts[1] == itemName {
			removed = true
			continue
		}
		kept = append(kept, line)
	}

	if err := writeLines(r.path, kept); err != nil {
		return false, err
	}

	if removed {
		r.log.Debug(ctx, "pantry row removed", "user_id", userID, "item", itemName)
	}
	return removed, nil
}

func (r *FileRepository) ListFor(ctx context.Context, userID string) ([]models.PantryItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var items []models.PantryItem
	for _, line := range splitLines(string(data)) {
		item, ok := parseRow(line, userID)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// parseRow parses one line and reports whether it is a well-formed row owned
// by userID.
func parseRow(line, userID string) (models.PantryItem, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount || parts[0] != userID {
		return models.PantryItem{}, false
	}

	quantity, err := strconv.Atoi(parts[2])
	if err != nil || quantity < 0 {
		return models.PantryItem{}, false
	}

	expires, err := time.Parse(models.DateLayout, parts[4])
	if err != nil {
		return models.PantryItem{}, false
	}

	return models.PantryItem{
		Name:           parts[1],
		Quantity:       quantity,
		Unit:           parts[3],
		ExpirationDate: expires,
		Category:       parts[5],
	}, true
}

func splitLines(data string) []string {
	data = strings.TrimRight(data, "\n")
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}

func writeLines(path string, lines []string) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("rewrite %s: %w", path, err)
	}
	return nil
}
