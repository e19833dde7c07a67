package notifications

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"pantrypal/internal/common"
	"pantrypal/internal/filex"
	"pantrypal/internal/logging"
)

// FileRepository implements Repository over a line-oriented file of
// userId,message rows. Not internally synchronized; callers serialize access.
type FileRepository struct {
	path string
	log  logging.Logger
}

// NewFileRepository returns a repository writing to the file at path.
func NewFileRepository(path string, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, log: log}
}

func (r *FileRepository) Append(ctx context.Context, userID, message string) error {
	if userID == "" {
		return fmt.Errorf("user id: %w", common.ErrInvalidInput)
	}
	if err := common.CheckFieldText(userID); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	if err := common.CheckMessageText(message); err != nil {
		return fmt.Errorf("message: %w", err)
	}

	if err := filex.EnsureParent(r.path); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s,%s\n", userID, message); err != nil {
		return fmt.Errorf("append %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "notification appended", "user_id", userID)
	return nil
}

func (r *FileRepository) ListFor(ctx context.Context, userID string) ([]string, error) {
	lines, err := r.readLines()
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, line := range lines {
		// 2-limit split: the message keeps any embedded commas.
		parts := strings.SplitN(line, ",", 2)
		if len(parts) == 2 && parts[0] == userID {
			messages = append(messages, parts[1])
		}
	}
	return messages, nil
}

func (r *FileRepository) ClearFor(ctx context.Context, userID string) error {
	lines, err := r.readLines()
	if err != nil {
		return err
	}
	if lines == nil {
		return nil
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		parts := strings.SplitN(line, ",", 2)
		if len(parts) == 2 && parts[0] != userID {
			kept = append(kept, line)
		}
	}

	var sb strings.Builder
	for _, line := range kept {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(sb.String()), 0o600); err != nil {
		return fmt.Errorf("rewrite %s: %w", r.path, err)
	}

	r.log.Debug(ctx, "notifications cleared", "user_id", userID)
	return nil
}

func (r *FileRepository) readLines() ([]string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	trimmed := strings.TrimRight(string(data), "\n")
	if trimmed == "" {
		return []string{}, nil
	}
	return strings.Split(trimmed, "\n"), nil
}
