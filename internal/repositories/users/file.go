package users

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"pantrypal/internal/common"
	"pantrypal/internal/cryptox"
	"pantrypal/internal/filex"
	"pantrypal/internal/idgen"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
)

const fieldCount = 4 // id,username,hashedPassword,salt

// FileRepository implements Repository over a line-oriented CSV-style file.
// Appending is the sole write path; rows are never rewritten or deleted.
//
// The repository is not internally synchronized; callers serialize access.
type FileRepository struct {
	path   string
	hasher *cryptox.Hasher
	ids    *idgen.Allocator
	log    logging.Logger
}

// NewFileRepository returns a repository writing to the file at path.
func NewFileRepository(path string, hasher *cryptox.Hasher, ids *idgen.Allocator, log logging.Logger) *FileRepository {
	return &FileRepository{path: path, hasher: hasher, ids: ids, log: log}
}

func (r *FileRepository) Create(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username: %w", common.ErrInvalidInput)
	}
	if err := common.CheckFieldText(username); err != nil {
		return nil, fmt.Errorf("username: %w", err)
	}

	existing, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range existing {
		if u.Username == username {
			return nil, fmt.Errorf("%q: %w", username, common.ErrDuplicateUsername)
		}
	}

	id, err := r.ids.New()
	if err != nil {
		return nil, err
	}
	salt, err := cryptox.GenerateSalt()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             id,
		Username:       username,
		HashedPassword: r.hasher.Hash(password, salt),
		Salt:           salt,
	}

	if err := r.append(user); err != nil {
		return nil, err
	}

	r.log.Info(ctx, "user created", "username", username)
	return user, nil
}

func (r *FileRepository) LoadAll(ctx context.Context) ([]models.User, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	var users []models.User
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		u, ok := parseRow(scanner.Text())
		if !ok {
			r.log.Debug(ctx, "skipping malformed user row")
			continue
		}
		users = append(users, u)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	return users, nil
}

func (r *FileRepository) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	all, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		u := &all[i]
		if u.Username != username {
			continue
		}
		ok, err := r.hasher.Verify(password, u.Salt, u.HashedPassword)
		if err != nil {
			r.log.Warn(ctx, "unverifiable user row", "err", err)
			continue
		}
		if ok {
			return u, nil
		}
	}
	return nil, common.ErrInvalidCredentials
}

func (r *FileRepository) append(u *models.User) error {
	if err := filex.EnsureParent(r.path); err != nil {
		return err
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s,%s,%s,%s\n", u.ID, u.Username, u.HashedPassword, u.Salt)
	if err != nil {
		return fmt.Errorf("append %s: %w", r.path, err)
	}
	return nil
}

// parseRow accepts a line iff it splits into exactly four non-empty fields.
func parseRow(line string) (models.User, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != fieldCount {
		return models.User{}, false
	}
	for _, p := range parts {
		if p == "" {
			return models.User{}, false
		}
	}
	return models.User{
		ID:             parts[0],
		Username:       parts[1],
		HashedPassword: parts[2],
		Salt:           parts[3],
	}, true
}
