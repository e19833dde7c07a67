// Package app wires the PantryPal stores, session and terminal UI together.
package app

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"pantrypal/internal/config"
	"pantrypal/internal/cryptox"
	"pantrypal/internal/filex"
	"pantrypal/internal/idgen"
	"pantrypal/internal/lockfile"
	"pantrypal/internal/logging"
	"pantrypal/internal/repositories/notifications"
	"pantrypal/internal/repositories/pantry"
	"pantrypal/internal/repositories/users"
	"pantrypal/internal/services"
	"pantrypal/internal/tui"
)

// App owns the process-wide resources: the data-directory lock, the log
// file and the session the UI talks to.
type App struct {
	session *services.Session
	lock    *lockfile.Lock
	logFile *os.File
	log     logging.Logger
}

// NewApp builds the application from its configuration: it resolves the
// data directory, takes the instance lock, opens the log and wires the
// stores into a Session.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	paths, err := filex.NewPaths(cfg.BaseDir)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureBase(); err != nil {
		return nil, err
	}

	lock, err := lockfile.Acquire(paths.Base())
	if err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(paths.LogFile(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		_ = lock.Release()
		return nil, fmt.Errorf("open %s: %w", paths.LogFile(), err)
	}
	log := logging.NewTextLogger(logFile, cfg.LogLevel)

	hasher := cryptox.NewHasher(cfg.UseArgon2)
	ids := idgen.NewAllocator()

	usersRepo := users.NewFileRepository(paths.Users(), hasher, ids, log)
	existing, err := usersRepo.LoadAll(ctx)
	if err != nil {
		_ = logFile.Close()
		_ = lock.Release()
		return nil, err
	}
	for _, u := range existing {
		ids.Seed(u.ID)
	}

	pantryRepo := pantry.NewFileRepository(paths.Pantry(), log)
	notificationsRepo := notifications.NewFileRepository(paths.Notifications(), log)

	session := services.New(usersRepo, pantryRepo, notificationsRepo, log)
	log.Info(ctx, "application starting", "base", paths.Base(), "users", len(existing))

	return &App{session: session, lock: lock, logFile: logFile, log: log}, nil
}

// Run drives the terminal UI until the user quits.
func (a *App) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	p := tea.NewProgram(tui.New(ctx, a.session), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Close releases the instance lock and the log file.
func (a *App) Close(ctx context.Context) {
	a.log.Info(ctx, "application stopping")
	if err := a.lock.Release(); err != nil {
		a.log.Error(ctx, "release lock", "error", err)
	}
	_ = a.logFile.Close()
}
