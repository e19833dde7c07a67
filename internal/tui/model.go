// Package tui implements the PantryPal terminal UI: login, register, home,
// pantry, shopping-list and notifications screens over one Session.
//
// Every Session call happens inside Update, so the core is never entered
// concurrently.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pantrypal/internal/models"
	"pantrypal/internal/services"
)

type screen int

const (
	screenLogin screen = iota
	screenRegister
	screenHome
	screenPantry
	screenShopping
	screenNotifications
)

var homeMenu = []string{"Pantry", "Shopping List", "Notifications", "Logout"}

// Model holds the TUI state.
type Model struct {
	ctx     context.Context
	session *services.Session

	scr    screen
	errMsg string
	status string

	width  int
	height int

	// Credentials form, shared by Login and Register.
	creds      []textinput.Model // 0: username, 1: password
	credsFocus int

	// Home menu.
	menuIdx int

	// Pantry screen.
	pantryTable  table.Model
	pantryItems  []models.PantryItem
	expiredNames map[string]bool
	pantryAdding bool
	pantryForm   []textinput.Model // name, quantity, unit, date, category
	pantryFocus  int

	// Shopping-list screen.
	shopTable  table.Model
	shopAdding bool
	shopForm   []textinput.Model // name, quantity, priority
	shopFocus  int

	// Notifications screen.
	notes []string
}

// New returns the initial model sitting on the login screen.
func New(ctx context.Context, session *services.Session) Model {
	m := Model{
		ctx:     ctx,
		session: session,
		scr:     screenLogin,
	}

	m.creds = []textinput.Model{
		newInput("Username", 0),
		newPasswordInput("Password"),
	}
	m.creds[0].Focus()

	m.pantryForm = []textinput.Model{
		newInput("Item name", 0),
		newInput("Quantity", 6),
		newInput("Unit", 0),
		newInput("Expiration date (YYYY-MM-DD)", 10),
		newInput("Category", 0),
	}
	m.shopForm = []textinput.Model{
		newInput("Item name", 0),
		newInput("Quantity", 6),
		newInput("Priority (High/Medium/Low)", 6),
	}

	m.pantryTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 20},
			{Title: "Qty", Width: 5},
			{Title: "Unit", Width: 8},
			{Title: "Expires", Width: 12},
			{Title: "Category", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	m.shopTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 20},
			{Title: "Qty", Width: 5},
			{Title: "Priority", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return m
}

// Init starts cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if limit > 0 {
		ti.CharLimit = limit
	} else {
		ti.CharLimit = 64
	}
	ti.Width = 32
	return ti
}

func newPasswordInput(placeholder string) textinput.Model {
	ti := newInput(placeholder, 0)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}
