package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pantrypal/internal/common"
	"pantrypal/internal/models"
)

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.scr {
		case screenLogin, screenRegister:
			return m.updateCredentials(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenPantry:
			return m.updatePantry(msg)
		case screenShopping:
			return m.updateShopping(msg)
		case screenNotifications:
			return m.updateNotifications(msg)
		}
	}

	return m, nil
}

func (m Model) updateCredentials(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.scr == screenRegister {
			return m.gotoLogin(""), nil
		}
		return m, tea.Quit

	case "ctrl+r":
		if m.scr == screenLogin {
			m.scr = screenRegister
			m.errMsg = ""
			m.status = ""
			m = m.resetCredentials("")
		}
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.credsFocus--
		} else {
			m.credsFocus++
		}
		m.credsFocus = clamp(m.credsFocus, 0, len(m.creds)-1)
		return m.focusCredentials(), textinput.Blink

	case "enter":
		if m.credsFocus < len(m.creds)-1 {
			m.credsFocus++
			return m.focusCredentials(), textinput.Blink
		}
		return m.submitCredentials()
	}

	var cmd tea.Cmd
	m.creds[m.credsFocus], cmd = m.creds[m.credsFocus].Update(msg)
	return m, cmd
}

func (m Model) submitCredentials() (tea.Model, tea.Cmd) {
	username := m.creds[0].Value()
	password := m.creds[1].Value()

	if m.scr == screenLogin {
		if _, err := m.session.Login(m.ctx, username, password); err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		m.scr = screenHome
		m.menuIdx = 0
		m.errMsg = ""
		m.status = "Welcome, " + username + "!"
		return m, nil
	}

	if _, err := m.session.Register(m.ctx, username, password); err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}
	m = m.gotoLogin(username)
	m.status = "Registration successful, please log in."
	return m, nil
}

func (m Model) gotoLogin(username string) Model {
	m.scr = screenLogin
	m.errMsg = ""
	m.status = ""
	return m.resetCredentials(username)
}

func (m Model) resetCredentials(username string) Model {
	m.creds[0].SetValue(username)
	m.creds[1].SetValue("")
	m.credsFocus = 0
	return m.focusCredentials()
}

func (m Model) focusCredentials() Model {
	for i := range m.creds {
		if i == m.credsFocus {
			m.creds[i].Focus()
		} else {
			m.creds[i].Blur()
		}
	}
	return m
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.menuIdx = clamp(m.menuIdx-1, 0, len(homeMenu)-1)
	case "down", "j":
		m.menuIdx = clamp(m.menuIdx+1, 0, len(homeMenu)-1)
	case "enter":
		switch m.menuIdx {
		case 0:
			return m.openPantry()
		case 1:
			return m.openShopping()
		case 2:
			return m.openNotifications()
		case 3:
			m.session.Logout()
			return m.gotoLogin(""), nil
		}
	}
	return m, nil
}

func (m Model) openPantry() (tea.Model, tea.Cmd) {
	m.scr = screenPantry
	m.pantryAdding = false
	m.errMsg = ""
	m.status = ""
	m.expiredNames = nil
	return m.reloadPantry(), nil
}

func (m Model) reloadPantry() Model {
	items, err := m.session.PantryItems(m.ctx)
	if err != nil {
		m.errMsg = friendlyError(err)
		return m
	}
	m.pantryItems = items

	rows := make([]table.Row, len(items))
	for i, item := range items {
		expires := item.ExpirationDate.Format(models.DateLayout)
		if m.expiredNames[item.Name] {
			expires += " !"
		}
		rows[i] = table.Row{item.Name, fmt.Sprintf("%d", item.Quantity), item.Unit, expires, item.Category}
	}
	m.pantryTable.SetRows(rows)
	return m
}

func (m Model) updatePantry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pantryAdding {
		return m.updatePantryForm(msg)
	}

	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "a":
		m.pantryAdding = true
		m.errMsg = ""
		m.pantryFocus = 0
		for i := range m.pantryForm {
			m.pantryForm[i].SetValue("")
			m.pantryForm[i].Blur()
		}
		m.pantryForm[0].Focus()
		return m, textinput.Blink

	case "d":
		row := m.pantryTable.SelectedRow()
		if row == nil {
			return m, nil
		}
		removed, err := m.session.RemovePantryItem(m.ctx, row[0])
		if err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		if removed {
			m.status = "Removed " + row[0]
		}
		return m.reloadPantry(), nil

	case "e":
		expired, err := m.session.CheckExpirations(m.ctx)
		if err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		m.expiredNames = make(map[string]bool, len(expired))
		for _, item := range expired {
			m.expiredNames[item.Name] = true
		}
		m.status = fmt.Sprintf("%d expired item(s)", len(expired))
		return m.reloadPantry(), nil
	}

	var cmd tea.Cmd
	m.pantryTable, cmd = m.pantryTable.Update(msg)
	return m, cmd
}

func (m Model) updatePantryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pantryAdding = false
		m.errMsg = ""
		return m, nil

	case "tab", "down":
		m.pantryFocus = clamp(m.pantryFocus+1, 0, len(m.pantryForm)-1)
		return m.focusForm(m.pantryForm, m.pantryFocus), textinput.Blink

	case "shift+tab", "up":
		m.pantryFocus = clamp(m.pantryFocus-1, 0, len(m.pantryForm)-1)
		return m.focusForm(m.pantryForm, m.pantryFocus), textinput.Blink

	case "enter":
		if m.pantryFocus < len(m.pantryForm)-1 {
			m.pantryFocus++
			return m.focusForm(m.pantryForm, m.pantryFocus), textinput.Blink
		}
		return m.submitPantryForm()
	}

	var cmd tea.Cmd
	m.pantryForm[m.pantryFocus], cmd = m.pantryForm[m.pantryFocus].Update(msg)
	return m, cmd
}

func (m Model) submitPantryForm() (tea.Model, tea.Cmd) {
	quantity, err := ParseQuantity(m.pantryForm[1].Value())
	if err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}
	expires, err := ParseDate(m.pantryForm[3].Value())
	if err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}

	item := models.PantryItem{
		Name:           m.pantryForm[0].Value(),
		Quantity:       quantity,
		Unit:           m.pantryForm[2].Value(),
		ExpirationDate: expires,
		Category:       m.pantryForm[4].Value(),
	}
	if err := m.session.AddPantryItem(m.ctx, item); err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}

	m.pantryAdding = false
	m.errMsg = ""
	m.status = "Added " + item.Name
	return m.reloadPantry(), nil
}

func (m Model) openShopping() (tea.Model, tea.Cmd) {
	m.scr = screenShopping
	m.shopAdding = false
	m.errMsg = ""
	m.status = ""
	return m.reloadShopping(), nil
}

func (m Model) reloadShopping() Model {
	items, err := m.session.ShoppingItems()
	if err != nil {
		m.errMsg = friendlyError(err)
		return m
	}

	rows := make([]table.Row, len(items))
	for i, item := range items {
		rows[i] = table.Row{item.Name, fmt.Sprintf("%d", item.Quantity), string(item.Priority)}
	}
	m.shopTable.SetRows(rows)
	return m
}

func (m Model) updateShopping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shopAdding {
		return m.updateShoppingForm(msg)
	}

	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "a":
		m.shopAdding = true
		m.errMsg = ""
		m.shopFocus = 0
		for i := range m.shopForm {
			m.shopForm[i].SetValue("")
			m.shopForm[i].Blur()
		}
		m.shopForm[0].Focus()
		return m, textinput.Blink

	case "d":
		row := m.shopTable.SelectedRow()
		if row == nil {
			return m, nil
		}
		if _, err := m.session.RemoveShoppingItem(row[0]); err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		return m.reloadShopping(), nil

	case "c":
		if err := m.session.ClearShoppingList(); err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		m.status = "Shopping list cleared"
		return m.reloadShopping(), nil
	}

	var cmd tea.Cmd
	m.shopTable, cmd = m.shopTable.Update(msg)
	return m, cmd
}

func (m Model) updateShoppingForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.shopAdding = false
		m.errMsg = ""
		return m, nil

	case "tab", "down":
		m.shopFocus = clamp(m.shopFocus+1, 0, len(m.shopForm)-1)
		return m.focusForm(m.shopForm, m.shopFocus), textinput.Blink

	case "shift+tab", "up":
		m.shopFocus = clamp(m.shopFocus-1, 0, len(m.shopForm)-1)
		return m.focusForm(m.shopForm, m.shopFocus), textinput.Blink

	case "enter":
		if m.shopFocus < len(m.shopForm)-1 {
			m.shopFocus++
			return m.focusForm(m.shopForm, m.shopFocus), textinput.Blink
		}
		return m.submitShoppingForm()
	}

	var cmd tea.Cmd
	m.shopForm[m.shopFocus], cmd = m.shopForm[m.shopFocus].Update(msg)
	return m, cmd
}

func (m Model) submitShoppingForm() (tea.Model, tea.Cmd) {
	name := m.shopForm[0].Value()
	if name == "" {
		m.errMsg = "item name is required"
		return m, nil
	}

	quantity := 0
	if v := m.shopForm[1].Value(); v != "" {
		var err error
		quantity, err = ParseQuantity(v)
		if err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
	}

	priority, err := ParsePriority(m.shopForm[2].Value())
	if err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}

	if err := m.session.AddShoppingItem(models.NewShoppingListItem(name, quantity, priority)); err != nil {
		m.errMsg = friendlyError(err)
		return m, nil
	}

	m.shopAdding = false
	m.errMsg = ""
	m.status = "Added " + name
	return m.reloadShopping(), nil
}

func (m Model) openNotifications() (tea.Model, tea.Cmd) {
	m.scr = screenNotifications
	m.errMsg = ""
	m.status = ""
	return m.reloadNotifications(), nil
}

func (m Model) reloadNotifications() Model {
	notes, err := m.session.Notifications(m.ctx)
	if err != nil {
		m.errMsg = friendlyError(err)
		return m
	}
	m.notes = notes
	return m
}

func (m Model) updateNotifications(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.scr = screenHome
		return m, nil

	case "c":
		if err := m.session.ClearNotifications(m.ctx); err != nil {
			m.errMsg = friendlyError(err)
			return m, nil
		}
		m.status = "Notifications cleared"
		return m.reloadNotifications(), nil
	}
	return m, nil
}

func (m Model) focusForm(form []textinput.Model, focus int) Model {
	for i := range form {
		if i == focus {
			form[i].Focus()
		} else {
			form[i].Blur()
		}
	}
	return m
}

// friendlyError turns domain errors into user-presentable text. Unexpected
// failures are shown verbatim; the log file carries the details.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		return "invalid username or password"
	case errors.Is(err, common.ErrDuplicateUsername):
		return "that username is already taken"
	case errors.Is(err, common.ErrNotAuthenticated):
		return "please log in first"
	case errors.Is(err, common.ErrNegativeQuantity):
		return "quantity cannot go below zero"
	case errors.Is(err, common.ErrInvalidFieldText):
		return "commas and line breaks are not allowed here"
	default:
		return err.Error()
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
