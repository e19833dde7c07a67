package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F8700")).
			Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(lipgloss.Color("205"))

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(lipgloss.Color("246"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("111"))
)

// View renders the current screen.
func (m Model) View() string {
	var b strings.Builder

	switch m.scr {
	case screenLogin:
		b.WriteString(m.viewCredentials("PantryPal — Login",
			"enter: submit · tab: next field · ctrl+r: register · esc: quit"))
	case screenRegister:
		b.WriteString(m.viewCredentials("PantryPal — Register",
			"enter: submit · tab: next field · esc: back to login"))
	case screenHome:
		b.WriteString(m.viewHome())
	case screenPantry:
		b.WriteString(m.viewPantry())
	case screenShopping:
		b.WriteString(m.viewShopping())
	case screenNotifications:
		b.WriteString(m.viewNotifications())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errStyle.Render("✗ "+m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render("✓ "+m.status) + "\n")
	}

	return b.String()
}

func (m Model) viewCredentials(title, help string) string {
	form := fmt.Sprintf("%s\n%s\n\n%s\n%s",
		labelStyle.Render("Username:"), m.creds[0].View(),
		labelStyle.Render("Password:"), m.creds[1].View())

	return titleStyle.Render(title) + "\n\n" +
		boxStyle.Render(form) + "\n" +
		helpStyle.Render(help) + "\n"
}

func (m Model) viewHome() string {
	var items strings.Builder
	for i, entry := range homeMenu {
		if i == m.menuIdx {
			items.WriteString(selectedItemStyle.Render("▸ "+entry) + "\n")
		} else {
			items.WriteString(unselectedItemStyle.Render(entry) + "\n")
		}
	}

	user := ""
	if u := m.session.CurrentUser(); u != nil {
		user = " — " + u.Username
	}

	return titleStyle.Render("PantryPal — Home"+user) + "\n\n" +
		items.String() + "\n" +
		helpStyle.Render("↑/↓: move · enter: open · q: quit") + "\n"
}

func (m Model) viewPantry() string {
	if m.pantryAdding {
		return m.viewForm("PantryPal — Add Pantry Item", m.pantryForm,
			[]string{"Item name:", "Quantity:", "Unit:", "Expiration date:", "Category:"})
	}

	body := m.pantryTable.View()
	if len(m.pantryItems) == 0 {
		body = helpStyle.Render("The pantry is empty.")
	}

	return titleStyle.Render("PantryPal — Pantry") + "\n\n" +
		body + "\n\n" +
		helpStyle.Render("a: add · d: remove · e: check expirations · ↑/↓: move · esc: home") + "\n"
}

func (m Model) viewShopping() string {
	if m.shopAdding {
		return m.viewForm("PantryPal — Add Shopping Item", m.shopForm,
			[]string{"Item name:", "Quantity:", "Priority:"})
	}

	body := m.shopTable.View()
	if len(m.shopTable.Rows()) == 0 {
		body = helpStyle.Render("The shopping list is empty.")
	}

	return titleStyle.Render("PantryPal — Shopping List") + "\n\n" +
		body + "\n\n" +
		helpStyle.Render("a: add · d: remove (all name matches) · c: clear · esc: home") + "\n"
}

func (m Model) viewNotifications() string {
	var body string
	if len(m.notes) == 0 {
		body = helpStyle.Render("No notifications.")
	} else {
		var lines strings.Builder
		for _, note := range m.notes {
			lines.WriteString("• " + note + "\n")
		}
		body = lines.String()
	}

	return titleStyle.Render("PantryPal — Notifications") + "\n\n" +
		body + "\n" +
		helpStyle.Render("c: clear · esc: home") + "\n"
}

func (m Model) viewForm(title string, form []textinput.Model, labels []string) string {
	var fields strings.Builder
	for i := range form {
		fields.WriteString(labelStyle.Render(labels[i]) + "\n" + form[i].View() + "\n")
		if i < len(form)-1 {
			fields.WriteString("\n")
		}
	}

	return titleStyle.Render(title) + "\n\n" +
		boxStyle.Render(fields.String()) + "\n" +
		helpStyle.Render("enter: next/submit · tab: next field · esc: cancel") + "\n"
}
