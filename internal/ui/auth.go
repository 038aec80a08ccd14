package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"task-manager/internal/errors"
	"task-manager/internal/services"
)

type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
	fieldConfirm
	authFieldCount
)

var authLabels = [authFieldCount]string{"Name", "Email", "Password", "Confirm"}

// authForm is the login/register form
type authForm struct {
	mode         authMode
	inputs       [authFieldCount]textinput.Model
	focus        int
	showPassword bool
	err          string
	info         string
}

func newAuthForm() authForm {
	f := authForm{focus: fieldEmail}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		f.inputs[i] = ti
	}
	f.inputs[fieldName].Placeholder = "Your name"
	f.inputs[fieldEmail].Placeholder = "you@example.com"
	f.inputs[fieldPassword].Placeholder = "at least 6 characters"
	f.inputs[fieldConfirm].Placeholder = "repeat password"
	f.applyEcho()
	f.inputs[f.focus].Focus()
	return f
}

// fields lists the inputs shown in the current mode, in tab order
func (f authForm) fields() []int {
	if f.mode == modeRegister {
		return []int{fieldName, fieldEmail, fieldPassword, fieldConfirm}
	}
	return []int{fieldEmail, fieldPassword}
}

func (f authForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *authForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-14)
	}
}

func (f *authForm) setFocus(field int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = field
	f.inputs[field].Focus()
}

func (f *authForm) moveFocus(delta int) {
	fields := f.fields()
	pos := 0
	for i, field := range fields {
		if field == f.focus {
			pos = i
		}
	}
	pos = (pos + delta + len(fields)) % len(fields)
	f.setFocus(fields[pos])
}

func (f *authForm) applyEcho() {
	mode := textinput.EchoPassword
	if f.showPassword {
		mode = textinput.EchoNormal
	}
	f.inputs[fieldPassword].EchoMode = mode
	f.inputs[fieldConfirm].EchoMode = mode
}

// switchMode flips between login and register, keeping the email
func (f *authForm) switchMode(mode authMode) {
	f.mode = mode
	f.err = ""
	f.info = ""
	f.inputs[fieldPassword].SetValue("")
	f.inputs[fieldConfirm].SetValue("")
	if mode == modeRegister {
		f.setFocus(fieldName)
	} else {
		f.inputs[fieldName].SetValue("")
		f.setFocus(fieldEmail)
	}
}

func (f authForm) value(field int) string {
	return f.inputs[field].Value()
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.auth
	switch msg.String() {
	case "tab", "down":
		f.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return m, nil
	case "ctrl+r":
		if f.mode == modeLogin {
			f.switchMode(modeRegister)
		} else {
			f.switchMode(modeLogin)
		}
		return m, nil
	case "ctrl+t":
		f.showPassword = !f.showPassword
		f.applyEcho()
		return m, nil
	case "enter":
		fields := f.fields()
		if f.focus != fields[len(fields)-1] {
			f.moveFocus(1)
			return m, nil
		}
		return m.submitAuth()
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	f := &m.auth
	f.err = ""
	f.info = ""

	if f.mode == modeRegister {
		err := m.api.Register(m.ctx, services.RegisterInput{
			Email:    f.value(fieldEmail),
			Name:     f.value(fieldName),
			Password: f.value(fieldPassword),
			Confirm:  f.value(fieldConfirm),
		})
		if err != nil {
			f.err = errors.GetUserMessage(err)
			if field, ok := failedField(err); ok {
				f.setFocus(field)
			}
			return m, nil
		}
		f.switchMode(modeLogin)
		f.info = "Account created. Please log in."
		return m, nil
	}

	session, err := m.api.Login(m.ctx, f.value(fieldEmail), f.value(fieldPassword))
	if err != nil {
		f.err = errors.GetUserMessage(err)
		f.inputs[fieldPassword].SetValue("")
		f.setFocus(fieldPassword)
		return m, nil
	}
	return m.openTasks(*session), nil
}

// failedField maps the field recorded on a validation error to its input
func failedField(err error) (int, bool) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return 0, false
	}
	value, _ := appErr.GetContext("field")
	name, ok := value.(string)
	if !ok {
		return 0, false
	}
	for i, label := range authLabels {
		if strings.EqualFold(label, name) {
			return i, true
		}
	}
	return 0, false
}

func (m Model) viewAuth() string {
	f := m.auth
	var b strings.Builder

	title := "Log in"
	switchHint := "ctrl+r create account"
	if f.mode == modeRegister {
		title = "Create account"
		switchHint = "ctrl+r back to log in"
	}
	b.WriteString(m.render.Status("Task Manager · " + title))
	b.WriteString("\n\n")

	for _, field := range f.fields() {
		cursor := "  "
		if field == f.focus {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(padRight(authLabels[field], 10))
		b.WriteString(f.inputs[field].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(m.render.Error(f.err))
		b.WriteString("\n")
	}
	if f.info != "" {
		b.WriteString(m.render.Status(f.info))
		b.WriteString("\n")
	}

	passwordHint := "ctrl+t show password"
	if f.showPassword {
		passwordHint = "ctrl+t hide password"
	}
	b.WriteString(strings.Join([]string{"enter submit", "tab next field", switchHint, passwordHint, "ctrl+c quit"}, " · "))
	b.WriteString("\n\nPasswords are stored in plain text on this machine.")
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
