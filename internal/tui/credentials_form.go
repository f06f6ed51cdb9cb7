package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

// credentialField is one row of the sign-in or sign-up form.
type credentialField struct {
	name  string
	label string
	input textinput.Model
}

// credentialsForm holds the inputs shared by the account screens and the
// submit-gated display of their validation errors.
type credentialsForm struct {
	fields []credentialField
	focus  int
	gate   *validators.Gate[models.Credentials]
}

func newCredentialsForm(check func(models.Credentials) validators.FieldErrors, fields ...credentialField) credentialsForm {
	for i := range fields {
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		switch fields[i].name {
		case models.FieldPassword, models.FieldConfirm:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		case models.FieldEmail:
			in.Placeholder = "you@example.com"
		}
		fields[i].input = in
	}
	if len(fields) > 0 {
		fields[0].input.Focus()
	}
	return credentialsForm{fields: fields, gate: validators.NewGate(check)}
}

func (f *credentialsForm) values() models.Credentials {
	var c models.Credentials
	for _, field := range f.fields {
		v := field.input.Value()
		switch field.name {
		case models.FieldEmail:
			c.Email = v
		case models.FieldUsername:
			c.Username = v
		case models.FieldPassword:
			c.Password = v
		case models.FieldConfirm:
			c.Confirm = v
		}
	}
	return c
}

func (f *credentialsForm) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *credentialsForm) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *credentialsForm) lastFocused() bool {
	return f.focus == len(f.fields)-1
}

// update forwards msg to the focused input and re-validates once a submit
// was attempted.
func (f *credentialsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	f.gate.Change(f.values())
	return cmd
}

// submit records a submit attempt and reports whether the values are valid.
func (f *credentialsForm) submit() (models.Credentials, bool) {
	values := f.values()
	_, ok := f.gate.Submit(values)
	return values, ok
}

func (f *credentialsForm) view() string {
	errs := f.gate.Errors()

	var b strings.Builder
	b.WriteString("Поле           │ Значение\n")
	b.WriteString("───────────────┼────────────────────────────────────\n")
	for _, field := range f.fields {
		b.WriteString(padRight(field.label, 15))
		b.WriteString("│ [")
		b.WriteString(field.input.View())
		b.WriteString("]\n")
		if msg, ok := errs[field.name]; ok {
			b.WriteString(padRight("", 15))
			b.WriteString("│ ")
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}
