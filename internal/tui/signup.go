package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

// SignUpModel is the registration screen. A successful registration opens
// the sign-in screen with a confirmation notice; it does not sign in.
type SignUpModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       credentialsForm
	submitting bool
	errMsg     string
}

func NewSignUpModel(ctx context.Context, services *service.ClientServices) *SignUpModel {
	return &SignUpModel{
		ctx:  ctx,
		auth: services.AuthService,
		form: newCredentialsForm(services.Validator.CheckSignUp,
			credentialField{name: models.FieldEmail, label: "Email"},
			credentialField{name: models.FieldUsername, label: "Имя"},
			credentialField{name: models.FieldPassword, label: "Пароль"},
			credentialField{name: models.FieldConfirm, label: "Повтор пароля"},
		),
	}
}

func (m *SignUpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signedUpMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = service.Message(result.err)
			return m, nil
		}

		notice := "Регистрация прошла успешно"
		if result.username != "" {
			notice = "Пользователь " + result.username + " успешно зарегистрирован"
		}
		return m, navigate(NavigateTo{Page: PageSignIn, Notice: notice})
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(NavigateTo{Page: PageCatalog})
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if !m.form.lastFocused() {
				m.form.focusNext()
				return m, nil
			}
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *SignUpModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), hints(keys.esc, keys.tab, as(keys.enter, "подтвердить")))
}

func (m *SignUpModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	creds, ok := m.form.submit()
	if !ok {
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		user, err := auth.SignUp(ctx, creds)
		return signedUpMsg{username: user.Username, err: err}
	}
}
