// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// SignInModel is the Bubble Tea model for the sign-in screen. It renders the
// email and password inputs and dispatches an async sign-in command on
// submission. On success a [signedInMsg] carrying the originally requested
// route is produced and handled by [RootModel], which resumes navigation there.
type SignInModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	from string

	form       credentialsForm
	submitting bool
	errMsg     string
	status     string
}

// NewSignInModel creates a [SignInModel]. from is the route the guard
// redirected away from; it may be empty.
func NewSignInModel(ctx context.Context, services *service.ClientServices, from string) *SignInModel {
	return &SignInModel{
		ctx:  ctx,
		auth: services.AuthService,
		from: from,
		form: newCredentialsForm(services.Validator.CheckSignIn,
			credentialField{name: models.FieldEmail, label: "Email"},
			credentialField{name: models.FieldPassword, label: "Пароль"},
		),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [signInFailedMsg] clears the submitting state and shows the error.
//   - esc goes back to the catalog.
//   - tab and shift+tab move focus.
//   - enter moves to the next input or, on the last one, submits.
//
// All other key events are forwarded to the focused input widget.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(signInFailedMsg); ok {
		m.submitting = false
		m.errMsg = service.Message(result.err)
		return m, nil
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

// View implements [tea.Model].
func (m *SignInModel) View() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.from != "" {
		b.WriteString(noticeStyle.Render("Войдите, чтобы продолжить"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), hints(keys.esc, keys.tab, as(keys.enter, "подтвердить")))
}

func (m *SignInModel) submit() tea.Cmd {
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
	from := m.from
	return func() tea.Msg {
		if err := auth.SignIn(ctx, creds); err != nil {
			return signInFailedMsg{err: err}
		}
		return signedInMsg{from: from}
	}
}
