package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/internal/validators"
	"github.com/MKhiriev/kittygram-client/models"
)

type fakeCats struct {
	mu      sync.Mutex
	page    models.CatalogPage
	cat     models.Cat
	err     error
	created []models.CatPayload
	updated map[int64]models.CatPayload
	deleted []int64
	pages   []int
}

func (f *fakeCats) ListCatalog(_ context.Context, page int) models.CatalogPage {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, page)
	out := f.page
	out.Cursor.CurrentPage = page
	return out
}

func (f *fakeCats) Get(_ context.Context, _ int64) (models.Cat, error) {
	return f.cat, f.err
}

func (f *fakeCats) Detail(_ context.Context, _ int64) (models.CatDetail, error) {
	if f.err != nil {
		return models.CatDetail{}, f.err
	}
	return models.CatDetail{Cat: f.cat, Viewer: "tom"}, nil
}

func (f *fakeCats) Create(_ context.Context, p models.CatPayload) (models.Cat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, p)
	if f.err != nil {
		return models.Cat{}, f.err
	}
	return models.Cat{ID: 42, Name: p.Name}, nil
}

func (f *fakeCats) Update(_ context.Context, id int64, p models.CatPayload) (models.Cat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = map[int64]models.CatPayload{}
	}
	f.updated[id] = p
	if f.err != nil {
		return models.Cat{}, f.err
	}
	return models.Cat{ID: id, Name: p.Name}, nil
}

func (f *fakeCats) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}

type fakeAuth struct {
	authed    bool
	signInErr error
	signedIn  []models.Credentials
	signedOut int
}

func (f *fakeAuth) SignIn(_ context.Context, c models.Credentials) error {
	f.signedIn = append(f.signedIn, c)
	if f.signInErr != nil {
		return f.signInErr
	}
	f.authed = true
	return nil
}

func (f *fakeAuth) SignUp(_ context.Context, c models.Credentials) (models.User, error) {
	return models.User{Username: c.Username}, nil
}

func (f *fakeAuth) SignOut(context.Context) error {
	f.signedOut++
	f.authed = false
	return nil
}

func (f *fakeAuth) Username(context.Context) string {
	if f.authed {
		return "tom"
	}
	return ""
}

func (f *fakeAuth) IsAuthenticated() bool { return f.authed }

func newTestServices(cats *fakeCats, auth *fakeAuth) *service.ClientServices {
	return &service.ClientServices{
		CatService:  cats,
		AuthService: auth,
		Validator: validators.NewFormValidatorWithClock(func() time.Time {
			return time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)
		}),
		Guard: session.NewGuard(auth),
	}
}

// collect runs cmd and flattens batches into the produced messages.
// Commands that sleep (tea.Tick) must not be passed here.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}
