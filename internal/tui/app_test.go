package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kittygram-client/models"
)

func newTestRoot(t *testing.T, auth *fakeAuth, start NavigateTo) RootModel {
	t.Helper()
	services := newTestServices(&fakeCats{}, auth)
	return NewRootModel(context.Background(), services, nil, models.NewAppBuildInfo("1.0.0", "2026-10-16", "abc"), start)
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	m, cmd := r.Update(msg)
	root, ok := m.(RootModel)
	require.True(t, ok)
	return root, cmd
}

func TestRootModel_GuardRedirectsProtectedPages(t *testing.T) {
	auth := &fakeAuth{}
	r := newTestRoot(t, auth, NavigateTo{Page: PageCatalog})
	assert.Equal(t, "/", r.Route())

	r, _ = update(t, r, NavigateTo{Page: PageCreate})
	assert.Equal(t, "/signin?from=%2Fcats%2Fnew", r.Route())
	assert.Equal(t, PageSignIn, r.page)
	signIn, ok := r.current.(*SignInModel)
	require.True(t, ok)
	assert.Equal(t, "/cats/new", signIn.from)
	assert.Contains(t, r.View(), "Войдите, чтобы продолжить")
}

func TestRootModel_StartRouteIsGuarded(t *testing.T) {
	r := newTestRoot(t, &fakeAuth{}, ParseRoute("/cats/3/edit"))

	assert.Equal(t, PageSignIn, r.page)
	assert.Equal(t, "/signin?from=%2Fcats%2F3%2Fedit", r.Route())
}

func TestRootModel_SignedInResumesRequestedRoute(t *testing.T) {
	auth := &fakeAuth{}
	r := newTestRoot(t, auth, ParseRoute("/cats/new"))
	require.Equal(t, PageSignIn, r.page)

	auth.authed = true
	r, cmd := update(t, r, signedInMsg{from: "/cats/new"})

	assert.NotNil(t, cmd)
	assert.Equal(t, PageCreate, r.page)
	assert.Equal(t, "/cats/new", r.Route())
	assert.IsType(t, &CatFormModel{}, r.current)
}

func TestRootModel_SignedInNeverResumesSignIn(t *testing.T) {
	auth := &fakeAuth{authed: true}
	r := newTestRoot(t, auth, NavigateTo{Page: PageSignIn})

	r, _ = update(t, r, signedInMsg{from: "/signin?from=%2F"})

	assert.Equal(t, PageCatalog, r.page)
	assert.Equal(t, "/", r.Route())
}

func TestRootModel_AuthenticatedOpensProtectedPage(t *testing.T) {
	r := newTestRoot(t, &fakeAuth{authed: true}, NavigateTo{Page: PageCatalog})

	r, _ = update(t, r, NavigateTo{Page: PageEdit, ID: 9})

	assert.Equal(t, PageEdit, r.page)
	assert.Equal(t, "/cats/9/edit", r.Route())
}

func TestRootModel_SignOut(t *testing.T) {
	auth := &fakeAuth{authed: true}
	r := newTestRoot(t, auth, NavigateTo{Page: PageDetail, ID: 1})
	r, _ = update(t, r, usernameMsg{username: "tom"})
	assert.Contains(t, r.View(), "вы вошли как tom")

	r, cmd := update(t, r, signOutMsg{})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, signedOutMsg{}, msg)
	assert.Equal(t, 1, auth.signedOut)

	r, _ = update(t, r, msg)
	assert.Equal(t, PageCatalog, r.page)
	assert.Equal(t, "", r.username)
	catalog, ok := r.current.(*CatalogModel)
	require.True(t, ok)
	assert.Equal(t, "Вы вышли из аккаунта", catalog.status)
	assert.Contains(t, r.View(), "гость")
}

func TestRootModel_Quit(t *testing.T) {
	t.Run("q quits from the catalog", func(t *testing.T) {
		r := newTestRoot(t, &fakeAuth{}, NavigateTo{Page: PageCatalog})
		r, cmd := update(t, r, keyRunes("q"))
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.True(t, r.QuitByUser())
	})

	t.Run("q is typed into the sign-in form", func(t *testing.T) {
		r := newTestRoot(t, &fakeAuth{}, NavigateTo{Page: PageSignIn})
		r, _ = update(t, r, keyRunes("q"))
		assert.False(t, r.QuitByUser())
		assert.Equal(t, "q", r.current.(*SignInModel).form.values().Email)
	})

	t.Run("ctrl+c quits anywhere", func(t *testing.T) {
		r := newTestRoot(t, &fakeAuth{}, NavigateTo{Page: PageSignUp})
		r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.True(t, r.QuitByUser())
	})
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	r := newTestRoot(t, &fakeAuth{}, NavigateTo{Page: PageCatalog})

	r, _ = update(t, r, keyRunes("v"))
	assert.True(t, r.showBuildInfo)
	assert.Contains(t, r.View(), "1.0.0")

	r, _ = update(t, r, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, r.showBuildInfo)
}
