package tui

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/session"
)

// Page identifies a screen of the application.
type Page int

const (
	PageCatalog Page = iota
	PageDetail
	PageCreate
	PageEdit
	PageSignIn
	PageSignUp
)

// protected pages need a signed-in user.
func (p Page) protected() bool {
	return p == PageCreate || p == PageEdit
}

// NavigateTo asks the root model to open a page.
type NavigateTo struct {
	Page Page

	// ID is the record for PageDetail and PageEdit.
	ID int64

	// CatalogPage is the 1-based catalog page for PageCatalog; zero means 1.
	CatalogPage int

	// From is the route to resume after signing in (PageSignIn only).
	From string

	// Notice is a one-off status line for the opened page.
	Notice string
}

func navigate(nav NavigateTo) tea.Cmd {
	return func() tea.Msg { return nav }
}

// Route renders nav as a path, e.g. "/cats/5/edit".
func (nav NavigateTo) Route() string {
	switch nav.Page {
	case PageDetail:
		return fmt.Sprintf("/cats/%d", nav.ID)
	case PageCreate:
		return "/cats/new"
	case PageEdit:
		return fmt.Sprintf("/cats/%d/edit", nav.ID)
	case PageSignIn:
		return session.Decision{Redirect: session.SignInRoute, From: nav.From}.Location()
	case PageSignUp:
		return "/signup"
	default:
		if nav.CatalogPage > 1 {
			return "/?page=" + strconv.Itoa(nav.CatalogPage)
		}
		return session.HomeRoute
	}
}

// ParseRoute is the inverse of Route. Unknown routes open the catalog.
func ParseRoute(route string) NavigateTo {
	path, rawQuery, _ := strings.Cut(route, "?")
	query, _ := url.ParseQuery(rawQuery)

	switch path {
	case session.SignInRoute:
		return NavigateTo{Page: PageSignIn, From: query.Get("from")}
	case "/signup":
		return NavigateTo{Page: PageSignUp}
	case "/cats/new":
		return NavigateTo{Page: PageCreate}
	}

	if rest, ok := strings.CutPrefix(path, "/cats/"); ok {
		idPart, edit := strings.CutSuffix(rest, "/edit")
		id, err := strconv.ParseInt(idPart, 10, 64)
		if err == nil && id > 0 {
			if edit {
				return NavigateTo{Page: PageEdit, ID: id}
			}
			return NavigateTo{Page: PageDetail, ID: id}
		}
	}

	nav := NavigateTo{Page: PageCatalog}
	if p, err := strconv.Atoi(query.Get("page")); err == nil && p > 1 {
		nav.CatalogPage = p
	}
	return nav
}
