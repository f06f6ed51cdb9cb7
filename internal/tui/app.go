package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/internal/session"
	"github.com/MKhiriev/kittygram-client/models"
)

// RootModel is a TUI router:
// 1) keeps the active page and its route
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages, consulting the guard for protected pages
// 4) owns the session flows (sign-in resume, sign-out, current user name)
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx       context.Context
	services  *service.ClientServices
	logger    *logger.Logger
	buildInfo models.AppBuildInfo

	current  tea.Model
	page     Page
	route    string
	username string

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel opens start, applying the guard as any navigation would.
func NewRootModel(ctx context.Context, services *service.ClientServices, log *logger.Logger, buildInfo models.AppBuildInfo, start NavigateTo) RootModel {
	if log == nil {
		log = logger.Nop()
	}
	r := RootModel{
		ctx:       ctx,
		services:  services,
		logger:    log,
		buildInfo: buildInfo,
	}
	r.open(start)
	return r
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdLoadUsername()}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.interrupt):
			r.quitByUser = true
			return r, tea.Quit
		case r.showBuildInfo:
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(keyMsg, keys.version) && r.page == PageCatalog:
			r.showBuildInfo = true
			return r, nil
		case key.Matches(keyMsg, keys.quit) && r.page == PageCatalog:
			r.quitByUser = true
			return r, tea.Quit
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		cmd := r.open(msg)
		return r, cmd
	case signedInMsg:
		cmd := r.open(ParseRoute(session.ResumeTarget(msg.from)))
		return r, tea.Batch(cmd, r.cmdLoadUsername())
	case signOutMsg:
		return r, r.cmdSignOut()
	case signedOutMsg:
		r.username = ""
		notice := "Вы вышли из аккаунта"
		if msg.err != nil {
			r.logger.Warn().Err(msg.err).Msg("sign out")
			notice = msg.err.Error()
		}
		cmd := r.open(NavigateTo{Page: PageCatalog, Notice: notice})
		return r, cmd
	case usernameMsg:
		r.username = msg.username
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	header := helpStyle.Render("Kittygram · " + r.route + " · " + r.whoami())
	if r.current == nil {
		return appStyle.Render(header + "\n\n" + renderPage("KITTYGRAM", "", ""))
	}
	return appStyle.Render(header + "\n\n" + r.current.View())
}

// Route is the route of the active page.
func (r RootModel) Route() string {
	return r.route
}

// QuitByUser reports whether the program ended on the user's request.
func (r RootModel) QuitByUser() bool {
	return r.quitByUser
}

func (r RootModel) whoami() string {
	switch {
	case r.username != "":
		return "вы вошли как " + r.username
	case r.services.AuthService.IsAuthenticated():
		return "вы вошли"
	default:
		return "гость"
	}
}

// open switches to the page described by nav. Protected pages are replaced
// by the sign-in page carrying the requested route.
func (r *RootModel) open(nav NavigateTo) tea.Cmd {
	route := nav.Route()

	if nav.Page.protected() {
		decision := r.services.Guard.Check(route)
		if !decision.Allowed {
			r.logger.Debug().Str("route", route).Msg("guard redirect to sign in")
			nav = NavigateTo{Page: PageSignIn, From: decision.From}
			route = decision.Location()
		}
	}

	r.showBuildInfo = false
	r.page = nav.Page
	r.route = route
	r.current = r.build(nav)
	return r.current.Init()
}

func (r *RootModel) build(nav NavigateTo) tea.Model {
	switch nav.Page {
	case PageDetail:
		return NewDetailModel(r.ctx, r.services.CatService, nav.ID)
	case PageCreate:
		return NewCatFormModel(r.ctx, r.services, 0)
	case PageEdit:
		return NewCatFormModel(r.ctx, r.services, nav.ID)
	case PageSignIn:
		m := NewSignInModel(r.ctx, r.services, nav.From)
		m.status = nav.Notice
		return m
	case PageSignUp:
		return NewSignUpModel(r.ctx, r.services)
	default:
		m := NewCatalogModel(r.ctx, r.services.CatService, nav.CatalogPage)
		m.status = nav.Notice
		m.authenticated = r.services.AuthService.IsAuthenticated
		return m
	}
}

func (r RootModel) cmdLoadUsername() tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService
	return func() tea.Msg {
		if !auth.IsAuthenticated() {
			return usernameMsg{}
		}
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return usernameMsg{username: auth.Username(ctx)}
	}
}

func (r RootModel) cmdSignOut() tea.Cmd {
	ctx := r.ctx
	auth := r.services.AuthService
	return func() tea.Msg {
		return signedOutMsg{err: auth.SignOut(ctx)}
	}
}
