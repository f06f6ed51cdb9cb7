package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

const nameColumnWidth = 16

// CatalogModel is the paginated list of cats. A failed load never shows an
// error: the service substitutes placeholder records and a notice.
type CatalogModel struct {
	ctx  context.Context
	cats service.ClientCatService

	requested int
	page      models.CatalogPage
	idx       int
	loading   bool
	spinner   spinner.Model
	status    string

	authenticated func() bool
}

func NewCatalogModel(ctx context.Context, cats service.ClientCatService, page int) *CatalogModel {
	if page < 1 {
		page = 1
	}
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &CatalogModel{
		ctx:       ctx,
		cats:      cats,
		requested: page,
		page:      models.CatalogPage{Cursor: models.PageCursor{CurrentPage: page}},
		loading:   true,
		spinner:   s,
	}
}

func (m *CatalogModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(m.requested))
}

func (m *CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		m.page = msg.page
		m.requested = msg.page.Cursor.CurrentPage
		if m.idx >= len(m.page.Items) {
			m.idx = len(m.page.Items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *CatalogModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if cat, ok := m.selected(); ok {
			return m, navigate(NavigateTo{Page: PageDetail, ID: cat.ID})
		}
	case key.Matches(msg, keys.nextPage):
		return m, m.turn(m.page.Cursor.Next)
	case key.Matches(msg, keys.prevPage):
		return m, m.turn(m.page.Cursor.Previous)
	case key.Matches(msg, keys.reload):
		return m, m.reload(m.requested)
	case key.Matches(msg, keys.newItem):
		return m, navigate(NavigateTo{Page: PageCreate})
	case key.Matches(msg, keys.signIn):
		return m, navigate(NavigateTo{Page: PageSignIn})
	case key.Matches(msg, keys.signUp):
		return m, navigate(NavigateTo{Page: PageSignUp})
	case key.Matches(msg, keys.signOut):
		if m.isAuthenticated() {
			return m, func() tea.Msg { return signOutMsg{} }
		}
	}
	return m, nil
}

// turn moves the cursor and reloads. Pagination is inert while offline.
func (m *CatalogModel) turn(move func() bool) tea.Cmd {
	if m.page.Offline || !move() {
		return nil
	}
	m.idx = 0
	return m.reload(m.page.Cursor.CurrentPage)
}

func (m *CatalogModel) reload(page int) tea.Cmd {
	m.loading = true
	m.status = ""
	m.requested = page
	return tea.Batch(m.spinner.Tick, m.cmdLoad(page))
}

func (m *CatalogModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n\n")
	}
	if m.page.Notice != "" {
		b.WriteString(noticeStyle.Render(m.page.Notice))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Загрузка...")
	case len(m.page.Items) == 0:
		b.WriteString("Пока нет котов")
	default:
		for i, cat := range m.page.Items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(padRight(fitText(cat.Name, nameColumnWidth), nameColumnWidth))
			b.WriteString("  ")
			b.WriteString(colorSwatch(cat.Color))
			b.WriteString("  ")
			b.WriteString(strconv.Itoa(cat.BirthYear))
			if n := len(cat.Achievements); n > 0 {
				b.WriteString(helpStyle.Render(fmt.Sprintf("  ★ %d", n)))
			}
			b.WriteString("\n")
		}
		if pager := m.pagination(); pager != "" {
			b.WriteString("\n")
			b.WriteString(pager)
		}
	}

	return renderPage("ВСЕ КОТЫ", strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

// pagination is hidden offline and when there is a single page.
func (m *CatalogModel) pagination() string {
	c := m.page.Cursor
	if m.page.Offline || !c.Visible() {
		return ""
	}

	prev, next := "← назад", "вперёд →"
	if !c.HasPrevious {
		prev = disabledStyle.Render(prev)
	}
	if !c.HasNext {
		next = disabledStyle.Render(next)
	}
	return fmt.Sprintf("%s   стр. %d   %s", prev, c.CurrentPage, next)
}

func (m *CatalogModel) hotKeys() string {
	bindings := []key.Binding{keys.up, keys.enter, keys.newItem, keys.reload}
	if m.page.Cursor.Visible() && !m.page.Offline {
		bindings = append(bindings, keys.prevPage)
	}
	if m.isAuthenticated() {
		bindings = append(bindings, keys.signOut)
	} else {
		bindings = append(bindings, keys.signIn, keys.signUp)
	}
	bindings = append(bindings, keys.version, keys.quit)
	return hints(bindings...)
}

func (m *CatalogModel) selected() (models.Cat, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Items) {
		return models.Cat{}, false
	}
	return m.page.Items[m.idx], true
}

func (m *CatalogModel) isAuthenticated() bool {
	return m.authenticated != nil && m.authenticated()
}

func (m *CatalogModel) cmdLoad(page int) tea.Cmd {
	ctx := m.ctx
	cats := m.cats
	return func() tea.Msg {
		return catalogLoadedMsg{page: cats.ListCatalog(ctx, page)}
	}
}
