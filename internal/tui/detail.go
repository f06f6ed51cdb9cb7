package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// DetailModel shows one record with its colour swatch and offers edit,
// delete (after confirmation) and copying the image URL.
type DetailModel struct {
	ctx  context.Context
	cats service.ClientCatService
	id   int64

	detail   models.CatDetail
	loaded   bool
	loading  bool
	deleting bool
	spinner  spinner.Model

	showConfirm bool
	errMsg      string
	loadErr     string
	status      string
}

func NewDetailModel(ctx context.Context, cats service.ClientCatService, id int64) *DetailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DetailModel{
		ctx:     ctx,
		cats:    cats,
		id:      id,
		loading: true,
		spinner: s,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.loadErr = service.Message(msg.err)
			return m, nil
		}
		m.detail = msg.detail
		m.loaded = true
		return m, nil
	case catDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			m.showErrorf(service.Message(msg.err))
			return m, nil
		}
		return m, navigate(NavigateTo{Page: PageCatalog, Notice: "Кот «" + m.detail.Cat.Name + "» удалён"})
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.status = "Ссылка на изображение скопирована"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading && !m.deleting {
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

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.errMsg != "" {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}
	if m.showConfirm {
		switch {
		case key.Matches(msg, keys.yes):
			m.showConfirm = false
			m.deleting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDelete())
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.showConfirm = false
		}
		return m, nil
	}

	if key.Matches(msg, keys.esc) {
		return m, navigate(NavigateTo{Page: PageCatalog})
	}
	if !m.loaded || m.deleting {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.edit):
		return m, navigate(NavigateTo{Page: PageEdit, ID: m.id})
	case key.Matches(msg, keys.delete):
		m.showConfirm = true
	case key.Matches(msg, keys.copy):
		if m.detail.Cat.ImageURL == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.Cat.ImageURL)
	}
	return m, nil
}

func (m *DetailModel) View() string {
	title := "КОТ #" + strconv.FormatInt(m.id, 10)

	if m.loading {
		return renderPage(title, m.spinner.View()+" Загрузка...", hints(keys.esc))
	}
	if m.loadErr != "" {
		return renderPage(title, errorStyle.Render(m.loadErr), hints(keys.esc))
	}

	cat := m.detail.Cat
	var b strings.Builder
	b.WriteString(titleStyle.Render(cat.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Цвет:          %s\n", colorSwatch(cat.Color))
	fmt.Fprintf(&b, "Год рождения:  %d\n", cat.BirthYear)
	if cat.Age > 0 {
		fmt.Fprintf(&b, "Возраст:       %d\n", cat.Age)
	}
	fmt.Fprintf(&b, "Изображение:   %s\n", valueOrDash(cat.ImageURL))

	b.WriteString("\nДостижения:\n")
	if len(cat.Achievements) == 0 {
		b.WriteString("  -\n")
	}
	for _, a := range cat.Achievements {
		b.WriteString("  • ")
		b.WriteString(a.Name)
		b.WriteString("\n")
	}

	if m.detail.Viewer != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Просматривает: " + m.detail.Viewer))
		b.WriteString("\n")
	}
	if m.deleting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Удаление...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}

	body := renderPage(title, strings.TrimRight(b.String(), "\n"), hints(keys.edit, keys.delete, keys.copy, keys.esc))
	if m.showConfirm {
		body += "\n\n" + confirmOverlay(app.MsgDeleteConfirm).View()
	}
	if m.errMsg != "" {
		body += "\n\n" + errorOverlay(m.errMsg).View()
	}
	return body
}

func (m *DetailModel) showErrorf(message string) {
	m.errMsg = message
}

func (m *DetailModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	cats := m.cats
	id := m.id
	return func() tea.Msg {
		detail, err := cats.Detail(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Int64("id", id).Msg("detail load failed")
		}
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *DetailModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	cats := m.cats
	id := m.id
	return func() tea.Msg {
		return catDeletedMsg{err: cats.Delete(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
