package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/catform"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/palette"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

// Focus order of the cat form.
const (
	fieldName = iota
	fieldColor
	fieldBirthYear
	fieldAchievement
	fieldImage
	fieldCount
)

// CatFormModel edits a cat record. With id == 0 it creates a new one;
// otherwise the record is loaded first and the form is prefilled.
type CatFormModel struct {
	ctx      context.Context
	services *service.ClientServices
	id       int64

	form    *catform.Form
	loadErr string
	spinner spinner.Model

	inputs   []textinput.Model
	focus    int
	colorIdx int
	achIdx   int
}

func NewCatFormModel(ctx context.Context, services *service.ClientServices, id int64) *CatFormModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &CatFormModel{
		ctx:      ctx,
		services: services,
		id:       id,
		spinner:  s,
		inputs:   newCatFormInputs(),
	}
	if id == 0 {
		m.bind(catform.NewCreateForm(services.Validator))
	}
	return m
}

func newCatFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[fieldName].Placeholder = "Мурзик"
	inputs[fieldName].CharLimit = 64
	inputs[fieldBirthYear].Placeholder = "2020"
	inputs[fieldBirthYear].CharLimit = 8
	inputs[fieldAchievement].Placeholder = "новое достижение, enter: добавить"
	inputs[fieldImage].Placeholder = "путь к файлу, enter: выбрать"
	inputs[fieldName].Focus()
	return inputs
}

// bind attaches a form and copies its values into the inputs.
func (m *CatFormModel) bind(form *catform.Form) {
	m.form = form
	values := form.Values()
	m.inputs[fieldName].SetValue(values.Name)
	m.inputs[fieldBirthYear].SetValue(values.BirthYear)
	m.colorIdx = paletteIndex(values.Color)
}

func (m *CatFormModel) Init() tea.Cmd {
	if m.form != nil {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *CatFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editLoadedMsg:
		if msg.err != nil {
			m.loadErr = service.Message(msg.err)
			return m, nil
		}
		m.bind(catform.NewEditForm(m.services.Validator, msg.cat))
		return m, textinput.Blink
	case catSavedMsg:
		return m.onSaved(msg)
	case imageChosenMsg:
		if msg.err == nil {
			m.inputs[fieldImage].SetValue("")
		}
		return m, nil
	case spinner.TickMsg:
		if m.form != nil && !m.form.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}
	if m.form == nil {
		if key.Matches(keyMsg, keys.esc) {
			return m, m.back()
		}
		return m, nil
	}
	return m.updateKeys(keyMsg)
}

func (m *CatFormModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, m.back()
	case key.Matches(msg, keys.save):
		return m, m.submit()
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown && m.focus != fieldAchievement:
		m.focusTo((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp && m.focus != fieldAchievement:
		m.focusTo((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	}

	switch m.focus {
	case fieldColor:
		switch msg.String() {
		case "left", "h":
			m.cycleColor(-1)
		case "right", "l", " ":
			m.cycleColor(1)
		case "enter":
			m.focusTo(fieldBirthYear)
		}
		return m, nil
	case fieldAchievement:
		return m, m.updateAchievementKeys(msg)
	case fieldImage:
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.cmdChooseImage(strings.TrimSpace(m.inputs[fieldImage].Value()))
		case key.Matches(msg, keys.remove):
			m.form.ClearImage()
			return m, nil
		}
	default:
		if key.Matches(msg, keys.enter) {
			m.focusTo(m.focus + 1)
			return m, nil
		}
	}

	return m, m.updateFocused(msg)
}

func (m *CatFormModel) updateAchievementKeys(msg tea.KeyMsg) tea.Cmd {
	entries := m.form.Achievements()
	switch {
	case key.Matches(msg, keys.enter):
		if _, added := m.form.AddAchievement(m.inputs[fieldAchievement].Value()); added {
			m.inputs[fieldAchievement].SetValue("")
			m.achIdx = len(entries)
		}
		return nil
	case key.Matches(msg, keys.remove):
		if m.form.RemoveAchievementAt(m.achIdx) && m.achIdx >= len(entries)-1 && m.achIdx > 0 {
			m.achIdx--
		}
		return nil
	case msg.Type == tea.KeyUp:
		if m.achIdx > 0 {
			m.achIdx--
		}
		return nil
	case msg.Type == tea.KeyDown:
		if m.achIdx < len(entries)-1 {
			m.achIdx++
		}
		return nil
	}
	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused text input and pushes the new
// value into the form.
func (m *CatFormModel) updateFocused(msg tea.Msg) tea.Cmd {
	if m.focus == fieldColor {
		return nil
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.form != nil {
		if value := m.inputs[m.focus].Value(); value != before {
			switch m.focus {
			case fieldName:
				m.form.SetField(models.FieldName, value)
			case fieldBirthYear:
				m.form.SetField(models.FieldBirthYear, value)
			}
		}
	}
	return cmd
}

func (m *CatFormModel) focusTo(i int) {
	if i < 0 || i >= fieldCount {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	if i != fieldColor {
		m.inputs[i].Focus()
	}
}

func (m *CatFormModel) cycleColor(step int) {
	entries := palette.Entries()
	m.colorIdx = (m.colorIdx + step + len(entries)) % len(entries)
	m.form.SetField(models.FieldColor, entries[m.colorIdx].Hex)
}

func (m *CatFormModel) submit() tea.Cmd {
	if m.form == nil || m.form.Loading() {
		return nil
	}

	ctx := m.ctx
	form := m.form
	send := m.sendFunc()
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		cat, err := form.Submit(ctx, send)
		return catSavedMsg{cat: cat, err: err}
	})
}

func (m *CatFormModel) sendFunc() catform.SendFunc {
	cats := m.services.CatService
	if m.form.Mode() == catform.ModeEdit {
		id := m.form.ID()
		return func(ctx context.Context, payload models.CatPayload) (models.Cat, error) {
			return cats.Update(ctx, id, payload)
		}
	}
	return cats.Create
}

// onSaved opens the saved record. Failures are already on the form as field
// errors or SubmitError.
func (m *CatFormModel) onSaved(msg catSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, nil
	}
	return m, navigate(NavigateTo{Page: PageDetail, ID: msg.cat.ID})
}

func (m *CatFormModel) back() tea.Cmd {
	if m.id != 0 {
		return navigate(NavigateTo{Page: PageDetail, ID: m.id})
	}
	return navigate(NavigateTo{Page: PageCatalog})
}

func (m *CatFormModel) View() string {
	title := "НОВЫЙ КОТ"
	if m.id != 0 {
		title = fmt.Sprintf("РЕДАКТИРОВАНИЕ КОТА #%d", m.id)
	}

	if m.form == nil {
		if m.loadErr != "" {
			return renderPage(title, errorStyle.Render(m.loadErr), hints(keys.esc))
		}
		return renderPage(title, m.spinner.View()+" Загрузка...", hints(keys.esc))
	}

	errs := m.form.Errors()
	var b strings.Builder

	m.writeRow(&b, fieldName, "Имя", "["+m.inputs[fieldName].View()+"]", errs[models.FieldName])
	m.writeRow(&b, fieldColor, "Цвет", m.colorView(), errs[models.FieldColor])
	m.writeRow(&b, fieldBirthYear, "Год рождения", "["+m.inputs[fieldBirthYear].View()+"]", errs[models.FieldBirthYear])

	b.WriteString("\n")
	m.writeRow(&b, fieldAchievement, "Достижения", "["+m.inputs[fieldAchievement].View()+"]", "")
	for i, entry := range m.form.Achievements() {
		marker := "    • "
		if m.focus == fieldAchievement && i == m.achIdx {
			marker = "  > • "
		}
		b.WriteString(marker)
		b.WriteString(entry.Name)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	m.writeRow(&b, fieldImage, "Изображение", "["+m.inputs[fieldImage].View()+"]", m.form.ImageError())
	b.WriteString("    ")
	b.WriteString(helpStyle.Render(imagePreview(m.form)))
	b.WriteString("\n")

	b.WriteString("\n")
	if m.form.Loading() {
		b.WriteString(m.spinner.View())
		b.WriteString(" Сохранение...")
	} else {
		b.WriteString("[Сохранить]")
	}
	if msg := m.form.SubmitError(); msg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Ошибка: " + msg))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *CatFormModel) writeRow(b *strings.Builder, field int, label, value, errMsg string) {
	cursor := "  "
	if m.focus == field {
		cursor = "> "
	}
	b.WriteString(cursor)
	b.WriteString(padRight(label, 14))
	b.WriteString("│ ")
	b.WriteString(value)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(padRight("", 16))
		b.WriteString("│ ")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
}

func (m *CatFormModel) colorView() string {
	hex := m.form.Values().Color
	label := hex
	if name, ok := palette.HexToName(hex); ok {
		label = name
	}
	return "◀ " + swatch(colorHex(hex), label) + " ▶"
}

func (m *CatFormModel) hotKeys() string {
	bindings := []key.Binding{keys.tab, keys.save, as(keys.esc, "отмена")}
	switch m.focus {
	case fieldColor:
		bindings = append(bindings, as(keys.prevPage, "цвет"))
	case fieldAchievement:
		bindings = append(bindings, as(keys.up, "выбрать"), keys.remove)
	case fieldImage:
		bindings = append(bindings, as(keys.remove, "убрать изображение"))
	}
	return hints(bindings...)
}

func (m *CatFormModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	cats := m.services.CatService
	id := m.id
	return func() tea.Msg {
		cat, err := cats.Get(ctx, id)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Int64("id", id).Msg("edit load failed")
		}
		return editLoadedMsg{cat: cat, err: err}
	}
}

func (m *CatFormModel) cmdChooseImage(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	ctx := m.ctx
	form := m.form
	return func() tea.Msg {
		return imageChosenMsg{err: form.ChooseImagePath(ctx, path)}
	}
}

func imagePreview(form *catform.Form) string {
	if pending := form.PendingImage(); pending != nil {
		return fmt.Sprintf("выбрано: %s (%s, %d байт)", pending.FileName, pending.MIMEType, pending.Size)
	}
	if preview := form.Preview(); preview != "" {
		return "текущее: " + fitText(preview, 60)
	}
	return "нет изображения"
}

func paletteIndex(hex string) int {
	name, ok := palette.HexToName(hex)
	if !ok {
		return 0
	}
	for i, e := range palette.Entries() {
		if e.Name == name {
			return i
		}
	}
	return 0
}
