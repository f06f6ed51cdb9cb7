package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds every binding the pages react to. The help text doubles as
// the footer hint, so pages list bindings instead of writing hint strings.
type keyMap struct {
	interrupt key.Binding
	quit      key.Binding

	up       key.Binding
	down     key.Binding
	prevPage key.Binding
	nextPage key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding

	reload  key.Binding
	newItem key.Binding
	edit    key.Binding
	delete  key.Binding
	copy    key.Binding
	save    key.Binding
	remove  key.Binding
	version key.Binding

	signIn  key.Binding
	signUp  key.Binding
	signOut key.Binding

	yes key.Binding
	no  key.Binding
}

var keys = keyMap{
	interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "выход")),
	quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "выход")),

	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "навигация")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "вниз")),
	prevPage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "страницы")),
	nextPage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "след. страница")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "открыть")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "назад")),
	tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "след. поле")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "пред. поле")),

	reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "обновить")),
	newItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "добавить")),
	edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "редактировать")),
	delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "удалить")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "копировать ссылку")),
	save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "сохранить")),
	remove:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "удалить")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "версия")),

	signIn:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "войти")),
	signUp:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "регистрация")),
	signOut: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "выйти")),

	yes: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "да")),
	no:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "нет")),
}

// as returns a copy of b with its help description replaced.
func as(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

var hintView = func() help.Model {
	h := help.New()
	h.ShortSeparator = " │ "
	return h
}()

// hints renders bindings as a one-line footer.
func hints(bindings ...key.Binding) string {
	return hintView.ShortHelpView(bindings)
}
