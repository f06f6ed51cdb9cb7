package tui

import "strings"

// overlay is a boxed message drawn below the page: a question or an error.
type overlay struct {
	title string
	body  string
	hint  string
}

func confirmOverlay(question string) overlay {
	return overlay{body: question, hint: hints(keys.yes, keys.no)}
}

func errorOverlay(message string) overlay {
	return overlay{title: "Ошибка", body: errorStyle.Render(message), hint: hints(as(keys.enter, "закрыть"), as(keys.esc, "закрыть"))}
}

func (o overlay) View() string {
	parts := make([]string, 0, 3)
	if o.title != "" {
		parts = append(parts, titleStyle.Render(o.title))
	}
	parts = append(parts, o.body)
	if o.hint != "" {
		parts = append(parts, o.hint)
	}
	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}
