package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

func loadedDetail(t *testing.T, cats *fakeCats) *DetailModel {
	t.Helper()
	m := NewDetailModel(context.Background(), cats, cats.cat.ID)

	loaded, ok := findMsg[detailLoadedMsg](collect(m.cmdLoad()))
	require.True(t, ok)
	m.Update(loaded)
	require.True(t, m.loaded)
	return m
}

func testCat() models.Cat {
	return models.Cat{
		ID:           5,
		Name:         "Мурзик",
		Color:        "black",
		BirthYear:    2020,
		Age:          6,
		Achievements: []models.Achievement{{Name: "Ловец мышей"}},
		ImageURL:     "http://localhost/media/cats/5.png",
	}
}

func TestDetailModel_View(t *testing.T) {
	m := loadedDetail(t, &fakeCats{cat: testCat()})

	view := m.View()
	assert.Contains(t, view, "Мурзик")
	assert.Contains(t, view, "2020")
	assert.Contains(t, view, "Ловец мышей")
	assert.Contains(t, view, "http://localhost/media/cats/5.png")
	assert.Contains(t, view, "Просматривает: tom")
}

func TestDetailModel_LoadError(t *testing.T) {
	m := NewDetailModel(context.Background(), &fakeCats{}, 5)

	m.Update(detailLoadedMsg{err: &service.OperationError{Op: service.OpGet, Message: app.MsgNotFound}})

	assert.False(t, m.loaded)
	assert.Contains(t, m.View(), app.MsgNotFound)

	_, cmd := m.Update(keyRunes("d"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
}

func TestDetailModel_DeleteNeedsConfirmation(t *testing.T) {
	cats := &fakeCats{cat: testCat()}
	m := loadedDetail(t, cats)

	m.Update(keyRunes("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), app.MsgDeleteConfirm)

	_, cmd := m.Update(keyRunes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Empty(t, cats.deleted)

	m.Update(keyRunes("d"))
	_, cmd = m.Update(keyRunes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.deleting)

	deleted, ok := findMsg[catDeletedMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, []int64{5}, cats.deleted)

	_, cmd = m.Update(deleted)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: PageCatalog, Notice: "Кот «Мурзик» удалён"}, cmd())
}

func TestDetailModel_DeleteForbidden(t *testing.T) {
	m := loadedDetail(t, &fakeCats{cat: testCat()})
	m.deleting = true

	_, cmd := m.Update(catDeletedMsg{err: &service.OperationError{Op: service.OpDelete, Message: app.MsgForbiddenDelete}})

	assert.Nil(t, cmd)
	assert.False(t, m.deleting)
	assert.Equal(t, app.MsgForbiddenDelete, m.errMsg)
	assert.Contains(t, m.View(), "Ошибка")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.errMsg)
}

func TestDetailModel_CopyImageURL(t *testing.T) {
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })

	var copied string
	clipboardWrite = func(text string) error {
		copied = text
		return nil
	}

	m := loadedDetail(t, &fakeCats{cat: testCat()})
	_, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copiedMsg{}, msg)
	assert.Equal(t, "http://localhost/media/cats/5.png", copied)

	_, clear := m.Update(msg)
	assert.NotNil(t, clear)
	assert.Equal(t, "Ссылка на изображение скопирована", m.status)

	m.Update(clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestDetailModel_CopyFailure(t *testing.T) {
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })
	clipboardWrite = func(string) error { return errors.New("no clipboard utility") }

	m := loadedDetail(t, &fakeCats{cat: testCat()})
	_, cmd := m.Update(keyRunes("c"))
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.Contains(t, m.errMsg, "no clipboard utility")
}

func TestDetailModel_CopyWithoutImage(t *testing.T) {
	cat := testCat()
	cat.ImageURL = ""
	m := loadedDetail(t, &fakeCats{cat: cat})

	_, cmd := m.Update(keyRunes("c"))
	assert.Nil(t, cmd)
}

func TestDetailModel_Navigation(t *testing.T) {
	m := loadedDetail(t, &fakeCats{cat: testCat()})

	_, cmd := m.Update(keyRunes("e"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: PageEdit, ID: 5}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: PageCatalog}, cmd())
}
