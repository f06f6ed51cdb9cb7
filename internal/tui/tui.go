// Package tui is the interactive terminal front end of the client: a
// catalog browser with detail, edit and account screens.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/internal/service"
	"github.com/MKhiriev/kittygram-client/models"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	logger    *logger.Logger
	buildInfo models.AppBuildInfo
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are nil")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, logger: log.GetChildLogger("tui"), buildInfo: buildInfo}, nil
}

// Run shows the UI starting at route and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, route string) error {
	ctx = t.logger.WithContext(ctx)
	root := NewRootModel(ctx, t.services, t.logger, t.buildInfo, ParseRoute(route))

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.QuitByUser() {
		t.logger.Debug().Str("route", result.Route()).Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
