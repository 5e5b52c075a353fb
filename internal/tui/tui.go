package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-day-keeper/internal/logger"
	"github.com/MKhiriev/go-day-keeper/internal/service"
)

// TUI is the terminal interface of the DayKeeper client.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// Run drives the whole client session: the splash screen, the launch
// decision and then the journal or one of its alternatives. It returns
// ErrUserQuit when the user closed the program themselves.
func (t *TUI) Run(ctx context.Context) error {
	root := newAppModel(ctx, t.services, t.logger)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()

	// Let in-flight load cycles finish before tearing the process down.
	t.services.Resolver.Wait()

	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
