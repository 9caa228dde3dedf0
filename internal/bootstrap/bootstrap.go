package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	analyticsservice "studybud/internal/modules/analytics/service"
	analyticsusecase "studybud/internal/modules/analytics/usecase"
	sessioninadapter "studybud/internal/modules/session/adapter/in"
	sessionoutadapter "studybud/internal/modules/session/adapter/out"
	sessionservice "studybud/internal/modules/session/service"
	sessionusecase "studybud/internal/modules/session/usecase"
	timerinadapter "studybud/internal/modules/timer/adapter/in"
	timeroutadapter "studybud/internal/modules/timer/adapter/out"
	timerservice "studybud/internal/modules/timer/service"
	timerusecase "studybud/internal/modules/timer/usecase"
	"studybud/internal/platform/clock"
	"studybud/internal/platform/config"
	"studybud/internal/platform/id"
	"studybud/internal/platform/tx"
	uiapp "studybud/internal/ui/app"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	TimerCLI   timerinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	analyticsUC := analyticsusecase.NewInteractor(analyticsservice.NewAnalyticsService(clk))

	timerStore := timeroutadapter.NewFileTimerStore(cfg.TimerPath)
	timerUC := timerusecase.NewInteractor(timerservice.NewTimerService(timerStore))

	projector, err := sessionoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk, ids),
		sessionoutadapter.NewFileStateStore(cfg.StatePath, clk),
		projector,
		sessionoutadapter.NewNoteSessionStore(cfg.NotesPath),
		analyticsUC,
		timerUC,
		tx.NoopManager{},
	)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		TimerCLI:   timerinadapter.NewCLIHandler(timerUC),
	}, nil
}

func RunTUI(dataPath string, app *App) error {
	model := uiapp.NewModel(dataPath, app.SessionCLI, app.TimerCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
