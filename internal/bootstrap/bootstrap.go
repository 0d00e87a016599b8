package bootstrap

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	assessinadapter "studyhall/internal/modules/assess/adapter/in"
	assessoutadapter "studyhall/internal/modules/assess/adapter/out"
	assessservice "studyhall/internal/modules/assess/service"
	assessusecase "studyhall/internal/modules/assess/usecase"
	authinadapter "studyhall/internal/modules/auth/adapter/in"
	authoutadapter "studyhall/internal/modules/auth/adapter/out"
	authservice "studyhall/internal/modules/auth/service"
	authusecase "studyhall/internal/modules/auth/usecase"
	chatinadapter "studyhall/internal/modules/chat/adapter/in"
	chatoutadapter "studyhall/internal/modules/chat/adapter/out"
	chatusecase "studyhall/internal/modules/chat/usecase"
	dashinadapter "studyhall/internal/modules/dashboard/adapter/in"
	dashoutadapter "studyhall/internal/modules/dashboard/adapter/out"
	dashusecase "studyhall/internal/modules/dashboard/usecase"
	notesinadapter "studyhall/internal/modules/notes/adapter/in"
	notesoutadapter "studyhall/internal/modules/notes/adapter/out"
	notesservice "studyhall/internal/modules/notes/service"
	notesusecase "studyhall/internal/modules/notes/usecase"
	summaryinadapter "studyhall/internal/modules/summary/adapter/in"
	summaryoutadapter "studyhall/internal/modules/summary/adapter/out"
	summaryusecase "studyhall/internal/modules/summary/usecase"
	"studyhall/internal/platform/clock"
	"studyhall/internal/platform/config"
	"studyhall/internal/platform/httpapi"
	"studyhall/internal/platform/id"
	"studyhall/internal/platform/logger"
	uiapp "studyhall/internal/ui/app"
)

type App struct {
	NotesCLI     notesinadapter.CLIHandler
	AssessCLI    assessinadapter.CLIHandler
	AuthCLI      authinadapter.CLIHandler
	ChatCLI      chatinadapter.CLIHandler
	SummaryCLI   summaryinadapter.CLIHandler
	DashboardCLI dashinadapter.CLIHandler

	logCloser io.Closer
}

func New(cfg config.Config) (*App, error) {
	log, closer, err := logger.Setup(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	clk := clock.SystemClock{}
	ids := id.UUID{}

	credStore := authoutadapter.NewCredentialsStore(cfg.CredentialsPath())
	api, err := httpapi.New(cfg.APIBaseURL, cfg.Timeout, credStore, ids, log)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	authUC := authusecase.NewInteractor(
		authoutadapter.NewHTTPAuth(api),
		credStore,
		authservice.NewTokenService(clk),
		log,
	)

	notesUC := notesusecase.NewInteractor(
		notesoutadapter.NewHTTPNotes(api),
		notesservice.NewPreflight(),
		log,
	)

	flashcards := assessoutadapter.NewHTTPFlashcards(api)
	quizzes := assessoutadapter.NewHTTPQuiz(api)
	assessUC := assessusecase.NewInteractor(
		assessservice.NewSessionService(clk),
		flashcards,
		flashcards,
		quizzes,
		quizzes,
		log,
	)

	chatUC := chatusecase.NewInteractor(chatoutadapter.NewHTTPChat(api), clk)
	summaryUC := summaryusecase.NewInteractor(summaryoutadapter.NewHTTPSummary(api))
	dashUC := dashusecase.NewInteractor(dashoutadapter.NewHTTPDashboard(api))

	return &App{
		NotesCLI:     notesinadapter.NewCLIHandler(notesUC),
		AssessCLI:    assessinadapter.NewCLIHandler(assessUC),
		AuthCLI:      authinadapter.NewCLIHandler(authUC),
		ChatCLI:      chatinadapter.NewCLIHandler(chatUC),
		SummaryCLI:   summaryinadapter.NewCLIHandler(summaryUC),
		DashboardCLI: dashinadapter.NewCLIHandler(dashUC),
		logCloser:    closer,
	}, nil
}

// Close flushes and closes the log file.
func (a *App) Close() error {
	if a.logCloser == nil {
		return nil
	}
	return a.logCloser.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.NotesCLI,
		app.AssessCLI,
		app.ChatCLI,
		app.SummaryCLI,
		app.DashboardCLI,
		app.AuthCLI,
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
