package client

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/safebite/safebite/internal/logger"
)

// App is the headless companion client: it establishes the identity, keeps
// the local read-model converged through live subscriptions, and shuts down
// cleanly on an interrupt signal.
type App struct {
	session *Session
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(session *Session, log *logger.Logger) *App {
	return &App{
		session: session,
		logger:  log,
	}
}

// Run starts the session and blocks until the process receives an interrupt
// or termination signal, then stops the subscriptions. Local state is kept
// so the next run resumes from the converged read-model.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := a.session.Start(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("user_id", a.session.UserID()).Msg("client session started")

	<-ctx.Done()

	a.session.Stop()
	a.logger.Info().Msg("client session stopped")

	return nil
}
