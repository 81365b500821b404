package screens

import (
	"context"

	"github.com/alexisbeaulieu97/frota/internal/logger"
	"github.com/alexisbeaulieu97/frota/internal/validation"
)

// Login checks credential format only; nothing is sent to a server.
type Login struct {
	logger *logger.Logger
}

// NewLogin creates a Login controller.
func NewLogin(log *logger.Logger) *Login {
	return &Login{logger: log.With("screen", ScreenLogin.String())}
}

// Submit validates the credentials and navigates to the list on success.
func (l *Login) Submit(ctx context.Context, creds validation.Credentials) Outcome {
	if err := validation.ValidateCredentials(creds); err != nil {
		l.logger.Debug(ctx, "login rejected", "reason", validation.Message(err))
		return failure(ScreenLogin, err, "")
	}
	l.logger.Info(ctx, "login accepted")
	return Outcome{Next: ScreenList}
}
