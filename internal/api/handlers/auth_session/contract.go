package auth_session

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/authservice"
)

type AuthServiceClient interface {
	CurrentSession(ctx context.Context, cookieHeader string) (*authservice.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
