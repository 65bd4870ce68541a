package auth_logout

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/integrations/authservice"
)

type AuthServiceClient interface {
	Logout(ctx context.Context, cookieHeader string) (*authservice.LogoutResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
