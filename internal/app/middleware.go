package app

import (
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/middleware"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, services.Auth),
	}
}
