package app

import (
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/envutil"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/platform/logger"
	"github.com/Imamabdulfatah/aiotchain-web-apps-sub000/internal/server"
)

type Config struct {
	ServiceName      string
	Environment      string
	JWTSecretKey     string
	AllowedOrigins   []string
	AssetBaseDir     string
	RenderConfigPath string
	Port             string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		ServiceName:      envutil.GetEnv("SERVICE_NAME", "aiotchain-backend", log),
		Environment:      envutil.GetEnv("APP_ENV", "development", log),
		JWTSecretKey:     envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AllowedOrigins:   server.SplitOrigins(envutil.GetEnv("CORS_ORIGINS", "", log)),
		AssetBaseDir:     envutil.GetEnv("ASSET_BASE_DIR", "./assets", log),
		RenderConfigPath: envutil.GetEnv("RENDER_CONFIG_PATH", "", log),
		Port:             envutil.GetEnv("PORT", "8080", log),
	}
}
