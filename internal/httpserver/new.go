package httpserver

import (
	"database/sql"
	"errors"

	"tracker-api/config"
	"tracker-api/internal/attachment"
	"tracker-api/internal/reading"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/discord"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/minio"
	pkgRedis "tracker-api/pkg/redis"
	"tracker-api/pkg/scope"

	"github.com/gin-gonic/gin"
)

// HTTPServer holds the engine and every dependency the handlers need.
// New only wires and validates; Run serves.
type HTTPServer struct {
	gin    *gin.Engine
	logger log.Logger
	host   string
	port   int

	allowedOrigins []string

	postgresDB *sql.DB
	redis      pkgRedis.IRedis
	minio      minio.MinIO

	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	cookieCfg  config.CookieConfig

	attachmentCfg attachment.Config
	readingCfg    reading.Config
	streamBuffer  int
	streamLimits  auth.RateLimitConfig
	streams       *auth.ConnectionTracker

	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	Host           string
	Port           int
	Mode           string
	AllowedOrigins []string

	PostgresDB *sql.DB
	Redis      pkgRedis.IRedis
	MinIO      minio.MinIO

	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	Cookie     config.CookieConfig

	Attachment   attachment.Config
	Reading      reading.Config
	StreamBuffer int
	StreamLimits auth.RateLimitConfig

	// Discord is optional; nil disables error reports.
	Discord discord.IDiscord
}

func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:            gin.New(),
		logger:         logger,
		host:           cfg.Host,
		port:           cfg.Port,
		allowedOrigins: cfg.AllowedOrigins,

		postgresDB: cfg.PostgresDB,
		redis:      cfg.Redis,
		minio:      cfg.MinIO,

		jwtManager: cfg.JWTManager,
		encrypter:  cfg.Encrypter,
		cookieCfg:  cfg.Cookie,

		attachmentCfg: cfg.Attachment,
		readingCfg:    cfg.Reading,
		streamBuffer:  cfg.StreamBuffer,
		streamLimits:  cfg.StreamLimits,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.logger == nil {
		return errors.New("logger is required")
	}
	if srv.port <= 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("PostgresDB is required")
	}
	if srv.redis == nil {
		return errors.New("Redis client is required")
	}
	if srv.minio == nil {
		return errors.New("MinIO client is required")
	}
	if srv.jwtManager == nil {
		return errors.New("JWTManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("Encrypter is required")
	}
	if srv.attachmentCfg.Bucket == "" {
		return errors.New("attachment bucket is required")
	}
	if srv.streamLimits.MaxConnectionsPerUser <= 0 {
		srv.streamLimits = auth.DefaultRateLimitConfig()
	}

	return nil
}
