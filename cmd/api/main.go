package main

import (
	"context"
	"fmt"

	"tracker-api/config"
	"tracker-api/config/minio"
	"tracker-api/config/postgre"
	"tracker-api/config/redis"
	"tracker-api/internal/attachment"
	"tracker-api/internal/httpserver"
	"tracker-api/internal/reading"
	"tracker-api/pkg/auth"
	"tracker-api/pkg/discord"
	"tracker-api/pkg/encrypter"
	"tracker-api/pkg/log"
	"tracker-api/pkg/scope"
)

// @title       Tracker API
// @description Projects, attachments, notes, vacations and IoT temperature readings.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	enc, err := encrypter.New(cfg.Encrypter.Key)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize encrypter: %v", err)
		return
	}
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.TTL)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize JWT manager: %v", err)
		return
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		return
	}
	defer postgre.Disconnect()
	logger.Infof(ctx, "PostgreSQL connected to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redis.Disconnect()
	logger.Infof(ctx, "Redis connected to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	minioClient, err := minio.ConnectWithRetry(ctx, cfg.MinIO, 0)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to MinIO: %v", err)
		return
	}
	defer minio.Disconnect()
	logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)

	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Discord: %v", err)
			return
		}
		defer discordClient.Close()
	}

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:           cfg.HTTPServer.Host,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,

		PostgresDB: postgresDB,
		Redis:      redisClient,
		MinIO:      minioClient,

		JWTManager: jwtManager,
		Encrypter:  enc,
		Cookie:     cfg.Cookie,

		Attachment: attachment.Config{
			Bucket:        cfg.MinIO.Bucket,
			PresignExpiry: cfg.MinIO.PresignExpiry,
			MaxUploadSize: cfg.MinIO.MaxUploadSize,
		},
		Reading: reading.Config{
			DeviceKey: cfg.Reading.DeviceKey,
			TicketTTL: cfg.Reading.TicketTTL,
		},
		StreamBuffer: cfg.Reading.StreamBuffer,
		StreamLimits: auth.DefaultRateLimitConfig(),

		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
	}
}
