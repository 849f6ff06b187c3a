package httpserver

import (
	"tracker-api/internal/middleware"
	"tracker-api/pkg/auth"

	attachmentHTTP "tracker-api/internal/attachment/delivery/http"
	attachmentRepo "tracker-api/internal/attachment/repository/postgre"
	attachmentUC "tracker-api/internal/attachment/usecase"
	authHTTP "tracker-api/internal/auth/delivery/http"
	authRepo "tracker-api/internal/auth/repository/redis"
	authUC "tracker-api/internal/auth/usecase"
	noteHTTP "tracker-api/internal/note/delivery/http"
	noteRepo "tracker-api/internal/note/repository/postgre"
	noteUC "tracker-api/internal/note/usecase"
	projectHTTP "tracker-api/internal/project/delivery/http"
	projectRepo "tracker-api/internal/project/repository/postgre"
	projectUC "tracker-api/internal/project/usecase"
	readingHTTP "tracker-api/internal/reading/delivery/http"
	readingRepo "tracker-api/internal/reading/repository/postgre"
	readingBroker "tracker-api/internal/reading/repository/redis"
	readingUC "tracker-api/internal/reading/usecase"
	userHTTP "tracker-api/internal/user/delivery/http"
	userRepo "tracker-api/internal/user/repository/postgre"
	userUC "tracker-api/internal/user/usecase"
	vacationHTTP "tracker-api/internal/vacation/delivery/http"
	vacationRepo "tracker-api/internal/vacation/repository/postgre"
	vacationUC "tracker-api/internal/vacation/usecase"

	// Registers the generated Swagger docs.
	_ "tracker-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api = "/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	// Repositories
	userRepository := userRepo.New(srv.logger, srv.postgresDB)
	revocations := authRepo.New(srv.logger, srv.redis)
	projectRepository := projectRepo.New(srv.logger, srv.postgresDB)
	attachmentRepository := attachmentRepo.New(srv.logger, srv.postgresDB)
	noteRepository := noteRepo.New(srv.logger, srv.postgresDB)
	vacationRepository := vacationRepo.New(srv.logger, srv.postgresDB)
	readingRepository := readingRepo.New(srv.logger, srv.postgresDB)
	readingPubSub := readingBroker.New(srv.logger, srv.redis, srv.streamBuffer)
	srv.streams = auth.NewConnectionTracker(srv.streamLimits)

	// Usecases
	userUsecase := userUC.New(srv.logger, userRepository, srv.encrypter, srv.discord)
	authUsecase := authUC.New(srv.logger, revocations, userUsecase, srv.jwtManager, srv.encrypter)
	attachmentUsecase := attachmentUC.New(srv.logger, attachmentRepository, projectRepository, srv.minio, srv.attachmentCfg)
	projectUsecase := projectUC.New(srv.logger, projectRepository, attachmentUsecase)
	noteUsecase := noteUC.New(srv.logger, noteRepository)
	vacationUsecase := vacationUC.New(srv.logger, vacationRepository)
	readingUsecase := readingUC.New(srv.logger, readingRepository, readingPubSub, srv.encrypter, srv.readingCfg)

	// Middleware
	mw := middleware.New(srv.logger, srv.jwtManager, revocations, srv.encrypter, srv.cookieCfg)
	srv.gin.Use(
		middleware.Recovery(srv.logger, srv.discord),
		middleware.CORS(middleware.DefaultCORSConfig(srv.allowedOrigins)),
		mw.Locale(),
	)

	// Health checks
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := srv.gin.Group(Api)
	authHTTP.New(srv.logger, authUsecase, srv.discord, srv.cookieCfg).RegisterRoutes(api, mw)
	userHTTP.New(srv.logger, userUsecase, srv.discord).RegisterRoutes(api, mw)
	projectHTTP.New(srv.logger, projectUsecase, srv.discord).RegisterRoutes(api, mw)
	attachmentHTTP.New(srv.logger, attachmentUsecase, srv.discord).RegisterRoutes(api, mw)
	noteHTTP.New(srv.logger, noteUsecase, srv.discord).RegisterRoutes(api, mw)
	vacationHTTP.New(srv.logger, vacationUsecase, srv.discord).RegisterRoutes(api, mw)
	readingHTTP.New(srv.logger, readingUsecase, srv.discord, srv.streams, srv.allowedOrigins).
		RegisterRoutes(api, mw)

	return nil
}
