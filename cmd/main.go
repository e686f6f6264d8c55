package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Zooracle/config"
	"github.com/lshigami/Zooracle/database"
	_ "github.com/lshigami/Zooracle/docs" // Swagger docs
	"github.com/lshigami/Zooracle/internal/controller"
	"github.com/lshigami/Zooracle/internal/logger"
	"github.com/lshigami/Zooracle/internal/mailer"
	"github.com/lshigami/Zooracle/internal/model"
	"github.com/lshigami/Zooracle/internal/repository"
	"github.com/lshigami/Zooracle/internal/service"
	"github.com/lshigami/Zooracle/internal/storage"
	"github.com/lshigami/Zooracle/internal/tokenstore"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	verificationCodeTTL = 5 * time.Minute
	pendingUserTTL      = time.Hour
)

// @title Zooracle API
// @version 1.0
// @description Zoo catalog backend: animals, habitats, quizzes, favorites and media.
// @host localhost:8080
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewAnimalRepository,
			repository.NewPhotoRepository,
			repository.NewFavoriteRepository,
			repository.NewAnimalTypeRepository,
			repository.NewHabitatRepository,
			repository.NewQuestionTypeRepository,
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewScoreRepository,
			repository.NewResetTokenRepository,
		),

		fx.Provide(
			service.NewAuthService,
			service.NewUserService,
			func(
				userRepo repository.UserRepository,
				auth service.AuthService,
				mail mailer.Mailer,
			) service.RegistrationService {
				return service.NewRegistrationService(
					userRepo, auth, mail,
					tokenstore.New[service.PendingUser](pendingUserTTL),
					tokenstore.New[string](verificationCodeTTL),
				)
			},
			func(
				db *gorm.DB,
				userRepo repository.UserRepository,
				tokenRepo repository.ResetTokenRepository,
				auth service.AuthService,
				mail mailer.Mailer,
				cfg *config.Config,
			) service.PasswordResetService {
				return service.NewPasswordResetService(db, userRepo, tokenRepo, auth, mail, cfg.FrontendURL)
			},
			service.NewAnimalService,
			service.NewQuestionService,
			service.NewQuizService,
			service.NewGradingService,
			service.NewDeletionService,
			service.NewMediaService,
			service.NewAnimalTypeService,
			service.NewHabitatService,
			service.NewQuestionTypeService,
			mailer.NewSMTPMailer,
			storage.NewMinioStorage,
		),

		fx.Provide(
			controller.NewAuthController,
			controller.NewAnimalController,
			controller.NewLookupController,
			controller.NewQuizController,
			controller.NewQuestionController,
			controller.NewMediaController,
			controller.NewHealthController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(database.SeedLookupTables),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	animalCtrl *controller.AnimalController,
	lookupCtrl *controller.LookupController,
	quizCtrl *controller.QuizController,
	questionCtrl *controller.QuestionController,
	mediaCtrl *controller.MediaController,
	healthCtrl *controller.HealthController,
) {
	authCtrl.RegisterRoutes(router)
	animalCtrl.RegisterRoutes(router)
	lookupCtrl.RegisterRoutes(router)
	quizCtrl.RegisterRoutes(router)
	questionCtrl.RegisterRoutes(router)
	mediaCtrl.RegisterRoutes(router)
	healthCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Zooracle API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.AnimalType{},
		&model.Habitat{},
		&model.Test{},
		&model.Animal{},
		&model.AnimalPhoto{},
		&model.FavoriteAnimal{},
		&model.QuestionType{},
		&model.Question{},
		&model.AnswerOption{},
		&model.QuestionAnswer{},
		&model.TestQuestion{},
		&model.TestScore{},
		&model.PasswordResetToken{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
