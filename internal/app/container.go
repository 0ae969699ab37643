package app

import (
	"context"
	"log"
	"time"

	"hireboard/internal/config"
	"hireboard/internal/database"
	"hireboard/internal/database/migration"
	dbpostgres "hireboard/internal/database/postgres"
	"hireboard/internal/infrastructure/cache"
	"hireboard/internal/pkg/jwt"
	"hireboard/internal/repository"
	"hireboard/internal/usecase"
)

// Container owns every stateful dependency and the usecases built on them.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger
	JWT    jwt.Service

	Users        *repository.UserRepository
	Auth         *usecase.Auth
	Companies    *usecase.Companies
	Jobs         *usecase.Jobs
	Resumes      *usecase.Resumes
	Applications *usecase.Applications
	Saved        *usecase.Saved
	Admin        *usecase.Admin
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	resumeRepo := repository.NewResumeRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	savedRepo := repository.NewSavedRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	jobs := usecase.NewJobUsecase(jobRepo, companyRepo, redisCache, logger)
	resumes := usecase.NewResumeUsecase(resumeRepo, logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Logger: logger,
		JWT:    jwtSvc,

		Users:        userRepo,
		Auth:         usecase.NewAuthUsecase(userRepo, jwtSvc, cfg.Auth.OwnerOpenID),
		Companies:    usecase.NewCompanyUsecase(companyRepo, logger),
		Jobs:         jobs,
		Resumes:      resumes,
		Applications: usecase.NewApplicationUsecase(applicationRepo, jobRepo, resumeRepo),
		Saved:        usecase.NewSavedUsecase(savedRepo),
		Admin:        usecase.NewAdminUsecase(userRepo, jobs, resumes),
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
