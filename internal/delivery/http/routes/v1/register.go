package v1

import (
	"log"

	"talent-rank/internal/config"
	"talent-rank/internal/database"
	"talent-rank/internal/delivery/http/handler"
	"talent-rank/internal/delivery/http/middleware"
	"talent-rank/internal/domain/scoring"
	"talent-rank/internal/infrastructure/cache"
	"talent-rank/internal/pkg/jwt"
	"talent-rank/internal/repository"
	"talent-rank/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Dependencies struct {
	Cfg      config.Config
	DB       database.DB
	Cache    *cache.Redis
	Notifier usecase.StatusNotifier
	Logger   *log.Logger
}

func Register(r fiber.Router, deps Dependencies) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Cfg.JWT.AccessSecret,
		deps.Cfg.JWT.RefreshSecret,
		deps.Cfg.JWT.AccessExpiresIn,
		deps.Cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	candidateRepo := repository.NewPostgresCandidateRepository(deps.DB)
	examRepo := repository.NewPostgresExamRepository(deps.DB)
	scoreRepo := repository.NewPostgresScoreRepository(deps.DB)

	scoringUC := usecase.NewScoringUsecase(jobRepo, candidateRepo, examRepo, scoreRepo, deps.Cache, scoring.DefaultWeights(), deps.Logger)
	rankingUC := usecase.NewRankingUsecase(jobRepo, scoreRepo, deps.Cache, deps.Logger)
	workflowUC := usecase.NewWorkflowUsecase(jobRepo, scoreRepo, deps.Cache, deps.Notifier, deps.Logger)

	scoreHandler := handler.NewScoreHandler(scoringUC)
	rankingHandler := handler.NewRankingHandler(rankingUC)
	statusHandler := handler.NewStatusHandler(workflowUC)

	jobs := r.Group("/jobs", authMw.Middleware())

	rankingHandler.RegisterRoutes(jobs)
	scoreHandler.RegisterRoutes(jobs)

	// Recomputes, status mutations and sweeps require the reviewer role.
	mutating := r.Group("/jobs", authMw.Middleware(), authMw.RequireReviewer())
	scoreHandler.RegisterMutationRoutes(mutating)
	statusHandler.RegisterRoutes(mutating)
}
