package router

import (
	app "github.com/teamkudos/kudos-backend/internal/application"
	"github.com/teamkudos/kudos-backend/internal/container"
	pginfra "github.com/teamkudos/kudos-backend/internal/infrastructure/postgres"
	handlers "github.com/teamkudos/kudos-backend/internal/interface/http"
	"github.com/teamkudos/kudos-backend/internal/router/modules"
)

type moduleDeps struct {
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Card      *handlers.CardHandler
	Directory *handlers.DirectoryHandler
	Analytics *handlers.AnalyticsHandler
}

func buildDeps() moduleDeps {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(pool)
	cards := pginfra.NewCardRepository(pool)
	teams := pginfra.NewTeamRepository(pool)
	categories := pginfra.NewCategoryRepository(pool)
	analytics := pginfra.NewAnalyticsRepository(pool)

	authSvc := app.NewAuthService(users, container.GetJWT(), container.GetRevocationStore(), logger)
	userSvc := app.NewUserService(users, container.GetGCS(), cfg.GCSBucket, container.GetRedis(), logger)
	cardSvc := app.NewCardService(cards, users, teams, categories,
		container.GetES(), cfg.ESCardsIndex, container.GetRabbitPub(), logger)
	dirSvc := app.NewDirectoryService(teams, categories, logger)
	analyticsSvc := app.NewAnalyticsService(analytics)

	return moduleDeps{
		Auth:      handlers.NewAuthHandler(authSvc, logger),
		User:      handlers.NewUserHandler(userSvc, logger),
		Card:      handlers.NewCardHandler(cardSvc, logger),
		Directory: handlers.NewDirectoryHandler(dirSvc, logger),
		Analytics: handlers.NewAnalyticsHandler(analyticsSvc, logger),
	}
}

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(deps.Auth, jwt))
	r.Add(modules.NewUserModule(deps.User, jwt))
	r.Add(modules.NewCardModule(deps.Card, deps.Directory, jwt))
	r.Add(modules.NewAnalyticsModule(deps.Analytics, jwt))
	r.Add(modules.NewDebugModule())
}
