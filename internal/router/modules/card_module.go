package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/teamkudos/kudos-backend/internal/container"
	handlers "github.com/teamkudos/kudos-backend/internal/interface/http"
	"github.com/teamkudos/kudos-backend/internal/interface/middleware"
	"github.com/teamkudos/kudos-backend/pkg/helpers"
)

// CardModule wires recognition card CRUD and search, plus the team and
// category lookup routes.
type CardModule struct {
	Cards     *handlers.CardHandler
	Directory *handlers.DirectoryHandler
	JWT       *helpers.JWTManager
}

func NewCardModule(cards *handlers.CardHandler, directory *handlers.DirectoryHandler, jwt *helpers.JWTManager) *CardModule {
	return &CardModule{Cards: cards, Directory: directory, JWT: jwt}
}

func (m *CardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, container.GetRevocationStore()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/cards", m.Cards.Create)
		auth.GET("/cards", m.Cards.List)
		auth.GET("/cards/search", m.Cards.Search)
		auth.GET("/cards/:id", m.Cards.Get)
		auth.PUT("/cards/:id", m.Cards.Update)
		auth.DELETE("/cards/:id", m.Cards.Delete)

		auth.GET("/teams", m.Directory.ListTeams)
		auth.POST("/teams", m.Directory.CreateTeam)
		auth.GET("/categories", m.Directory.ListCategories)
		auth.POST("/categories", m.Directory.CreateCategory)
	}
}
