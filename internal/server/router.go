package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/exemplo/crudmongo-api/api/swagger"
	"github.com/exemplo/crudmongo-api/internal/handler"
	internalmiddleware "github.com/exemplo/crudmongo-api/internal/middleware"
	"github.com/exemplo/crudmongo-api/internal/models"
	"github.com/exemplo/crudmongo-api/internal/repository"
	"github.com/exemplo/crudmongo-api/internal/service"
	"github.com/exemplo/crudmongo-api/internal/store"
	"github.com/exemplo/crudmongo-api/pkg/config"
	"github.com/exemplo/crudmongo-api/pkg/logger"
	corsmiddleware "github.com/exemplo/crudmongo-api/pkg/middleware/cors"
	reqidmiddleware "github.com/exemplo/crudmongo-api/pkg/middleware/requestid"
)

// Dependencies are the collaborators shared by every route.
type Dependencies struct {
	Config  *config.Config
	Logger  *zap.Logger
	Store   store.Store
	Cache   *service.CacheService
	Metrics *service.MetricsService
}

// NewRouter builds the gin engine with the middleware chain, system routes and
// the five resource collections mounted under the API prefix.
func NewRouter(deps Dependencies) *gin.Engine {
	cfg := deps.Config
	logr := deps.Logger
	if logr == nil {
		logr = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if deps.Metrics != nil {
		r.Use(internalmiddleware.Metrics(deps.Metrics))
	}

	system := handler.NewSystemHandler(deps.Store, deps.Metrics, logr)
	r.GET("/health", system.Health)
	r.GET("/ready", system.Ready)
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		r.GET(cfg.Metrics.Path, system.Prometheus)
	}
	if cfg.Env != config.EnvProduction && cfg.Docs.Enabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	var observer repository.QueryObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
	}

	students := service.NewResourceService[models.Student]("student", repository.NewStudentRepository(deps.Store, observer), deps.Cache, logr)
	handler.NewResourceHandler[models.Student](students).Register(api.Group("/" + models.StudentCollection))

	courses := service.NewResourceService[models.Course]("course", repository.NewCourseRepository(deps.Store, observer), deps.Cache, logr)
	handler.NewResourceHandler[models.Course](courses).Register(api.Group("/" + models.CourseCollection))

	disciplines := service.NewResourceService[models.Discipline]("discipline", repository.NewDisciplineRepository(deps.Store, observer), deps.Cache, logr)
	handler.NewResourceHandler[models.Discipline](disciplines).Register(api.Group("/" + models.DisciplineCollection))

	curricula := service.NewResourceService[models.Curriculum]("curriculum", repository.NewCurriculumRepository(deps.Store, observer), deps.Cache, logr)
	handler.NewResourceHandler[models.Curriculum](curricula).Register(api.Group("/" + models.CurriculumCollection))

	sections := service.NewResourceService[models.ClassSection]("class section", repository.NewClassSectionRepository(deps.Store, observer), deps.Cache, logr)
	handler.NewResourceHandler[models.ClassSection](sections).Register(api.Group("/" + models.ClassSectionCollection))

	r.NoRoute(func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	return r
}
