package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/handler"
	"github.com/noah-isme/course-booking-api/internal/middleware"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/config"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
	"github.com/noah-isme/course-booking-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/course-booking-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/course-booking-api/pkg/middleware/requestid"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

// Handlers groups the resource handlers mounted by New.
type Handlers struct {
	Users          *handler.UserHandler
	Courses        *handler.CourseHandler
	Availabilities *handler.AvailabilityHandler
	Reservations   *handler.ReservationHandler
	Reviews        *handler.ReviewHandler
	Ops            *handler.MetricsHandler
}

// New builds the gin engine with the middleware chain and the routing table.
func New(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService, h Handlers) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logr.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		response.Error(c, appErrors.ErrInternal)
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(corsmiddleware.DefaultOptions(cfg.CORS.AllowedOrigins)))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metrics))
	}

	r.GET("/health", h.Ops.Health)
	r.GET("/ready", h.Ops.Ready)
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, h.Ops.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	registerUsers(api, h.Users)
	registerCourses(api, h.Courses)
	registerAvailabilities(api, h.Availabilities)
	registerReservations(api, h.Reservations)
	registerReviews(api, h.Reviews)

	r.NoRoute(func(c *gin.Context) { response.Error(c, appErrors.ErrRouteNotFound) })
	r.NoMethod(func(c *gin.Context) { response.Error(c, appErrors.ErrMethodNotAllowed) })

	return r
}

func registerUsers(api *gin.RouterGroup, h *handler.UserHandler) {
	users := api.Group("/users")
	users.GET("", h.List)
	users.GET("/email/:email", h.GetByEmail)
	users.GET("/:id", h.Get)
	users.POST("", h.Create)
	users.PUT("/:id", h.Update)
	users.DELETE("/:id", h.Delete)
}

func registerCourses(api *gin.RouterGroup, h *handler.CourseHandler) {
	courses := api.Group("/courses")
	courses.GET("", h.List)
	courses.GET("/avg-rating/:id", h.AverageRating)
	courses.GET("/teacher/:teacherId", h.ListByTeacher)
	courses.GET("/:id", h.Get)
	courses.POST("", h.Create)
	courses.PUT("/:id", h.Update)
	courses.PUT("/:id/price", h.UpdatePrice)
	courses.DELETE("/:id", h.Delete)
}

func registerAvailabilities(api *gin.RouterGroup, h *handler.AvailabilityHandler) {
	availabilities := api.Group("/availabilities")
	availabilities.GET("", h.List)
	availabilities.GET("/user/:userId", h.ListByUser)
	availabilities.GET("/:id", h.Get)
	availabilities.POST("", h.Create)
	availabilities.POST("/daterange", h.ListByDateRange)
	availabilities.PUT("/update-status/:id", h.UpdateStatus)
	availabilities.PUT("/:id", h.Update)
	availabilities.DELETE("/:id", h.Delete)
}

func registerReservations(api *gin.RouterGroup, h *handler.ReservationHandler) {
	reservations := api.Group("/reservations")
	reservations.GET("", h.List)
	reservations.GET("/active", h.ListActive)
	reservations.GET("/user/:userId", h.ListByUser)
	reservations.GET("/course/:courseId", h.ListByCourse)
	reservations.GET("/date/:date", h.ListByDate)
	reservations.GET("/:id", h.Get)
	reservations.POST("", h.Create)
	reservations.PUT("/cancel/:id", h.Cancel)
	reservations.PUT("/review/:id", h.MarkReviewed)
	reservations.PUT("/:id", h.Update)
	reservations.DELETE("/:id", h.Delete)
}

func registerReviews(api *gin.RouterGroup, h *handler.ReviewHandler) {
	reviews := api.Group("/reviews")
	reviews.GET("", h.List)
	reviews.GET("/:id", h.Get)
	reviews.POST("", h.Create)
	reviews.PUT("/:id", h.Update)
	reviews.DELETE("/:id", h.Delete)
}
