package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/handler"
	"github.com/noah-isme/course-booking-api/internal/repository"
	"github.com/noah-isme/course-booking-api/internal/service"
)

// Wire builds repositories, services and handlers over a shared pool.
func Wire(db *sqlx.DB, metrics *service.MetricsService, logr *zap.Logger) Handlers {
	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	users := service.NewUserService(userRepo, validate, logr)
	courses := service.NewCourseService(courseRepo, reservationRepo, reviewRepo, metrics, validate, logr)
	availabilities := service.NewAvailabilityService(availabilityRepo, validate, logr)
	reservations := service.NewReservationService(reservationRepo, validate, logr)
	reviews := service.NewReviewService(reviewRepo, validate, logr)

	return Handlers{
		Users:          handler.NewUserHandler(users),
		Courses:        handler.NewCourseHandler(courses),
		Availabilities: handler.NewAvailabilityHandler(availabilities),
		Reservations:   handler.NewReservationHandler(reservations),
		Reviews:        handler.NewReviewHandler(reviews),
		Ops:            handler.NewMetricsHandler(metrics, db, logr),
	}
}
