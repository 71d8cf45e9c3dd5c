package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	md "github.com/baeksh/quickreserve/pkg/middleware"
	"github.com/baeksh/quickreserve/pkg/validate"
)

type Services struct {
	Auth        AuthService
	Restaurant  RestaurantService
	Reservation ReservationService
	Review      ReviewService
}

type Handler struct {
	authSvc        AuthService
	restaurantSvc  RestaurantService
	reservationSvc ReservationService
	reviewSvc      ReviewService
	log            *zap.Logger
}

func New(svcs Services, log *zap.Logger) *Handler {
	return &Handler{
		authSvc:        svcs.Auth,
		restaurantSvc:  svcs.Restaurant,
		reservationSvc: svcs.Reservation,
		reviewSvc:      svcs.Review,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Register)
	authGroup.POST("/login", h.Login)

	restaurants := api.Group("/restaurants")
	restaurants.GET("", h.ListRestaurants)
	restaurants.GET("/restaurant/:name", h.GetRestaurant)
	restaurantOps := restaurants.Group("", md.JwtAuthentication)
	restaurantOps.POST("/restaurant", h.RegisterRestaurant)
	restaurantOps.PUT("/restaurant/:name", h.UpdateRestaurant)
	restaurantOps.DELETE("/restaurant/:name", h.DeleteRestaurant)

	reservations := api.Group("/reservations", md.JwtAuthentication)
	reservations.POST("/reservation", h.MakeReservation)
	reservations.DELETE("/reservation", h.CancelReservation)
	reservations.PUT("/reservation/reject", h.RejectReservation)
	reservations.PUT("/reservation/visit", h.VisitReservation)
	reservations.PUT("/reservation/:reservationId", h.ApproveReservation)
	reservations.GET("/reservation/search/:reservationId", h.GetReservationDetail)
	reservations.GET("/search/:restaurantName", h.GetRestaurantReservations)
	reservations.GET("/search", h.GetUserReservations)

	reviews := api.Group("/reviews")
	reviews.GET("", h.ListReviews)
	reviews.GET("/review/:id", h.GetReview)
	reviewOps := reviews.Group("", md.JwtAuthentication)
	reviewOps.POST("/review", h.CreateReview)
	reviewOps.PUT("/review/:id", h.UpdateReview)
	reviewOps.DELETE("/review/:id", h.DeleteReview)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// respondError renders a classified error with its mapped status;
// anything unclassified becomes a 500.
func respondError(c echo.Context, err error) error {
	e := errs.AsError(err)
	return c.JSON(errs.Status(e), e)
}

func pagingParams(c echo.Context) (page, size int, err error) {
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return 0, 0, errs.ErrInvalidInput
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, errs.ErrInvalidInput
		}
	}
	return page, size, nil
}
