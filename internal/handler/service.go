package handler

import (
	"context"

	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Register(ctx context.Context, req model.SignUpRequest) error
	Login(ctx context.Context, req model.SignInRequest) (model.AuthResponse, error)
}

type RestaurantService interface {
	RegisterRestaurant(ctx context.Context, ownerUsername string, req model.RestaurantRequest) (string, error)
	UpdateRestaurant(ctx context.Context, ownerUsername, restaurantName string, req model.RestaurantRequest) (string, error)
	DeleteRestaurant(ctx context.Context, ownerUsername, restaurantName string) (string, error)
	GetRestaurant(ctx context.Context, restaurantName string) (model.Restaurant, error)
	ListRestaurants(ctx context.Context, page, size int) (model.ListRestaurants, error)
}

type ReservationService interface {
	MakeReservation(ctx context.Context, username string, req model.ReservationRequest) (model.ReservationInfo, error)
	CancelReservation(ctx context.Context, username string, req model.ReservationCancelRequest) (model.ReservationInfo, error)
	ApproveReservation(ctx context.Context, username, reservationID string) (model.ReservationInfo, error)
	RejectReservation(ctx context.Context, username string, req model.ReservationRejectRequest) (model.ReservationInfo, error)
	VisitReservation(ctx context.Context, username string, req model.ReservationVisitRequest) (model.ReservationInfo, error)
	GetReservationDetail(ctx context.Context, username, reservationID string) (model.ReservationInfo, error)
	GetRestaurantReservations(ctx context.Context, username, restaurantName string, page, size int) (model.ListReservations, error)
	GetUserReservations(ctx context.Context, username string, page, size int) (model.ListReservations, error)
}

type ReviewService interface {
	CreateReview(ctx context.Context, username string, req model.ReviewRequest) (model.Review, error)
	UpdateReview(ctx context.Context, id int64, username string, req model.ReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, id int64, username string) (int64, error)
	GetReviewDetail(ctx context.Context, id int64) (model.Review, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

var (
	_ AuthService        = (*service.AuthService)(nil)
	_ RestaurantService  = (*service.RestaurantService)(nil)
	_ ReservationService = (*service.ReservationService)(nil)
	_ ReviewService      = (*service.ReviewService)(nil)
)
