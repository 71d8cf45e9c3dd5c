package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/internal/repository"
)

const (
	defaultOpeningHour = 0
	defaultClosingHour = 23
)

type RestaurantService struct {
	restaurants repository.RestaurantRepository
	users       repository.UserRepository
	log         *zap.Logger
}

func NewRestaurantService(restaurants repository.RestaurantRepository, users repository.UserRepository, log *zap.Logger) *RestaurantService {
	return &RestaurantService{
		restaurants: restaurants,
		users:       users,
		log:         log,
	}
}

// RegisterRestaurant creates a restaurant owned by the acting user.
// Opening hours default to 00-23 when omitted.
func (s *RestaurantService) RegisterRestaurant(ctx context.Context, ownerUsername string, req model.RestaurantRequest) (string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", errs.ErrInvalidInput
	}
	opening, err := parseHour(req.OpeningTime, defaultOpeningHour)
	if err != nil {
		return "", err
	}
	closing, err := parseHour(req.ClosingTime, defaultClosingHour)
	if err != nil {
		return "", err
	}

	owner, err := s.users.GetUserByUsername(ctx, ownerUsername)
	if err != nil {
		return "", err
	}

	rest, err := s.restaurants.CreateRestaurant(ctx, model.Restaurant{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		OpeningHour: opening,
		ClosingHour: closing,
		OwnerID:     owner.ID,
	})
	if err != nil {
		return "", err
	}
	return rest.Name, nil
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, ownerUsername, restaurantName string, req model.RestaurantRequest) (string, error) {
	rest, err := s.restaurants.GetRestaurantByName(ctx, restaurantName)
	if err != nil {
		return "", err
	}
	if rest.OwnerUsername != ownerUsername {
		return "", errs.ErrNotManager
	}

	if strings.TrimSpace(req.Name) != "" {
		rest.Name = req.Name
	}
	rest.Address = req.Address
	rest.Description = req.Description
	if rest.OpeningHour, err = parseHour(req.OpeningTime, rest.OpeningHour); err != nil {
		return "", err
	}
	if rest.ClosingHour, err = parseHour(req.ClosingTime, rest.ClosingHour); err != nil {
		return "", err
	}

	if err := s.restaurants.UpdateRestaurant(ctx, rest); err != nil {
		return "", err
	}
	return rest.Name, nil
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, ownerUsername, restaurantName string) (string, error) {
	rest, err := s.restaurants.GetRestaurantByName(ctx, restaurantName)
	if err != nil {
		return "", err
	}
	if rest.OwnerUsername != ownerUsername {
		return "", errs.ErrNotManager
	}
	if err := s.restaurants.DeleteRestaurant(ctx, rest.ID); err != nil {
		return "", err
	}
	return rest.Name, nil
}

func (s *RestaurantService) GetRestaurant(ctx context.Context, restaurantName string) (model.Restaurant, error) {
	return s.restaurants.GetRestaurantByName(ctx, restaurantName)
}

func (s *RestaurantService) ListRestaurants(ctx context.Context, page, size int) (model.ListRestaurants, error) {
	return s.restaurants.ListRestaurants(ctx, page, size)
}

// parseHour validates a two-digit hour string, falling back when blank.
func parseHour(v string, fallback int) (int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback, nil
	}
	if !reservationTimeRe.MatchString(v) {
		return 0, errs.ErrInvalidInput
	}
	hour, err := strconv.Atoi(v)
	if err != nil || hour > 23 {
		return 0, errs.ErrInvalidInput
	}
	return hour, nil
}
