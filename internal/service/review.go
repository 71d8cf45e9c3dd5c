package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/internal/repository"
)

type ReviewService struct {
	reviews     repository.ReviewRepository
	restaurants repository.RestaurantRepository
	users       repository.UserRepository
	log         *zap.Logger
}

func NewReviewService(
	reviews repository.ReviewRepository,
	restaurants repository.RestaurantRepository,
	users repository.UserRepository,
	log *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:     reviews,
		restaurants: restaurants,
		users:       users,
		log:         log,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, username string, req model.ReviewRequest) (model.Review, error) {
	if strings.TrimSpace(req.RestaurantName) == "" ||
		strings.TrimSpace(req.Title) == "" ||
		strings.TrimSpace(req.Content) == "" {
		return model.Review{}, errs.ErrInvalidInput
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return model.Review{}, err
	}
	rest, err := s.restaurants.GetRestaurantByName(ctx, req.RestaurantName)
	if err != nil {
		return model.Review{}, err
	}

	review, err := s.reviews.CreateReview(ctx, model.Review{
		UserID:       user.ID,
		RestaurantID: rest.ID,
		Title:        req.Title,
		Content:      req.Content,
	})
	if err != nil {
		return model.Review{}, err
	}
	review.Username = user.Username
	review.RestaurantName = rest.Name
	return review, nil
}

// UpdateReview edits a review; only its author may do so.
func (s *ReviewService) UpdateReview(ctx context.Context, id int64, username string, req model.ReviewRequest) (model.Review, error) {
	if id <= 0 || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return model.Review{}, errs.ErrInvalidInput
	}

	review, err := s.reviews.GetReviewByID(ctx, id)
	if err != nil {
		return model.Review{}, err
	}
	if review.Username != username {
		return model.Review{}, errs.ErrInvalidUser
	}

	review.Title = req.Title
	review.Content = req.Content
	if err := s.reviews.UpdateReview(ctx, review); err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// DeleteReview removes a review; allowed for its author or the owner of
// the reviewed restaurant.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64, username string) (int64, error) {
	if id <= 0 {
		return 0, errs.ErrInvalidInput
	}

	review, err := s.reviews.GetReviewByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if review.Username != username {
		rest, err := s.restaurants.GetRestaurantByID(ctx, review.RestaurantID)
		if err != nil {
			return 0, err
		}
		if rest.OwnerUsername != username {
			return 0, errs.ErrInvalidUser
		}
	}

	if err := s.reviews.DeleteReview(ctx, review.ID); err != nil {
		return 0, err
	}
	return review.ID, nil
}

func (s *ReviewService) GetReviewDetail(ctx context.Context, id int64) (model.Review, error) {
	if id <= 0 {
		return model.Review{}, errs.ErrInvalidInput
	}
	return s.reviews.GetReviewByID(ctx, id)
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviews.ListReviews(ctx)
}
