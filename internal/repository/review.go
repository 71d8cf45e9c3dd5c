package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
)

type ReviewRepository interface {
	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	GetReviewByID(ctx context.Context, id int64) (model.Review, error)
	UpdateReview(ctx context.Context, review model.Review) error
	DeleteReview(ctx context.Context, id int64) error
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReviewRepository(db *sqlx.DB, log *zap.Logger) (*reviewRepository, error) {
	return &reviewRepository{
		db:  db,
		log: log.Named("review-repo"),
	}, nil
}

const reviewColumns = `rv.id, rv.user_id, u.username, rv.restaurant_id, r.name as restaurant_name, rv.title, rv.content`

func (r *reviewRepository) joined() sq.SelectBuilder {
	return qb.Select(reviewColumns).
		From(reviewsTableName + " rv").
		Join(usersTableName + " u on u.id = rv.user_id").
		Join(restaurantsTableName + " r on r.id = rv.restaurant_id")
}

func (r *reviewRepository) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("user_id", "restaurant_id", "title", "content").
		Values(review.UserID, review.RestaurantID, review.Title, review.Content).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	if err := r.db.GetContext(ctx, &review.ID, q, args...); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Error(err))
		return model.Review{}, err
	}
	return review, nil
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id int64) (model.Review, error) {
	q, args, err := r.joined().
		Where(sq.Eq{"rv.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var review model.Review
	if err := r.db.GetContext(ctx, &review, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, errs.ErrReviewNotFound
		}
		return model.Review{}, err
	}
	return review, nil
}

func (r *reviewRepository) UpdateReview(ctx context.Context, review model.Review) error {
	q, args, err := qb.Update(reviewsTableName).
		Set("title", review.Title).
		Set("content", review.Content).
		Where(sq.Eq{"id": review.ID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) DeleteReview(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(reviewsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrReviewNotFound
	}
	return nil
}

func (r *reviewRepository) ListReviews(ctx context.Context) ([]model.Review, error) {
	q, args, err := r.joined().
		OrderBy("rv.id asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}
