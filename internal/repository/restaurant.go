package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
)

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, rest model.Restaurant) (model.Restaurant, error)
	GetRestaurantByName(ctx context.Context, name string) (model.Restaurant, error)
	GetRestaurantByID(ctx context.Context, id int64) (model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, rest model.Restaurant) error
	DeleteRestaurant(ctx context.Context, id int64) error
	ListRestaurants(ctx context.Context, page, size int) (model.ListRestaurants, error)
}

type restaurantRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRestaurantRepository(db *sqlx.DB, log *zap.Logger) (*restaurantRepository, error) {
	return &restaurantRepository{
		db:  db,
		log: log.Named("restaurant-repo"),
	}, nil
}

const restaurantColumns = `r.id, r.name, r.address, r.description, r.opening_hour, r.closing_hour, r.owner_id, u.username as owner_username`

func (r *restaurantRepository) CreateRestaurant(ctx context.Context, rest model.Restaurant) (model.Restaurant, error) {
	q, args, err := qb.Insert(restaurantsTableName).
		Columns("name", "address", "description", "opening_hour", "closing_hour", "owner_id").
		Values(rest.Name, rest.Address, rest.Description, rest.OpeningHour, rest.ClosingHour, rest.OwnerID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}
	if err := r.db.GetContext(ctx, &rest.ID, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Restaurant{}, errs.ErrRestaurantAlreadyExists
		}
		r.log.Error("CreateRestaurant", zap.String("q", q), zap.Error(err))
		return model.Restaurant{}, err
	}
	return rest, nil
}

func (r *restaurantRepository) GetRestaurantByName(ctx context.Context, name string) (model.Restaurant, error) {
	return r.getRestaurant(ctx, sq.Eq{"r.name": name})
}

func (r *restaurantRepository) GetRestaurantByID(ctx context.Context, id int64) (model.Restaurant, error) {
	return r.getRestaurant(ctx, sq.Eq{"r.id": id})
}

func (r *restaurantRepository) getRestaurant(ctx context.Context, pred sq.Eq) (model.Restaurant, error) {
	q, args, err := qb.Select(restaurantColumns).
		From(restaurantsTableName + " r").
		Join(usersTableName + " u on u.id = r.owner_id").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Restaurant{}, err
	}
	var rest model.Restaurant
	if err := r.db.GetContext(ctx, &rest, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Restaurant{}, errs.ErrRestaurantNotFound
		}
		return model.Restaurant{}, err
	}
	return rest, nil
}

func (r *restaurantRepository) UpdateRestaurant(ctx context.Context, rest model.Restaurant) error {
	q, args, err := qb.Update(restaurantsTableName).
		Set("name", rest.Name).
		Set("address", rest.Address).
		Set("description", rest.Description).
		Set("opening_hour", rest.OpeningHour).
		Set("closing_hour", rest.ClosingHour).
		Where(sq.Eq{"id": rest.ID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrRestaurantAlreadyExists
		}
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantRepository) DeleteRestaurant(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(restaurantsTableName).
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
		return errs.ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantRepository) ListRestaurants(ctx context.Context, page, size int) (model.ListRestaurants, error) {
	s := qb.Select(restaurantColumns).
		From(restaurantsTableName + " r").
		Join(usersTableName + " u on u.id = r.owner_id").
		OrderBy("r.name asc")
	if page != 0 && size != 0 {
		s = s.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := s.ToSql()
	if err != nil {
		return model.ListRestaurants{}, err
	}

	cq, cargs, err := qb.Select("count(*)").From(restaurantsTableName).ToSql()
	if err != nil {
		return model.ListRestaurants{}, err
	}

	var (
		items []model.Restaurant
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.SelectContext(gctx, &items, q, args...)
	})
	g.Go(func() error {
		return r.db.GetContext(gctx, &total, cq, cargs...)
	})
	if err := g.Wait(); err != nil {
		return model.ListRestaurants{}, err
	}

	return model.ListRestaurants{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}
