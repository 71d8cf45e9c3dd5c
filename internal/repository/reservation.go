package repository

import (
	"context"
	"database/sql"
	"time"

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

type ReservationRepository interface {
	CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error)
	GetReservationByID(ctx context.Context, id int64) (model.Reservation, error)
	ReservationExists(ctx context.Context, userID, restaurantID int64, date time.Time) (bool, error)
	SetApproved(ctx context.Context, id int64) error
	SetVisited(ctx context.Context, id int64) error
	DeleteReservation(ctx context.Context, id int64) error
	ListByRestaurant(ctx context.Context, restaurantID int64, page, size int) ([]model.Reservation, int, error)
	ListByUser(ctx context.Context, userID int64, page, size int) ([]model.Reservation, int, error)
}

type reservationRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewReservationRepository(db *sqlx.DB, log *zap.Logger) (*reservationRepository, error) {
	return &reservationRepository{
		db:  db,
		log: log.Named("reservation-repo"),
	}, nil
}

const reservationColumns = `res.id, res.user_id, u.username, u.phone_number, res.restaurant_id,
	r.name as restaurant_name, res.reservation_date, res.reservation_hour, res.approved, res.visited`

func (r *reservationRepository) joined() sq.SelectBuilder {
	return qb.Select(reservationColumns).
		From(reservationsTableName + " res").
		Join(usersTableName + " u on u.id = res.user_id").
		Join(restaurantsTableName + " r on r.id = res.restaurant_id")
}

// CreateReservation inserts the row and reads it back joined. The unique
// constraint on (user_id, restaurant_id, reservation_date) closes the race
// between two concurrent creates that both passed the exists check.
func (r *reservationRepository) CreateReservation(ctx context.Context, res model.Reservation) (model.Reservation, error) {
	q, args, err := qb.Insert(reservationsTableName).
		Columns("user_id", "restaurant_id", "reservation_date", "reservation_hour", "approved", "visited").
		Values(res.UserID, res.RestaurantID, res.Date.Format(time.DateOnly), res.Hour, res.Approved, res.Visited).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	if err := r.db.GetContext(ctx, &res.ID, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Reservation{}, errs.ErrReservationAlreadyExists
		}
		r.log.Error("CreateReservation", zap.String("q", q), zap.Any("args", args))
		return model.Reservation{}, err
	}
	return r.GetReservationByID(ctx, res.ID)
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id int64) (model.Reservation, error) {
	q, args, err := r.joined().
		Where(sq.Eq{"res.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Reservation{}, err
	}
	var res model.Reservation
	if err := r.db.GetContext(ctx, &res, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}
	return res, nil
}

func (r *reservationRepository) ReservationExists(ctx context.Context, userID, restaurantID int64, date time.Time) (bool, error) {
	q := `select exists(
		select 1 from reservations
		where user_id = $1 and restaurant_id = $2 and reservation_date = $3)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, userID, restaurantID, date.Format(time.DateOnly)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reservationRepository) SetApproved(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "approved")
}

func (r *reservationRepository) SetVisited(ctx context.Context, id int64) error {
	return r.setFlag(ctx, id, "visited")
}

func (r *reservationRepository) setFlag(ctx context.Context, id int64, column string) error {
	q, args, err := qb.Update(reservationsTableName).
		Set(column, true).
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
		return errs.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) DeleteReservation(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(reservationsTableName).
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
		return errs.ErrReservationNotFound
	}
	return nil
}

func (r *reservationRepository) ListByRestaurant(ctx context.Context, restaurantID int64, page, size int) ([]model.Reservation, int, error) {
	return r.list(ctx, sq.Eq{"res.restaurant_id": restaurantID}, sq.Eq{"restaurant_id": restaurantID}, page, size)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64, page, size int) ([]model.Reservation, int, error) {
	return r.list(ctx, sq.Eq{"res.user_id": userID}, sq.Eq{"user_id": userID}, page, size)
}

func (r *reservationRepository) list(ctx context.Context, pred, countPred sq.Eq, page, size int) ([]model.Reservation, int, error) {
	s := r.joined().
		Where(pred).
		OrderBy("res.reservation_date asc", "res.reservation_hour asc", "res.id asc")
	if page != 0 && size != 0 {
		s = s.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := s.ToSql()
	if err != nil {
		return nil, 0, err
	}

	cq, cargs, err := qb.Select("count(*)").
		From(reservationsTableName).
		Where(countPred).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var (
		items []model.Reservation
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
		return nil, 0, err
	}
	return items, total, nil
}
