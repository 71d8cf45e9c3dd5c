package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) error
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) (*userRepository, error) {
	return &userRepository{
		db:  db,
		log: log.Named("user-repo"),
	}, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user model.User) error {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "password", "roles", "phone_number").
		Values(user.Username, user.Password, strings.Join(user.Roles, ","), user.PhoneNumber).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrUsernameAlreadyExists
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select("id", "username", "password", "roles", "phone_number").
		From(usersTableName).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var row struct {
		ID          int64  `db:"id"`
		Username    string `db:"username"`
		Password    string `db:"password"`
		Roles       string `db:"roles"`
		PhoneNumber string `db:"phone_number"`
	}
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}

	user := model.User{
		ID:          row.ID,
		Username:    row.Username,
		Password:    row.Password,
		PhoneNumber: row.PhoneNumber,
	}
	if row.Roles != "" {
		user.Roles = strings.Split(row.Roles, ",")
	}
	return user, nil
}
