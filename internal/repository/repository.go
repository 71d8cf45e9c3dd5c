package repository

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTableName        = `users`
	restaurantsTableName  = `restaurants`
	reservationsTableName = `reservations`
	reviewsTableName      = `reviews`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
