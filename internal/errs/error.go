package errs

import (
	"errors"
	"net/http"
)

// Error is a classified failure with a stable code, rendered to clients as
// {"code": ..., "message": ...} with the mapped HTTP status.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	status  int
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, code, message string) *Error {
	return &Error{Code: code, Message: message, status: status}
}

var (
	ErrInvalidInput                 = New(http.StatusBadRequest, "INVALID_INPUT", "invalid input")
	ErrUsernameAlreadyExists        = New(http.StatusBadRequest, "USERNAME_ALREADY_EXISTS", "username already exists")
	ErrUserNotFound                 = New(http.StatusBadRequest, "USER_NOT_FOUND", "user not found")
	ErrRestaurantNotFound           = New(http.StatusBadRequest, "RESTAURANT_NOT_FOUND", "restaurant not found")
	ErrRestaurantAlreadyExists      = New(http.StatusBadRequest, "RESTAURANT_ALREADY_EXISTS", "restaurant already exists")
	ErrInvalidPassword              = New(http.StatusBadRequest, "INVALID_PASSWORD", "invalid password")
	ErrReservationAlreadyExists     = New(http.StatusBadRequest, "RESERVATION_ALREADY_EXISTS", "reservation already in progress")
	ErrInvalidReservationTime       = New(http.StatusBadRequest, "INVALID_RESERVATION_TIME", "reservation time is not valid")
	ErrInvalidReservationTimeFormat = New(http.StatusBadRequest, "INVALID_RESERVATION_TIME_FORMAT", "reservation time must be a two-digit hour")
	ErrReservationNotFound          = New(http.StatusBadRequest, "RESERVATION_NOT_FOUND", "reservation not found")
	ErrReservationOwnerMismatch     = New(http.StatusBadRequest, "RESERVATION_OWNER_MISMATCH", "reservation belongs to another user")
	ErrInvalidReservationIDFormat   = New(http.StatusBadRequest, "INVALID_RESERVATION_ID_FORMAT", "reservation id must be an 8-digit number")
	ErrCannotCancelAfterOneHour     = New(http.StatusBadRequest, "RESERVATION_CANNOT_CANCEL_AFTER_ONE_HOUR", "cancellation is allowed up to one hour before the reservation")
	ErrNotManager                   = New(http.StatusBadRequest, "NOT_MANAGER", "not the manager of this restaurant")
	ErrReservationTimePassed        = New(http.StatusBadRequest, "RESERVATION_TIME_PASSED", "reservation time has already passed")
	ErrInvalidUser                  = New(http.StatusBadRequest, "INVALID_USER", "user does not match")
	ErrInvalidRestaurant            = New(http.StatusBadRequest, "INVALID_RESTAURANT", "restaurant does not match")
	ErrInvalidVisitTime             = New(http.StatusBadRequest, "INVALID_VISIT_TIME", "visit can be confirmed from 10 minutes before the reservation")
	ErrInvalidReservationStatus     = New(http.StatusBadRequest, "INVALID_RESERVATION_STATUS", "reservation is not approved")
	ErrReviewNotFound               = New(http.StatusBadRequest, "REVIEW_NOT_FOUND", "review not found")
	ErrUnauthorized                 = New(http.StatusUnauthorized, "UNAUTHORIZED", "login required")
	ErrInternal                     = New(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error")
)

// Status maps err to its client-visible HTTP status. Unclassified errors
// are internal faults.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.status
	}
	return http.StatusInternalServerError
}

// AsError unwraps the classified error, substituting ErrInternal for
// anything unclassified.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal
}
