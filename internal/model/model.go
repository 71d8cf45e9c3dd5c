package model

import (
	"time"
)

type User struct {
	ID          int64    `json:"-" db:"id"`
	Username    string   `json:"username" db:"username"`
	Password    string   `json:"-" db:"password"`
	Roles       []string `json:"roles" db:"-"`
	PhoneNumber string   `json:"phoneNumber" db:"phone_number"`
}

type Restaurant struct {
	ID            int64  `json:"-" db:"id"`
	Name          string `json:"name" db:"name"`
	Address       string `json:"address" db:"address"`
	Description   string `json:"description" db:"description"`
	OpeningHour   int    `json:"openingTime" db:"opening_hour"`
	ClosingHour   int    `json:"closingTime" db:"closing_hour"`
	OwnerID       int64  `json:"-" db:"owner_id"`
	OwnerUsername string `json:"owner" db:"owner_username"`
}

// Reservation is the persisted record joined with the reserving user and
// the restaurant, as returned by the store.
type Reservation struct {
	ID             int64     `json:"-" db:"id"`
	UserID         int64     `json:"-" db:"user_id"`
	Username       string    `json:"-" db:"username"`
	PhoneNumber    string    `json:"-" db:"phone_number"`
	RestaurantID   int64     `json:"-" db:"restaurant_id"`
	RestaurantName string    `json:"-" db:"restaurant_name"`
	Date           time.Time `json:"-" db:"reservation_date"`
	Hour           int       `json:"-" db:"reservation_hour"`
	Approved       bool      `json:"-" db:"approved"`
	Visited        bool      `json:"-" db:"visited"`
}

// Info projects a reservation for callers. PhoneNumber is omitted on the
// paths that do not expose it.
func (r Reservation) Info(withPhone bool) ReservationInfo {
	info := ReservationInfo{
		ReservationID:   r.ID,
		Username:        r.Username,
		RestaurantName:  r.RestaurantName,
		ReservationTime: FormatHour(r.Hour),
	}
	if withPhone {
		info.PhoneNumber = r.PhoneNumber
	}
	return info
}

type ReservationInfo struct {
	ReservationID   int64  `json:"reservationId"`
	Username        string `json:"username"`
	RestaurantName  string `json:"restaurantName"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	ReservationTime string `json:"reservationTime"`
}

type Review struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"-" db:"user_id"`
	Username       string `json:"username" db:"username"`
	RestaurantID   int64  `json:"-" db:"restaurant_id"`
	RestaurantName string `json:"restaurantName" db:"restaurant_name"`
	Title          string `json:"title" db:"title"`
	Content        string `json:"content" db:"content"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListReservations struct {
	Paging `json:",inline"`
	Items  []ReservationInfo `json:"items"`
}

type ListRestaurants struct {
	Paging `json:",inline"`
	Items  []Restaurant `json:"items"`
}

type SignUpRequest struct {
	Username    string   `json:"username" validate:"required"`
	Password    string   `json:"password" validate:"required"`
	Roles       []string `json:"roles"`
	PhoneNumber string   `json:"phoneNumber"`
}

type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	ExpiresIn   int    `json:"expiresIn"`
	AccessToken string `json:"accessToken"`
}

type RestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

type ReservationRequest struct {
	RestaurantName  string `json:"restaurantName"`
	ReservationTime string `json:"reservationTime"`
}

type ReservationCancelRequest struct {
	ReservationID string `json:"reservationId"`
	CancelReason  string `json:"cancelReason"`
}

type ReservationRejectRequest struct {
	ReservationID string `json:"reservationId"`
	RejectReason  string `json:"rejectReason"`
}

type ReservationVisitRequest struct {
	Username       string `json:"username"`
	ReservationID  string `json:"reservationId"`
	RestaurantName string `json:"restaurantName"`
}

type ReviewRequest struct {
	RestaurantName string `json:"restaurantName"`
	Title          string `json:"title"`
	Content        string `json:"content"`
}
