package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/events"
	"github.com/baeksh/quickreserve/internal/model"
	"github.com/baeksh/quickreserve/internal/repository"
	"github.com/baeksh/quickreserve/pkg/kafka"
)

var (
	reservationTimeRe = regexp.MustCompile(`^\d{2}$`)
	reservationIDRe   = regexp.MustCompile(`^\d{8}$`)
)

const visitWindow = 10 * time.Minute

// ReservationService enforces the reservation lifecycle: who may create,
// cancel, approve, reject and visit-confirm a reservation, and when.
type ReservationService struct {
	users        repository.UserRepository
	restaurants  repository.RestaurantRepository
	reservations repository.ReservationRepository
	events       events.Publisher
	log          *zap.Logger
	now          func() time.Time
}

func NewReservationService(
	users repository.UserRepository,
	restaurants repository.RestaurantRepository,
	reservations repository.ReservationRepository,
	pub events.Publisher,
	log *zap.Logger,
) *ReservationService {
	return &ReservationService{
		users:        users,
		restaurants:  restaurants,
		reservations: reservations,
		events:       pub,
		log:          log,
		now:          time.Now,
	}
}

// MakeReservation books a slot for today. A user holds at most one
// reservation per restaurant per day, and the slot must lie inside the
// restaurant's opening hours and not in the past.
func (s *ReservationService) MakeReservation(ctx context.Context, username string, req model.ReservationRequest) (model.ReservationInfo, error) {
	name := strings.TrimSpace(req.RestaurantName)
	timeStr := strings.TrimSpace(req.ReservationTime)
	if name == "" || timeStr == "" {
		return model.ReservationInfo{}, errs.ErrInvalidInput
	}
	if !reservationTimeRe.MatchString(timeStr) {
		return model.ReservationInfo{}, errs.ErrInvalidReservationTimeFormat
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	rest, err := s.restaurants.GetRestaurantByName(ctx, name)
	if err != nil {
		return model.ReservationInfo{}, err
	}

	now := s.now()
	today := model.DateOf(now)
	exists, err := s.reservations.ReservationExists(ctx, user.ID, rest.ID, today)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if exists {
		return model.ReservationInfo{}, errs.ErrReservationAlreadyExists
	}

	hour, err := strconv.Atoi(timeStr)
	if err != nil {
		return model.ReservationInfo{}, errs.ErrInvalidReservationTimeFormat
	}
	slot := model.HourOfDay(hour)
	if slot < model.SinceMidnight(now) ||
		slot < model.HourOfDay(rest.OpeningHour) ||
		slot > model.HourOfDay(rest.ClosingHour) {
		return model.ReservationInfo{}, errs.ErrInvalidReservationTime
	}

	res, err := s.reservations.CreateReservation(ctx, model.Reservation{
		UserID:       user.ID,
		RestaurantID: rest.ID,
		Date:         today,
		Hour:         hour,
	})
	if err != nil {
		return model.ReservationInfo{}, err
	}
	s.publish(kafka.EventCreated, res)

	return res.Info(true), nil
}

// CancelReservation deletes the caller's reservation. The cancellation
// window closes one hour before the slot. The reason is accepted but not
// persisted.
func (s *ReservationService) CancelReservation(ctx context.Context, username string, req model.ReservationCancelRequest) (model.ReservationInfo, error) {
	id := strings.TrimSpace(req.ReservationID)
	reason := strings.TrimSpace(req.CancelReason)
	if id == "" || reason == "" {
		return model.ReservationInfo{}, errs.ErrInvalidInput
	}
	if !reservationIDRe.MatchString(id) {
		return model.ReservationInfo{}, errs.ErrInvalidReservationIDFormat
	}

	res, err := s.getByIDString(ctx, id)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if res.Username != username {
		return model.ReservationInfo{}, errs.ErrReservationOwnerMismatch
	}

	if model.SinceMidnight(s.now())+time.Hour > model.HourOfDay(res.Hour) {
		return model.ReservationInfo{}, errs.ErrCannotCancelAfterOneHour
	}

	if err := s.reservations.DeleteReservation(ctx, res.ID); err != nil {
		return model.ReservationInfo{}, err
	}
	s.publish(kafka.EventCancelled, res)

	return res.Info(false), nil
}

// ApproveReservation marks a reservation approved. Only the restaurant's
// owner may approve. A reservation whose slot has already passed is removed
// on the spot and the approval fails.
func (s *ReservationService) ApproveReservation(ctx context.Context, username, reservationID string) (model.ReservationInfo, error) {
	id := strings.TrimSpace(reservationID)
	if !reservationIDRe.MatchString(id) {
		return model.ReservationInfo{}, errs.ErrInvalidReservationIDFormat
	}

	res, err := s.getByIDString(ctx, id)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	rest, err := s.restaurants.GetRestaurantByID(ctx, res.RestaurantID)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if rest.OwnerUsername != username {
		return model.ReservationInfo{}, errs.ErrNotManager
	}

	if expired, err := s.expireIfPassed(ctx, res); err != nil {
		return model.ReservationInfo{}, err
	} else if expired {
		return model.ReservationInfo{}, errs.ErrReservationTimePassed
	}

	if err := s.reservations.SetApproved(ctx, res.ID); err != nil {
		return model.ReservationInfo{}, err
	}
	res.Approved = true
	s.publish(kafka.EventApproved, res)

	return res.Info(true), nil
}

// RejectReservation deletes a reservation on behalf of the restaurant's
// owner. The reject reason is accepted but not persisted. Shares the
// lazy-expiry side effect with ApproveReservation.
func (s *ReservationService) RejectReservation(ctx context.Context, username string, req model.ReservationRejectRequest) (model.ReservationInfo, error) {
	id := strings.TrimSpace(req.ReservationID)
	reason := strings.TrimSpace(req.RejectReason)
	if reason == "" || !reservationIDRe.MatchString(id) {
		return model.ReservationInfo{}, errs.ErrInvalidInput
	}

	res, err := s.getByIDString(ctx, id)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	rest, err := s.restaurants.GetRestaurantByID(ctx, res.RestaurantID)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if rest.OwnerUsername != username {
		return model.ReservationInfo{}, errs.ErrNotManager
	}

	if expired, err := s.expireIfPassed(ctx, res); err != nil {
		return model.ReservationInfo{}, err
	} else if expired {
		return model.ReservationInfo{}, errs.ErrReservationTimePassed
	}

	if err := s.reservations.DeleteReservation(ctx, res.ID); err != nil {
		return model.ReservationInfo{}, err
	}
	s.publish(kafka.EventRejected, res)

	return res.Info(false), nil
}

// VisitReservation confirms check-in. Allowed from 10 minutes before the
// slot up to the slot itself, and only for approved reservations.
func (s *ReservationService) VisitReservation(ctx context.Context, username string, req model.ReservationVisitRequest) (model.ReservationInfo, error) {
	id := strings.TrimSpace(req.ReservationID)
	if !reservationIDRe.MatchString(id) {
		return model.ReservationInfo{}, errs.ErrInvalidInput
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.RestaurantName) == "" {
		return model.ReservationInfo{}, errs.ErrInvalidInput
	}

	res, err := s.getByIDString(ctx, id)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if res.Username != username {
		return model.ReservationInfo{}, errs.ErrInvalidUser
	}
	if res.RestaurantName != req.RestaurantName {
		return model.ReservationInfo{}, errs.ErrInvalidRestaurant
	}

	delta := model.HourOfDay(res.Hour) - model.SinceMidnight(s.now())
	if delta < 0 || delta > visitWindow {
		return model.ReservationInfo{}, errs.ErrInvalidVisitTime
	}
	if !res.Approved {
		return model.ReservationInfo{}, errs.ErrInvalidReservationStatus
	}

	if err := s.reservations.SetVisited(ctx, res.ID); err != nil {
		return model.ReservationInfo{}, err
	}
	res.Visited = true
	s.publish(kafka.EventVisited, res)

	return res.Info(false), nil
}

// GetReservationDetail returns one reservation, visible only to the user
// who holds it.
func (s *ReservationService) GetReservationDetail(ctx context.Context, username, reservationID string) (model.ReservationInfo, error) {
	id := strings.TrimSpace(reservationID)
	if !reservationIDRe.MatchString(id) {
		return model.ReservationInfo{}, errs.ErrInvalidReservationIDFormat
	}
	res, err := s.getByIDString(ctx, id)
	if err != nil {
		return model.ReservationInfo{}, err
	}
	if res.Username != username {
		return model.ReservationInfo{}, errs.ErrInvalidUser
	}
	return res.Info(true), nil
}

// GetRestaurantReservations lists a restaurant's reservations for its
// owner, ascending by date.
func (s *ReservationService) GetRestaurantReservations(ctx context.Context, username, restaurantName string, page, size int) (model.ListReservations, error) {
	rest, err := s.restaurants.GetRestaurantByName(ctx, restaurantName)
	if err != nil {
		return model.ListReservations{}, err
	}
	if rest.OwnerUsername != username {
		return model.ListReservations{}, errs.ErrInvalidUser
	}

	items, total, err := s.reservations.ListByRestaurant(ctx, rest.ID, page, size)
	if err != nil {
		return model.ListReservations{}, err
	}
	return listReservations(items, total, page, size, true), nil
}

// GetUserReservations lists the caller's reservations, ascending by date.
func (s *ReservationService) GetUserReservations(ctx context.Context, username string, page, size int) (model.ListReservations, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return model.ListReservations{}, err
	}

	items, total, err := s.reservations.ListByUser(ctx, user.ID, page, size)
	if err != nil {
		return model.ListReservations{}, err
	}
	return listReservations(items, total, page, size, false), nil
}

func (s *ReservationService) getByIDString(ctx context.Context, id string) (model.Reservation, error) {
	resID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return model.Reservation{}, errs.ErrInvalidReservationIDFormat
	}
	return s.reservations.GetReservationByID(ctx, resID)
}

// expireIfPassed deletes a reservation whose slot is already in the past.
// The deletion sticks even though the surrounding operation fails.
func (s *ReservationService) expireIfPassed(ctx context.Context, res model.Reservation) (bool, error) {
	if model.SinceMidnight(s.now()) <= model.HourOfDay(res.Hour) {
		return false, nil
	}
	if err := s.reservations.DeleteReservation(ctx, res.ID); err != nil {
		return false, err
	}
	s.publish(kafka.EventExpired, res)
	return true, nil
}

func (s *ReservationService) publish(eventType kafka.EventType, res model.Reservation) {
	if s.events == nil {
		return
	}
	ev := kafka.ReservationEvent{
		Timestamp:      s.now(),
		EventType:      eventType,
		ReservationID:  res.ID,
		Username:       res.Username,
		RestaurantName: res.RestaurantName,
	}
	if err := s.events.Publish(ev); err != nil {
		s.log.Warn("publish reservation event", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func listReservations(items []model.Reservation, total, page, size int, withPhone bool) model.ListReservations {
	infos := make([]model.ReservationInfo, 0, len(items))
	for _, res := range items {
		infos = append(infos, res.Info(withPhone))
	}
	return model.ListReservations{
		Paging: model.Paging{
			Page:          page,
			PageSize:      size,
			TotalElements: total,
		},
		Items: infos,
	}
}
