package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/baeksh/quickreserve/internal/errs"
	"github.com/baeksh/quickreserve/internal/model"
	mock_repository "github.com/baeksh/quickreserve/internal/repository/mocks"
)

// at builds a wall-clock instant on a fixed date. Tests pin the service
// clock to it.
func at(hour, min int) time.Time {
	return time.Date(2026, 4, 15, hour, min, 0, 0, time.UTC)
}

type reservationMocks struct {
	users        *mock_repository.MockUserRepository
	restaurants  *mock_repository.MockRestaurantRepository
	reservations *mock_repository.MockReservationRepository
}

func newReservationService(t *testing.T, now time.Time) (*ReservationService, reservationMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := reservationMocks{
		users:        mock_repository.NewMockUserRepository(ctrl),
		restaurants:  mock_repository.NewMockRestaurantRepository(ctrl),
		reservations: mock_repository.NewMockReservationRepository(ctrl),
	}
	svc := NewReservationService(m.users, m.restaurants, m.reservations, nil, zap.NewExample())
	svc.now = func() time.Time { return now }
	return svc, m
}

var (
	testUser = model.User{
		ID:          7,
		Username:    "alice",
		PhoneNumber: "010-1234-5678",
	}
	testRestaurant = model.Restaurant{
		ID:            3,
		Name:          "Bistro",
		OpeningHour:   9,
		ClosingHour:   22,
		OwnerUsername: "bob",
	}
)

func testReservation(hour int, approved bool) model.Reservation {
	return model.Reservation{
		ID:             10000001,
		UserID:         testUser.ID,
		Username:       testUser.Username,
		PhoneNumber:    testUser.PhoneNumber,
		RestaurantID:   testRestaurant.ID,
		RestaurantName: testRestaurant.Name,
		Date:           at(0, 0),
		Hour:           hour,
		Approved:       approved,
	}
}

func TestReservationService_MakeReservation(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	tests := []struct {
		name    string
		now     time.Time
		req     model.ReservationRequest
		mock    mockBehavior
		want    model.ReservationInfo
		wantErr error
	}{
		{
			name: "ok",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "18"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(false, nil)
				m.reservations.EXPECT().CreateReservation(gomock.Any(), model.Reservation{
					UserID:       testUser.ID,
					RestaurantID: testRestaurant.ID,
					Date:         at(0, 0),
					Hour:         18,
				}).Return(testReservation(18, false), nil)
			},
			want: model.ReservationInfo{
				ReservationID:   10000001,
				Username:        "alice",
				RestaurantName:  "Bistro",
				PhoneNumber:     "010-1234-5678",
				ReservationTime: "18:00",
			},
		},
		{
			name:    "blank restaurant name",
			now:     at(12, 0),
			req:     model.ReservationRequest{RestaurantName: "  ", ReservationTime: "18"},
			mock:    func(m reservationMocks) {},
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:    "one-digit time",
			now:     at(12, 0),
			req:     model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "8"},
			mock:    func(m reservationMocks) {},
			wantErr: errs.ErrInvalidReservationTimeFormat,
		},
		{
			name:    "non-numeric time",
			now:     at(12, 0),
			req:     model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "ab"},
			mock:    func(m reservationMocks) {},
			wantErr: errs.ErrInvalidReservationTimeFormat,
		},
		{
			name: "unknown user",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "18"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(model.User{}, errs.ErrUserNotFound)
			},
			wantErr: errs.ErrUserNotFound,
		},
		{
			name: "unknown restaurant",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Nowhere", ReservationTime: "18"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Nowhere").Return(model.Restaurant{}, errs.ErrRestaurantNotFound)
			},
			wantErr: errs.ErrRestaurantNotFound,
		},
		{
			name: "second reservation same restaurant same day",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "20"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(true, nil)
			},
			wantErr: errs.ErrReservationAlreadyExists,
		},
		{
			name: "slot already passed",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "10"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(false, nil)
			},
			wantErr: errs.ErrInvalidReservationTime,
		},
		{
			name: "before opening hour",
			now:  at(7, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "08"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(false, nil)
			},
			wantErr: errs.ErrInvalidReservationTime,
		},
		{
			name: "after closing hour",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "23"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(false, nil)
			},
			wantErr: errs.ErrInvalidReservationTime,
		},
		{
			name: "slot at closing hour is allowed",
			now:  at(12, 0),
			req:  model.ReservationRequest{RestaurantName: "Bistro", ReservationTime: "22"},
			mock: func(m reservationMocks) {
				m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
				m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
				m.reservations.EXPECT().ReservationExists(gomock.Any(), testUser.ID, testRestaurant.ID, at(0, 0)).Return(false, nil)
				m.reservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(testReservation(22, false), nil)
			},
			want: model.ReservationInfo{
				ReservationID:   10000001,
				Username:        "alice",
				RestaurantName:  "Bistro",
				PhoneNumber:     "010-1234-5678",
				ReservationTime: "22:00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, tt.now)
			tt.mock(m)

			got, err := svc.MakeReservation(context.Background(), "alice", tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReservationService_CancelReservation(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	okReq := model.ReservationCancelRequest{ReservationID: "10000001", CancelReason: "change of plans"}

	tests := []struct {
		name     string
		now      time.Time
		username string
		req      model.ReservationCancelRequest
		mock     mockBehavior
		wantErr  error
	}{
		{
			name:     "ok well before the slot",
			now:      at(12, 0),
			username: "alice",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name:     "ok just outside the cutoff",
			now:      at(16, 59),
			username: "alice",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name:     "inside the one-hour cutoff",
			now:      at(17, 1),
			username: "alice",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
			},
			wantErr: errs.ErrCannotCancelAfterOneHour,
		},
		{
			name:     "exactly one hour before",
			now:      at(17, 0),
			username: "alice",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name:     "blank reason",
			now:      at(12, 0),
			username: "alice",
			req:      model.ReservationCancelRequest{ReservationID: "10000001", CancelReason: " "},
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidInput,
		},
		{
			name:     "malformed id",
			now:      at(12, 0),
			username: "alice",
			req:      model.ReservationCancelRequest{ReservationID: "123", CancelReason: "x"},
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidReservationIDFormat,
		},
		{
			name:     "unknown reservation",
			now:      at(12, 0),
			username: "alice",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(model.Reservation{}, errs.ErrReservationNotFound)
			},
			wantErr: errs.ErrReservationNotFound,
		},
		{
			name:     "someone else's reservation",
			now:      at(12, 0),
			username: "mallory",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
			},
			wantErr: errs.ErrReservationOwnerMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, tt.now)
			tt.mock(m)

			got, err := svc.CancelReservation(context.Background(), tt.username, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Empty(t, got.PhoneNumber)
			require.Equal(t, "18:00", got.ReservationTime)
		})
	}
}

func TestReservationService_ApproveReservation(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	tests := []struct {
		name     string
		now      time.Time
		username string
		id       string
		mock     mockBehavior
		wantErr  error
	}{
		{
			name:     "ok",
			now:      at(12, 0),
			username: "bob",
			id:       "10000001",
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
				m.reservations.EXPECT().SetApproved(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name:     "malformed id",
			now:      at(12, 0),
			username: "bob",
			id:       "1000000x",
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidReservationIDFormat,
		},
		{
			name:     "not the restaurant owner",
			now:      at(12, 0),
			username: "alice",
			id:       "10000001",
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
			},
			wantErr: errs.ErrNotManager,
		},
		{
			name:     "slot already passed removes the reservation",
			now:      at(19, 0),
			username: "bob",
			id:       "10000001",
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
			wantErr: errs.ErrReservationTimePassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, tt.now)
			tt.mock(m)

			got, err := svc.ApproveReservation(context.Background(), tt.username, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "010-1234-5678", got.PhoneNumber)
		})
	}
}

func TestReservationService_RejectReservation(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	okReq := model.ReservationRejectRequest{ReservationID: "10000001", RejectReason: "fully booked"}

	tests := []struct {
		name     string
		now      time.Time
		username string
		req      model.ReservationRejectRequest
		mock     mockBehavior
		wantErr  error
	}{
		{
			name:     "ok",
			now:      at(12, 0),
			username: "bob",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name:     "blank reason",
			now:      at(12, 0),
			username: "bob",
			req:      model.ReservationRejectRequest{ReservationID: "10000001"},
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidInput,
		},
		{
			name:     "malformed id",
			now:      at(12, 0),
			username: "bob",
			req:      model.ReservationRejectRequest{ReservationID: "10-00001", RejectReason: "x"},
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidInput,
		},
		{
			name:     "not the restaurant owner",
			now:      at(12, 0),
			username: "mallory",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
			},
			wantErr: errs.ErrNotManager,
		},
		{
			name:     "slot already passed removes the reservation",
			now:      at(18, 30),
			username: "bob",
			req:      okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
				m.restaurants.EXPECT().GetRestaurantByID(gomock.Any(), testRestaurant.ID).Return(testRestaurant, nil)
				m.reservations.EXPECT().DeleteReservation(gomock.Any(), int64(10000001)).Return(nil)
			},
			wantErr: errs.ErrReservationTimePassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, tt.now)
			tt.mock(m)

			got, err := svc.RejectReservation(context.Background(), tt.username, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Empty(t, got.PhoneNumber)
		})
	}
}

func TestReservationService_VisitReservation(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	okReq := model.ReservationVisitRequest{
		Username:       "alice",
		ReservationID:  "10000001",
		RestaurantName: "Bistro",
	}

	tests := []struct {
		name    string
		now     time.Time
		req     model.ReservationVisitRequest
		mock    mockBehavior
		wantErr error
	}{
		{
			name: "ok five minutes early",
			now:  at(17, 55),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
				m.reservations.EXPECT().SetVisited(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name: "ok at the slot",
			now:  at(18, 0),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
				m.reservations.EXPECT().SetVisited(gomock.Any(), int64(10000001)).Return(nil)
			},
		},
		{
			name: "too early",
			now:  at(17, 45),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
			wantErr: errs.ErrInvalidVisitTime,
		},
		{
			name: "too late",
			now:  at(18, 1),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
			wantErr: errs.ErrInvalidVisitTime,
		},
		{
			name: "not yet approved",
			now:  at(17, 55),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, false), nil)
			},
			wantErr: errs.ErrInvalidReservationStatus,
		},
		{
			name:    "malformed id",
			now:     at(17, 55),
			req:     model.ReservationVisitRequest{Username: "alice", ReservationID: "abc", RestaurantName: "Bistro"},
			mock:    func(m reservationMocks) {},
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:    "blank restaurant name",
			now:     at(17, 55),
			req:     model.ReservationVisitRequest{Username: "alice", ReservationID: "10000001"},
			mock:    func(m reservationMocks) {},
			wantErr: errs.ErrInvalidInput,
		},
		{
			name: "unknown reservation",
			now:  at(17, 55),
			req:  okReq,
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(model.Reservation{}, errs.ErrReservationNotFound)
			},
			wantErr: errs.ErrReservationNotFound,
		},
		{
			name: "reservation held by another user",
			now:  at(17, 55),
			req:  model.ReservationVisitRequest{Username: "mallory", ReservationID: "10000001", RestaurantName: "Bistro"},
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
			wantErr: errs.ErrInvalidUser,
		},
		{
			name: "restaurant does not match",
			now:  at(17, 55),
			req:  model.ReservationVisitRequest{Username: "alice", ReservationID: "10000001", RestaurantName: "Diner"},
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
			wantErr: errs.ErrInvalidRestaurant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, tt.now)
			tt.mock(m)

			got, err := svc.VisitReservation(context.Background(), tt.req.Username, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Empty(t, got.PhoneNumber)
		})
	}
}

func TestReservationService_GetReservationDetail(t *testing.T) {
	type mockBehavior func(m reservationMocks)

	tests := []struct {
		name     string
		username string
		id       string
		mock     mockBehavior
		wantErr  error
	}{
		{
			name:     "ok",
			username: "alice",
			id:       "10000001",
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
		},
		{
			name:     "malformed id",
			username: "alice",
			id:       "10000001x",
			mock:     func(m reservationMocks) {},
			wantErr:  errs.ErrInvalidReservationIDFormat,
		},
		{
			name:     "another user's reservation",
			username: "mallory",
			id:       "10000001",
			mock: func(m reservationMocks) {
				m.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(10000001)).Return(testReservation(18, true), nil)
			},
			wantErr: errs.ErrInvalidUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newReservationService(t, at(12, 0))
			tt.mock(m)

			got, err := svc.GetReservationDetail(context.Background(), tt.username, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "010-1234-5678", got.PhoneNumber)
			require.Equal(t, "18:00", got.ReservationTime)
		})
	}
}

func TestReservationService_GetRestaurantReservations(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, m := newReservationService(t, at(12, 0))
		m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)
		m.reservations.EXPECT().ListByRestaurant(gomock.Any(), testRestaurant.ID, 1, 10).
			Return([]model.Reservation{testReservation(18, false)}, 1, nil)

		got, err := svc.GetRestaurantReservations(context.Background(), "bob", "Bistro", 1, 10)
		require.NoError(t, err)
		require.Equal(t, 1, got.TotalElements)
		require.Len(t, got.Items, 1)
		require.Equal(t, "010-1234-5678", got.Items[0].PhoneNumber)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc, m := newReservationService(t, at(12, 0))
		m.restaurants.EXPECT().GetRestaurantByName(gomock.Any(), "Bistro").Return(testRestaurant, nil)

		_, err := svc.GetRestaurantReservations(context.Background(), "alice", "Bistro", 1, 10)
		require.ErrorIs(t, err, errs.ErrInvalidUser)
	})
}

func TestReservationService_GetUserReservations(t *testing.T) {
	t.Run("ok without phone numbers", func(t *testing.T) {
		svc, m := newReservationService(t, at(12, 0))
		m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(testUser, nil)
		m.reservations.EXPECT().ListByUser(gomock.Any(), testUser.ID, 1, 10).
			Return([]model.Reservation{testReservation(18, false)}, 1, nil)

		got, err := svc.GetUserReservations(context.Background(), "alice", 1, 10)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		require.Empty(t, got.Items[0].PhoneNumber)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newReservationService(t, at(12, 0))
		m.users.EXPECT().GetUserByUsername(gomock.Any(), "alice").Return(model.User{}, errs.ErrUserNotFound)

		_, err := svc.GetUserReservations(context.Background(), "alice", 1, 10)
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
