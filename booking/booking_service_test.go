package booking_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	bk "github.com/opencourt/court-booking-backend/booking"
	bk_mocks "github.com/opencourt/court-booking-backend/booking/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	svc := bk.NewService(repo)

	return ctrl, testDeps{repo: repo, service: svc, ctx: context.Background()}
}

func TestReserve(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	toInsert := bk.Booking{
		VenueID:     "venue1",
		CourtNumber: 2,
		StartTime:   start,
		EndTime:     end,
		UserID:      "user1",
		Amount:      500,
		Status:      "pending",
	}
	inserted := bk.Booking{
		ID:          "1",
		VenueID:     "venue1",
		CourtNumber: 2,
		StartTime:   start,
		EndTime:     end,
		UserID:      "user1",
		Amount:      500,
		Status:      "pending",
	}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, toInsert).Return(inserted, nil).Times(1)

		booked, err := testDeps.service.Reserve(testDeps.ctx, bk.Booking{
			VenueID:     "venue1",
			CourtNumber: 2,
			StartTime:   start,
			EndTime:     end,
			UserID:      "user1",
			Amount:      500,
		})

		require.Nil(t, err)

		if !reflect.DeepEqual(booked, inserted) {
			t.Fatalf("expected booking %#v, got %#v", inserted, booked)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Reserve(testDeps.ctx, bk.Booking{
			VenueID:     "venue1",
			CourtNumber: 2,
			StartTime:   end,
			EndTime:     start,
			UserID:      "user1",
		})

		require.ErrorIs(t, err, bk.ErrInvalidSlot)
	})

	t.Run("zero length slot", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.Reserve(testDeps.ctx, bk.Booking{
			VenueID:     "venue1",
			CourtNumber: 2,
			StartTime:   start,
			EndTime:     start,
			UserID:      "user1",
		})

		require.ErrorIs(t, err, bk.ErrInvalidSlot)
	})

	t.Run("slot taken", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, toInsert).Return(bk.Booking{}, bk.ErrSlotTaken).Times(1)

		_, err := testDeps.service.Reserve(testDeps.ctx, bk.Booking{
			VenueID:     "venue1",
			CourtNumber: 2,
			StartTime:   start,
			EndTime:     end,
			UserID:      "user1",
			Amount:      500,
		})

		require.ErrorIs(t, err, bk.ErrSlotTaken)
	})
}

func TestFindBookingByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", VenueID: "venue1", Status: "pending"}
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(b, nil).Times(1)

		got, err := testDeps.service.FindBookingByID(testDeps.ctx, "123")

		require.Nil(t, err)

		if !reflect.DeepEqual(got, b) {
			t.Fatalf("expected booking %#v, got %#v", b, got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := testDeps.service.FindBookingByID(testDeps.ctx, "123")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestListBookings(t *testing.T) {
	bookings := []bk.Booking{{ID: "1"}, {ID: "2"}}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		filter := bk.Filter{VenueID: "venue1"}
		testDeps.repo.EXPECT().ListBookings(testDeps.ctx, filter, 2, 20).Return(bookings, 42, nil).Times(1)

		got, total, err := testDeps.service.ListBookings(testDeps.ctx, filter, 2, 20)

		require.Nil(t, err)
		require.Equal(t, 42, total)
		require.Equal(t, 2, len(got))
	})

	t.Run("clamps page and limit", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().ListBookings(testDeps.ctx, bk.Filter{}, 1, 10).Return(bookings, 2, nil).Times(1)

		_, _, err := testDeps.service.ListBookings(testDeps.ctx, bk.Filter{}, 0, 1000)

		require.Nil(t, err)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().ListBookings(testDeps.ctx, bk.Filter{}, 1, 10).Return(nil, 0, errors.New("repo error")).Times(1)

		got, _, err := testDeps.service.ListBookings(testDeps.ctx, bk.Filter{}, 1, 10)

		require.Error(t, err)
		require.Equal(t, 0, len(got))
	})
}

func TestAcceptBooking(t *testing.T) {
	pending := bk.Booking{ID: "123", VenueID: "venue1", UserID: "user1", Status: "pending"}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, "123", "confirmed").Return(nil).Times(1)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "owner1")
		require.Nil(t, err)
	})

	t.Run("already confirmed", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", VenueID: "venue1", Status: "confirmed"}
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(b, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "owner1")
		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", VenueID: "venue1", Status: "cancelled"}
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(b, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "owner1")
		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("not the venue owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "someoneelse")
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("venue has no owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "owner1")
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("repo error GetBookingByID", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(bk.Booking{}, errors.New("repo error")).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.AcceptBooking(testDeps.ctx, "123", "owner1")
		require.Error(t, err)
	})
}

func TestRejectBooking(t *testing.T) {
	pending := bk.Booking{ID: "123", VenueID: "venue1", UserID: "user1", Status: "pending"}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, "123", "cancelled").Return(nil).Times(1)

		err := testDeps.service.RejectBooking(testDeps.ctx, "123", "owner1")
		require.Nil(t, err)
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", VenueID: "venue1", Status: "cancelled"}
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(b, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.RejectBooking(testDeps.ctx, "123", "owner1")
		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("not the venue owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.RejectBooking(testDeps.ctx, "123", "someoneelse")
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})
}

func TestCancelBooking(t *testing.T) {
	pending := bk.Booking{ID: "123", VenueID: "venue1", UserID: "user1", Status: "pending"}

	t.Run("success by booker", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, "123", "cancelled").Return(nil).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "123", "user1")
		require.Nil(t, err)
	})

	t.Run("success by venue owner", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, "123", "cancelled").Return(nil).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "123", "owner1")
		require.Nil(t, err)
	})

	t.Run("already cancelled is a no-op", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		b := bk.Booking{ID: "123", VenueID: "venue1", UserID: "user1", Status: "cancelled"}
		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(b, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.CancelBooking(testDeps.ctx, "123", "user1")
		require.Nil(t, err)
	})

	t.Run("not allowed", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().GetVenueOwner(testDeps.ctx, "venue1").Return("owner1", nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.CancelBooking(testDeps.ctx, "123", "stranger")
		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("repo error SetBookingStatus", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, "123").Return(pending, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, "123", "cancelled").Return(errors.New("repo error")).Times(1)

		err := testDeps.service.CancelBooking(testDeps.ctx, "123", "user1")
		require.Error(t, err)
	})
}
