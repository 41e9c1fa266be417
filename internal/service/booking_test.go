package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rentit-backend/internal/domain"
)

func rentableVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:              7,
		OwnerID:         10,
		Make:            "Maruti",
		Model:           "Swift Dzire",
		Type:            domain.VehicleTypeCar,
		SeatingCapacity: 5,
		PricePerDayInr:  1800,
		Status:          domain.VehicleStatusAvailable,
		Verification:    domain.VerificationVerified,
	}
}

func twoDayWindow() FareRequest {
	return FareRequest{
		StartDate: "2026-03-01",
		StartTime: "10:00",
		EndDate:   "2026-03-03",
		EndTime:   "10:00",
	}
}

func TestBookingService_CreateVehicleBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewBookingService(bookingRepo, vehicleRepo, new(MockDriverRepo), userRepo, emailSvc)

		vehicle := rentableVehicle()
		vehicleRepo.On("GetByID", ctx, int64(7)).Return(vehicle, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.ID == 7 && v.Status == domain.VehicleStatusBooked
		})).Return(nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ram", Email: "ram@test.com"}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, "ram@test.com", "Ram", mock.Anything, int64(3600)).Return(nil)

		booking, err := svc.CreateVehicleBooking(ctx, BookingRequest{
			UserID:    1,
			VehicleID: 7,
			Fare:      twoDayWindow(),
		})
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, int64(3600), booking.TotalCostInr) // 1800/day * 2 days
		require.NotNil(t, booking.VehicleID)
		assert.Equal(t, int64(7), *booking.VehicleID)
		assert.NotEmpty(t, booking.Reference)
		vehicleRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Unverified vehicle", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(new(MockBookingRepo), vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		vehicle := rentableVehicle()
		vehicle.Verification = domain.VerificationPending
		vehicleRepo.On("GetByID", ctx, int64(7)).Return(vehicle, nil)

		_, err := svc.CreateVehicleBooking(ctx, BookingRequest{UserID: 1, VehicleID: 7, Fare: twoDayWindow()})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})

	t.Run("Already booked", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(new(MockBookingRepo), vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		vehicle := rentableVehicle()
		vehicle.Status = domain.VehicleStatusBooked
		vehicleRepo.On("GetByID", ctx, int64(7)).Return(vehicle, nil)

		_, err := svc.CreateVehicleBooking(ctx, BookingRequest{UserID: 1, VehicleID: 7, Fare: twoDayWindow()})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})

	t.Run("Inverted window", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(new(MockBookingRepo), vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		vehicleRepo.On("GetByID", ctx, int64(7)).Return(rentableVehicle(), nil)

		fare := twoDayWindow()
		fare.EndDate = "2026-02-28"
		_, err := svc.CreateVehicleBooking(ctx, BookingRequest{UserID: 1, VehicleID: 7, Fare: fare})
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
	})

	t.Run("Malformed date", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(new(MockBookingRepo), vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		vehicleRepo.On("GetByID", ctx, int64(7)).Return(rentableVehicle(), nil)

		fare := twoDayWindow()
		fare.StartDate = "01-03-2026"
		_, err := svc.CreateVehicleBooking(ctx, BookingRequest{UserID: 1, VehicleID: 7, Fare: fare})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBookingService_CreateDriverHire(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		driverRepo := new(MockDriverRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), driverRepo, userRepo, emailSvc)

		driver := &domain.Driver{ID: 4, Name: "Ravi", Email: "ravi@test.com", Availability: true}
		driver.SetVerification(domain.VerificationVerified)
		driverRepo.On("GetByID", ctx, int64(4)).Return(driver, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ram", Email: "ram@test.com"}, nil)
		emailSvc.On("SendHireRequest", ctx, "ravi@test.com", "Ravi", "Ram", mock.Anything).Return(nil)

		fare := twoDayWindow()
		fare.DistanceKm = 50
		booking, err := svc.CreateDriverHire(ctx, BookingRequest{UserID: 1, DriverID: 4, Fare: fare})
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		// 800/day * 2 days + 50 km * 10/km
		assert.Equal(t, int64(2100), booking.TotalCostInr)
		assert.True(t, booking.WithDriver)
		require.NotNil(t, booking.DriverID)
		assert.Equal(t, int64(4), *booking.DriverID)
		emailSvc.AssertExpectations(t)
	})

	t.Run("Driver engaged", func(t *testing.T) {
		driverRepo := new(MockDriverRepo)
		svc := NewBookingService(new(MockBookingRepo), new(MockVehicleRepo), driverRepo, new(MockUserRepo), new(MockEmailService))

		driver := &domain.Driver{ID: 4, Availability: false}
		driver.SetVerification(domain.VerificationVerified)
		driverRepo.On("GetByID", ctx, int64(4)).Return(driver, nil)

		_, err := svc.CreateDriverHire(ctx, BookingRequest{UserID: 1, DriverID: 4, Fare: twoDayWindow()})
		assert.ErrorIs(t, err, domain.ErrNotAvailable)
	})
}

func TestBookingService_RespondToHire(t *testing.T) {
	ctx := context.Background()
	driverID := int64(4)

	pendingHire := func() *domain.Booking {
		id := driverID
		return &domain.Booking{
			ID:        21,
			Reference: "RNT-TEST01",
			UserID:    1,
			DriverID:  &id,
			Status:    domain.BookingStatusPending,
		}
	}

	t.Run("Accept", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		driverRepo := new(MockDriverRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), driverRepo, userRepo, emailSvc)

		bookingRepo.On("GetByID", ctx, int64(21)).Return(pendingHire(), nil)
		bookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusConfirmed
		})).Return(nil)
		driver := &domain.Driver{ID: driverID, Availability: true}
		driver.SetVerification(domain.VerificationVerified)
		driverRepo.On("GetByID", ctx, driverID).Return(driver, nil)
		driverRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Driver) bool {
			return !d.Availability
		})).Return(nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ram", Email: "ram@test.com"}, nil)
		emailSvc.On("SendHireDecision", ctx, "ram@test.com", "Ram", "RNT-TEST01", true).Return(nil)

		booking, err := svc.RespondToHire(ctx, driverID, 21, domain.BookingDecisionAccept)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
		driverRepo.AssertExpectations(t)
	})

	t.Run("Decline", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		userRepo := new(MockUserRepo)
		emailSvc := new(MockEmailService)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), userRepo, emailSvc)

		bookingRepo.On("GetByID", ctx, int64(21)).Return(pendingHire(), nil)
		bookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusCancelled
		})).Return(nil)
		userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Name: "Ram", Email: "ram@test.com"}, nil)
		emailSvc.On("SendHireDecision", ctx, "ram@test.com", "Ram", "RNT-TEST01", false).Return(nil)

		booking, err := svc.RespondToHire(ctx, driverID, 21, domain.BookingDecisionDecline)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	})

	t.Run("Wrong driver", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int64(21)).Return(pendingHire(), nil)

		_, err := svc.RespondToHire(ctx, int64(99), 21, domain.BookingDecisionAccept)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Already decided", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		booking := pendingHire()
		booking.Status = domain.BookingStatusConfirmed
		bookingRepo.On("GetByID", ctx, int64(21)).Return(booking, nil)

		_, err := svc.RespondToHire(ctx, driverID, 21, domain.BookingDecisionAccept)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestBookingService_CompleteBooking(t *testing.T) {
	ctx := context.Background()
	vehicleID := int64(7)

	confirmedBooking := func() *domain.Booking {
		id := vehicleID
		return &domain.Booking{
			ID:        30,
			UserID:    1,
			VehicleID: &id,
			Status:    domain.BookingStatusConfirmed,
		}
	}

	t.Run("Owner completes and vehicle is released", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int64(30)).Return(confirmedBooking(), nil)
		vehicle := rentableVehicle()
		vehicle.Status = domain.VehicleStatusBooked
		vehicleRepo.On("GetByID", ctx, vehicleID).Return(vehicle, nil)
		bookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusCompleted
		})).Return(nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusAvailable
		})).Return(nil)

		booking, err := svc.CompleteBooking(ctx, int64(10), 30) // owner of vehicle 7
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("Assigned driver completes a hire", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		driverRepo := new(MockDriverRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), driverRepo, new(MockUserRepo), new(MockEmailService))

		driverID := int64(4)
		booking := confirmedBooking()
		booking.VehicleID = nil
		booking.DriverID = &driverID
		booking.WithDriver = true
		bookingRepo.On("GetByID", ctx, int64(30)).Return(booking, nil)
		// The actor is the driver's login account, not the driver entity.
		driverRepo.On("GetByUser", ctx, int64(2)).Return(&domain.Driver{ID: driverID, UserID: 2, Availability: false}, nil)
		driverRepo.On("GetByID", ctx, driverID).Return(&domain.Driver{ID: driverID, UserID: 2, Availability: false}, nil)
		bookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusCompleted
		})).Return(nil)
		driverRepo.On("Update", ctx, mock.MatchedBy(func(d *domain.Driver) bool {
			return d.Availability
		})).Return(nil)

		completed, err := svc.CompleteBooking(ctx, int64(2), 30)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, completed.Status)
		driverRepo.AssertExpectations(t)
	})

	t.Run("User id colliding with the driver entity id is not authorized", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		driverRepo := new(MockDriverRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), driverRepo, userRepo, new(MockEmailService))

		driverID := int64(4)
		booking := confirmedBooking()
		booking.VehicleID = nil
		booking.DriverID = &driverID
		bookingRepo.On("GetByID", ctx, int64(30)).Return(booking, nil)
		// User 4 shares a number with driver entity 4 but has no driver profile.
		driverRepo.On("GetByUser", ctx, int64(4)).Return(nil, domain.ErrNotFound)
		userRepo.On("GetByID", ctx, int64(4)).Return(&domain.User{ID: 4, Role: domain.RoleUser}, nil)

		_, err := svc.CompleteBooking(ctx, int64(4), 30)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Stranger may not complete", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, new(MockDriverRepo), userRepo, new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int64(30)).Return(confirmedBooking(), nil)
		vehicleRepo.On("GetByID", ctx, vehicleID).Return(rentableVehicle(), nil)
		userRepo.On("GetByID", ctx, int64(99)).Return(&domain.User{ID: 99, Role: domain.RoleUser}, nil)

		_, err := svc.CompleteBooking(ctx, int64(99), 30)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Pending booking cannot complete", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		booking := confirmedBooking()
		booking.Status = domain.BookingStatusPending
		booking.VehicleID = nil
		bookingRepo.On("GetByID", ctx, int64(30)).Return(booking, nil)

		_, err := svc.CompleteBooking(ctx, int64(1), 30) // renter is a party
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	ctx := context.Background()
	vehicleID := int64(7)

	confirmedBooking := func() *domain.Booking {
		id := vehicleID
		return &domain.Booking{
			ID:        31,
			UserID:    1,
			VehicleID: &id,
			Status:    domain.BookingStatusConfirmed,
		}
	}

	t.Run("Renter cancels", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int64(31)).Return(confirmedBooking(), nil)
		bookingRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
			return b.Status == domain.BookingStatusCancelled
		})).Return(nil)
		vehicle := rentableVehicle()
		vehicle.Status = domain.VehicleStatusBooked
		vehicleRepo.On("GetByID", ctx, vehicleID).Return(vehicle, nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusAvailable
		})).Return(nil)

		booking, err := svc.CancelBooking(ctx, int64(1), 31)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	})

	t.Run("Admin cancels for someone else", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		vehicleRepo := new(MockVehicleRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, vehicleRepo, new(MockDriverRepo), userRepo, new(MockEmailService))

		booking := confirmedBooking()
		booking.VehicleID = nil
		bookingRepo.On("GetByID", ctx, int64(31)).Return(booking, nil)
		userRepo.On("GetByID", ctx, int64(5)).Return(&domain.User{ID: 5, Role: domain.RoleAdmin}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		_, err := svc.CancelBooking(ctx, int64(5), 31)
		assert.NoError(t, err)
	})

	t.Run("Stranger may not cancel", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		userRepo := new(MockUserRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), userRepo, new(MockEmailService))

		bookingRepo.On("GetByID", ctx, int64(31)).Return(confirmedBooking(), nil)
		userRepo.On("GetByID", ctx, int64(99)).Return(&domain.User{ID: 99, Role: domain.RoleUser}, nil)

		_, err := svc.CancelBooking(ctx, int64(99), 31)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Completed booking is terminal", func(t *testing.T) {
		bookingRepo := new(MockBookingRepo)
		svc := NewBookingService(bookingRepo, new(MockVehicleRepo), new(MockDriverRepo), new(MockUserRepo), new(MockEmailService))

		booking := confirmedBooking()
		booking.Status = domain.BookingStatusCompleted
		bookingRepo.On("GetByID", ctx, int64(31)).Return(booking, nil)

		_, err := svc.CancelBooking(ctx, int64(1), 31)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}
