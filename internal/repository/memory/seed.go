package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"rentit-backend/internal/domain"
)

// Seed loads the demo dataset the original marketplace shipped with: a few
// users per role, a mixed vehicle fleet, drivers in every verification
// state, and bookings across the whole lifecycle. Every demo account uses
// the given password.
func Seed(ctx context.Context, s *Store, demoPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing demo password: %w", err)
	}

	users := []*domain.User{
		{Name: "Ram", Email: "person@gmail.com", Mobile: "9876543210", Role: domain.RoleUser},
		{Name: "Arjun Sharma", Email: "arjun@example.com", Mobile: "9123456789", Role: domain.RoleUser},
		{Name: "Pravin", Email: "owner@rentit.com", Mobile: "9000011111", Role: domain.RoleOwner},
		{Name: "Vikram Singh", Email: "vikram@example.com", Mobile: "9000022222", Role: domain.RoleOwner},
		{Name: "Admin", Email: "admin@rentit.com", Mobile: "1001001001", Role: domain.RoleAdmin},
		{Name: "Ravi Kumar", Email: "ravi@gmail.com", Mobile: "9988776655", Role: domain.RoleDriver},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		if err := s.Users().Create(ctx, u); err != nil {
			return err
		}
	}
	ram, pravin, vikram, raviUser := users[0], users[2], users[3], users[5]

	drivers := []*domain.Driver{
		{UserID: raviUser.ID, Name: "Ravi Kumar", Email: "ravi@gmail.com", Mobile: "9988776655", ExperienceYears: 7, Rating: 4.9,
			LicenseURL: "LIC-123", AadharURL: "AAD-123", IsVerified: true,
			Verification: domain.VerificationVerified, Availability: true},
		{Name: "Suresh Menon", Email: "suresh@gmail.com", Mobile: "8877665544", ExperienceYears: 10, Rating: 4.8,
			LicenseURL: "LIC-456", AadharURL: "AAD-456", IsVerified: true,
			Verification: domain.VerificationVerified, Availability: false},
		{Name: "Karthik Raja", Email: "karthik@gmail.com", Mobile: "7766554433", ExperienceYears: 3, Rating: 4.6,
			LicenseURL: "LIC-789", AadharURL: "AAD-789", IsVerified: true,
			Verification: domain.VerificationVerified, Availability: true},
		{Name: "New Driver Request", Email: "newdriver@example.com", Mobile: "9999999999", ExperienceYears: 1,
			LicenseURL: "PENDING-LIC", Verification: domain.VerificationPending},
	}
	for _, d := range drivers {
		if err := s.Drivers().Create(ctx, d); err != nil {
			return err
		}
	}
	ravi := drivers[0]

	vehicles := []*domain.Vehicle{
		{OwnerID: pravin.ID, Make: "Maruti Suzuki", Model: "Swift Dzire", Year: 2022, Type: domain.VehicleTypeCar,
			SeatingCapacity: 5, PricePerDayInr: 1800, Location: "Chennai, TN",
			Status: domain.VehicleStatusAvailable, Verification: domain.VerificationVerified,
			Registration: "TN-07-CQ-1234", InsuranceExpiry: "2025-08-15"},
		{OwnerID: pravin.ID, Make: "Mahindra", Model: "Scorpio", Year: 2021, Type: domain.VehicleTypeSUV,
			SeatingCapacity: 7, PricePerDayInr: 2500, Location: "Coimbatore, TN",
			Status: domain.VehicleStatusInService, Verification: domain.VerificationVerified,
			Registration: "TN-38-P-5678", InsuranceExpiry: "2025-06-20",
			ServiceStartDate: "2024-08-20", ServiceEndDate: "2024-08-25",
			ServiceDetails: "General check-up and oil change."},
		{OwnerID: vikram.ID, Make: "Bajaj RE", Model: "Compact", Year: 2023, Type: domain.VehicleTypeAutoRickshaw,
			SeatingCapacity: 3, PricePerDayInr: 800, Location: "Madurai, TN",
			Status: domain.VehicleStatusAvailable, Verification: domain.VerificationVerified,
			Registration: "TN-58-AZ-4321", InsuranceExpiry: "2026-05-10"},
		{OwnerID: vikram.ID, Make: "Royal Enfield", Model: "Classic 350", Year: 2023, Type: domain.VehicleTypeBike,
			SeatingCapacity: 2, PricePerDayInr: 1500, Location: "Chennai, TN",
			Status: domain.VehicleStatusAvailable, Verification: domain.VerificationVerified,
			Registration: "TN-09-BU-9876", InsuranceExpiry: "2026-01-30"},
		{OwnerID: pravin.ID, Make: "Force", Model: "Traveller 3050", Year: 2023, Type: domain.VehicleTypeTempoTraveller,
			SeatingCapacity: 12, PricePerDayInr: 3000, Location: "Tiruchirappalli, TN",
			Status: domain.VehicleStatusAvailable, Verification: domain.VerificationVerified,
			Registration: "TN-45-F-7890", InsuranceExpiry: "2026-03-22"},
		{OwnerID: pravin.ID, Make: "Hyundai", Model: "Creta", Year: 2024, Type: domain.VehicleTypeSUV,
			SeatingCapacity: 5, PricePerDayInr: 3000, Location: "Chennai",
			Status: domain.VehicleStatusAvailable, Verification: domain.VerificationPending,
			Registration: "TN-NEW-01", InsuranceExpiry: "2026-01-01",
			RCDocumentURL: "doc_rc_313.pdf", InsuranceDocURL: "doc_ins_313.pdf"},
	}
	for _, v := range vehicles {
		if err := s.Vehicles().Create(ctx, v); err != nil {
			return err
		}
	}
	dzire := vehicles[0]

	completed := &domain.Booking{
		Reference: "RNT-DEMO-401", UserID: ram.ID, VehicleID: &dzire.ID, DriverID: &ravi.ID,
		StartDate: "2024-08-01", StartTime: "10:00", EndDate: "2024-08-03", EndTime: "18:00",
		TotalCostInr: 10500, Status: domain.BookingStatusCompleted,
		PickupLocation: "Adyar, Chennai", DropoffLocation: "Velachery, Chennai",
		DistanceKm: 15, WithDriver: true,
	}
	pendingHire := &domain.Booking{
		Reference: "RNT-DEMO-403", UserID: ram.ID, DriverID: &drivers[1].ID,
		StartDate: "2024-08-15", StartTime: "14:00", EndDate: "2024-08-15", EndTime: "19:00",
		TotalCostInr: 2000, Status: domain.BookingStatusPending,
		PickupLocation: "T. Nagar, Chennai", DropoffLocation: "Chennai International Airport",
		DistanceKm: 12, WithDriver: true,
	}
	for _, b := range []*domain.Booking{completed, pendingHire} {
		if err := s.Bookings().Create(ctx, b); err != nil {
			return err
		}
	}

	review := &domain.Review{
		BookingID: completed.ID, ReviewerID: ram.ID, Rating: 5,
		Comment: "Excellent driving and very polite behavior. Highly recommended!",
	}
	if err := s.Reviews().Create(ctx, review); err != nil {
		return err
	}

	complaint := &domain.Complaint{
		ReporterID: ram.ID, ReporterRole: domain.RoleUser, BookingID: completed.ID,
		Subject:     "Vehicle was not clean",
		Description: "The interior of the car was dusty and had trash from the previous rider.",
		Status:      domain.ComplaintStatusOpen,
	}
	return s.Complaints().Create(ctx, complaint)
}
