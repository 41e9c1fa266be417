package jobs

import (
	"context"
	"fmt"
	"time"

	"rentit-backend/internal/domain"
	"rentit-backend/internal/logger"
)

const dateLayout = "2006-01-02"

// ReleaseServicedVehicles returns In Service vehicles whose service window
// has ended to the Available pool and clears the window.
func (jr *JobRunner) ReleaseServicedVehicles() {
	jr.runWithRecovery("ReleaseServicedVehicles", func() {
		ctx := context.Background()
		today := time.Now().Format(dateLayout)

		vehicles, err := jr.vehicleRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles", "error", err)
			return
		}

		count := 0
		for i := range vehicles {
			v := &vehicles[i]
			if v.Status != domain.VehicleStatusInService {
				continue
			}
			if v.ServiceEndDate == "" || v.ServiceEndDate >= today {
				continue
			}

			v.Status = domain.VehicleStatusAvailable
			v.ServiceStartDate = ""
			v.ServiceEndDate = ""
			v.ServiceDetails = ""
			if err := jr.vehicleRepo.Update(ctx, v); err != nil {
				logger.Error("Failed to release vehicle", "vehicle_id", v.ID, "error", err)
				continue
			}
			logger.Debug("Released vehicle from service", "vehicle_id", v.ID)
			count++
		}

		logger.Info("Released serviced vehicles", "count", count)
	})
}

// SendInsuranceExpiryReminders emails owners whose vehicle insurance
// expires within the configured window.
func (jr *JobRunner) SendInsuranceExpiryReminders() {
	jr.runWithRecovery("SendInsuranceExpiryReminders", func() {
		ctx := context.Background()
		today := time.Now().Format(dateLayout)
		cutoff := time.Now().AddDate(0, 0, jr.config.Scheduler.InsuranceReminderDays).Format(dateLayout)

		vehicles, err := jr.vehicleRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles", "error", err)
			return
		}

		count := 0
		for i := range vehicles {
			v := &vehicles[i]
			if v.InsuranceExpiry == "" {
				continue
			}
			if v.InsuranceExpiry < today || v.InsuranceExpiry > cutoff {
				continue
			}

			owner, err := jr.userRepo.GetByID(ctx, v.OwnerID)
			if err != nil {
				logger.Error("Failed to load vehicle owner", "vehicle_id", v.ID, "owner_id", v.OwnerID, "error", err)
				continue
			}

			name := fmt.Sprintf("%s %s (%s)", v.Make, v.Model, v.Registration)
			if err := jr.emailSvc.SendInsuranceExpiryReminder(ctx, owner.Email, owner.Name, name, v.InsuranceExpiry); err != nil {
				logger.Error("Failed to send insurance reminder", "vehicle_id", v.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent insurance expiry reminders", "count", count)
	})
}
