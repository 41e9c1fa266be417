package pricing

import (
	"math"
	"time"

	"rentit-backend/internal/domain"
)

// Fare constants, in INR.
const (
	DistanceRatePerKm   = 10.0
	DriverFeePerDay     = 800.0
	ExtraSeatFeePerDay  = 100.0
	baseSeatingCapacity = 5
)

// typeMultipliers adjusts the base rent per vehicle type. The adjustment is
// accumulated as a surcharge (base * (m - 1)), never compounded into the
// base rent itself, so a Bike's 0.9 shows up as a negative surcharge.
var typeMultipliers = map[domain.VehicleType]float64{
	domain.VehicleTypeSUV:            1.15,
	domain.VehicleTypeTruck:          1.25,
	domain.VehicleTypeLorry:          1.4,
	domain.VehicleTypeContainerLorry: 1.4,
	domain.VehicleTypeTempoTraveller: 1.3,
	domain.VehicleTypeBike:           0.9,
}

// TypeMultiplier returns the rent multiplier for a vehicle type. Types
// without a configured multiplier (Car, Van, Auto Rickshaw) rent at 1.0.
func TypeMultiplier(t domain.VehicleType) float64 {
	if m, ok := typeMultipliers[t]; ok {
		return m
	}
	return 1.0
}

// FareBreakdown itemizes a fare estimate. All values keep fractional
// precision; only the stored booking total is rounded, via TotalInr.
type FareBreakdown struct {
	BaseRent       float64 `json:"base_rent"`
	DistanceCharge float64 `json:"distance_charge"`
	DriverFee      float64 `json:"driver_fee"`
	Surcharges     float64 `json:"surcharges"`
	Total          float64 `json:"total"`
}

// TotalInr is the amount stored on the booking: the total rounded to the
// nearest rupee.
func (f FareBreakdown) TotalInr() int64 {
	return int64(math.Round(f.Total))
}

// CalculateFare derives an itemized fare from a vehicle's rate and type, a
// date-time range, an estimated distance and a driver-hire flag. It is pure:
// same inputs always produce the same breakdown.
//
// Duration is fractional with no minimum-one-day floor: a 3-hour rental
// bills 0.125 days.
func CalculateFare(vehicle *domain.Vehicle, start, end time.Time, distanceKm float64, withDriver bool) (FareBreakdown, error) {
	if !end.After(start) {
		return FareBreakdown{}, domain.ErrInvalidRange
	}

	durationDays := end.Sub(start).Hours() / 24

	baseRent := vehicle.PricePerDayInr * durationDays
	distanceCharge := distanceKm * DistanceRatePerKm

	var driverFee float64
	if withDriver {
		driverFee = DriverFeePerDay * durationDays
	}

	surcharges := baseRent * (TypeMultiplier(vehicle.Type) - 1)
	if vehicle.SeatingCapacity > baseSeatingCapacity {
		surcharges += float64(vehicle.SeatingCapacity-baseSeatingCapacity) * ExtraSeatFeePerDay * durationDays
	}

	return FareBreakdown{
		BaseRent:       baseRent,
		DistanceCharge: distanceCharge,
		DriverFee:      driverFee,
		Surcharges:     surcharges,
		Total:          baseRent + distanceCharge + driverFee + surcharges,
	}, nil
}

// CalculateDriverHireFare prices a driver-only hire (no vehicle): the daily
// driver fee over the fractional duration plus the distance charge.
func CalculateDriverHireFare(start, end time.Time, distanceKm float64) (FareBreakdown, error) {
	if !end.After(start) {
		return FareBreakdown{}, domain.ErrInvalidRange
	}

	durationDays := end.Sub(start).Hours() / 24
	driverFee := DriverFeePerDay * durationDays
	distanceCharge := distanceKm * DistanceRatePerKm

	return FareBreakdown{
		DistanceCharge: distanceCharge,
		DriverFee:      driverFee,
		Total:          driverFee + distanceCharge,
	}, nil
}
