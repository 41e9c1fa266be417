package domain

type VehicleType string

const (
	VehicleTypeCar            VehicleType = "Car"
	VehicleTypeBike           VehicleType = "Bike"
	VehicleTypeVan            VehicleType = "Van"
	VehicleTypeTruck          VehicleType = "Truck"
	VehicleTypeSUV            VehicleType = "SUV"
	VehicleTypeAutoRickshaw   VehicleType = "Auto Rickshaw"
	VehicleTypeTempoTraveller VehicleType = "Tempo Traveller"
	VehicleTypeLorry          VehicleType = "Lorry"
	VehicleTypeContainerLorry VehicleType = "Container Lorry"
)

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "Available"
	VehicleStatusBooked    VehicleStatus = "Booked"
	VehicleStatusInService VehicleStatus = "In Service"
)

type Vehicle struct {
	ID              int64              `json:"id"`
	OwnerID         int64              `json:"owner_id"`
	Make            string             `json:"make"`
	Model           string             `json:"model"`
	Year            int32              `json:"year"`
	Type            VehicleType        `json:"type"`
	SeatingCapacity int32              `json:"seating_capacity"`
	PricePerDayInr  float64            `json:"price_per_day_inr"`
	Location        string             `json:"location"`
	Status          VehicleStatus      `json:"status"`
	Verification    VerificationStatus `json:"verification_status"`
	Registration    string             `json:"registration"`
	ImageURL        string             `json:"image_url,omitempty"`
	RCDocumentURL   string             `json:"rc_document_url,omitempty"`
	InsuranceDocURL string             `json:"insurance_document_url,omitempty"`
	InsuranceExpiry string             `json:"insurance_expiry"` // YYYY-MM-DD
	// Service window, set by the owner while the vehicle is In Service.
	ServiceStartDate string `json:"service_start_date,omitempty"` // YYYY-MM-DD
	ServiceEndDate   string `json:"service_end_date,omitempty"`   // YYYY-MM-DD
	ServiceDetails   string `json:"service_details,omitempty"`
	CreatedOn        string `json:"created_on"`
	UpdatedOn        string `json:"updated_on"`
}

// Rentable reports whether the vehicle may be offered to renters. Anything
// not verified, or not currently Available, must never appear in inventory.
func (v *Vehicle) Rentable() bool {
	return v.Verification == VerificationVerified && v.Status == VehicleStatusAvailable
}
