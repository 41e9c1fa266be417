package domain

type Driver struct {
	ID int64 `json:"id"`
	// UserID links the driver profile to its login account.
	UserID          int64   `json:"user_id,omitempty"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Mobile          string  `json:"mobile,omitempty"`
	ExperienceYears int32   `json:"experience_years"`
	Rating          float64 `json:"rating"` // 0.0 - 5.0
	LicenseURL      string  `json:"license_url"`
	AadharURL       string  `json:"aadhar_url,omitempty"`
	IDURL           string  `json:"id_url,omitempty"`
	// IsVerified is denormalized from Verification and must always equal
	// Verification == VerificationVerified. SetVerification maintains it.
	IsVerified   bool               `json:"is_verified"`
	Verification VerificationStatus `json:"verification_status"`
	Availability bool               `json:"availability"`
	CreatedOn    string             `json:"created_on"`
	UpdatedOn    string             `json:"updated_on"`
}

// Hireable reports whether the driver may be offered to renters: verified
// and currently toggled available.
func (d *Driver) Hireable() bool {
	return d.Verification == VerificationVerified && d.Availability
}

// SetVerification updates the verification status and keeps the
// denormalized IsVerified flag consistent with it.
func (d *Driver) SetVerification(status VerificationStatus) {
	d.Verification = status
	d.IsVerified = status == VerificationVerified
}
