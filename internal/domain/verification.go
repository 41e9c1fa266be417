package domain

// VerificationStatus tracks onboarding review for vehicles and drivers.
// Pending is the only initial state; Verified and Rejected are terminal.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationRejected VerificationStatus = "Rejected"
)

// EntityKind discriminates what a verification decision refers to.
type EntityKind string

const (
	EntityKindVehicle EntityKind = "vehicle"
	EntityKindDriver  EntityKind = "driver"
)

// CanVerificationTransition reports whether from -> to is a permitted
// verification change. Only Pending entities can be decided; there is no
// path back out of Verified or Rejected.
func CanVerificationTransition(from, to VerificationStatus) bool {
	if from != VerificationPending {
		return false
	}
	return to == VerificationVerified || to == VerificationRejected
}
