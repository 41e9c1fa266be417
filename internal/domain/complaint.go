package domain

type ComplaintStatus string

const (
	ComplaintStatusOpen       ComplaintStatus = "Open"
	ComplaintStatusInProgress ComplaintStatus = "In Progress"
	ComplaintStatusResolved   ComplaintStatus = "Resolved"
)

type Complaint struct {
	ID           int64           `json:"id"`
	ReporterID   int64           `json:"reporter_id"`
	ReporterRole Role            `json:"reporter_role"`
	BookingID    int64           `json:"booking_id"`
	Subject      string          `json:"subject"`
	Description  string          `json:"description"`
	Status       ComplaintStatus `json:"status"`
	CreatedOn    string          `json:"created_on"`
	UpdatedOn    string          `json:"updated_on"`
}
