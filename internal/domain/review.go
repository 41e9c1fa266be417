package domain

type Review struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"booking_id"`
	ReviewerID int64  `json:"reviewer_id"`
	Rating     int32  `json:"rating"` // 1-5
	Comment    string `json:"comment,omitempty"`
	CreatedOn  string `json:"created_on"`
}
