package domain

type Role string

const (
	RoleUser   Role = "User"
	RoleDriver Role = "Driver"
	RoleOwner  Role = "Vehicle Owner"
	RoleAdmin  Role = "Admin"
)

type User struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Mobile            string `json:"mobile,omitempty"`
	Role              Role   `json:"role"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	PasswordHash      string `json:"-"`
	CreatedOn         string `json:"created_on"`
}
