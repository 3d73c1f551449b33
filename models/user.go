package models

// Identity is the user profile returned by the auth service on a successful
// status check, login or signup.
type Identity struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	IsAdmin      bool   `json:"is_admin"`
	IsSeller     bool   `json:"is_seller"`
	ProfileImage string `json:"profile_image,omitempty"` // base64-encoded image data
	LastLogin    string `json:"last_login,omitempty"`
}

// Valid reports whether the identity carries a usable id. The auth service
// occasionally returns partial payloads; those are never trusted.
func (i *Identity) Valid() bool {
	return i != nil && i.ID > 0
}
