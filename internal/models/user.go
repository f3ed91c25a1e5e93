package models

// Profile is the single on-device user account.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	// Password is only populated when the OS keyring is unavailable and the
	// credential has to fall back to plain storage.
	Password string `json:"password,omitempty"`
	// CreatedAt is an RFC 3339 timestamp set at registration.
	CreatedAt string `json:"createdAt"`
}

// Session records the logged-in state. ID is a fresh UUID per login so log
// lines from different sessions can be told apart.
type Session struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	LoggedInAt string `json:"loggedInAt"`
}
