package domain

// User is the authenticated identity returned by the remote API.
type User struct {
	ID           int64  `json:"id"`
	UserName     string `json:"userName"`
	Email        string `json:"email"`
	RegisterTime string `json:"registerTime"`
}

// CreateUser is the registration payload.
type CreateUser struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserName  string `json:"userName"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
