package models

// User carries no credential material; the password is checked against a
// stored hash during login and never retained afterwards.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthState is the session snapshot: the signed-in user (if any), the
// wishlist as an ordered set of product ids, and the order history with
// the most recent order first.
type AuthState struct {
	User            *User    `json:"user"`
	IsAuthenticated bool     `json:"is_authenticated"`
	IsLoading       bool     `json:"is_loading"`
	Wishlist        []string `json:"wishlist"`
	Orders          []Order  `json:"orders"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
