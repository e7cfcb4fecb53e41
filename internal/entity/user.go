package entity

// UserLoginData identifies the operator behind a verified access token.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
