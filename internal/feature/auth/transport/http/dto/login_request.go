package dto

// LoginReq represents the request body for the /auth/login endpoint.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
