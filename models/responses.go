package models

// TokenResponse is the body of a successful GET /token call.
// Duration is the token's validity window in whole seconds.
type TokenResponse struct {
	Token    string `json:"token"`
	Duration int64  `json:"duration"`
}

// MessageResponse confirms a successful record mutation,
// e.g. {"message": "created: /record/SW1A1AA"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UserResponse is the body of GET /users/{id}.
type UserResponse struct {
	Username string `json:"username"`
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeleteRequest is the body of DELETE /postcode.
type DeleteRequest struct {
	Postcode string `json:"postcode"`
}
