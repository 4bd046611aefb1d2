package models

// RegisterRequest carries the fields of a new account.
// Email is optional; an empty string means "not provided".
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username,excludes=@"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginRequest carries credentials for a login attempt.
// UsernameOrEmail is treated as an e-mail address when it contains "@".
type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// ForgotPasswordRequest asks for a reset link to be mailed to Email.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest sets a new password using a previously mailed token.
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,password"`
}
