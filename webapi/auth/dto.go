package auth

// SignupInput represents the request body for account creation.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Phone     string `json:"phone" validate:"required,max=32"`
	Easypaisa string `json:"easypaisa" validate:"required,max=64"`
	Password  string `json:"password" validate:"required,max=72"`
}

// LoginInput represents the request body for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput represents the request body for password rotation.
// Ownership is proven by the current credential, not by session.
type ChangePasswordInput struct {
	Email           string `json:"email" validate:"required"`
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,max=72"`
}
