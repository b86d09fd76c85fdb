// internal/domain/user/entity.go
package user

// UserType distinguishes shoppers from suppliers and administrators.
const (
	TypeCustomer = "customer"
	TypeSupplier = "supplier"
	TypeAdmin    = "admin"
)

// User represents an account as persisted in the users collection. The
// stored password is a bcrypt hash; it never leaves the service.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	UserType     string `json:"userType"`
}

// GetID implements jsonstore.Identifiable.
func (u User) GetID() int {
	return u.ID
}

// IsAdmin reports whether the account has administrative privileges.
func (u User) IsAdmin() bool {
	return u.UserType == TypeAdmin
}

// PublicUser is the account view returned to callers.
type PublicUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"userType"`
}

// Public returns the caller-facing view of the account.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		UserType: u.UserType,
	}
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated user and their token pair.
type LoginResponse struct {
	User         PublicUser `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}
