package auth

import (
	"time"

	"github.com/brasadourada/brasa-backend/pkg/db/models"
	"github.com/google/uuid"
)

// UserDTO is the account payload returned to clients. The password hash
// never leaves the service.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SessionDTO bundles the freshly minted credential pair.
type SessionDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthResultDTO is the combined response for register, login, and refresh.
type AuthResultDTO struct {
	User    UserDTO    `json:"user"`
	Session SessionDTO `json:"session"`
}

// NewUserDTO builds a DTO from the persisted model.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Role:        string(user.Role),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
