package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/Saksham10-11/GSD/pkg/db/models"
)

// CreateUserDTO carries the validated fields needed to persist a new user.
type CreateUserDTO struct {
	Email        string
	Name         string
	PasswordHash string
}

// ToModel converts the DTO to the persistence model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Email:        d.Email,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
	}
}

// UserDTO is the outward-facing user representation. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromModel maps the persistence model to the outward-facing DTO.
func FromModel(user *models.User) UserDTO {
	if user == nil {
		return UserDTO{}
	}
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}
