package Models

import (
	"gorm.io/gorm"
)

// Permission levels. Workers get their own Worker row linked by UserID.
const (
	PermissionCustomer = 1
	PermissionWorker   = 2
	PermissionAdmin    = 3
	PermissionSuper    = 4
)

type User struct {
	gorm.Model
	Name       string `json:"name" gorm:"size:255;not null"`
	Email      string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Phone      string `json:"phone" gorm:"size:50"`
	Password   []byte `json:"-" gorm:"not null"`
	Permission int    `json:"permission" gorm:"not null;default:1"`
}

type RegisterUserRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Password   string `json:"password" validate:"required,min=6"`
	Permission int    `json:"permission" validate:"omitempty,gte=1,lte=4"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	ID         uint    `json:"id" validate:"required"`
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Password   *string `json:"password"`
	Permission *int    `json:"permission"`
}
