package dto

import "github.com/Shubhendu-bhakat/cafe-demo/internal/models"

type SignupRequest struct {
	Name     string `json:"name" validate:"min=2"`
	Email    string `json:"email" validate:"email"`
	Mobile   string `json:"mobile" validate:"len=10,number"`
	Password string `json:"password" validate:"min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}
