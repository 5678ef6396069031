package dto

import "time"

// RegisterRequest entrada para registro (auth). Password en texto; se hashea en el use case.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Role     string `json:"role" validate:"required,oneof=owner manager kasir teknisi"`
	OutletID string `json:"outlet_id" validate:"omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	OutletID   string    `json:"outlet_id,omitempty"`
	OutletName string    `json:"outlet_name,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// UpdateUserRequest campos editables; los nil no se tocan.
type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
	Role     *string `json:"role" validate:"omitempty,oneof=owner manager kasir teknisi"`
	OutletID *string `json:"outlet_id"`
	IsActive *bool   `json:"is_active"`
}

// ResetPasswordRequest body para POST /api/users/:id/reset-password.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// OutletRequest alta/edición de outlet.
type OutletRequest struct {
	Name        string `json:"name" validate:"required,max=150"`
	Address     string `json:"address" validate:"omitempty,max=300"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	ManagerName string `json:"manager_name" validate:"omitempty,max=150"`
	IsActive    *bool  `json:"is_active"`
}

// OutletResponse outlet en respuestas.
type OutletResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ManagerName string    `json:"manager_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
