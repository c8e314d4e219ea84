package usecase

import (
	authdomain "stylemail-backend/internal/auth/domain"
	authdto "stylemail-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	ValidateToken(accessToken string) (*authdomain.User, error)
	Logout(refreshToken string) error
	DeleteAccount(userID string) error
}
