package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

// Routes the tab bar can show. Stored per user as a JSON array; a user
// without a stored value sees all of them.
var (
	KnownRoutes   = []string{"/", "/food-diary", "/ai-overview", "/settings"}
	DefaultRoutes = []string{"/", "/food-diary", "/ai-overview", "/settings"}
)

var (
	MessageSuccessRegister           = "user registered successfully"
	MessageSuccessLogin              = "login successful"
	MessageSuccessGetMe              = "user profile retrieved successfully"
	MessageSuccessUpdateUser         = "user updated successfully"
	MessageSuccessVerifyEmail        = "email verified successfully"
	MessageSuccessSendVerifyEmail    = "verification email sent"
	MessageSuccessUploadAvatar       = "avatar uploaded successfully"
	MessageSuccessGetVisibleRoutes   = "visible routes retrieved successfully"
	MessageSuccessUpdateVisibleRoutes = "visible routes updated successfully"

	MessageFailedRegister           = "failed to register user"
	MessageFailedLogin              = "failed to login"
	MessageFailedGetMe              = "failed to retrieve user profile"
	MessageFailedUpdateUser         = "failed to update user"
	MessageFailedVerifyEmail        = "failed to verify email"
	MessageFailedSendVerifyEmail    = "failed to send verification email"
	MessageFailedUploadAvatar       = "failed to upload avatar"
	MessageFailedGetVisibleRoutes   = "failed to retrieve visible routes"
	MessageFailedUpdateVisibleRoutes = "failed to update visible routes"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrUnknownRoute       = errors.New("unknown route")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	UserResponse struct {
		ID         string    `json:"id"`
		Email      string    `json:"email"`
		Name       string    `json:"name"`
		AvatarURL  string    `json:"avatar_url,omitempty"`
		IsVerified bool      `json:"is_verified"`
		CreatedAt  time.Time `json:"created_at"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	VisibleRoutesResponse struct {
		Routes []string `json:"routes"`
	}

	UpdateVisibleRoutesRequest struct {
		Routes []string `json:"routes" validate:"required"`
	}
)
