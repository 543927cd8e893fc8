package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"foodshare/apperrors"
	"foodshare/models"
	"foodshare/utils"
)

// AuthService handles registration, login and profile resolution.
type AuthService struct {
	users UserStore
	email *utils.EmailService
}

// NewAuthService creates an AuthService. The email service may be nil.
func NewAuthService(users UserStore, email *utils.EmailService) *AuthService {
	return &AuthService{users: users, email: email}
}

// RegisterInput carries the fields for a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType models.UserType
}

// Register creates a user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if !in.UserType.Valid() {
		return nil, apperrors.NewValidation("userType must be one of: restaurant, ngo, individual")
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewValidation("User already exists with this email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		UserType:  in.UserType,
		CreatedAt: time.Now(),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if s.email != nil {
		go s.email.SendWelcomeEmail(user.Name, user.Email)
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown users and
// wrong passwords fail with the same message.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.NewAuth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.NewAuth("Invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.UserType)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetProfile resolves the user behind a validated token's subject.
func (s *AuthService) GetProfile(ctx context.Context, userIDHex string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, apperrors.NewAuth("Invalid or expired token")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}
	return user, nil
}
