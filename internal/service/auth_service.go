package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go-inventory-pro/internal/mailer"
	"go-inventory-pro/internal/model"
	"go-inventory-pro/internal/repository"
	"go-inventory-pro/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ForgotPasswordMessage is returned for every forgot-password request so the
// response never reveals whether an account exists.
const ForgotPasswordMessage = "If that account exists, a reset link was sent."

const resetTokenTTL = time.Hour

type AuthService interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *ResetPasswordRequest) error
	Me(userID uuid.UUID) (*model.UserResponse, error)
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo     repository.UserRepository
	tokens       *jwt.Manager
	mail         mailer.Sender
	resetURLBase string
	now          func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, tokens *jwt.Manager, mail mailer.Sender, resetURLBase string) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokens:       tokens,
		mail:         mail,
		resetURLBase: strings.TrimRight(resetURLBase, "/"),
		now:          time.Now,
	}
}

func (s *authService) Register(req *RegisterRequest) (*AuthResponse, error) {
	req.Email = model.NormalizeEmail(req.Email)
	if err := validate(req); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &model.User{
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		Role:  model.RoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *authService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user *model.User) (*AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}
	digest := hashResetToken(token)
	expires := s.now().Add(resetTokenTTL)
	user.ResetPasswordToken = &digest
	user.ResetPasswordExpires = &expires
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s&email=%s", s.resetURLBase, token, url.QueryEscape(user.Email))
	if err := s.mail.Send(ctx, mailer.PasswordReset(user.Email, link)); err != nil {
		// Surfacing this would tell the caller the account exists.
		log.Printf("forgot-password: failed to send reset email: %v", err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if !s.resetTokenMatches(user, req.Token) {
		return ErrInvalidResetToken
	}

	if err := user.SetPassword(req.Password); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.ClearResetToken()
	if err := s.userRepo.Update(user); err != nil {
		return err
	}

	if err := s.mail.Send(ctx, mailer.PasswordChanged(user.Email)); err != nil {
		log.Printf("reset-password: failed to send confirmation email: %v", err)
	}
	return nil
}

func (s *authService) resetTokenMatches(user *model.User, token string) bool {
	if user.ResetPasswordToken == nil || user.ResetPasswordExpires == nil {
		return false
	}
	if !user.ResetPasswordExpires.After(s.now()) {
		return false
	}
	digest := hashResetToken(token)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(*user.ResetPasswordToken)) == 1
}

func (s *authService) Me(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func newResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
