package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/url"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/dto/request"
	"delivery-backend/internal/dto/response"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

const resetEmailSubject = "Password Reset"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	SendReset(ctx context.Context, req *request.SendResetRequest) (string, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	users    repository.UserRepository
	notifier *notify.Notifier
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	notifier *notify.Notifier,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:    repo.User,
		notifier: notifier,
		config:   config,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrCredentialsRequired
	}

	if utils.ClassifyIdentifier(req.Identifier) == utils.IdentifierInvalid {
		return nil, ErrInvalidIdentifier
	}

	existing, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, fmt.Errorf("check identifier: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyRegistered
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Identifier:   req.Identifier,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("identifier", user.Identifier))

	return response.UserToResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ErrCredentialsRequired
	}

	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidPassword
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))
	return response.UserToResponse(user), nil
}

// SendReset starts a password reset. Email accounts receive a link carrying
// the identifier; phone accounts receive a 6-digit OTP by SMS which is
// stored on the account first. Provider failures are returned verbatim.
func (s *authService) SendReset(ctx context.Context, req *request.SendResetRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", ErrIdentifierRequired
	}

	kind := utils.ClassifyIdentifier(req.Identifier)
	if kind == utils.IdentifierInvalid {
		return "", ErrInvalidIdentifier
	}

	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if kind == utils.IdentifierEmail {
		return s.sendResetLink(ctx, user)
	}
	return s.sendResetOTP(ctx, user)
}

func (s *authService) sendResetLink(ctx context.Context, user *entity.User) (string, error) {
	link := s.resetLink(user.Identifier)
	body := fmt.Sprintf("Click this link to reset your password: %s", link)

	if err := s.notifier.Email.SendEmail(ctx, user.Identifier, resetEmailSubject, body); err != nil {
		return "", wrapError(ErrProvider, err.Error(), err)
	}

	s.log.Info("Reset link sent", zap.Int64("user_id", user.ID))
	return fmt.Sprintf("Reset link sent to %s", user.Identifier), nil
}

// resetLink carries the identifier as a plain query parameter; it is not a
// signed token and /reset-password does not ask for one.
func (s *authService) resetLink(identifier string) string {
	return s.config.Email.ResetLinkBase + "?identifier=" + url.QueryEscape(identifier)
}

func (s *authService) sendResetOTP(ctx context.Context, user *entity.User) (string, error) {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}

	if err := s.users.SetResetOTP(ctx, user.ID, &otp); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}

	to := s.config.SMS.CountryCode + user.Identifier
	body := fmt.Sprintf("Your OTP for password reset is: %s", otp)
	if err := s.notifier.SMS.SendSMS(ctx, to, body); err != nil {
		return "", wrapError(ErrProvider, "Failed to send SMS: "+err.Error(), err)
	}

	s.log.Info("Reset OTP sent", zap.Int64("user_id", user.ID))
	return fmt.Sprintf("OTP sent to %s", user.Identifier), nil
}

// VerifyOTP consumes the stored OTP on a match. A wrong code leaves the
// stored one in place; codes do not expire.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return ErrOTPRequired
	}

	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if user.ResetOTP == nil || subtle.ConstantTimeCompare([]byte(*user.ResetOTP), []byte(req.OTP)) != 1 {
		s.log.Warn("Invalid OTP", zap.Int64("user_id", user.ID))
		return ErrInvalidOTP
	}

	if err := s.users.SetResetOTP(ctx, user.ID, nil); err != nil {
		return fmt.Errorf("clear otp: %w", err)
	}

	s.log.Info("OTP verified", zap.Int64("user_id", user.ID))
	return nil
}

// ResetPassword replaces the current password unless the new one equals it
// or any earlier password. The replaced password joins the history.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return ErrNewPasswordRequired
	}

	user, err := s.users.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if utils.CheckPasswordHash(req.NewPassword, user.PasswordHash) {
		return ErrSamePassword
	}
	for _, old := range user.OldPasswords {
		if utils.CheckPasswordHash(req.NewPassword, old) {
			return ErrPasswordReused
		}
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	history := append(append([]string{}, user.OldPasswords...), user.PasswordHash)
	if err := s.users.UpdatePassword(ctx, user.ID, hash, history); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.Int64("user_id", user.ID), zap.Int("history", len(history)))
	return nil
}
