package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"eduhub.vn/studyportal/internal/entity"
	activity "eduhub.vn/studyportal/internal/modules/activity/service"
	"eduhub.vn/studyportal/internal/modules/user/dto"
	"eduhub.vn/studyportal/internal/modules/user/repository"
	"eduhub.vn/studyportal/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (uint, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, user *entity.User) error
	UpdateProfile(ctx context.Context, user *entity.User, req dto.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, user *entity.User, req dto.ChangePasswordRequest) error
}

type authService struct {
	repo     repository.UserRepository
	activity activity.ActivityService
}

func NewAuthService(repo repository.UserRepository, activitySvc activity.ActivityService) AuthService {
	return &authService{
		repo:     repo,
		activity: activitySvc,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (uint, error) {
	count, err := s.repo.CountByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("%w: username or email already taken", apperror.ErrInvalidInput)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleStudent
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: string(hashed),
		Role:     role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return 0, err
	}

	s.activity.Record("register", "user", user.ID, user.FullName, "New account registered", user.Username)

	return user.ID, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: incorrect username or password", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", apperror.ErrUnauthorized)
	}

	// One live session per user: a new login silently replaces the old token.
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.Token = &token
	user.LastLogin = &now
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.activity.Record("login", "user", user.ID, user.FullName, "Logged in", user.Username)

	return &dto.LoginResponse{
		Token:   token,
		User:    dto.NewUserInfo(user),
		Message: "Login successful",
	}, nil
}

func (s *authService) Logout(ctx context.Context, user *entity.User) error {
	if err := s.repo.UpdateFields(ctx, user.ID, map[string]interface{}{"token": nil}); err != nil {
		return err
	}

	s.activity.Record("logout", "user", user.ID, user.FullName, "Logged out", user.Username)

	return nil
}

func (s *authService) UpdateProfile(ctx context.Context, user *entity.User, req dto.UpdateProfileRequest) error {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	if len(fields) == 0 {
		return fmt.Errorf("%w: nothing to update", apperror.ErrInvalidInput)
	}

	return s.repo.UpdateFields(ctx, user.ID, fields)
}

func (s *authService) ChangePassword(ctx context.Context, user *entity.User, req dto.ChangePasswordRequest) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return fmt.Errorf("%w: old password is incorrect", apperror.ErrUnauthorized)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdateFields(ctx, user.ID, map[string]interface{}{"password": string(hashed)})
}

// generateToken returns 32 bytes of crypto randomness as 64 hex characters.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
