package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/expensemaster/expense_master_app/internal/apperrors"
	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
)

// userService owns the user directory. It also holds the company
// repository for email classification, which spans both collections.
type userService struct {
	userRepo    ports.UserRepository
	companyRepo ports.CompanyRepository
	now         func() time.Time
}

// NewUserService creates the user directory service.
func NewUserService(userRepo ports.UserRepository, companyRepo ports.CompanyRepository) ports.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		now:         time.Now,
	}
}

var _ ports.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	user := domain.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      domain.RoleUser,
		CreatedAt: s.now(),
	}

	userID, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.UserID = userID
	return &user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListUsersByCompanyName returns the users associated with the named
// company. No matches is an empty result, not an error.
func (s *userService) ListUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error) {
	users, err := s.userRepo.FindUsersByCompanyName(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for company %s: %w", companyName, err)
	}
	return users, nil
}

// RequestJoin overwrites the user's join request. A user belongs to at
// most one company, so any previous request is replaced.
func (s *userService) RequestJoin(ctx context.Context, email string, companyName string) error {
	if companyName == "" {
		return fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	request := domain.JoinRequest{
		CompanyName: companyName,
		Status:      domain.JoinPending,
	}
	if err := s.userRepo.SetJoinRequest(ctx, email, request); err != nil {
		return fmt.Errorf("failed to set join request: %w", err)
	}
	return nil
}

func (s *userService) ApproveUser(ctx context.Context, userID string) error {
	if err := s.userRepo.SetJoinStatus(ctx, userID, domain.JoinApproved); err != nil {
		return fmt.Errorf("failed to approve user: %w", err)
	}
	return nil
}

func (s *userService) RejectUser(ctx context.Context, userID string) error {
	if err := s.userRepo.SetJoinStatus(ctx, userID, domain.JoinRejected); err != nil {
		return fmt.Errorf("failed to reject user: %w", err)
	}
	return nil
}

func (s *userService) SetAdmin(ctx context.Context, userID string) error {
	if err := s.userRepo.SetRole(ctx, userID, domain.RoleAdmin); err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ClassifyEmail reports whether an email belongs to a user or a company.
func (s *userService) ClassifyEmail(ctx context.Context, email string) (domain.OwnerKind, error) {
	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return domain.OwnerUser, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to classify email: %w", err)
	}

	_, err = s.companyRepo.FindCompanyByEmail(ctx, email)
	if err == nil {
		return domain.OwnerCompany, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("failed to classify email: %w", err)
	}
	return "", fmt.Errorf("email %s: %w", email, apperrors.ErrNotFound)
}
