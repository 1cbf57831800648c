package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/expensemaster/expense_master_app/internal/apperrors"
	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/core/services"
	"github.com/expensemaster/expense_master_app/internal/dto"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SetJoinRequest(ctx context.Context, email string, request domain.JoinRequest) error {
	args := m.Called(ctx, email, request)
	return args.Error(0)
}

func (m *MockUserRepository) SetJoinStatus(ctx context.Context, userID string, status domain.JoinStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

func (m *MockUserRepository) SetRole(ctx context.Context, userID string, role domain.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo    *MockUserRepository
	mockCompanyRepo *MockCompanyRepository
	service         ports.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockCompanyRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jordan Blake", Email: "jordan@acme.test"}
	userID := uuid.NewString()

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email && u.Role == domain.RoleUser
	})).Return(userID, nil).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(userID, created.UserID)
	suite.Equal(domain.RoleUser, created.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Name: "Jordan Blake", Email: "jordan@acme.test"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Return("", apperrors.ErrDuplicate).Once()

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Join Request Tests ---

func (suite *UserServiceTestSuite) TestRequestJoin_SetsPendingStatus() {
	ctx := context.Background()
	email := "jordan@acme.test"

	suite.mockUserRepo.On("SetJoinRequest", ctx, email,
		domain.JoinRequest{CompanyName: "Acme Corp", Status: domain.JoinPending}).
		Return(nil).Once()

	err := suite.service.RequestJoin(ctx, email, "Acme Corp")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRequestJoin_EmptyCompanyName() {
	ctx := context.Background()

	err := suite.service.RequestJoin(ctx, "jordan@acme.test", "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SetJoinRequest")
}

func (suite *UserServiceTestSuite) TestApproveUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("SetJoinStatus", ctx, userID, domain.JoinApproved).Return(nil).Once()

	err := suite.service.ApproveUser(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRejectUser_NoPendingRequest() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("SetJoinStatus", ctx, userID, domain.JoinRejected).
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.RejectUser(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetAdmin_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("SetRole", ctx, userID, domain.RoleAdmin).Return(nil).Once()

	err := suite.service.SetAdmin(ctx, userID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- Listing Tests ---

func (suite *UserServiceTestSuite) TestListUsersByCompanyName_NoMatchesIsEmpty() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUsersByCompanyName", ctx, "Ghost Inc").
		Return([]domain.User{}, nil).Once()

	users, err := suite.service.ListUsersByCompanyName(ctx, "Ghost Inc")

	suite.Require().NoError(err)
	suite.Empty(users)
	suite.NotNil(users)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- ClassifyEmail Tests ---

func (suite *UserServiceTestSuite) TestClassifyEmail_User() {
	ctx := context.Background()
	email := "jordan@acme.test"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).
		Return(&domain.User{Email: email}, nil).Once()

	kind, err := suite.service.ClassifyEmail(ctx, email)

	suite.Require().NoError(err)
	suite.Equal(domain.OwnerUser, kind)
	suite.mockCompanyRepo.AssertNotCalled(suite.T(), "FindCompanyByEmail")
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClassifyEmail_Company() {
	ctx := context.Background()
	email := "finance@acme.test"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("FindCompanyByEmail", ctx, email).
		Return(&domain.Company{Email: email}, nil).Once()

	kind, err := suite.service.ClassifyEmail(ctx, email)

	suite.Require().NoError(err)
	suite.Equal(domain.OwnerCompany, kind)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClassifyEmail_Unknown() {
	ctx := context.Background()
	email := "nobody@acme.test"

	suite.mockUserRepo.On("FindUserByEmail", ctx, email).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCompanyRepo.On("FindCompanyByEmail", ctx, email).
		Return(nil, apperrors.ErrNotFound).Once()

	kind, err := suite.service.ClassifyEmail(ctx, email)

	suite.Require().Error(err)
	suite.Empty(kind)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockCompanyRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
