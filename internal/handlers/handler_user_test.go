package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/expensemaster/expense_master_app/internal/apperrors"
	"github.com/expensemaster/expense_master_app/internal/core/domain"
	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/handlers"
	"github.com/expensemaster/expense_master_app/internal/platform/config"
	"github.com/expensemaster/expense_master_app/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) ListUsersByCompanyName(ctx context.Context, companyName string) ([]domain.User, error) {
	args := m.Called(ctx, companyName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) RequestJoin(ctx context.Context, email string, companyName string) error {
	args := m.Called(ctx, email, companyName)
	return args.Error(0)
}

func (m *MockUserService) ApproveUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) RejectUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) SetAdmin(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) ClassifyEmail(ctx context.Context, email string) (domain.OwnerKind, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.OwnerKind), args.Error(1)
}

var _ ports.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockUser *MockUserService
	cfg      *config.Config
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.cfg = &config.Config{
		JWTSecret:         "handler-test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "expense-master-test",
		IsProduction:      true,
	}
	suite.mockUser = new(MockUserService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, &ports.ServiceContainer{
		Company: new(MockCompanyService),
		User:    suite.mockUser,
	})
}

func (suite *UserHandlerTestSuite) bearerToken() string {
	token, err := utils.GenerateToken("caller@acme.test", nil, suite.cfg.JWTSecret, suite.cfg.JWTExpiryDuration, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return "Bearer " + token
}

func (suite *UserHandlerTestSuite) doJSON(method, path, auth string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Registration ---

func (suite *UserHandlerTestSuite) TestCreateUser_Success() {
	req := dto.CreateUserRequest{Name: "Jordan Blake", Email: "jordan@acme.test"}
	created := &domain.User{UserID: uuid.NewString(), Name: req.Name, Email: req.Email, Role: domain.RoleUser}
	suite.mockUser.On("CreateUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/users", suite.bearerToken(), req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)
	suite.Equal("user", resp.Role)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestCreateUser_DuplicateEmail() {
	req := dto.CreateUserRequest{Name: "Jordan Blake", Email: "jordan@acme.test"}
	suite.mockUser.On("CreateUser", mock.Anything, req).
		Return(nil, fmt.Errorf("create: %w", apperrors.ErrDuplicate)).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/users", suite.bearerToken(), req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

// --- Listing ---

func (suite *UserHandlerTestSuite) TestListUsers_CompanyFilter() {
	users := []domain.User{{UserID: uuid.NewString(), Email: "jordan@acme.test"}}
	suite.mockUser.On("ListUsersByCompanyName", mock.Anything, "AcmeCorp").Return(users, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/users?company=AcmeCorp", suite.bearerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Users, 1)
	suite.mockUser.AssertNotCalled(suite.T(), "ListUsers")
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestListUsers_CompanyFilterNoMatches() {
	suite.mockUser.On("ListUsersByCompanyName", mock.Anything, "GhostInc").
		Return([]domain.User{}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/users?company=GhostInc", suite.bearerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListUsersResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Users)
	suite.mockUser.AssertExpectations(suite.T())
}

// --- Join Lifecycle ---

func (suite *UserHandlerTestSuite) TestRequestJoin_Success() {
	email := "jordan@acme.test"
	suite.mockUser.On("RequestJoin", mock.Anything, email, "Acme Corp").Return(nil).Once()

	w := suite.doJSON(http.MethodPut, "/api/v1/users/"+email+"/join", suite.bearerToken(),
		dto.JoinRequestPayload{CompanyName: "Acme Corp"})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestApproveUser_Success() {
	userID := uuid.NewString()
	suite.mockUser.On("ApproveUser", mock.Anything, userID).Return(nil).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/users/"+userID+"/approve", suite.bearerToken(), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestRejectUser_NotFound() {
	userID := uuid.NewString()
	suite.mockUser.On("RejectUser", mock.Anything, userID).
		Return(fmt.Errorf("reject: %w", apperrors.ErrNotFound)).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/users/"+userID+"/reject", suite.bearerToken(), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestSetAdmin_RequiresCredential() {
	w := suite.doJSON(http.MethodPatch, "/api/v1/users/"+uuid.NewString()+"/admin", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "SetAdmin")
}

// --- Classification ---

func (suite *UserHandlerTestSuite) TestClassifyEmail_User() {
	email := "jordan@acme.test"
	suite.mockUser.On("ClassifyEmail", mock.Anything, email).Return(domain.OwnerUser, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/classify-email?email="+email, "", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ClassifyEmailResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("user", resp.Kind)
	suite.mockUser.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestClassifyEmail_MissingQuery() {
	w := suite.doJSON(http.MethodGet, "/api/v1/classify-email", "", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUser.AssertNotCalled(suite.T(), "ClassifyEmail")
}

func (suite *UserHandlerTestSuite) TestClassifyEmail_Unknown() {
	email := "nobody@acme.test"
	suite.mockUser.On("ClassifyEmail", mock.Anything, email).
		Return(domain.OwnerKind(""), fmt.Errorf("classify: %w", apperrors.ErrNotFound)).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/classify-email?email="+email, "", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockUser.AssertExpectations(suite.T())
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
