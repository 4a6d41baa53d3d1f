package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/KayaDyLux/ExpenseManager/internal/apperrors"
	"github.com/KayaDyLux/ExpenseManager/internal/core/domain"
	portsrepo "github.com/KayaDyLux/ExpenseManager/internal/core/ports/repositories"
	portssvc "github.com/KayaDyLux/ExpenseManager/internal/core/ports/services"
	"github.com/KayaDyLux/ExpenseManager/internal/core/services"
	"github.com/KayaDyLux/ExpenseManager/internal/dto"
	"github.com/KayaDyLux/ExpenseManager/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Alex", Email: "Alex@Example.com", Password: "correct horse battery staple"}

	suite.mockRepo.On("FindUserByEmail", ctx, "alex@example.com").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.User) }).
		Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal("alex@example.com", user.Email) // normalized
	suite.NotEqual(req.Password, saved.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Name: "Alex", Email: "alex@example.com", Password: "some password"}
	existing := &domain.User{UserID: "u1", Email: "alex@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "alex@example.com").Return(existing, nil).Once()

	_, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "alex@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "alex@example.com").Return(user, nil).Once()

	verified, err := suite.service.VerifyCredentials(ctx, "alex@example.com", "secret-password")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, verified.UserID)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("secret-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: "u1", Email: "alex@example.com", PasswordHash: hash}

	suite.mockRepo.On("FindUserByEmail", ctx, "alex@example.com").Return(user, nil).Once()

	_, err = suite.service.VerifyCredentials(ctx, "alex@example.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestVerifyCredentials_UnknownEmailLooksLikeWrongPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.VerifyCredentials(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
