package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/apperrors"
	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	portssvc "github.com/FoundlyHQ/foundly-backend/internal/core/ports/services"
	"github.com/FoundlyHQ/foundly-backend/internal/dto"
	"github.com/FoundlyHQ/foundly-backend/internal/handlers"
	"github.com/FoundlyHQ/foundly-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ItemService ---

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, userID string, params portssvc.CreateItemParams) (*domain.Item, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) ListItems(ctx context.Context, filter portsrepo.ItemListFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) ListUserItems(ctx context.Context, userID string) ([]domain.Item, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, userID string, itemID string, params portssvc.UpdateItemParams) (*domain.Item, error) {
	args := m.Called(ctx, userID, itemID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) MarkItemFound(ctx context.Context, userID string, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) MarkItemClaimed(ctx context.Context, userID string, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, userID string, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

var _ portssvc.ItemSvcFacade = (*MockItemService)(nil)

// --- Mock ClaimService ---

type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) CreateClaim(ctx context.Context, userID string, itemID string, params portssvc.CreateClaimParams) (*domain.FoundClaim, error) {
	args := m.Called(ctx, userID, itemID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoundClaim), args.Error(1)
}

func (m *MockClaimService) ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimWithClaimant), args.Error(1)
}

func (m *MockClaimService) ListMyClaims(ctx context.Context, userID string) ([]domain.ClaimWithItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimWithItem), args.Error(1)
}

func (m *MockClaimService) AcceptClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error) {
	args := m.Called(ctx, userID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoundClaim), args.Error(1)
}

func (m *MockClaimService) RejectClaim(ctx context.Context, userID string, claimID string) (*domain.FoundClaim, error) {
	args := m.Called(ctx, userID, claimID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FoundClaim), args.Error(1)
}

var _ portssvc.ClaimSvcFacade = (*MockClaimService)(nil)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
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

func (m *MockUserService) GetPoints(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock AuthService ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name string, email string, password string) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email string, password string) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockAuthService) CheckEmail(ctx context.Context, email string) (bool, domain.LoginType, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Get(1).(domain.LoginType), args.Error(2)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	args := m.Called(ctx, email, code, newPassword)
	return args.Error(0)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock OtpService ---

type MockOtpService struct {
	mock.Mock
}

func (m *MockOtpService) SendLoginOtp(ctx context.Context, email string, isSignup bool) error {
	args := m.Called(ctx, email, isSignup)
	return args.Error(0)
}

func (m *MockOtpService) SendPasswordResetOtp(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockOtpService) VerifyOtp(ctx context.Context, params portssvc.VerifyOtpParams) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockOtpService) CleanupExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.OtpSvcFacade = (*MockOtpService)(nil)

// --- Mock GoogleOAuthService ---

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GetAuthURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) HandleCallback(ctx context.Context, state string, code string) (*portssvc.AuthResult, error) {
	args := m.Called(ctx, state, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.AuthResult), args.Error(1)
}

func (m *MockGoogleOAuthService) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Mock NotificationService ---

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationPreference), args.Error(1)
}

func (m *MockNotificationService) UpdatePreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error) {
	args := m.Called(ctx, pref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NotificationPreference), args.Error(1)
}

func (m *MockNotificationService) BroadcastNewItem(ctx context.Context, item domain.Item) {
	m.Called(ctx, item)
}

func (m *MockNotificationService) NotifyClaimSubmitted(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	m.Called(ctx, item, claim)
}

func (m *MockNotificationService) NotifyClaimDecision(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	m.Called(ctx, item, claim)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

// --- Test Suite ---

type ItemHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockItemService  *MockItemService
	mockClaimService *MockClaimService
	mockUserService  *MockUserService
	mockAuthService  *MockAuthService
	jwtSecret        string
}

// generateTestToken creates a signed JWT for the given user.
func (suite *ItemHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "foundly-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ItemHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockItemService = new(MockItemService)
	suite.mockClaimService = new(MockClaimService)
	suite.mockUserService = new(MockUserService)
	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes
	}
	services := &portssvc.ServiceContainer{
		User:         suite.mockUserService,
		Item:         suite.mockItemService,
		Claim:        suite.mockClaimService,
		Auth:         suite.mockAuthService,
		Otp:          new(MockOtpService),
		GoogleOAuth:  new(MockGoogleOAuthService),
		Notification: new(MockNotificationService),
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func TestItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}

func (suite *ItemHandlerTestSuite) serve(method string, url string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ItemHandlerTestSuite) TestListItems_PublicWithFilters() {
	items := []domain.Item{
		{ItemID: uuid.NewString(), Title: "Blue backpack", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive},
	}

	suite.mockItemService.On("ListItems", mock.Anything, portsrepo.ItemListFilter{
		ItemType: domain.ItemTypeLost,
		Search:   "backpack",
	}).Return(items, nil).Once()

	w := suite.serve(http.MethodGet, "/api/items?type=lost&search=backpack", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body, 1)
	suite.Equal(items[0].ItemID, body[0].ItemID)
	suite.mockItemService.AssertExpectations(suite.T())
}

func (suite *ItemHandlerTestSuite) TestGetItem_NotFound() {
	suite.mockItemService.On("GetItemByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/items/missing", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	var body handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Item not found", body.Message)
}

func (suite *ItemHandlerTestSuite) TestCreateItem_RequiresAuth() {
	w := suite.serve(http.MethodPost, "/api/items", dto.CreateItemRequest{Title: "Keys", ItemType: "lost"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockItemService.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemHandlerTestSuite) TestCreateItem_Success() {
	userID := uuid.NewString()
	created := &domain.Item{ItemID: uuid.NewString(), UserID: userID, Title: "Keys", ItemType: domain.ItemTypeLost, Status: domain.ItemStatusActive}

	suite.mockItemService.On("CreateItem", mock.Anything, userID, mock.MatchedBy(func(p portssvc.CreateItemParams) bool {
		return p.Title == "Keys" && p.ItemType == domain.ItemTypeLost
	})).Return(created, nil).Once()

	w := suite.serve(http.MethodPost, "/api/items", dto.CreateItemRequest{Title: "Keys", ItemType: "lost"}, suite.generateTestToken(userID))

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.ItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.ItemID, body.ItemID)
	suite.mockItemService.AssertExpectations(suite.T())
}

func (suite *ItemHandlerTestSuite) TestCreateItem_InvalidBody() {
	w := suite.serve(http.MethodPost, "/api/items", map[string]string{"title": ""}, suite.generateTestToken(uuid.NewString()))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockItemService.AssertNotCalled(suite.T(), "CreateItem", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ItemHandlerTestSuite) TestUpdateItem_Forbidden() {
	userID := uuid.NewString()

	suite.mockItemService.On("UpdateItem", mock.Anything, userID, "item-1", mock.AnythingOfType("services.UpdateItemParams")).
		Return(nil, apperrors.ErrForbidden).Once()

	w := suite.serve(http.MethodPut, "/api/items/item-1", dto.UpdateItemRequest{}, suite.generateTestToken(userID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ItemHandlerTestSuite) TestAcceptClaim_Conflict() {
	userID := uuid.NewString()

	suite.mockClaimService.On("AcceptClaim", mock.Anything, userID, "claim-1").
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.serve(http.MethodPut, "/api/found-claims/claim-1/accept", nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockClaimService.AssertExpectations(suite.T())
}

func (suite *ItemHandlerTestSuite) TestGetPoints_Success() {
	userID := uuid.NewString()

	suite.mockUserService.On("GetPoints", mock.Anything, userID).Return(30, nil).Once()

	w := suite.serve(http.MethodGet, "/api/users/points", nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)
	var body dto.PointsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(30, body.Points)
}

func (suite *ItemHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockAuthService.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.serve(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "alice@example.com", Password: "wrong"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	var body handlers.MessageResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Invalid credentials", body.Message)
}
