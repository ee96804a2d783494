package services_test

import (
	"context"
	"time"

	"github.com/FoundlyHQ/foundly-backend/internal/core/domain"
	portsrepo "github.com/FoundlyHQ/foundly-backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var created *domain.User
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.User)
	}
	return created, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	var updated *domain.User
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.User)
	}
	return updated, args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) AddPoints(ctx context.Context, userID string, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

// --- Mock ItemRepository ---

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	var item *domain.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*domain.Item)
	}
	return item, args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context, filter portsrepo.ItemListFilter) ([]domain.Item, error) {
	args := m.Called(ctx, filter)
	var items []domain.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]domain.Item)
	}
	return items, args.Error(1)
}

func (m *MockItemRepository) CreateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	var created *domain.Item
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Item)
	}
	return created, args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) (*domain.Item, error) {
	args := m.Called(ctx, item)
	var updated *domain.Item
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Item)
	}
	return updated, args.Error(1)
}

func (m *MockItemRepository) UpdateItemStatus(ctx context.Context, itemID string, status domain.ItemStatus) (*domain.Item, error) {
	args := m.Called(ctx, itemID, status)
	var updated *domain.Item
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.Item)
	}
	return updated, args.Error(1)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

// --- Mock ClaimRepository ---

type MockClaimRepository struct {
	mock.Mock
}

func (m *MockClaimRepository) FindClaimByID(ctx context.Context, claimID string) (*domain.FoundClaim, error) {
	args := m.Called(ctx, claimID)
	var claim *domain.FoundClaim
	if args.Get(0) != nil {
		claim = args.Get(0).(*domain.FoundClaim)
	}
	return claim, args.Error(1)
}

func (m *MockClaimRepository) ListClaimsForItem(ctx context.Context, itemID string) ([]domain.ClaimWithClaimant, error) {
	args := m.Called(ctx, itemID)
	var claims []domain.ClaimWithClaimant
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.ClaimWithClaimant)
	}
	return claims, args.Error(1)
}

func (m *MockClaimRepository) ListClaimsByUser(ctx context.Context, userID string) ([]domain.ClaimWithItem, error) {
	args := m.Called(ctx, userID)
	var claims []domain.ClaimWithItem
	if args.Get(0) != nil {
		claims = args.Get(0).([]domain.ClaimWithItem)
	}
	return claims, args.Error(1)
}

func (m *MockClaimRepository) HasPendingClaim(ctx context.Context, itemID string, userID string) (bool, error) {
	args := m.Called(ctx, itemID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClaimRepository) CreateClaim(ctx context.Context, claim domain.FoundClaim) (*domain.FoundClaim, error) {
	args := m.Called(ctx, claim)
	var created *domain.FoundClaim
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.FoundClaim)
	}
	return created, args.Error(1)
}

func (m *MockClaimRepository) UpdateClaimStatus(ctx context.Context, claimID string, status domain.ClaimStatus) (*domain.FoundClaim, error) {
	args := m.Called(ctx, claimID, status)
	var updated *domain.FoundClaim
	if args.Get(0) != nil {
		updated = args.Get(0).(*domain.FoundClaim)
	}
	return updated, args.Error(1)
}

func (m *MockClaimRepository) AcceptClaim(ctx context.Context, claim domain.FoundClaim, rewardPoints int) (*domain.FoundClaim, error) {
	args := m.Called(ctx, claim, rewardPoints)
	var accepted *domain.FoundClaim
	if args.Get(0) != nil {
		accepted = args.Get(0).(*domain.FoundClaim)
	}
	return accepted, args.Error(1)
}

// --- Mock OtpRepository ---

type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) ReplaceOtp(ctx context.Context, otp domain.OtpVerification) (*domain.OtpVerification, error) {
	args := m.Called(ctx, otp)
	var created *domain.OtpVerification
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.OtpVerification)
	}
	return created, args.Error(1)
}

func (m *MockOtpRepository) FindValidOtp(ctx context.Context, email string, code string, purpose domain.OtpPurpose) (*domain.OtpVerification, error) {
	args := m.Called(ctx, email, code, purpose)
	var otp *domain.OtpVerification
	if args.Get(0) != nil {
		otp = args.Get(0).(*domain.OtpVerification)
	}
	return otp, args.Error(1)
}

func (m *MockOtpRepository) MarkOtpUsed(ctx context.Context, otpID string) error {
	args := m.Called(ctx, otpID)
	return args.Error(0)
}

func (m *MockOtpRepository) DeleteExpiredOtps(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock NotificationRepository ---

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error) {
	args := m.Called(ctx, userID)
	var pref *domain.NotificationPreference
	if args.Get(0) != nil {
		pref = args.Get(0).(*domain.NotificationPreference)
	}
	return pref, args.Error(1)
}

func (m *MockNotificationRepository) UpsertPreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error) {
	args := m.Called(ctx, pref)
	var saved *domain.NotificationPreference
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.NotificationPreference)
	}
	return saved, args.Error(1)
}

func (m *MockNotificationRepository) ListNewItemRecipients(ctx context.Context, excludeUserID string) ([]string, error) {
	args := m.Called(ctx, excludeUserID)
	var emails []string
	if args.Get(0) != nil {
		emails = args.Get(0).([]string)
	}
	return emails, args.Error(1)
}

// --- Mock MailerSvcFacade ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOtpEmail(ctx context.Context, to string, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, to string, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

func (m *MockMailer) SendNewItemAlert(ctx context.Context, to []string, itemTitle string, itemType string, location string) error {
	args := m.Called(ctx, to, itemTitle, itemType, location)
	return args.Error(0)
}

func (m *MockMailer) SendClaimSubmittedEmail(ctx context.Context, to string, itemTitle string) error {
	args := m.Called(ctx, to, itemTitle)
	return args.Error(0)
}

func (m *MockMailer) SendClaimDecisionEmail(ctx context.Context, to string, itemTitle string, accepted bool) error {
	args := m.Called(ctx, to, itemTitle, accepted)
	return args.Error(0)
}

// stubNotifier records broadcast calls on channels so tests can wait for the
// fire-and-forget goroutines without races.
type stubNotifier struct {
	broadcasts chan domain.Item
	submitted  chan domain.FoundClaim
	decisions  chan domain.FoundClaim
}

func newStubNotifier() *stubNotifier {
	return &stubNotifier{
		broadcasts: make(chan domain.Item, 1),
		submitted:  make(chan domain.FoundClaim, 1),
		decisions:  make(chan domain.FoundClaim, 1),
	}
}

func (s *stubNotifier) GetPreferences(ctx context.Context, userID string) (*domain.NotificationPreference, error) {
	pref := domain.DefaultNotificationPreference(userID)
	return &pref, nil
}

func (s *stubNotifier) UpdatePreferences(ctx context.Context, pref domain.NotificationPreference) (*domain.NotificationPreference, error) {
	return &pref, nil
}

func (s *stubNotifier) BroadcastNewItem(ctx context.Context, item domain.Item) {
	s.broadcasts <- item
}

func (s *stubNotifier) NotifyClaimSubmitted(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	s.submitted <- claim
}

func (s *stubNotifier) NotifyClaimDecision(ctx context.Context, item domain.Item, claim domain.FoundClaim) {
	s.decisions <- claim
}

// waitFor receives from ch or fails the test after a second.
func waitFor[T any](ch chan T, timeout time.Duration) (T, bool) {
	select {
	case v := <-ch:
		return v, true
	case <-time.After(timeout):
		var zero T
		return zero, false
	}
}
