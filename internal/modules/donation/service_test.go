package donation

import (
	"context"
	"errors"
	"testing"
	"time"

	"kindkart/internal/domain"
	"kindkart/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	args := m.Called(ctx, d)
	if d != nil && d.ID == "" {
		d.ID = "don-1" // simulate DB insert
		d.CreatedAt = time.Now()
		d.UpdatedAt = d.CreatedAt
	}
	return args.Error(0)
}

func (m *MockDonationRepository) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) List(ctx context.Context, f repository.DonationFilter) ([]domain.Donation, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateFields(ctx context.Context, id string, updates map[string]any) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyStatusChanged(ctx context.Context, userID, donationID, foodName string, status domain.DonationStatus) error {
	args := m.Called(ctx, userID, donationID, foodName, status)
	return args.Error(0)
}

func donor() *domain.User {
	return &domain.User{ID: "d1", Name: "Green Bistro", Email: "bistro@kindkart.org", Role: domain.RoleDonor}
}

func ngoUser() *domain.User {
	return &domain.User{ID: "n1", Name: "Food For All", Email: "foodforall@kindkart.org", Role: domain.RoleNGO}
}

func pendingDonation() *domain.Donation {
	return &domain.Donation{
		ID:       "don-1",
		DonorID:  "d1",
		FoodName: "Rice",
		Quantity: "20",
		Location: "Hall A",
		Status:   domain.DonationPending,
	}
}

func TestService_Create_Success(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	donations.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(donations, users, notifs, ModeStrict)

	d, err := service.Create(context.Background(), CreateDonationRequest{
		DonorID:  "d1",
		FoodName: "Rice",
		Quantity: "20",
		Location: "Hall A",
	})

	assert.NoError(t, err)
	assert.NotNil(t, d)
	assert.Equal(t, domain.DonationPending, d.Status)
	assert.Empty(t, d.NgoID)
	notifs.AssertNotCalled(t, "NotifyStatusChanged")
}

func TestService_Create_MissingFields(t *testing.T) {
	donations := new(MockDonationRepository)
	service := NewService(donations, new(MockUserRepository), new(MockNotificationSender), ModeStrict)

	cases := []CreateDonationRequest{
		{FoodName: "Rice", Quantity: "20", Location: "Hall A"},
		{DonorID: "d1", Quantity: "20", Location: "Hall A"},
		{DonorID: "d1", FoodName: "Rice", Location: "Hall A"},
		{DonorID: "d1", FoodName: "Rice", Quantity: "20"},
		{DonorID: "  ", FoodName: "Rice", Quantity: "20", Location: "Hall A"},
	}

	for _, req := range cases {
		d, err := service.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Nil(t, d)
	}

	donations.AssertNotCalled(t, "Create")
}

func TestService_Transition_NotFound(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	donations.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(donations, users, notifs, ModeStrict)

	status := "accepted"
	v, err := service.Transition(context.Background(), "missing", UpdateDonationRequest{Status: &status})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, v)
	notifs.AssertNotCalled(t, "NotifyStatusChanged")
}

func TestService_Transition_AcceptNotifiesDonor(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	accepted := pendingDonation()
	accepted.Status = domain.DonationAccepted
	accepted.NgoID = "n1"

	donations.On("GetByID", mock.Anything, "don-1").Return(pendingDonation(), nil).Once()
	donations.On("UpdateFields", mock.Anything, "don-1", map[string]any{
		"status": "accepted",
		"ngo_id": "n1",
	}).Return(nil)
	donations.On("GetByID", mock.Anything, "don-1").Return(accepted, nil)

	users.On("GetByID", mock.Anything, "n1").Return(ngoUser(), nil)
	users.On("GetByID", mock.Anything, "d1").Return(donor(), nil)

	notifs.On("NotifyStatusChanged", mock.Anything, "d1", "don-1", "Rice", domain.DonationAccepted).Return(nil)

	service := NewService(donations, users, notifs, ModeStrict)

	status := "accepted"
	ngoID := "n1"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status, NgoID: &ngoID})

	assert.NoError(t, err)
	assert.Equal(t, domain.DonationAccepted, v.Status)
	assert.Equal(t, "n1", v.NgoID)
	assert.Equal(t, "Food For All", v.Ngo.Name)
	notifs.AssertNumberOfCalls(t, "NotifyStatusChanged", 1)
}

func TestService_Transition_NgoOnlyPatchStaysSilent(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	current := pendingDonation()
	current.Status = domain.DonationAccepted
	current.NgoID = "n1"

	updated := pendingDonation()
	updated.Status = domain.DonationAccepted
	updated.NgoID = "n2"

	donations.On("GetByID", mock.Anything, "don-1").Return(current, nil).Once()
	donations.On("UpdateFields", mock.Anything, "don-1", map[string]any{"ngo_id": "n2"}).Return(nil)
	donations.On("GetByID", mock.Anything, "don-1").Return(updated, nil)

	other := ngoUser()
	other.ID = "n2"
	users.On("GetByID", mock.Anything, "n2").Return(other, nil)
	users.On("GetByID", mock.Anything, "d1").Return(donor(), nil)

	service := NewService(donations, users, notifs, ModeStrict)

	ngoID := "n2"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{NgoID: &ngoID})

	assert.NoError(t, err)
	assert.Equal(t, domain.DonationAccepted, v.Status)
	assert.Equal(t, "n2", v.NgoID)
	notifs.AssertNotCalled(t, "NotifyStatusChanged")
}

func TestService_Transition_StrictRejectsBackward(t *testing.T) {
	donations := new(MockDonationRepository)
	notifs := new(MockNotificationSender)

	collected := pendingDonation()
	collected.Status = domain.DonationCollected
	collected.NgoID = "n1"

	donations.On("GetByID", mock.Anything, "don-1").Return(collected, nil)

	service := NewService(donations, new(MockUserRepository), notifs, ModeStrict)

	status := "accepted"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, v)
	donations.AssertNotCalled(t, "UpdateFields")
	notifs.AssertNotCalled(t, "NotifyStatusChanged")
}

func TestService_Transition_PermissiveAllowsBackward(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	collected := pendingDonation()
	collected.Status = domain.DonationCollected
	collected.NgoID = "n1"

	reverted := pendingDonation()
	reverted.Status = domain.DonationAccepted
	reverted.NgoID = "n1"

	donations.On("GetByID", mock.Anything, "don-1").Return(collected, nil).Once()
	donations.On("UpdateFields", mock.Anything, "don-1", map[string]any{"status": "accepted"}).Return(nil)
	donations.On("GetByID", mock.Anything, "don-1").Return(reverted, nil)

	users.On("GetByID", mock.Anything, "d1").Return(donor(), nil)
	users.On("GetByID", mock.Anything, "n1").Return(ngoUser(), nil)

	notifs.On("NotifyStatusChanged", mock.Anything, "d1", "don-1", "Rice", domain.DonationAccepted).Return(nil)

	service := NewService(donations, users, notifs, ModePermissive)

	status := "accepted"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.DonationAccepted, v.Status)
}

func TestService_Transition_InvalidStatusValue(t *testing.T) {
	donations := new(MockDonationRepository)
	donations.On("GetByID", mock.Anything, "don-1").Return(pendingDonation(), nil)

	service := NewService(donations, new(MockUserRepository), new(MockNotificationSender), ModePermissive)

	status := "delivered"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status})

	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Nil(t, v)
	donations.AssertNotCalled(t, "UpdateFields")
}

func TestService_Transition_StrictRequiresNGO(t *testing.T) {
	donations := new(MockDonationRepository)
	donations.On("GetByID", mock.Anything, "don-1").Return(pendingDonation(), nil)

	service := NewService(donations, new(MockUserRepository), new(MockNotificationSender), ModeStrict)

	status := "accepted"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status})

	assert.ErrorIs(t, err, ErrNGORequired)
	assert.Nil(t, v)
	donations.AssertNotCalled(t, "UpdateFields")
}

func TestService_Transition_EmitFailureDoesNotFailTransition(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotificationSender)

	accepted := pendingDonation()
	accepted.Status = domain.DonationAccepted
	accepted.NgoID = "n1"

	collected := pendingDonation()
	collected.Status = domain.DonationCollected
	collected.NgoID = "n1"

	donations.On("GetByID", mock.Anything, "don-1").Return(accepted, nil).Once()
	donations.On("UpdateFields", mock.Anything, "don-1", map[string]any{"status": "collected"}).Return(nil)
	donations.On("GetByID", mock.Anything, "don-1").Return(collected, nil)

	users.On("GetByID", mock.Anything, "d1").Return(donor(), nil)
	users.On("GetByID", mock.Anything, "n1").Return(ngoUser(), nil)

	notifs.On("NotifyStatusChanged", mock.Anything, "d1", "don-1", "Rice", domain.DonationCollected).
		Return(errors.New("store unavailable"))

	service := NewService(donations, users, notifs, ModeStrict)

	status := "collected"
	v, err := service.Transition(context.Background(), "don-1", UpdateDonationRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.DonationCollected, v.Status)
	notifs.AssertNumberOfCalls(t, "NotifyStatusChanged", 1)
}

func TestService_Get_PopulatesDonor(t *testing.T) {
	donations := new(MockDonationRepository)
	users := new(MockUserRepository)

	donations.On("GetByID", mock.Anything, "don-1").Return(pendingDonation(), nil)
	users.On("GetByID", mock.Anything, "d1").Return(donor(), nil)

	service := NewService(donations, users, new(MockNotificationSender), ModeStrict)

	v, err := service.Get(context.Background(), "don-1")

	assert.NoError(t, err)
	assert.Equal(t, "Green Bistro", v.Donor.Name)
	assert.Equal(t, "bistro@kindkart.org", v.Donor.Email)
}
