package proposal

import (
	"context"
	"testing"
	"time"

	domainerrors "lexal/internal/errors"
	"lexal/internal/models"
	"lexal/internal/repositories"
	"lexal/internal/services/template"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) GetByID(id uint) (*models.Customer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(customer *models.Customer) error {
	args := m.Called(customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) List(offset, limit int) ([]*models.Customer, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.Customer), args.Get(1).(int64), args.Error(2)
}

func newTestCustomer(services ...string) *models.Customer {
	c := &models.Customer{
		Name:     "Arben Hoxha",
		Email:    "arben@example.com",
		Services: pq.StringArray(services),
		Fields:   models.FieldRecord{models.FieldClientName: "Arben Hoxha"},
	}
	c.ID = 1
	return c
}

func TestService_SuggestFees(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	got := svc.SuggestFees([]models.ServiceCategory{
		models.ServiceRealEstate,
		models.ServiceCompanyFormation,
	})

	assert.Equal(t, int64(250000), got.Service)
	assert.Equal(t, int64(305000), got.TotalALL)
}

func TestService_Render_Draft(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	customer := newTestCustomer("real_estate")
	got := svc.Render(customer)

	assert.Equal(t, template.RealEstate, got.Template)
	assert.False(t, got.FromSnapshot)
	assert.NotNil(t, got.Document)
	assert.Equal(t, int64(95000), got.Fees.TotalALL)
}

func TestService_Render_GenericFallback(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	customer := newTestCustomer("tax_consulting", "compliance")
	customer.Fields[models.FieldServiceFee] = "50000"

	got := svc.Render(customer)

	assert.Equal(t, template.Generic, got.Template)
	assert.Equal(t, int64(50000), got.Fees.TotalALL)
}

func TestService_Send(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	customer := newTestCustomer("residency_pensioner")
	repo.On("GetByID", uint(1)).Return(customer, nil)
	repo.On("Update", mock.Anything).Return(nil)

	sentAt := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	got, err := svc.Send(context.Background(), 1, sentAt)

	assert.NoError(t, err)
	assert.Equal(t, sentAt, *got.ProposalSentAt)
	assert.Equal(t, sentAt.Add(14*24*time.Hour), *got.ProposalExpiresAt)
	assert.NotNil(t, got.ProposalSnapshot)
	assert.NotEmpty(t, got.ProposalSnapshot.ID)
	assert.Equal(t, []models.ServiceCategory{models.ServiceResidencyPensioner}, got.ProposalSnapshot.Services)
	assert.Equal(t, int64(60800), got.ProposalSnapshot.TotalALL)

	repo.AssertExpectations(t)
}

func TestService_Send_FreezesFields(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	customer := newTestCustomer("real_estate")
	repo.On("GetByID", uint(1)).Return(customer, nil)
	repo.On("Update", mock.Anything).Return(nil)

	got, err := svc.Send(context.Background(), 1, time.Now())
	assert.NoError(t, err)

	// Edits after sending must not reach the frozen snapshot
	customer.Fields[models.FieldServiceFee] = "999999"
	customer.Services = pq.StringArray{"company_formation"}

	assert.NotContains(t, got.ProposalSnapshot.Fields, models.FieldServiceFee)
	assert.Equal(t, []models.ServiceCategory{models.ServiceRealEstate}, got.ProposalSnapshot.Services)

	rendered := svc.Render(customer)
	assert.True(t, rendered.FromSnapshot)
	assert.Equal(t, template.RealEstate, rendered.Template)
	assert.Equal(t, int64(95000), rendered.Fees.TotalALL)
}

func TestService_Snapshot(t *testing.T) {
	repo := new(MockCustomerRepository)
	svc := NewService(repo, nil)

	draft := newTestCustomer("real_estate")
	_, err := svc.Snapshot(draft)
	assert.ErrorIs(t, err, domainerrors.ErrProposalNotSent)

	sent := newTestCustomer("real_estate")
	repo.On("GetByID", uint(1)).Return(sent, nil)
	repo.On("Update", mock.Anything).Return(nil)
	_, err = svc.Send(context.Background(), 1, time.Now())
	assert.NoError(t, err)

	snapshot, err := svc.Snapshot(sent)
	assert.NoError(t, err)
	assert.Equal(t, sent.ProposalSnapshot.ID, snapshot.ID)
	assert.Equal(t, int64(95000), snapshot.TotalALL)
}

func TestService_Send_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockCustomerRepository)
		wantErr   error
	}{
		{
			name: "customer not found",
			setupMock: func(repo *MockCustomerRepository) {
				repo.On("GetByID", uint(1)).Return(nil, repositories.ErrCustomerNotFound)
			},
			wantErr: domainerrors.ErrCustomerNotFound,
		},
		{
			name: "no services selected",
			setupMock: func(repo *MockCustomerRepository) {
				repo.On("GetByID", uint(1)).Return(newTestCustomer(), nil)
			},
			wantErr: domainerrors.ErrNoServicesSelected,
		},
		{
			name: "only unknown services selected",
			setupMock: func(repo *MockCustomerRepository) {
				repo.On("GetByID", uint(1)).Return(newTestCustomer("litigation"), nil)
			},
			wantErr: domainerrors.ErrNoServicesSelected,
		},
		{
			name: "already sent",
			setupMock: func(repo *MockCustomerRepository) {
				customer := newTestCustomer("real_estate")
				now := time.Now()
				customer.ProposalSentAt = &now
				customer.ProposalSnapshot = &models.ProposalSnapshot{ID: "frozen"}
				repo.On("GetByID", uint(1)).Return(customer, nil)
			},
			wantErr: domainerrors.ErrProposalAlreadySent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCustomerRepository)
			tt.setupMock(repo)

			svc := NewService(repo, nil)
			_, err := svc.Send(context.Background(), 1, time.Now())

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
			repo.AssertNotCalled(t, "Update", mock.Anything)
		})
	}
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() {
		NewService(nil, nil)
	})
}
