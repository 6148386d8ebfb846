package service

import (
	"context"
	"errors"
	"testing"

	"inventory-tracker/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleRepository is a mock implementation of SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) GetAll(ctx context.Context) ([]model.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sale), args.Error(1)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, id int64) (*model.Sale, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSaleRepository) Update(ctx context.Context, id int64, patch *model.SalePatch) (*model.Sale, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sale), args.Error(1)
}

func (m *MockSaleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestSaleService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()
	saleDate := model.MustTimestamp("2024-03-01T12:00:00")

	tests := []struct {
		name       string
		req        *model.SaleCreateRequest
		expectRepo bool
		mockError  error
		expectErr  string
	}{
		{
			name: "Success",
			req: &model.SaleCreateRequest{
				ProductID:    ptr(int64(1)),
				QuantitySold: ptr(3),
				SaleDate:     &saleDate,
				TotalPrice:   ptr(29.97),
			},
			expectRepo: true,
		},
		{
			name: "Missing sale date and total",
			req: &model.SaleCreateRequest{
				ProductID:    ptr(int64(1)),
				QuantitySold: ptr(3),
			},
			expectErr: "sale_date, total_price",
		},
		{
			name: "Repository error",
			req: &model.SaleCreateRequest{
				ProductID:    ptr(int64(1)),
				QuantitySold: ptr(3),
				SaleDate:     &saleDate,
				TotalPrice:   ptr(29.97),
			},
			expectRepo: true,
			mockError:  errors.New("database error"),
			expectErr:  "failed to create sale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSaleRepository)
			service := NewSaleService(mockRepo, logger)

			if tt.expectRepo {
				mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Sale")).
					Run(func(args mock.Arguments) { args.Get(1).(*model.Sale).ID = 11 }).
					Return(tt.mockError)
			}

			id, err := service.Create(ctx, tt.req)

			if tt.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(11), id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSaleService_DeleteThenGet(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockSaleRepository)
	service := NewSaleService(mockRepo, logger)

	mockRepo.On("Delete", ctx, int64(4)).Return(true, nil).Once()
	mockRepo.On("GetByID", ctx, int64(4)).Return(nil, nil).Once()

	require.NoError(t, service.Delete(ctx, 4))

	sale, err := service.GetByID(ctx, 4)
	assert.Nil(t, sale)
	assert.Equal(t, model.ErrSaleNotFound, err)

	mockRepo.AssertExpectations(t)
}

func TestSaleService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		patch       *model.SalePatch
		expectRepo  bool
		mockReturn  *model.Sale
		mockError   error
		expectedErr error
	}{
		{
			name:       "Success",
			patch:      &model.SalePatch{PaymentMethod: model.Some("card")},
			expectRepo: true,
			mockReturn: &model.Sale{ID: 2, PaymentMethod: ptr("card")},
		},
		{
			name:        "Not found",
			patch:       &model.SalePatch{PaymentMethod: model.Some("card")},
			expectRepo:  true,
			expectedErr: model.ErrSaleNotFound,
		},
		{
			name:        "Unknown product",
			patch:       &model.SalePatch{ProductID: model.Some(int64(99))},
			expectRepo:  true,
			mockError:   model.ErrInvalidProductReference,
			expectedErr: model.ErrInvalidProductReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSaleRepository)
			service := NewSaleService(mockRepo, logger)

			if tt.expectRepo {
				mockRepo.On("Update", ctx, int64(2), tt.patch).Return(tt.mockReturn, tt.mockError)
			}

			sale, err := service.Update(ctx, 2, tt.patch)

			if tt.expectedErr != nil {
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, sale)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, sale)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSaleService_GetAll(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockSaleRepository)
	service := NewSaleService(mockRepo, logger)

	mockRepo.On("GetAll", ctx).Return(nil, errors.New("database error"))

	sales, err := service.GetAll(ctx)
	require.Error(t, err)
	assert.Nil(t, sales)

	mockRepo.AssertExpectations(t)
}
