package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
)

// MockCustomerService is a mock implementation of service.CustomerService.
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetAll(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Customer), args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id int, upd *model.CustomerUpdate) (*model.Customer, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCustomerHandler_GetAll(t *testing.T) {
	mockService := new(MockCustomerService)
	mockService.On("GetAll", mock.Anything).Return([]model.Customer{
		{ID: 1, Name: "Maria Silva", Email: "maria@example.com"},
		{ID: 2, Name: "João Souza", Email: "joao@example.com"},
	}, nil)

	h := NewCustomerHandler(mockService, zerolog.Nop())
	rec := httptest.NewRecorder()
	h.GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var customers []model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &customers))
	assert.Len(t, customers, 2)
	assert.Equal(t, "Maria Silva", customers[0].Name)
}

func TestCustomerHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceResult  *model.Customer
		serviceErr     error
		skipService    bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid customer",
			body:           `{"name":"Maria Silva","email":"maria@example.com"}`,
			serviceResult:  &model.Customer{ID: 1, Name: "Maria Silva", Email: "maria@example.com"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed JSON",
			body:           `{"name":`,
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON payload",
		},
		{
			name:           "missing fields",
			body:           `{"name":"Maria Silva"}`,
			serviceErr:     model.NewDomainError(model.ErrCodeMissingField, "name and email are required"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "name and email are required",
		},
		{
			name:           "duplicate email",
			body:           `{"name":"Maria Silva","email":"maria@example.com"}`,
			serviceErr:     model.ErrEmailTaken,
			expectedStatus: http.StatusConflict,
			expectedError:  "email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCustomerService)
			if !tt.skipService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CustomerRequest")).
					Return(tt.serviceResult, tt.serviceErr)
			}

			h := NewCustomerHandler(mockService, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}

func TestCustomerHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "success",
			id:             "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "customer with orders",
			id:             "1",
			serviceErr:     model.ErrCustomerHasOrders,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown customer",
			id:             "99",
			serviceErr:     model.ErrCustomerNotFound,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCustomerService)
			mockService.On("Delete", mock.Anything, mock.AnythingOfType("int")).Return(tt.serviceErr)

			h := NewCustomerHandler(mockService, zerolog.Nop())
			req := httptest.NewRequest(http.MethodDelete, "/api/customers/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
