package handler

import (
	"context"
	"encoding/json"
	"errors"
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

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id int) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderCreated, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderCreated), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id int, upd *model.OrderUpdate) error {
	args := m.Called(ctx, id, upd)
	return args.Error(0)
}

func (m *MockOrderService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderHandler_GetAll(t *testing.T) {
	tests := []struct {
		name           string
		orders         []model.Order
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "returns orders",
			orders: []model.Order{
				{ID: 1, CustomerID: 1, CustomerName: "Maria Silva", Status: model.StatusInProgress, Total: 150.00, Items: []model.OrderItem{}},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty collection is a bare empty array",
			orders:         nil,
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name:           "service failure stays opaque",
			serviceErr:     errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			mockService.On("GetAll", mock.Anything).Return(tt.orders, tt.serviceErr)

			h := NewOrderHandler(mockService, zerolog.Nop())
			rec := httptest.NewRecorder()
			h.GetAll(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestOrderHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceResult  *model.OrderCreated
		serviceErr     error
		skipService    bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid order",
			body:           `{"customer_id":7,"status":"Em andamento","itens":[{"produto_id":3,"quantidade":2}]}`,
			serviceResult:  &model.OrderCreated{ID: 10, CustomerID: 7, Status: model.StatusInProgress, Total: 600.00},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "malformed JSON",
			body:           `{"customer_id":`,
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid JSON payload",
		},
		{
			name:           "missing fields",
			body:           `{"itens":[]}`,
			serviceErr:     model.NewDomainError(model.ErrCodeMissingField, "customer id and order items are required"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "customer id and order items are required",
		},
		{
			name:           "unknown customer",
			body:           `{"customer_id":99,"itens":[{"produto_id":1,"quantidade":1}]}`,
			serviceErr:     model.ErrCustomerNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "customer not found",
		},
		{
			name:           "unknown product",
			body:           `{"customer_id":1,"itens":[{"produto_id":77,"quantidade":1}]}`,
			serviceErr:     model.ErrProductMissing(77),
			expectedStatus: http.StatusNotFound,
			expectedError:  "product 77 not found",
		},
		{
			name:           "invalid status",
			body:           `{"customer_id":1,"status":"Enviado","itens":[{"produto_id":1,"quantidade":1}]}`,
			serviceErr:     model.ErrInvalidStatusValue("Enviado"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid status: Enviado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			if !tt.skipService {
				mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.OrderRequest")).
					Return(tt.serviceResult, tt.serviceErr)
			}

			h := NewOrderHandler(mockService, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedError != "" {
				var resp model.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
			if tt.skipService {
				mockService.AssertNotCalled(t, "Create")
			}
		})
	}
}

func TestOrderHandler_Create_DecodesLegacyItemKeys(t *testing.T) {
	mockService := new(MockOrderService)
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(req *model.OrderRequest) bool {
		return req.CustomerID == 7 &&
			len(req.Items) == 1 &&
			req.Items[0].ProductID == 3 &&
			req.Items[0].Quantity == 2
	})).Return(&model.OrderCreated{ID: 1}, nil)

	h := NewOrderHandler(mockService, zerolog.Nop())
	body := `{"customer_id":7,"status":"Em andamento","itens":[{"produto_id":3,"quantidade":2}]}`
	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockService.AssertExpectations(t)
}

func TestOrderHandler_Update(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "status update",
			id:             "5",
			body:           `{"status":"Finalizado"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown order",
			id:             "99",
			body:           `{"status":"Finalizado"}`,
			serviceErr:     model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			id:             "abc",
			body:           `{"status":"Finalizado"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			mockService.On("Update", mock.Anything, mock.AnythingOfType("int"), mock.AnythingOfType("*model.OrderUpdate")).
				Return(tt.serviceErr)

			h := NewOrderHandler(mockService, zerolog.Nop())
			req := httptest.NewRequest(http.MethodPut, "/api/orders/"+tt.id, strings.NewReader(tt.body))
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Update(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		id             string
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success",
			id:             "5",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"order deleted"}`,
		},
		{
			name:           "unknown order",
			id:             "99",
			serviceErr:     model.ErrOrderNotFound,
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"order not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			mockService.On("Delete", mock.Anything, mock.AnythingOfType("int")).Return(tt.serviceErr)

			h := NewOrderHandler(mockService, zerolog.Nop())
			req := httptest.NewRequest(http.MethodDelete, "/api/orders/"+tt.id, nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			h.Delete(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
