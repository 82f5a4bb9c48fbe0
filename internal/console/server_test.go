package console

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/apiclient"
)

type stubAPI struct {
	mux     *http.ServeMux
	orders  string
	deletes atomic.Int64
}

func newStubAPI() *stubAPI {
	s := &stubAPI{orders: `[]`}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(s.orders))
	})
	mux.HandleFunc("GET /api/customers", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"Maria Silva","email":"maria@example.com"}]`))
	})
	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":3,"name":"Teclado Mecânico","price":300.0}]`))
	})
	mux.HandleFunc("DELETE /api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.deletes.Add(1)
		w.Write([]byte(`{"message":"order deleted"}`))
	})
	s.mux = mux
	return s
}

func newTestServer(t *testing.T, api *stubAPI) *Server {
	t.Helper()
	backend := httptest.NewServer(api.mux)
	t.Cleanup(backend.Close)
	client := apiclient.New(backend.URL, backend.Client(), zerolog.Nop())
	server, err := New(client, zerolog.Nop())
	require.NoError(t, err)
	return server
}

func TestOrdersPage_EmptyCollectionShowsPlaceholderRow(t *testing.T) {
	server := newTestServer(t, newStubAPI())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Nenhum pedido cadastrado.")
}

func TestOrdersPage_RendersItemLines(t *testing.T) {
	api := newStubAPI()
	api.orders = `[{"id":5,"customer_id":1,"customer_name":"Maria Silva","order_date":"2026-08-01T10:00:00Z","status":"Em andamento","total":600.0,"itens":[{"produto_id":3,"produto_nome":"Teclado Mecânico","quantidade":2,"preco_unitario":300.0}]}]`
	server := newTestServer(t, api)

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Maria Silva")
	assert.Contains(t, body, "Teclado Mecânico (2x) - R$ 300.00/un.")
	assert.Contains(t, body, "01/08/2026")
	assert.NotContains(t, body, "Nenhum pedido cadastrado.")
}

func TestDeleteOrder_WithoutConfirmationSendsNoRequest(t *testing.T) {
	api := newStubAPI()
	api.orders = `[{"id":5,"customer_id":1,"customer_name":"Maria Silva","order_date":"2026-08-01T10:00:00Z","status":"Em andamento","total":600.0,"itens":[]}]`
	server := newTestServer(t, api)

	form := url.Values{}
	req := httptest.NewRequest(http.MethodPost, "/orders/5/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, int64(0), api.deletes.Load())
}

func TestDeleteOrder_ConfirmedSendsRequest(t *testing.T) {
	api := newStubAPI()
	api.orders = `[{"id":5,"customer_id":1,"customer_name":"Maria Silva","order_date":"2026-08-01T10:00:00Z","status":"Em andamento","total":600.0,"itens":[]}]`
	server := newTestServer(t, api)

	form := url.Values{"confirmed": {"true"}}
	req := httptest.NewRequest(http.MethodPost, "/orders/5/delete", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, int64(1), api.deletes.Load())
}

func TestRootRedirectsToOrders(t *testing.T) {
	server := newTestServer(t, newStubAPI())

	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/orders", rec.Header().Get("Location"))
}
