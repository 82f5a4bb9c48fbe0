// Package console is the server-rendered admin UI. It owns no business
// data; every page is a thin form-and-table shell over the sales API,
// with the orders page driven by the workspace state machine.
package console

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/apiclient"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/middleware"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/workspace"
)

//go:embed templates/*.html
var templateFS embed.FS

// formConfirmer approves deletions only when the posted form carried an
// explicit confirmation. Its flag is set per request while the server
// mutex is held.
type formConfirmer struct {
	ok bool
}

func (c *formConfirmer) Confirm(int) bool { return c.ok }

// Server serves the console pages. A single mutex serializes access to
// the shared workspace, which is not safe for concurrent use.
type Server struct {
	client  *apiclient.Client
	ws      *workspace.Workspace
	confirm *formConfirmer
	loaded  bool
	mu      sync.Mutex

	tmpl   *template.Template
	logger zerolog.Logger
}

// New creates a console Server backed by the given API client.
func New(client *apiclient.Client, logger zerolog.Logger) (*Server, error) {
	funcs := template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"date":  func(t time.Time) string { return t.Format("02/01/2006") },
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	confirm := &formConfirmer{}
	return &Server{
		client:  client,
		ws:      workspace.New(client, confirm, logger),
		confirm: confirm,
		tmpl:    tmpl,
		logger:  logger.With().Str("component", "console").Logger(),
	}, nil
}

// Handler returns the console's routed HTTP handler with its middleware
// chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/orders", http.StatusFound)
	})

	mux.HandleFunc("GET /customers", s.customersPage)
	mux.HandleFunc("POST /customers/create", s.createCustomer)
	mux.HandleFunc("POST /customers/{id}/update", s.updateCustomer)
	mux.HandleFunc("POST /customers/{id}/delete", s.deleteCustomer)

	mux.HandleFunc("GET /products", s.productsPage)
	mux.HandleFunc("POST /products/create", s.createProduct)
	mux.HandleFunc("POST /products/{id}/update", s.updateProduct)
	mux.HandleFunc("POST /products/{id}/delete", s.deleteProduct)

	mux.HandleFunc("GET /orders", s.ordersPage)
	mux.HandleFunc("POST /orders/items/add", s.addOrderItem)
	mux.HandleFunc("POST /orders/items/remove", s.removeOrderItem)
	mux.HandleFunc("POST /orders/submit", s.submitOrder)
	mux.HandleFunc("POST /orders/{id}/edit", s.startOrderEdit)
	mux.HandleFunc("POST /orders/edit/cancel", s.cancelOrderEdit)
	mux.HandleFunc("POST /orders/edit/save", s.saveOrderStatus)
	mux.HandleFunc("POST /orders/{id}/delete", s.deleteOrder)

	mux.HandleFunc("GET /reports", s.reportsPage)

	mux.HandleFunc("GET /analyzer", s.analyzerPage)
	mux.HandleFunc("POST /analyzer", s.runAnalyzer)

	var h http.Handler = mux
	h = middleware.Logging(s.logger)(h)
	h = middleware.Recovery(s.logger)(h)
	return h
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

// redirectWithError sends the browser back to a page, carrying the error
// message in the query string so the page can display it.
func redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	if err != nil {
		path = path + "?error=" + url.QueryEscape(err.Error())
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// --- customers ---

type customersData struct {
	Customers []model.Customer
	Error     string
}

func (s *Server) customersPage(w http.ResponseWriter, r *http.Request) {
	data := customersData{Error: r.URL.Query().Get("error")}
	customers, err := s.client.ListCustomers(r.Context())
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Customers = customers
	}
	s.render(w, "customers.html", data)
}

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	req := model.CustomerRequest{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}
	_, err := s.client.CreateCustomer(r.Context(), req)
	redirectWithError(w, r, "/customers", err)
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		redirectWithError(w, r, "/customers", fmt.Errorf("invalid customer id"))
		return
	}
	name := r.FormValue("name")
	email := r.FormValue("email")
	err = s.client.UpdateCustomer(r.Context(), id, model.CustomerUpdate{Name: &name, Email: &email})
	redirectWithError(w, r, "/customers", err)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil || r.FormValue("confirmed") != "true" {
		http.Redirect(w, r, "/customers", http.StatusSeeOther)
		return
	}
	err = s.client.DeleteCustomer(r.Context(), id)
	redirectWithError(w, r, "/customers", err)
}

// --- products ---

type productsData struct {
	Products []model.Product
	Error    string
}

func (s *Server) productsPage(w http.ResponseWriter, r *http.Request) {
	data := productsData{Error: r.URL.Query().Get("error")}
	products, err := s.client.ListProducts(r.Context())
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Products = products
	}
	s.render(w, "products.html", data)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	req := model.ProductRequest{Name: r.FormValue("name")}
	if price, err := strconv.ParseFloat(r.FormValue("price"), 64); err == nil {
		req.Price = &price
	}
	_, err := s.client.CreateProduct(r.Context(), req)
	redirectWithError(w, r, "/products", err)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		redirectWithError(w, r, "/products", fmt.Errorf("invalid product id"))
		return
	}
	update := model.ProductUpdate{}
	if name := r.FormValue("name"); name != "" {
		update.Name = &name
	}
	if price, perr := strconv.ParseFloat(r.FormValue("price"), 64); perr == nil {
		update.Price = &price
	}
	err = s.client.UpdateProduct(r.Context(), id, update)
	redirectWithError(w, r, "/products", err)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil || r.FormValue("confirmed") != "true" {
		http.Redirect(w, r, "/products", http.StatusSeeOther)
		return
	}
	err = s.client.DeleteProduct(r.Context(), id)
	redirectWithError(w, r, "/products", err)
}

// --- orders ---

type ordersData struct {
	*workspace.Workspace
	Statuses []string
}

// ensureLoaded performs the one-time initial load of the workspace. The
// caller must hold the mutex.
func (s *Server) ensureLoaded(r *http.Request) {
	if s.loaded {
		return
	}
	if err := s.ws.Load(r.Context()); err == nil {
		s.loaded = true
	}
}

func (s *Server) ordersPage(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(r)
	// rendered under the lock: the template reads live workspace state
	s.render(w, "orders.html", ordersData{
		Workspace: s.ws,
		Statuses:  []string{model.StatusInProgress, model.StatusDone, model.StatusCancelled},
	})
}

// applyComposerForm copies the posted composer fields into the workspace
// so add/remove/submit all act on what the user currently sees. The
// caller must hold the mutex.
func (s *Server) applyComposerForm(r *http.Request) {
	if err := r.ParseForm(); err != nil {
		return
	}
	s.ws.CustomerID, _ = strconv.Atoi(r.FormValue("customer_id"))
	if status := r.FormValue("status"); model.ValidStatus(status) {
		s.ws.Status = status
	}

	productIDs := r.Form["product_id"]
	quantities := r.Form["quantity"]
	if len(productIDs) == 0 || len(productIDs) != len(quantities) {
		return
	}
	drafts := make([]workspace.ItemDraft, 0, len(productIDs))
	for i := range productIDs {
		productID, _ := strconv.Atoi(productIDs[i])
		quantity, _ := strconv.Atoi(quantities[i])
		drafts = append(drafts, workspace.ItemDraft{ProductID: productID, Quantity: quantity})
	}
	s.ws.Drafts = drafts
}

func (s *Server) addOrderItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.applyComposerForm(r)
	s.ws.AddDraft()
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) removeOrderItem(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.applyComposerForm(r)
	if index, err := strconv.Atoi(r.FormValue("index")); err == nil {
		s.ws.RemoveDraft(index)
	}
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) submitOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.applyComposerForm(r)
	s.ws.Submit(r.Context())
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) startOrderEdit(w http.ResponseWriter, r *http.Request) {
	if id, err := pathID(r); err == nil {
		s.mu.Lock()
		s.ws.StartEdit(id)
		s.mu.Unlock()
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) cancelOrderEdit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.ws.CancelEdit()
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) saveOrderStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if status := r.FormValue("status"); model.ValidStatus(status) {
		s.ws.EditStatus = status
	}
	s.ws.SaveStatus(r.Context())
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		http.Redirect(w, r, "/orders", http.StatusSeeOther)
		return
	}
	s.mu.Lock()
	s.confirm.ok = r.FormValue("confirmed") == "true"
	s.ws.Delete(r.Context(), id)
	s.confirm.ok = false
	s.mu.Unlock()
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// --- reports ---

type reportsData struct {
	Summary *model.SalesSummary
	Pending []model.PendingOrder
	Top     []model.TopCustomer
	Error   string
}

func (s *Server) reportsPage(w http.ResponseWriter, r *http.Request) {
	var data reportsData
	var err error
	if data.Summary, err = s.client.SalesSummary(r.Context()); err == nil {
		if data.Pending, err = s.client.PendingOrders(r.Context()); err == nil {
			data.Top, err = s.client.TopCustomers(r.Context())
		}
	}
	if err != nil {
		data.Error = err.Error()
	}
	s.render(w, "reports.html", data)
}

// --- analyzer ---

type analyzerData struct {
	Text   string
	Result *model.AnalyzeResult
	Error  string
}

func (s *Server) analyzerPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "analyzer.html", analyzerData{})
}

func (s *Server) runAnalyzer(w http.ResponseWriter, r *http.Request) {
	data := analyzerData{Text: r.FormValue("text")}
	result, err := s.client.Analyze(r.Context(), data.Text)
	if err != nil {
		data.Error = err.Error()
	} else {
		data.Result = result
	}
	s.render(w, "analyzer.html", data)
}
