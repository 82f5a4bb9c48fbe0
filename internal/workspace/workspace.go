// Package workspace holds the order-management page state and the
// synchronization rules between it and the sales API: parallel initial
// loading, local composer validation, and full refetch after every
// successful write.
package workspace

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/apiclient"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
)

// Confirmer answers whether a destructive action on an order should
// proceed. The console wires a UI-backed implementation; tests supply
// canned answers.
type Confirmer interface {
	Confirm(orderID int) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(orderID int) bool

func (f ConfirmFunc) Confirm(orderID int) bool { return f(orderID) }

// ItemDraft is an unsaved (product, quantity) pair in the composer.
type ItemDraft struct {
	ProductID int
	Quantity  int
}

// Workspace is the full page state. It is not safe for concurrent use;
// callers drive it from a single goroutine or hold their own lock.
type Workspace struct {
	client  *apiclient.Client
	confirm Confirmer
	logger  zerolog.Logger

	// last-fetched snapshots
	Orders    []model.Order
	Customers []model.Customer
	Products  []model.Product

	// composer state
	CustomerID int
	Status     string
	Drafts     []ItemDraft

	// row edit state; EditOrderID is zero when no row is in edit mode
	EditOrderID int
	EditStatus  string

	Busy bool
	Err  string
}

// New creates a Workspace with an empty composer. The confirmer gates
// order deletion; a nil confirmer approves everything.
func New(client *apiclient.Client, confirm Confirmer, logger zerolog.Logger) *Workspace {
	if confirm == nil {
		confirm = ConfirmFunc(func(int) bool { return true })
	}
	w := &Workspace{
		client:  client,
		confirm: confirm,
		logger:  logger.With().Str("component", "workspace").Logger(),
	}
	w.resetComposer()
	return w
}

func (w *Workspace) resetComposer() {
	w.CustomerID = 0
	w.Status = model.StatusInProgress
	w.Drafts = []ItemDraft{{ProductID: 0, Quantity: 1}}
}

// begin marks the start of a network-triggering operation: the busy flag
// goes up and any previous error is cleared.
func (w *Workspace) begin() {
	w.Busy = true
	w.Err = ""
}

func (w *Workspace) finish() {
	w.Busy = false
}

// fetchAll issues the three collection reads in parallel and either
// installs all three snapshots or none of them.
func (w *Workspace) fetchAll(ctx context.Context) error {
	var (
		orders    []model.Order
		customers []model.Customer
		products  []model.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = w.client.ListOrders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = w.client.ListCustomers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = w.client.ListProducts(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		w.Err = fmt.Sprintf("failed to load data: %v", err)
		return err
	}

	w.Orders = orders
	w.Customers = customers
	w.Products = products
	return nil
}

// Load fetches orders, customers and products in parallel. All three
// snapshots are replaced together; if any request fails the snapshots are
// emptied and a single combined error is surfaced.
func (w *Workspace) Load(ctx context.Context) error {
	w.begin()
	defer w.finish()

	if err := w.fetchAll(ctx); err != nil {
		w.Orders = nil
		w.Customers = nil
		w.Products = nil
		w.logger.Error().Err(err).Msg("workspace load failed")
		return err
	}
	return nil
}

// AddDraft appends an empty line-item draft to the composer.
func (w *Workspace) AddDraft() {
	w.Drafts = append(w.Drafts, ItemDraft{ProductID: 0, Quantity: 1})
}

// RemoveDraft drops the draft at index. The last remaining draft cannot
// be removed; an order always needs at least one item.
func (w *Workspace) RemoveDraft(index int) {
	if len(w.Drafts) <= 1 || index < 0 || index >= len(w.Drafts) {
		return
	}
	w.Drafts = append(w.Drafts[:index], w.Drafts[index+1:]...)
}

// SetDraft replaces the product and quantity of the draft at index.
func (w *Workspace) SetDraft(index, productID, quantity int) {
	if index < 0 || index >= len(w.Drafts) {
		return
	}
	w.Drafts[index] = ItemDraft{ProductID: productID, Quantity: quantity}
}

// validateComposer reports whether the composer can be submitted as-is.
func (w *Workspace) validateComposer() bool {
	if w.CustomerID == 0 {
		return false
	}
	for _, d := range w.Drafts {
		if d.ProductID == 0 || d.Quantity <= 0 {
			return false
		}
	}
	return true
}

// Submit validates the composer locally and, when valid, creates the
// order and reloads every snapshot. Validation failures never reach the
// network. On a request failure the composer keeps its state so the user
// can correct and resubmit.
func (w *Workspace) Submit(ctx context.Context) error {
	if !w.validateComposer() {
		w.Err = "please select a customer and add at least one item with a product and quantity"
		return fmt.Errorf("composer validation failed")
	}

	w.begin()
	defer w.finish()

	req := model.OrderRequest{
		CustomerID: w.CustomerID,
		Status:     w.Status,
		Items:      make([]model.OrderItemRequest, 0, len(w.Drafts)),
	}
	for _, d := range w.Drafts {
		req.Items = append(req.Items, model.OrderItemRequest{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
		})
	}

	if _, err := w.client.CreateOrder(ctx, req); err != nil {
		w.Err = err.Error()
		w.logger.Warn().Err(err).Msg("order creation failed")
		return err
	}

	w.resetComposer()
	return w.reload(ctx)
}

// StartEdit puts the given order's row into status-edit mode, seeded with
// its current status. Unknown ids are ignored.
func (w *Workspace) StartEdit(orderID int) {
	for _, o := range w.Orders {
		if o.ID == orderID {
			w.EditOrderID = o.ID
			w.EditStatus = o.Status
			return
		}
	}
}

// CancelEdit leaves edit mode without issuing a request.
func (w *Workspace) CancelEdit() {
	w.EditOrderID = 0
	w.EditStatus = ""
}

// SaveStatus submits the edited status for the row in edit mode, then
// exits edit mode and reloads. On failure the row stays editable.
func (w *Workspace) SaveStatus(ctx context.Context) error {
	if w.EditOrderID == 0 {
		return nil
	}

	w.begin()
	defer w.finish()

	id := w.EditOrderID
	status := w.EditStatus
	if err := w.client.UpdateOrder(ctx, id, model.OrderUpdate{Status: &status}); err != nil {
		w.Err = err.Error()
		w.logger.Warn().Err(err).Int("order_id", id).Msg("order update failed")
		return err
	}

	w.CancelEdit()
	return w.reload(ctx)
}

// Delete removes an order after confirmation. A declined confirmation
// sends no request and changes nothing.
func (w *Workspace) Delete(ctx context.Context, orderID int) error {
	if !w.confirm.Confirm(orderID) {
		return nil
	}

	w.begin()
	defer w.finish()

	if err := w.client.DeleteOrder(ctx, orderID); err != nil {
		w.Err = err.Error()
		w.logger.Warn().Err(err).Int("order_id", orderID).Msg("order deletion failed")
		return err
	}

	return w.reload(ctx)
}

// reload refreshes every snapshot after a successful write. Unlike Load
// it keeps the existing snapshots on failure and runs inside an operation
// that already owns the busy flag.
func (w *Workspace) reload(ctx context.Context) error {
	if err := w.fetchAll(ctx); err != nil {
		w.logger.Error().Err(err).Msg("reload after write failed")
		return err
	}
	return nil
}
