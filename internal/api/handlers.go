package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/storefront/internal/api/middleware"
	"github.com/example/storefront/internal/command"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/query"
)

type Handlers struct {
	cmdHandler   *command.Handler
	queryHandler *query.Handler
}

func NewHandlers(cmdHandler *command.Handler, queryHandler *query.Handler) *Handlers {
	return &Handlers{
		cmdHandler:   cmdHandler,
		queryHandler: queryHandler,
	}
}

// Product Handlers

// GetProducts lists the catalog, filtered by the q and category query parameters
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := h.queryHandler.SearchProducts(q.Get("q"), q.Get("category"))
	respondJSON(w, http.StatusOK, products)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(extractPathParam(r.URL.Path, "/products/"))
	if err != nil {
		respondError(w, err)
		return
	}
	product, ok := h.queryHandler.GetProduct(id)
	if !ok {
		respondJSONError(w, "Product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Cart Handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queryHandler.GetCart())
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var cmd command.AddToCart
	if err := decodeJSON(r, &cmd); err != nil {
		respondError(w, err)
		return
	}

	if _, err := h.cmdHandler.AddToCart(r.Context(), cmd); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.GetCart())
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(extractPathParam(r.URL.Path, "/cart/items/"))
	if err != nil {
		respondError(w, err)
		return
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	cmd := command.UpdateCartQuantity{
		ProductID: productID,
		Delta:     req.Delta,
	}
	if _, _, err := h.cmdHandler.UpdateCartQuantity(r.Context(), cmd); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.GetCart())
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(extractPathParam(r.URL.Path, "/cart/items/"))
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.cmdHandler.RemoveFromCart(r.Context(), command.RemoveFromCart{ProductID: productID}); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.GetCart())
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cmdHandler.ClearCart(r.Context(), command.ClearCart{}); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.queryHandler.GetCart())
}

// Order Handlers

func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var cmd command.Checkout
	if err := decodeJSON(r, &cmd); err != nil {
		respondError(w, err)
		return
	}

	o, err := h.cmdHandler.Checkout(r.Context(), cmd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, h.queryHandler.OrderView(o))
}

// GetOrders lists the orders of the session user put in the context by RequireSession
func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, order.ErrNotAuthenticated)
		return
	}
	respondJSON(w, http.StatusOK, h.queryHandler.ListOrders(user.ID))
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(extractPathParam(r.URL.Path, "/orders/"))
	if err != nil {
		respondError(w, err)
		return
	}

	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		respondError(w, order.ErrNotAuthenticated)
		return
	}

	view, err := h.queryHandler.GetOrder(user.ID, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// Health

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondJSONError writes a JSON error response
func respondJSONError(w http.ResponseWriter, message string, status int) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondError(w http.ResponseWriter, err error) {
	respondJSONError(w, err.Error(), statusFor(err))
}

func extractPathParam(path, prefix string) string {
	return strings.Trim(strings.TrimPrefix(path, prefix), "/")
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", command.ErrInvalidInput, raw)
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", command.ErrInvalidInput)
	}
	return nil
}
