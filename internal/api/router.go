package api

import (
	"net/http"
	"strings"

	"github.com/example/storefront/internal/api/middleware"
)

// NewRouter wires the storefront endpoints. webDir, when set, is served at /.
func NewRouter(handlers *Handlers, sessions middleware.SessionSource, webDir string) http.Handler {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(sessions)

	// Static files (web UI)
	if webDir != "" {
		fs := http.FileServer(http.Dir(webDir))
		mux.Handle("/", fs)
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.Health(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Products
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetProducts(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetProduct(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Categories
	mux.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.ListCategories(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/categories/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/products"):
			handlers.GetProductsByCategory(w, r)
		case r.Method == http.MethodGet:
			respondJSONError(w, "Not found", http.StatusNotFound)
		default:
			methodNotAllowed(w)
		}
	})

	// Cart
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetCart(w, r)
		case http.MethodDelete:
			handlers.ClearCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handlers.AddToCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPatch:
			handlers.UpdateCartItem(w, r)
		case http.MethodDelete:
			handlers.RemoveFromCart(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	// Session
	mux.Handle("/session", requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.Me(w, r)
		default:
			methodNotAllowed(w)
		}
	})))

	mux.HandleFunc("/session/register", postOnly(handlers.Register))
	mux.HandleFunc("/session/login", postOnly(handlers.Login))
	mux.HandleFunc("/session/logout", postOnly(handlers.Logout))

	// Orders
	listOrders := requireSession(http.HandlerFunc(handlers.GetOrders))
	mux.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listOrders.ServeHTTP(w, r)
		case http.MethodPost:
			// Checkout reports a missing session itself, after the empty cart check
			handlers.PlaceOrder(w, r)
		default:
			methodNotAllowed(w)
		}
	})

	mux.Handle("/orders/", requireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.GetOrder(w, r)
		default:
			methodNotAllowed(w)
		}
	})))

	return middleware.RequestLogger(middleware.Recoverer(mux))
}

func postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w)
			return
		}
		h(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	respondJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
}
