package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/example/storefront/internal/domain/cart"
	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/domain/session"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/notification"
	"github.com/example/storefront/internal/storefront"
	"github.com/rs/zerolog/log"
)

// cartKey is the partition key for cart events; there is a single cart
const cartKey = "cart"

// DefaultPublishTimeout bounds each event publish so an unreachable broker cannot stall callers
const DefaultPublishTimeout = 2 * time.Second

// Handler applies commands to the storefront one at a time
type Handler struct {
	mu             sync.Mutex
	sf             *storefront.Storefront
	notifier       notification.Notifier
	publisher      events.Publisher
	publishTimeout time.Duration
}

func NewHandler(sf *storefront.Storefront, notifier notification.Notifier, publisher events.Publisher) *Handler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Handler{
		sf:             sf,
		notifier:       notifier,
		publisher:      publisher,
		publishTimeout: DefaultPublishTimeout,
	}
}

// Dispatch routes a command value to its handler method
func (h *Handler) Dispatch(ctx context.Context, cmd any) (any, error) {
	switch c := cmd.(type) {
	case AddToCart:
		return h.AddToCart(ctx, c)
	case UpdateCartQuantity:
		item, _, err := h.UpdateCartQuantity(ctx, c)
		return item, err
	case RemoveFromCart:
		return nil, h.RemoveFromCart(ctx, c)
	case ClearCart:
		return nil, h.ClearCart(ctx, c)
	case Register:
		return h.Register(ctx, c)
	case Login:
		return h.Login(ctx, c)
	case Logout:
		return nil, h.Logout(ctx, c)
	case Checkout:
		return h.Checkout(ctx, c)
	default:
		return nil, fmt.Errorf("%w: unknown command %T", ErrInvalidInput, cmd)
	}
}

// AddToCart adds a product to the cart
func (h *Handler) AddToCart(ctx context.Context, cmd AddToCart) (cart.Item, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Item{}, err
	}

	out := h.begin()
	defer h.end(ctx, out)

	item, err := h.sf.Cart.Add(ctx, cmd.ProductID, cmd.Quantity)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			h.notify(ctx, notification.Error("Product not found"))
		}
		return cart.Item{}, err
	}

	h.notify(ctx, notification.Success("Product added to cart!"))
	out.add(cart.EventItemAdded, cartKey, cart.ItemAdded{
		ProductID: item.ProductID,
		Quantity:  cmd.Quantity,
		Price:     item.Price,
	})
	return item, nil
}

// UpdateCartQuantity adjusts a line; the bool is false when the line was removed
func (h *Handler) UpdateCartQuantity(ctx context.Context, cmd UpdateCartQuantity) (cart.Item, bool, error) {
	if err := cmd.Validate(); err != nil {
		return cart.Item{}, false, err
	}

	out := h.begin()
	defer h.end(ctx, out)

	item, kept, err := h.sf.Cart.UpdateQuantity(ctx, cmd.ProductID, cmd.Delta)
	if err != nil {
		return cart.Item{}, false, err
	}

	if kept {
		out.add(cart.EventItemUpdated, cartKey, cart.ItemUpdated{
			ProductID: item.ProductID,
			Delta:     cmd.Delta,
			Quantity:  item.Quantity,
		})
	} else {
		out.add(cart.EventItemRemoved, cartKey, cart.ItemRemoved{ProductID: cmd.ProductID})
	}
	return item, kept, nil
}

// RemoveFromCart removes a line. Removing an absent product succeeds.
func (h *Handler) RemoveFromCart(ctx context.Context, cmd RemoveFromCart) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	out := h.begin()
	defer h.end(ctx, out)

	if h.sf.Cart.Remove(ctx, cmd.ProductID) {
		out.add(cart.EventItemRemoved, cartKey, cart.ItemRemoved{ProductID: cmd.ProductID})
	}
	return nil
}

// ClearCart empties the cart
func (h *Handler) ClearCart(ctx context.Context, cmd ClearCart) error {
	out := h.begin()
	defer h.end(ctx, out)

	h.clearCart(ctx, out)
	return nil
}

// Register creates an account and logs it in
func (h *Handler) Register(ctx context.Context, cmd Register) (session.User, error) {
	if err := cmd.Validate(); err != nil {
		return session.User{}, err
	}

	out := h.begin()
	defer h.end(ctx, out)

	user, err := h.sf.Sessions.Register(ctx, cmd.Name, cmd.Email, cmd.Password, cmd.ConfirmPassword)
	switch {
	case errors.Is(err, session.ErrPasswordMismatch):
		h.notify(ctx, notification.Error("Passwords do not match"))
		return session.User{}, err
	case errors.Is(err, session.ErrEmailTaken):
		h.notify(ctx, notification.Error("Email already exists"))
		return session.User{}, err
	case err != nil:
		return session.User{}, err
	}

	h.notify(ctx, notification.Success("Registration successful!"))
	out.add(session.EventUserRegistered, userKey(user.ID), session.UserRegistered{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: time.Now(),
	})
	return user, nil
}

// Login starts a session for matching credentials
func (h *Handler) Login(ctx context.Context, cmd Login) (session.User, error) {
	if err := cmd.Validate(); err != nil {
		return session.User{}, err
	}

	out := h.begin()
	defer h.end(ctx, out)

	user, err := h.sf.Sessions.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			h.notify(ctx, notification.Error("Invalid email or password"))
		}
		return session.User{}, err
	}

	h.notify(ctx, notification.Success("Login successful!"))
	out.add(session.EventUserLoggedIn, userKey(user.ID), session.UserLoggedIn{
		UserID:   user.ID,
		Email:    user.Email,
		LoggedAt: time.Now(),
	})
	return user, nil
}

// Logout ends the current session
func (h *Handler) Logout(ctx context.Context, cmd Logout) error {
	out := h.begin()
	defer h.end(ctx, out)

	previous, wasLoggedIn := h.sf.Sessions.Logout(ctx)

	h.notify(ctx, notification.Success("Logged out successfully"))
	if wasLoggedIn {
		out.add(session.EventUserLoggedOut, userKey(previous.ID), session.UserLoggedOut{
			UserID:   previous.ID,
			LoggedAt: time.Now(),
		})
	}
	return nil
}

// Checkout places an order from the cart and clears it
func (h *Handler) Checkout(ctx context.Context, cmd Checkout) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	out := h.begin()
	defer h.end(ctx, out)

	var user *session.User
	if u, ok := h.sf.Sessions.CurrentUser(); ok {
		user = &u
	}

	o, err := h.sf.Orders.Place(ctx, h.sf.Cart.Snapshot(), user,
		order.ShippingAddress{
			Address: cmd.Address,
			City:    cmd.City,
			Zip:     cmd.Zip,
		},
		order.PaymentInfo{
			CardNumber: cmd.CardNumber,
			Expiry:     cmd.Expiry,
			CVV:        cmd.CVV,
		},
	)
	switch {
	case errors.Is(err, order.ErrEmptyCart):
		h.notify(ctx, notification.Error("Your cart is empty"))
		return order.Order{}, err
	case errors.Is(err, order.ErrNotAuthenticated):
		h.notify(ctx, notification.Error("Please login to proceed with checkout"))
		return order.Order{}, err
	case err != nil:
		return order.Order{}, err
	}

	out.add(order.EventOrderPlaced, strconv.FormatInt(o.ID, 10), h.orderPlaced(o, user.Email))
	h.clearCart(ctx, out)
	h.notify(ctx, notification.Success("Order placed successfully!"))

	log.Info().
		Str("component", "command").
		Int64("order_id", o.ID).
		Int64("user_id", o.UserID).
		Str("total", o.Total.StringFixed(2)).
		Msg("order placed")
	return o, nil
}

func (h *Handler) orderPlaced(o order.Order, email string) order.OrderPlaced {
	items := make([]order.OrderPlacedItem, len(o.Items))
	for i, item := range o.Items {
		var name string
		if p, ok := h.sf.Catalog.FindByID(item.ProductID); ok {
			name = p.Name
		}
		items[i] = order.OrderPlacedItem{
			ProductID: item.ProductID,
			Name:      name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return order.OrderPlaced{
		OrderID:  o.ID,
		UserID:   o.UserID,
		Email:    email,
		Items:    items,
		Total:    o.Total,
		City:     o.ShippingAddress.City,
		PlacedAt: o.OrderDate,
	}
}

// clearCart must be called with mu held
func (h *Handler) clearCart(ctx context.Context, out *outbox) {
	count := h.sf.Cart.ItemCount()
	h.sf.Cart.Clear(ctx)
	out.add(cart.EventCartCleared, cartKey, cart.CartCleared{ItemCount: count})
}

func (h *Handler) notify(ctx context.Context, n notification.Notification) {
	if h.notifier != nil {
		h.notifier.Notify(ctx, n)
	}
}

type pendingEvent struct {
	eventType string
	key       string
	data      any
}

// outbox collects the events of one command until the lock is released
type outbox struct {
	events []pendingEvent
}

func (o *outbox) add(eventType, key string, data any) {
	o.events = append(o.events, pendingEvent{eventType: eventType, key: key, data: data})
}

func (h *Handler) begin() *outbox {
	h.mu.Lock()
	return &outbox{}
}

// end releases the command lock, then publishes what the command produced
func (h *Handler) end(ctx context.Context, out *outbox) {
	h.mu.Unlock()
	for _, p := range out.events {
		h.publish(ctx, p)
	}
}

// publish delivers an event. The state change has already happened, so failures are only logged.
func (h *Handler) publish(ctx context.Context, p pendingEvent) {
	e, err := events.New(p.eventType, p.key, p.data)
	if err != nil {
		log.Error().Err(err).Str("component", "command").Str("event_type", p.eventType).Msg("failed to build event")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.publishTimeout)
	defer cancel()
	if err := h.publisher.Publish(ctx, p.key, e); err != nil {
		log.Error().Err(err).Str("component", "command").Str("event_type", p.eventType).Msg("failed to publish event")
	}
}

func userKey(id int64) string {
	return "user-" + strconv.FormatInt(id, 10)
}
