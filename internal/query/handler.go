package query

import (
	"strings"

	"github.com/example/storefront/internal/domain/catalog"
	"github.com/example/storefront/internal/domain/order"
	"github.com/example/storefront/internal/readmodel"
	"github.com/example/storefront/internal/storefront"
	"github.com/shopspring/decimal"
)

type Handler struct {
	sf *storefront.Storefront
}

func NewHandler(sf *storefront.Storefront) *Handler {
	return &Handler{sf: sf}
}

// Products
func (h *Handler) GetProduct(id int64) (*ProductReadModel, bool) {
	p, ok := h.sf.Catalog.FindByID(id)
	if !ok {
		return nil, false
	}
	return toProduct(p), true
}

// SearchProducts filters by term and category. Surrounding whitespace in term is ignored.
func (h *Handler) SearchProducts(term, category string) []*ProductReadModel {
	return toProducts(h.sf.Catalog.Search(strings.TrimSpace(term), category))
}

// Categories
func (h *Handler) ListCategories() []*CategoryReadModel {
	counts := make(map[catalog.Category]int)
	for _, p := range h.sf.Catalog.List() {
		counts[p.Category]++
	}

	categories := h.sf.Catalog.Categories()
	result := make([]*CategoryReadModel, 0, len(categories))
	for _, c := range categories {
		result = append(result, &CategoryReadModel{Name: string(c), ProductCount: counts[c]})
	}
	return result
}

// Cart
func (h *Handler) GetCart() *CartReadModel {
	snapshot := h.sf.Cart.Snapshot()

	model := &CartReadModel{
		Items: make([]CartItemReadModel, 0, len(snapshot.Items)),
		Total: snapshot.Total,
	}
	for _, item := range snapshot.Items {
		line := CartItemReadModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: decimal.Zero,
		}
		if p, ok := h.sf.Catalog.FindByID(item.ProductID); ok {
			line.Name = p.Name
			line.ImageURL = p.Image
			line.Price = p.Price
			line.LineTotal = p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			line.Available = true
		}
		model.Items = append(model.Items, line)
		model.ItemCount += item.Quantity
	}
	return model
}

// Session
func (h *Handler) CurrentUser() (*UserReadModel, bool) {
	u, ok := h.sf.Sessions.CurrentUser()
	if !ok {
		return nil, false
	}
	return &UserReadModel{ID: u.ID, Name: u.Name, Email: u.Email}, true
}

// Orders

// ListOrders returns a user's orders, oldest first
func (h *Handler) ListOrders(userID int64) []*OrderReadModel {
	orders := h.sf.Orders.ListByUser(userID)
	result := make([]*OrderReadModel, 0, len(orders))
	for _, o := range orders {
		result = append(result, h.OrderView(o))
	}
	return result
}

// GetOrder returns one of a user's orders. Orders of other users are reported as not found.
func (h *Handler) GetOrder(userID, id int64) (*OrderReadModel, error) {
	o, err := h.sf.Orders.Get(id)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, order.ErrOrderNotFound
	}
	return h.OrderView(o), nil
}

// OrderView builds the read model of an order with product names and a masked card number
func (h *Handler) OrderView(o order.Order) *OrderReadModel {
	items := make([]OrderItemReadModel, 0, len(o.Items))
	for _, item := range o.Items {
		var name string
		if p, ok := h.sf.Catalog.FindByID(item.ProductID); ok {
			name = p.Name
		}
		items = append(items, OrderItemReadModel{
			ProductID: item.ProductID,
			Name:      name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			LineTotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return &OrderReadModel{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		ItemCount: o.ItemCount(),
		ShippingAddress: readmodel.ShippingReadModel{
			Address: o.ShippingAddress.Address,
			City:    o.ShippingAddress.City,
			Zip:     o.ShippingAddress.Zip,
		},
		CardNumber: readmodel.MaskCardNumber(o.PaymentInfo.CardNumber),
		Status:     string(o.Status),
		OrderDate:  o.OrderDate,
	}
}

func toProduct(p catalog.Product) *ProductReadModel {
	return &ProductReadModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		ImageURL:    p.Image,
		Stock:       p.Stock,
		InStock:     p.Stock > 0,
	}
}

func toProducts(products []catalog.Product) []*ProductReadModel {
	result := make([]*ProductReadModel, 0, len(products))
	for _, p := range products {
		result = append(result, toProduct(p))
	}
	return result
}
