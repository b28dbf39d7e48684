package query

// Re-export read models from readmodel package so handlers only import query
import "github.com/example/storefront/internal/readmodel"

type ProductReadModel = readmodel.ProductReadModel
type CategoryReadModel = readmodel.CategoryReadModel
type CartItemReadModel = readmodel.CartItemReadModel
type CartReadModel = readmodel.CartReadModel
type OrderItemReadModel = readmodel.OrderItemReadModel
type OrderReadModel = readmodel.OrderReadModel
type UserReadModel = readmodel.UserReadModel
