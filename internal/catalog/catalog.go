// Package catalog holds the marketplace product model and the read-only
// providers the recommendation engine resolves against. The engine never
// mutates catalog data; it works from point-in-time snapshots and must
// tolerate the catalog changing between calls.
package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Category classifies a product listing.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryVehicles    Category = "Vehicles"
	CategoryClothing    Category = "Clothing"
	CategoryOther       Category = "Other"
)

// Condition is the wear state of a listed item.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionUsed Condition = "Used"
)

// Status is the availability state of a listing.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusSoldOut   Status = "Sold Out"
)

// Product is one marketplace listing. The engine itself only needs ID, Name,
// Price, Location and Category; the remaining fields ride along for rendering
// consumers (cards, detail views).
type Product struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Price       int       `yaml:"price" json:"price"`
	Category    Category  `yaml:"category" json:"category"`
	Condition   Condition `yaml:"condition" json:"condition"`
	Status      Status    `yaml:"status" json:"status"`
	Stock       int       `yaml:"stock" json:"stock"`
	Location    string    `yaml:"location" json:"location"`
	Description string    `yaml:"description" json:"description"`
	SellerPhone string    `yaml:"seller_phone" json:"seller_phone"`
	Featured    bool      `yaml:"featured" json:"featured"`
}

// Provider is the read-only catalog boundary. Implementations must return a
// snapshot the caller may hold without further synchronization.
type Provider interface {
	ListAll(ctx context.Context) ([]Product, error)
}

// EmptyInventorySentinel is serialized in place of an empty catalog so the
// assistant always receives a definite statement about stock.
const EmptyInventorySentinel = "No items currently listed in the store."

// InventoryContext serializes a catalog snapshot into the line-per-product
// form embedded in assistant requests:
//
//	[ID: <id>] <name> - KES <price> in <location>
func InventoryContext(products []Product) string {
	if len(products) == 0 {
		return EmptyInventorySentinel
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("[ID: %s] %s - KES %d in %s", p.ID, p.Name, p.Price, p.Location))
	}
	return strings.Join(lines, "\n")
}
