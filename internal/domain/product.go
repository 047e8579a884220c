package domain

import (
	"fmt"
	"time"
)

// ProductCategory is a closed set of catalog categories.
type ProductCategory string

const (
	CategoryTrainingJumps    ProductCategory = "Training Jumps"
	CategoryTrainingStands   ProductCategory = "Training Stands"
	CategoryTournamentJumps  ProductCategory = "Tournament Jumps"
	CategoryTournamentStands ProductCategory = "Tournament Stands"
	CategoryFillers          ProductCategory = "Fillers"
	CategoryPlanks           ProductCategory = "Planks"
	CategoryAccessories      ProductCategory = "Accessories"
	CategoryPackages         ProductCategory = "Packages"
)

// Categories returns all catalog categories in display order.
func Categories() []ProductCategory {
	return []ProductCategory{
		CategoryTrainingJumps,
		CategoryTrainingStands,
		CategoryTournamentJumps,
		CategoryTournamentStands,
		CategoryFillers,
		CategoryPlanks,
		CategoryAccessories,
		CategoryPackages,
	}
}

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryTrainingJumps, CategoryTrainingStands,
		CategoryTournamentJumps, CategoryTournamentStands,
		CategoryFillers, CategoryPlanks, CategoryAccessories, CategoryPackages:
		return true
	}
	return false
}

func (c *ProductCategory) UnmarshalJSON(data []byte) error {
	v, err := unquote(data)
	if err != nil {
		return err
	}
	pc := ProductCategory(v)
	if !pc.Valid() {
		return fmt.Errorf("invalid product category %q", v)
	}
	*c = pc
	return nil
}

// Product is a catalog item with retail and B2B price tiers.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	B2BPrice    float64         `json:"b2bPrice"`
	Image       string          `json:"image"`
	Category    ProductCategory `json:"category"`
	SKU         string          `json:"sku"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductPatch carries a partial product update; nil fields are left as-is.
type ProductPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	B2BPrice    *float64         `json:"b2bPrice,omitempty"`
	Image       *string          `json:"image,omitempty"`
	Category    *ProductCategory `json:"category,omitempty"`
	SKU         *string          `json:"sku,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
}

// Apply merges the patch into p.
func (patch ProductPatch) Apply(p *Product) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.B2BPrice != nil {
		p.B2BPrice = *patch.B2BPrice
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SKU != nil {
		p.SKU = *patch.SKU
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
}
