package app

import (
	"time"

	"go.uber.org/zap"

	"github.com/bjo163/showjumps-crm/internal/domain"
	"github.com/bjo163/showjumps-crm/pkg/common"
)

func strptr(s string) *string { return &s }

// seedData loads the starter catalog and client book so a fresh instance is
// usable immediately. State is volatile, so this runs on every boot when
// seeding is enabled.
func (a *Application) seedData() {
	now := time.Now().UTC()

	seedProducts := []domain.Product{
		{
			ID:          common.NewID(),
			Name:        "Professional Training Jump Set",
			Description: "Complete set of training jumps with adjustable heights and safety features",
			Price:       1299.99,
			B2BPrice:    999.99,
			Image:       "https://images.unsplash.com/photo-1505246170520-1c003eda7abb?auto=format&fit=crop&q=80&w=1000",
			Category:    domain.CategoryTrainingJumps,
			SKU:         "TJ-001",
			Stock:       15,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          common.NewID(),
			Name:        "Competition Stand Pair",
			Description: "Professional-grade aluminum stands for tournament use",
			Price:       799.99,
			B2BPrice:    599.99,
			Image:       "https://images.unsplash.com/photo-1551524164-687a55dd1126?auto=format&fit=crop&q=80&w=1000",
			Category:    domain.CategoryTournamentStands,
			SKU:         "TS-002",
			Stock:       20,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          common.NewID(),
			Name:        "Decorative Plank Set",
			Description: "Set of 5 painted wooden planks with customizable designs",
			Price:       299.99,
			B2BPrice:    199.99,
			Image:       "https://images.unsplash.com/photo-1558346490-a72e53ae2d4f?auto=format&fit=crop&q=80&w=1000",
			Category:    domain.CategoryPlanks,
			SKU:         "PL-003",
			Stock:       30,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
	for _, p := range seedProducts {
		a.crmStore.AddProduct(p)
	}

	a.crmStore.AddClient(domain.Client{
		ID:        common.NewID(),
		Name:      "Equestrian Center Elite",
		Email:     "contact@ecelite.com",
		Phone:     "123-456-7890",
		Type:      domain.ClientB2B,
		Company:   strptr("Equestrian Center Elite LLC"),
		VATNumber: strptr("EU123456789"),
		Notes:     strptr("Premium facility, regular bulk orders"),
		CreatedAt: now,
		UpdatedAt: now,
	})

	zap.S().Infof("seeded %d products, 1 client", len(seedProducts))
}
