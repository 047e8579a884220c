package app

import (
	"github.com/asaskevich/EventBus"

	"github.com/bjo163/showjumps-crm/config"
	"github.com/bjo163/showjumps-crm/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides the state container
type StoreProvider interface {
	Store() *store.Store
}

// BusProvider provides the store change event bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Components should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	StoreProvider
	BusProvider
}
