package app

import (
	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"github.com/bjo163/showjumps-crm/internal/store"
)

// Event bus topics, one per collection. Payload is the store.Event.
const (
	TopicProductChanged = "crm.store.product"
	TopicClientChanged  = "crm.store.client"
	TopicDealChanged    = "crm.store.deal"
)

// busNotifier bridges store change events onto the application event bus.
// Publishing is synchronous, matching the store's single-action mutation
// model.
type busNotifier struct {
	bus EventBus.Bus
}

func (n *busNotifier) StoreChanged(ev store.Event) {
	switch ev.Entity {
	case store.EntityProduct:
		n.bus.Publish(TopicProductChanged, ev)
	case store.EntityClient:
		n.bus.Publish(TopicClientChanged, ev)
	case store.EntityDeal:
		n.bus.Publish(TopicDealChanged, ev)
	}
}

// registerObservers subscribes the default observers: a structured log line
// per effective mutation.
func (a *Application) registerObservers() {
	logChange := func(ev store.Event) {
		zap.L().Info("store_changed",
			zap.String("entity", string(ev.Entity)),
			zap.String("op", string(ev.Op)),
			zap.String("id", ev.ID),
		)
	}
	_ = a.bus.Subscribe(TopicProductChanged, logChange)
	_ = a.bus.Subscribe(TopicClientChanged, logChange)
	_ = a.bus.Subscribe(TopicDealChanged, logChange)
}
