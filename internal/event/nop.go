package event

import (
	"context"

	"github.com/commercekit/backoffice/internal/domain"
)

// NopPublisher discards all events. It is used when the event stream is
// disabled so services do not need to branch on a nil publisher.
type NopPublisher struct{}

func (NopPublisher) PublishInventoryCreated(context.Context, *domain.InventoryRecord) error {
	return nil
}

func (NopPublisher) PublishInventoryUpdated(context.Context, *domain.InventoryRecord) error {
	return nil
}

func (NopPublisher) PublishInventoryDeleted(context.Context, string) error { return nil }

func (NopPublisher) PublishInventoryLowStock(context.Context, *domain.InventoryRecord) error {
	return nil
}

func (NopPublisher) PublishProductCreated(context.Context, *domain.Product) error { return nil }

func (NopPublisher) PublishProductUpdated(context.Context, *domain.Product) error { return nil }
