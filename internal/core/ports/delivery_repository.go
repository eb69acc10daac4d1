package ports

import (
	"context"
	"time"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/services"
)

// DeliveryHistory is the read-only view of a persona's past deliveries
// the eligibility rules consume.
type DeliveryHistory interface {
	// History summarizes the persona's approvals as seen at now. The month
	// count uses the calendar month of now in now's location.
	History(ctx context.Context, personaID kernel.UUID, now time.Time) (services.History, error)
}

// DeliveryRepository persists delivery log records.
type DeliveryRepository interface {
	DeliveryHistory

	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate reads the record and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetExpirable returns preparing and ready records whose pickup window
	// closed before now, locked for update.
	GetExpirable(ctx context.Context, now time.Time) ([]*delivery.Delivery, error)
}
