package deliveryrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// A nil tracker is allowed for repositories that only serve reads.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("delivery", aggregate.ID().String(), err)
		}
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update overwrites every column so that cleared nullable fields are written too.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the record row with SELECT ... FOR UPDATE.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// GetExpirable locks and returns preparing and ready records past their
// deadline. Rows already locked by another transaction are skipped, so two
// overlapping sweeps never block each other.
func (r *GormDeliveryRepository) GetExpirable(ctx context.Context, now time.Time) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("estado IN ? AND fecha_vencimiento < ?",
			[]string{delivery.Preparing.Value(), delivery.Ready.Value()}, now).
		Order("fecha_vencimiento, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// History counts the persona's approvals. The current month is the calendar
// month of now in now's location.
func (r *GormDeliveryRepository) History(
	ctx context.Context,
	personaID kernel.UUID,
	now time.Time,
) (services.History, error) {
	if err := personaID.Validate(); err != nil {
		return services.History{}, err
	}

	monthStart, monthEnd := services.MonthBounds(now)

	var (
		last      sql.NullTime
		total     int
		thisMonth int
	)
	row := r.db.WithContext(ctx).Raw(`
		SELECT
			MAX(fecha_aprobacion),
			COUNT(*),
			COUNT(*) FILTER (WHERE fecha_aprobacion >= ? AND fecha_aprobacion < ?)
		FROM bitacora_entregas
		WHERE persona_id = ?
	`, monthStart, monthEnd, personaID.Bytes()).Row()
	if err := row.Scan(&last, &total, &thisMonth); err != nil {
		return services.History{}, err
	}

	h := services.History{Total: total, ThisMonth: thisMonth}
	if last.Valid {
		h.LastApprovedAt = &last.Time
	}
	return h, nil
}

func (r *GormDeliveryRepository) get(db *gorm.DB, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
