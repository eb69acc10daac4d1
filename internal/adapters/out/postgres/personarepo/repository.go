package personarepo

import (
	"context"
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPersonaRepository implements ports.PersonaRepository using GORM.
type GormPersonaRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// A nil tracker is allowed for repositories that only serve reads.
func NewGormPersonaRepository(db *gorm.DB, tracker aggregateTracker) *GormPersonaRepository {
	return &GormPersonaRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new persona. The national ID is unique.
func (r *GormPersonaRepository) Add(ctx context.Context, aggregate *persona.Persona) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("persona", dto.NationalID, err)
		}
		return err
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

// Update overwrites every column, including zero values such as a cleared special flag.
func (r *GormPersonaRepository) Update(ctx context.Context, aggregate *persona.Persona) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PersonaDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("persona", dto.NationalID, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("persona", aggregate.ID().String())
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormPersonaRepository) Get(ctx context.Context, id kernel.UUID) (*persona.Persona, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the persona row with SELECT ... FOR UPDATE.
func (r *GormPersonaRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*persona.Persona, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// GetAll returns every persona ordered by last and first name.
func (r *GormPersonaRepository) GetAll(ctx context.Context) ([]*persona.Persona, error) {
	var dtos []PersonaDTO
	if err := r.db.WithContext(ctx).Order("apellido, nombre, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	personas := make([]*persona.Persona, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}

	return personas, nil
}

func (r *GormPersonaRepository) get(db *gorm.DB, id kernel.UUID) (*persona.Persona, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PersonaDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("persona", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
