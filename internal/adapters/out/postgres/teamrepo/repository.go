package teamrepo

import (
	"context"
	"errors"

	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTeamRepository implements ports.TeamRepository using GORM.
type GormTeamRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormTeamRepository(db *gorm.DB, tracker aggregateTracker) *GormTeamRepository {
	return &GormTeamRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormTeamRepository) Add(ctx context.Context, aggregate *team.Team) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("team", dto.Code, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormTeamRepository) Get(ctx context.Context, code team.Code) (*team.Team, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto TeamDTO
	if err := r.db.WithContext(ctx).First(&dto, "codigo = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("team", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll returns the stored teams in code order.
func (r *GormTeamRepository) GetAll(ctx context.Context) ([]*team.Team, error) {
	var dtos []TeamDTO
	if err := r.db.WithContext(ctx).Order("codigo").Find(&dtos).Error; err != nil {
		return nil, err
	}

	teams := make([]*team.Team, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, nil
}
