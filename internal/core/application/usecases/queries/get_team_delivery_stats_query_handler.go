package queries

import (
	"context"

	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GetTeamDeliveryStatsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetTeamDeliveryStatsQueryHandler(db *gorm.DB, clock kernel.Clock) GetTeamDeliveryStatsQueryHandler {
	return GetTeamDeliveryStatsQueryHandler{db: db, clock: clock}
}

func (h GetTeamDeliveryStatsQueryHandler) Handle(
	ctx context.Context,
	query GetTeamDeliveryStatsQuery,
) (GetTeamDeliveryStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTeamDeliveryStatsQueryResponse{}, err
	}

	res := GetTeamDeliveryStatsQueryResponse{
		Team:      query.Team(),
		ByStatus:  make(map[string]int),
		ByAidType: make(map[string]int),
	}
	for _, s := range delivery.AllStatuses() {
		res.ByStatus[s.Value()] = 0
	}
	for _, a := range delivery.AllAidTypes() {
		res.ByAidType[a.Value()] = 0
	}

	now := h.clock.Now()
	tx := h.db.WithContext(ctx).
		Table("bitacora_entregas").
		Select(`
			CASE
				WHEN estado IN (?, ?) AND fecha_vencimiento < ? THEN ?
				ELSE estado
			END AS efectivo,
			tipo_ayuda,
			COUNT(*)`,
			delivery.Preparing.Value(), delivery.Ready.Value(), now, delivery.Expired.Value()).
		Where("equipo_responsable = ?", query.Team().String())
	tx = approvalRange(tx, query.From(), query.To(), now.Location())

	rows, err := tx.Group("efectivo, tipo_ayuda").Rows()
	if err != nil {
		return GetTeamDeliveryStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status  string
			aidType string
			count   int
		)
		if err = rows.Scan(&status, &aidType, &count); err != nil {
			return GetTeamDeliveryStatsQueryResponse{}, err
		}

		res.Total += count
		res.ByStatus[status] += count
		res.ByAidType[aidType] += count
	}

	if err = rows.Err(); err != nil {
		return GetTeamDeliveryStatsQueryResponse{}, err
	}

	return res, nil
}
