package postgres

import (
	"aidtracker/internal/adapters/out/postgres/auditrepo"
	"aidtracker/internal/adapters/out/postgres/deliveryrepo"
	"aidtracker/internal/adapters/out/postgres/personarepo"
	"aidtracker/internal/adapters/out/postgres/teamrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in truncation-safe order.
var Tables = []string{"auditorias", "bitacora_entregas", "personas", "equipos"}

// Migrate creates or updates the schema. The foreign key from
// bitacora_entregas to personas is added by hand because the DTOs carry no
// ORM relations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&personarepo.PersonaDTO{},
		&teamrepo.TeamDTO{},
		&deliveryrepo.DeliveryDTO{},
		&auditrepo.AuditDTO{},
	); err != nil {
		return err
	}

	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_bitacora_entregas_persona') THEN
				ALTER TABLE bitacora_entregas
					ADD CONSTRAINT fk_bitacora_entregas_persona
					FOREIGN KEY (persona_id) REFERENCES personas(id) ON DELETE CASCADE;
			END IF;
		END
		$$;
	`).Error
}
