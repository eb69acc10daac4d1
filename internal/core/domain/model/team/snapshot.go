package team

// Snapshot is the audit rendering of a team row.
type Snapshot struct {
	ID         string `json:"id"`
	Code       string `json:"codigo"`
	Name       string `json:"nombre"`
	Active     bool   `json:"activo"`
	CycleStart string `json:"fecha_inicio_ciclo"`
}

func (t *Team) Snapshot() Snapshot {
	return Snapshot{
		ID:         t.id.String(),
		Code:       t.code.String(),
		Name:       t.DisplayName(),
		Active:     t.active,
		CycleStart: t.cycleStart.String(),
	}
}
