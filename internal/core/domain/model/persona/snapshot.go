package persona

// Snapshot is the audit-log rendering of a persona.
type Snapshot struct {
	ID                  string `json:"id"`
	NationalID          string `json:"numero_identidad"`
	Foreign             bool   `json:"es_extranjero"`
	FirstName           string `json:"nombre"`
	LastName            string `json:"apellido"`
	BirthDate           string `json:"fecha_nacimiento"`
	Age                 int    `json:"edad"`
	MaritalStatus       string `json:"estado_civil"`
	FamilyType          string `json:"tipo_familia"`
	Phone               string `json:"telefono,omitempty"`
	Address             string `json:"direccion,omitempty"`
	ServiceTeam         string `json:"equipo_servicio,omitempty"`
	MembersServing      int    `json:"miembros_sirven_iglesia"`
	Dependents          int    `json:"dependientes"`
	Special             bool   `json:"es_especial"`
	MonthlyCap          int    `json:"entregas_mes_permitidas"`
	SpecialIndefinite   bool   `json:"especial_indefinido"`
	SpecialObservations string `json:"especial_observaciones,omitempty"`
}

func (p *Persona) Snapshot() Snapshot {
	return Snapshot{
		ID:                  p.id.String(),
		NationalID:          p.profile.NationalID,
		Foreign:             p.profile.Foreign,
		FirstName:           p.profile.FirstName,
		LastName:            p.profile.LastName,
		BirthDate:           p.profile.BirthDate.String(),
		Age:                 p.age,
		MaritalStatus:       p.profile.MaritalStatus.Value(),
		FamilyType:          p.profile.FamilyType.Value(),
		Phone:               p.profile.Phone,
		Address:             p.profile.Address,
		ServiceTeam:         p.profile.ServiceTeam,
		MembersServing:      p.profile.MembersServing,
		Dependents:          p.profile.Dependents,
		Special:             p.special.special,
		MonthlyCap:          p.special.monthlyCap,
		SpecialIndefinite:   p.special.indefinite,
		SpecialObservations: p.special.notes,
	}
}
