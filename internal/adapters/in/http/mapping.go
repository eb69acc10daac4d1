package http

import (
	"time"

	"aidtracker/internal/core/application/usecases/queries"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/persona"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func actorFrom(raw *servers.UserID) (*kernel.UUID, error) {
	return kernel.OptionalUUID(raw)
}

func dateFrom(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	day := kernel.DateOf(d.Time)
	return &day
}

func apiDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.In(time.UTC)}
}

func profileFromRequest(body servers.NewPersona) (persona.Profile, error) {
	marital, err := persona.ParseMaritalStatus(string(body.MaritalStatus))
	if err != nil {
		return persona.Profile{}, err
	}

	family, err := persona.ParseFamilyType(string(body.FamilyType))
	if err != nil {
		return persona.Profile{}, err
	}

	return persona.Profile{
		NationalID:     body.NationalId,
		Foreign:        valueOr(body.Foreign, false),
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		BirthDate:      kernel.DateOf(body.BirthDate.Time),
		MaritalStatus:  marital,
		FamilyType:     family,
		Phone:          valueOr(body.Phone, ""),
		Address:        valueOr(body.Address, ""),
		ServiceTeam:    valueOr(body.ServiceTeam, ""),
		MembersServing: valueOr(body.MembersServing, 0),
		Dependents:     valueOr(body.Dependents, 0),
	}, nil
}

func personaResponse(res queries.GetPersonaQueryResponse) servers.Persona {
	return servers.Persona{
		Id:                res.ID.Bytes(),
		NationalId:        res.NationalID,
		Foreign:           &res.Foreign,
		FirstName:         res.FirstName,
		LastName:          res.LastName,
		BirthDate:         apiDate(res.BirthDate),
		Age:               res.Age,
		MaritalStatus:     servers.MaritalStatus(res.MaritalStatus),
		FamilyType:        servers.FamilyType(res.FamilyType),
		Phone:             &res.Phone,
		Address:           &res.Address,
		ServiceTeam:       &res.ServiceTeam,
		MembersServing:    &res.MembersServing,
		Dependents:        &res.Dependents,
		Special:           res.Special,
		MonthlyCap:        &res.MonthlyCap,
		SpecialIndefinite: &res.SpecialIndefinite,
		SpecialNotes:      &res.SpecialObservations,
	}
}

func eligibilityResponse(personaID kernel.UUID, d services.Decision) servers.Eligibility {
	return servers.Eligibility{
		PersonaId:           personaID.Bytes(),
		Eligible:            d.Eligible,
		Code:                string(d.Code),
		Reason:              d.Reason,
		DaysRemaining:       d.DaysRemaining,
		DeliveriesThisMonth: d.DeliveriesThisMonth,
		RemainingThisMonth:  d.RemainingThisMonth,
		TrafficLight:        servers.EligibilityTrafficLight(services.TrafficLightOf(d)),
	}
}

func deliveryResponse(item queries.DeliveryItem) servers.Delivery {
	out := servers.Delivery{
		Id:          item.ID.Bytes(),
		Folio:       item.Folio,
		AidType:     servers.AidType(item.AidType),
		Team:        servers.TeamCode(item.Team),
		Status:      servers.DeliveryStatus(item.Status),
		ApprovedAt:  item.ApprovedAt,
		PreparedAt:  item.PreparedAt,
		ReadyAt:     item.ReadyAt,
		DeliveredAt: item.DeliveredAt,
		ExpiresAt:   item.ExpiresAt,
	}
	if item.Notes != "" {
		out.Notes = &item.Notes
	}
	return out
}

func windowResponse(w team.Window) servers.Window {
	return servers.Window{
		Start:      apiDate(w.Start),
		End:        apiDate(w.End),
		WeekNumber: w.WeekNumber,
	}
}
