// Package servers holds the HTTP contract of the API: the wire types, the
// ServerInterface the adapter implements and the embedded OpenAPI document.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for TeamCode.
const (
	AJ TeamCode = "AJ"
	BF TeamCode = "BF"
	CI TeamCode = "CI"
	DG TeamCode = "DG"
	EH TeamCode = "EH"
	KL TeamCode = "KL"
)

// Defines values for EligibilityTrafficLight.
const (
	Green  EligibilityTrafficLight = "green"
	Red    EligibilityTrafficLight = "red"
	Yellow EligibilityTrafficLight = "yellow"
)

// Defines values for TransitionTarget.
const (
	TransitionTargetEnPreparacion TransitionTarget = "en_preparacion"
	TransitionTargetEntregada     TransitionTarget = "entregada"
	TransitionTargetLista         TransitionTarget = "lista"
	TransitionTargetVencida       TransitionTarget = "vencida"
)

// AidType defines model for AidType.
type AidType string

// ApprovedDelivery defines model for ApprovedDelivery.
type ApprovedDelivery struct {
	Eligibility Eligibility        `json:"eligibility"`
	Id          openapi_types.UUID `json:"id"`
}

// Created defines model for Created.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// Delivery defines model for Delivery.
type Delivery struct {
	AidType     AidType            `json:"aidType"`
	ApprovedAt  time.Time          `json:"approvedAt"`
	DeliveredAt *time.Time         `json:"deliveredAt,omitempty"`
	ExpiresAt   *time.Time         `json:"expiresAt,omitempty"`
	Folio       string             `json:"folio"`
	Id          openapi_types.UUID `json:"id"`
	Notes       *string            `json:"notes,omitempty"`
	PreparedAt  *time.Time         `json:"preparedAt,omitempty"`
	ReadyAt     *time.Time         `json:"readyAt,omitempty"`
	Status      DeliveryStatus     `json:"status"`
	Team        TeamCode           `json:"team"`
}

// DeliveryStatus defines model for DeliveryStatus.
type DeliveryStatus string

// Eligibility defines model for Eligibility.
type Eligibility struct {
	Code                string                  `json:"code"`
	DaysRemaining       *int                    `json:"daysRemaining"`
	DeliveriesThisMonth int                     `json:"deliveriesThisMonth"`
	Eligible            bool                    `json:"eligible"`
	FullName            *string                 `json:"fullName,omitempty"`
	PersonaId           openapi_types.UUID      `json:"personaId"`
	Reason              string                  `json:"reason"`
	RemainingThisMonth  int                     `json:"remainingThisMonth"`
	Special             *bool                   `json:"special,omitempty"`
	TrafficLight        EligibilityTrafficLight `json:"trafficLight"`
}

// EligibilityTrafficLight defines model for Eligibility.TrafficLight.
type EligibilityTrafficLight string

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FamilyType defines model for FamilyType.
type FamilyType string

// MaritalStatus defines model for MaritalStatus.
type MaritalStatus string

// NewDelivery defines model for NewDelivery.
type NewDelivery struct {
	AidType   AidType            `json:"aidType"`
	Folio     string             `json:"folio"`
	Notes     *string            `json:"notes,omitempty"`
	PersonaId openapi_types.UUID `json:"personaId"`
	Team      *TeamCode          `json:"team,omitempty"`
}

// NewPersona defines model for NewPersona.
type NewPersona struct {
	Address        *string            `json:"address,omitempty"`
	BirthDate      openapi_types.Date `json:"birthDate"`
	Dependents     *int               `json:"dependents,omitempty"`
	FamilyType     FamilyType         `json:"familyType"`
	FirstName      string             `json:"firstName"`
	Foreign        *bool              `json:"foreign,omitempty"`
	LastName       string             `json:"lastName"`
	MaritalStatus  MaritalStatus      `json:"maritalStatus"`
	MembersServing *int               `json:"membersServing,omitempty"`
	NationalId     string             `json:"nationalId"`
	Phone          *string            `json:"phone,omitempty"`
	ServiceTeam    *string            `json:"serviceTeam,omitempty"`
}

// Persona defines model for Persona.
type Persona struct {
	Address           *string            `json:"address,omitempty"`
	Age               int                `json:"age"`
	BirthDate         openapi_types.Date `json:"birthDate"`
	Dependents        *int               `json:"dependents,omitempty"`
	FamilyType        FamilyType         `json:"familyType"`
	FirstName         string             `json:"firstName"`
	Foreign           *bool              `json:"foreign,omitempty"`
	Id                openapi_types.UUID `json:"id"`
	LastName          string             `json:"lastName"`
	MaritalStatus     MaritalStatus      `json:"maritalStatus"`
	MembersServing    *int               `json:"membersServing,omitempty"`
	MonthlyCap        *int               `json:"monthlyCap,omitempty"`
	NationalId        string             `json:"nationalId"`
	Phone             *string            `json:"phone,omitempty"`
	ServiceTeam       *string            `json:"serviceTeam,omitempty"`
	Special           bool               `json:"special"`
	SpecialIndefinite *bool              `json:"specialIndefinite,omitempty"`
	SpecialNotes      *string            `json:"specialNotes,omitempty"`
}

// SpecialCase defines model for SpecialCase.
type SpecialCase struct {
	Indefinite *bool   `json:"indefinite,omitempty"`
	MonthlyCap *int    `json:"monthlyCap,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Reason     *string `json:"reason,omitempty"`
}

// TeamCode defines model for TeamCode.
type TeamCode string

// TeamOnDuty defines model for TeamOnDuty.
type TeamOnDuty struct {
	Day         openapi_types.Date `json:"day"`
	DisplayName string             `json:"displayName"`
	Team        TeamCode           `json:"team"`
	Window      Window             `json:"window"`
}

// TeamSchedule defines model for TeamSchedule.
type TeamSchedule struct {
	DisplayName string   `json:"displayName"`
	OnDutyToday bool     `json:"onDutyToday"`
	Team        TeamCode `json:"team"`
	Windows     []Window `json:"windows"`
}

// TeamStats defines model for TeamStats.
type TeamStats struct {
	ByAidType map[string]int `json:"byAidType"`
	ByStatus  map[string]int `json:"byStatus"`
	Team      TeamCode       `json:"team"`
	Total     int            `json:"total"`
}

// Transition defines model for Transition.
type Transition struct {
	Target TransitionTarget `json:"target"`
}

// TransitionTarget defines model for Transition.Target.
type TransitionTarget string

// Window defines model for Window.
type Window struct {
	End        openapi_types.Date `json:"end"`
	Start      openapi_types.Date `json:"start"`
	WeekNumber int                `json:"weekNumber"`
}

// From defines model for From.
type From = openapi_types.Date

// PersonaID defines model for PersonaID.
type PersonaID = openapi_types.UUID

// To defines model for To.
type To = openapi_types.Date

// UserID defines model for UserID.
type UserID = openapi_types.UUID

// RegisterPersonaParams defines parameters for RegisterPersona.
type RegisterPersonaParams struct {
	XUserID *UserID `json:"X-User-ID,omitempty"`
}

// ListPersonaDeliveriesParams defines parameters for ListPersonaDeliveries.
type ListPersonaDeliveriesParams struct {
	From *From `form:"from,omitempty" json:"from,omitempty"`
	To   *To   `form:"to,omitempty" json:"to,omitempty"`
}

// MarkPersonaSpecialParams defines parameters for MarkPersonaSpecial.
type MarkPersonaSpecialParams struct {
	XUserID *UserID `json:"X-User-ID,omitempty"`
}

// RemovePersonaSpecialParams defines parameters for RemovePersonaSpecial.
type RemovePersonaSpecialParams struct {
	Reason  *string `form:"reason,omitempty" json:"reason,omitempty"`
	XUserID *UserID `json:"X-User-ID,omitempty"`
}

// ApproveDeliveryParams defines parameters for ApproveDelivery.
type ApproveDeliveryParams struct {
	XUserID *UserID `json:"X-User-ID,omitempty"`
}

// AdvanceDeliveryParams defines parameters for AdvanceDelivery.
type AdvanceDeliveryParams struct {
	XUserID *UserID `json:"X-User-ID,omitempty"`
}

// GetTeamOnDutyParams defines parameters for GetTeamOnDuty.
type GetTeamOnDutyParams struct {
	Day *openapi_types.Date `form:"day,omitempty" json:"day,omitempty"`
}

// GetTeamScheduleParams defines parameters for GetTeamSchedule.
type GetTeamScheduleParams struct {
	Count *int `form:"count,omitempty" json:"count,omitempty"`
}

// GetTeamDeliveryStatsParams defines parameters for GetTeamDeliveryStats.
type GetTeamDeliveryStatsParams struct {
	From *From `form:"from,omitempty" json:"from,omitempty"`
	To   *To   `form:"to,omitempty" json:"to,omitempty"`
}

// RegisterPersonaJSONRequestBody defines body for RegisterPersona for application/json ContentType.
type RegisterPersonaJSONRequestBody = NewPersona

// MarkPersonaSpecialJSONRequestBody defines body for MarkPersonaSpecial for application/json ContentType.
type MarkPersonaSpecialJSONRequestBody = SpecialCase

// ApproveDeliveryJSONRequestBody defines body for ApproveDelivery for application/json ContentType.
type ApproveDeliveryJSONRequestBody = NewDelivery

// AdvanceDeliveryJSONRequestBody defines body for AdvanceDelivery for application/json ContentType.
type AdvanceDeliveryJSONRequestBody = Transition
