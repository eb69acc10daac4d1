package http

import (
	"context"
	"errors"
	"net/http"

	"aidtracker/internal/core/application/usecases/commands"
	"aidtracker/internal/core/application/usecases/queries"
	"aidtracker/internal/core/domain/model/delivery"
	"aidtracker/internal/core/domain/model/kernel"
	"aidtracker/internal/core/domain/model/team"
	"aidtracker/internal/core/domain/services"
	"aidtracker/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	RegisterPersonaHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterPersonaCommand) error
	}
	MarkPersonaSpecialHandler interface {
		Handle(ctx context.Context, cmd commands.MarkPersonaSpecialCommand) error
	}
	RemovePersonaSpecialHandler interface {
		Handle(ctx context.Context, cmd commands.RemovePersonaSpecialCommand) error
	}
	ApproveDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveDeliveryCommand) (services.Decision, error)
	}
	AdvanceDeliveryHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceDeliveryCommand) error
	}
	GetPersonaHandler interface {
		Handle(ctx context.Context, query queries.GetPersonaQuery) (queries.GetPersonaQueryResponse, error)
	}
	CheckEligibilityHandler interface {
		Handle(ctx context.Context, query queries.CheckEligibilityQuery) (queries.CheckEligibilityQueryResponse, error)
	}
	ListPersonaDeliveriesHandler interface {
		Handle(ctx context.Context, query queries.ListPersonaDeliveriesQuery) ([]queries.DeliveryItem, error)
	}
	GetTeamOnDutyHandler interface {
		Handle(ctx context.Context, query queries.GetTeamOnDutyQuery) (queries.GetTeamOnDutyQueryResponse, error)
	}
	GetTeamScheduleHandler interface {
		Handle(ctx context.Context, query queries.GetTeamScheduleQuery) (queries.GetTeamScheduleQueryResponse, error)
	}
	GetTeamDeliveryStatsHandler interface {
		Handle(ctx context.Context, query queries.GetTeamDeliveryStatsQuery) (queries.GetTeamDeliveryStatsQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterPersona       RegisterPersonaHandler
	MarkPersonaSpecial    MarkPersonaSpecialHandler
	RemovePersonaSpecial  RemovePersonaSpecialHandler
	ApproveDelivery       ApproveDeliveryHandler
	AdvanceDelivery       AdvanceDeliveryHandler
	GetPersona            GetPersonaHandler
	CheckEligibility      CheckEligibilityHandler
	ListPersonaDeliveries ListPersonaDeliveriesHandler
	GetTeamOnDuty         GetTeamOnDutyHandler
	GetTeamSchedule       GetTeamScheduleHandler
	GetTeamDeliveryStats  GetTeamDeliveryStatsHandler
}

// Server implements servers.ServerInterface on top of the application
// commands and queries.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterPersona handles POST /api/v1/personas.
func (s *Server) RegisterPersona(ctx echo.Context, params servers.RegisterPersonaParams) error {
	var body servers.RegisterPersonaJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFrom(params.XUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := profileFromRequest(body)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRegisterPersonaCommand(kernel.NewUUID(), profile, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.RegisterPersona.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: cmd.PersonaID().Bytes()})
}

// GetPersona handles GET /api/v1/personas/:personaId.
func (s *Server) GetPersona(ctx echo.Context, personaID servers.PersonaID) error {
	id, err := kernel.UUIDFromBytes(personaID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPersonaQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.h.GetPersona.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, personaResponse(res))
}

// CheckEligibility handles GET /api/v1/personas/:personaId/eligibility.
func (s *Server) CheckEligibility(ctx echo.Context, personaID servers.PersonaID) error {
	id, err := kernel.UUIDFromBytes(personaID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewCheckEligibilityQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.h.CheckEligibility.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := eligibilityResponse(res.PersonaID, res.Decision)
	out.FullName = &res.FullName
	out.Special = &res.Special
	return ctx.JSON(http.StatusOK, out)
}

// MarkPersonaSpecial handles POST /api/v1/personas/:personaId/special.
func (s *Server) MarkPersonaSpecial(
	ctx echo.Context,
	personaID servers.PersonaID,
	params servers.MarkPersonaSpecialParams,
) error {
	var body servers.MarkPersonaSpecialJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(personaID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFrom(params.XUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkPersonaSpecialCommand(
		id,
		valueOr(body.MonthlyCap, 0),
		valueOr(body.Indefinite, false),
		valueOr(body.Notes, ""),
		valueOr(body.Reason, ""),
		actor,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.MarkPersonaSpecial.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemovePersonaSpecial handles DELETE /api/v1/personas/:personaId/special.
func (s *Server) RemovePersonaSpecial(
	ctx echo.Context,
	personaID servers.PersonaID,
	params servers.RemovePersonaSpecialParams,
) error {
	id, err := kernel.UUIDFromBytes(personaID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFrom(params.XUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemovePersonaSpecialCommand(id, valueOr(params.Reason, ""), actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.RemovePersonaSpecial.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListPersonaDeliveries handles GET /api/v1/personas/:personaId/deliveries.
func (s *Server) ListPersonaDeliveries(
	ctx echo.Context,
	personaID servers.PersonaID,
	params servers.ListPersonaDeliveriesParams,
) error {
	id, err := kernel.UUIDFromBytes(personaID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListPersonaDeliveriesQuery(id, dateFrom(params.From), dateFrom(params.To))
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.h.ListPersonaDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Delivery, len(items))
	for i, item := range items {
		response[i] = deliveryResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveDelivery handles POST /api/v1/deliveries. An ineligible persona
// gets 422 with the decision that refused the approval.
func (s *Server) ApproveDelivery(ctx echo.Context, params servers.ApproveDeliveryParams) error {
	var body servers.ApproveDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	actor, err := actorFrom(params.XUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	personaID, err := kernel.UUIDFromBytes(body.PersonaId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	aidType, err := delivery.ParseAidType(string(body.AidType))
	if err != nil {
		return writeError(ctx, err)
	}

	responsible := team.Unknown
	if body.Team != nil {
		if responsible, err = team.ParseCode(string(*body.Team)); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewApproveDeliveryCommand(
		kernel.NewUUID(),
		personaID,
		body.Folio,
		aidType,
		responsible,
		valueOr(body.Notes, ""),
		actor,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	decision, err := s.h.ApproveDelivery.Handle(ctx.Request().Context(), cmd)
	var notEligible *commands.NotEligibleError
	if errors.As(err, &notEligible) {
		return ctx.JSON(http.StatusUnprocessableEntity, eligibilityResponse(personaID, notEligible.Decision))
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ApprovedDelivery{
		Id:          cmd.DeliveryID().Bytes(),
		Eligibility: eligibilityResponse(personaID, decision),
	})
}

// AdvanceDelivery handles POST /api/v1/deliveries/:deliveryId/transitions.
func (s *Server) AdvanceDelivery(
	ctx echo.Context,
	deliveryID openapi_types.UUID,
	params servers.AdvanceDeliveryParams,
) error {
	var body servers.AdvanceDeliveryJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := kernel.UUIDFromBytes(deliveryID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := actorFrom(params.XUserID)
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := delivery.ParseStatus(string(body.Target))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(id, target, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.AdvanceDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTeamOnDuty handles GET /api/v1/teams/on-duty.
func (s *Server) GetTeamOnDuty(ctx echo.Context, params servers.GetTeamOnDutyParams) error {
	query, err := queries.NewGetTeamOnDutyQuery(dateFrom(params.Day))
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.h.GetTeamOnDuty.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TeamOnDuty{
		Day:         apiDate(res.Day),
		Team:        servers.TeamCode(res.Team.String()),
		DisplayName: res.DisplayName,
		Window:      windowResponse(res.Window),
	})
}

// GetTeamSchedule handles GET /api/v1/teams/:code/schedule.
func (s *Server) GetTeamSchedule(ctx echo.Context, code servers.TeamCode, params servers.GetTeamScheduleParams) error {
	teamCode, err := team.ParseCode(string(code))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTeamScheduleQuery(teamCode, valueOr(params.Count, 0))
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.h.GetTeamSchedule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	windows := make([]servers.Window, len(res.Windows))
	for i, w := range res.Windows {
		windows[i] = windowResponse(w)
	}

	return ctx.JSON(http.StatusOK, servers.TeamSchedule{
		Team:        servers.TeamCode(res.Team.String()),
		DisplayName: res.DisplayName,
		OnDutyToday: res.OnDutyToday,
		Windows:     windows,
	})
}

// GetTeamDeliveryStats handles GET /api/v1/teams/:code/stats.
func (s *Server) GetTeamDeliveryStats(
	ctx echo.Context,
	code servers.TeamCode,
	params servers.GetTeamDeliveryStatsParams,
) error {
	teamCode, err := team.ParseCode(string(code))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTeamDeliveryStatsQuery(teamCode, dateFrom(params.From), dateFrom(params.To))
	if err != nil {
		return writeError(ctx, err)
	}

	res, err := s.h.GetTeamDeliveryStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TeamStats{
		Team:      servers.TeamCode(res.Team.String()),
		Total:     res.Total,
		ByStatus:  res.ByStatus,
		ByAidType: res.ByAidType,
	})
}
