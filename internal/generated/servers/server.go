package servers

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yaml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi spec: %w", err)
	}
	return doc, nil
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Register a persona
	// (POST /api/v1/personas)
	RegisterPersona(ctx echo.Context, params RegisterPersonaParams) error
	// Get a persona
	// (GET /api/v1/personas/{personaId})
	GetPersona(ctx echo.Context, personaId PersonaID) error
	// Check whether a persona may receive a delivery now
	// (GET /api/v1/personas/{personaId}/eligibility)
	CheckEligibility(ctx echo.Context, personaId PersonaID) error
	// Mark a persona as a special case
	// (POST /api/v1/personas/{personaId}/special)
	MarkPersonaSpecial(ctx echo.Context, personaId PersonaID, params MarkPersonaSpecialParams) error
	// Return a persona to the regular rules
	// (DELETE /api/v1/personas/{personaId}/special)
	RemovePersonaSpecial(ctx echo.Context, personaId PersonaID, params RemovePersonaSpecialParams) error
	// List the deliveries of a persona
	// (GET /api/v1/personas/{personaId}/deliveries)
	ListPersonaDeliveries(ctx echo.Context, personaId PersonaID, params ListPersonaDeliveriesParams) error
	// Approve a delivery after an eligibility check
	// (POST /api/v1/deliveries)
	ApproveDelivery(ctx echo.Context, params ApproveDeliveryParams) error
	// Move a delivery to its next status
	// (POST /api/v1/deliveries/{deliveryId}/transitions)
	AdvanceDelivery(ctx echo.Context, deliveryId openapi_types.UUID, params AdvanceDeliveryParams) error
	// Team on duty for a day
	// (GET /api/v1/teams/on-duty)
	GetTeamOnDuty(ctx echo.Context, params GetTeamOnDutyParams) error
	// Upcoming duty windows of a team
	// (GET /api/v1/teams/{code}/schedule)
	GetTeamSchedule(ctx echo.Context, code TeamCode, params GetTeamScheduleParams) error
	// Delivery counts of a team
	// (GET /api/v1/teams/{code}/stats)
	GetTeamDeliveryStats(ctx echo.Context, code TeamCode, params GetTeamDeliveryStatsParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// RegisterPersona converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterPersona(ctx echo.Context) error {
	var params RegisterPersonaParams
	var err error

	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.RegisterPersona(ctx, params)
}

// GetPersona converts echo context to params.
func (w *ServerInterfaceWrapper) GetPersona(ctx echo.Context) error {
	personaId, err := bindUUIDPath(ctx, "personaId")
	if err != nil {
		return err
	}

	return w.Handler.GetPersona(ctx, personaId)
}

// CheckEligibility converts echo context to params.
func (w *ServerInterfaceWrapper) CheckEligibility(ctx echo.Context) error {
	personaId, err := bindUUIDPath(ctx, "personaId")
	if err != nil {
		return err
	}

	return w.Handler.CheckEligibility(ctx, personaId)
}

// MarkPersonaSpecial converts echo context to params.
func (w *ServerInterfaceWrapper) MarkPersonaSpecial(ctx echo.Context) error {
	personaId, err := bindUUIDPath(ctx, "personaId")
	if err != nil {
		return err
	}

	var params MarkPersonaSpecialParams
	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.MarkPersonaSpecial(ctx, personaId, params)
}

// RemovePersonaSpecial converts echo context to params.
func (w *ServerInterfaceWrapper) RemovePersonaSpecial(ctx echo.Context) error {
	personaId, err := bindUUIDPath(ctx, "personaId")
	if err != nil {
		return err
	}

	var params RemovePersonaSpecialParams
	err = runtime.BindQueryParameter("form", true, false, "reason", ctx.QueryParams(), &params.Reason)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter reason: %s", err))
	}

	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.RemovePersonaSpecial(ctx, personaId, params)
}

// ListPersonaDeliveries converts echo context to params.
func (w *ServerInterfaceWrapper) ListPersonaDeliveries(ctx echo.Context) error {
	personaId, err := bindUUIDPath(ctx, "personaId")
	if err != nil {
		return err
	}

	var params ListPersonaDeliveriesParams
	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.ListPersonaDeliveries(ctx, personaId, params)
}

// ApproveDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) ApproveDelivery(ctx echo.Context) error {
	var params ApproveDeliveryParams
	var err error

	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.ApproveDelivery(ctx, params)
}

// AdvanceDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceDelivery(ctx echo.Context) error {
	deliveryId, err := bindUUIDPath(ctx, "deliveryId")
	if err != nil {
		return err
	}

	var params AdvanceDeliveryParams
	params.XUserID, err = bindUserID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AdvanceDelivery(ctx, deliveryId, params)
}

// GetTeamOnDuty converts echo context to params.
func (w *ServerInterfaceWrapper) GetTeamOnDuty(ctx echo.Context) error {
	var params GetTeamOnDutyParams

	err := runtime.BindQueryParameter("form", true, false, "day", ctx.QueryParams(), &params.Day)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter day: %s", err))
	}

	return w.Handler.GetTeamOnDuty(ctx, params)
}

// GetTeamSchedule converts echo context to params.
func (w *ServerInterfaceWrapper) GetTeamSchedule(ctx echo.Context) error {
	var code TeamCode

	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}

	var params GetTeamScheduleParams
	err = runtime.BindQueryParameter("form", true, false, "count", ctx.QueryParams(), &params.Count)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter count: %s", err))
	}

	return w.Handler.GetTeamSchedule(ctx, code, params)
}

// GetTeamDeliveryStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetTeamDeliveryStats(ctx echo.Context) error {
	var code TeamCode

	err := runtime.BindStyledParameterWithOptions("simple", "code", ctx.Param("code"), &code,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter code: %s", err))
	}

	var params GetTeamDeliveryStatsParams
	err = runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.GetTeamDeliveryStats(ctx, code, params)
}

func bindUUIDPath(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// bindUserID reads the optional X-User-ID header.
func bindUserID(ctx echo.Context) (*UserID, error) {
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-User-ID")]
	if !found {
		return nil, nil
	}

	if n := len(valueList); n != 1 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-ID, got %d", n))
	}

	var userID UserID
	err := runtime.BindStyledParameterWithOptions("simple", "X-User-ID", valueList[0], &userID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-ID: %s", err))
	}
	return &userID, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used for registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/personas", wrapper.RegisterPersona)
	router.GET(baseURL+"/api/v1/personas/:personaId", wrapper.GetPersona)
	router.GET(baseURL+"/api/v1/personas/:personaId/eligibility", wrapper.CheckEligibility)
	router.POST(baseURL+"/api/v1/personas/:personaId/special", wrapper.MarkPersonaSpecial)
	router.DELETE(baseURL+"/api/v1/personas/:personaId/special", wrapper.RemovePersonaSpecial)
	router.GET(baseURL+"/api/v1/personas/:personaId/deliveries", wrapper.ListPersonaDeliveries)
	router.POST(baseURL+"/api/v1/deliveries", wrapper.ApproveDelivery)
	router.POST(baseURL+"/api/v1/deliveries/:deliveryId/transitions", wrapper.AdvanceDelivery)
	router.GET(baseURL+"/api/v1/teams/on-duty", wrapper.GetTeamOnDuty)
	router.GET(baseURL+"/api/v1/teams/:code/schedule", wrapper.GetTeamSchedule)
	router.GET(baseURL+"/api/v1/teams/:code/stats", wrapper.GetTeamDeliveryStats)
}
