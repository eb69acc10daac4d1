package http

import (
	"errors"
	"fmt"
	"strings"

	"aidtracker/internal/core/domain/model/audit"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

func init() {
	openapi3.DefineStringFormatValidator("uuid",
		openapi3.NewRegexpFormatValidator(openapi3.FormatOfStringForUUIDOfRFC4122))
}

// ValidateRequests rejects requests that do not match doc with 400. Paths the
// document does not describe, such as /health, are passed through.
func ValidateRequests(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			err = openapi3filter.ValidateRequest(req.Context(), &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return badRequest(c, validationMessage(err))
			}

			return next(c)
		}
	}, nil
}

// validationMessage keeps the first line of a kin-openapi error, which names
// the offending parameter or body field.
func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Parameter != nil {
			return fmt.Sprintf("parameter %q in %s is invalid", reqErr.Parameter.Name, reqErr.Parameter.In)
		}
		if reqErr.RequestBody != nil {
			return "request body is invalid: " + firstLine(reqErr.Err)
		}
	}
	return firstLine(err)
}

func firstLine(err error) string {
	if err == nil {
		return ""
	}
	line, _, _ := strings.Cut(err.Error(), "\n")
	return strings.TrimSpace(line)
}

// RecordOrigin stores the caller address and user agent for the audit log.
func RecordOrigin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := audit.WithOrigin(req.Context(), audit.Origin{
				IPAddress: c.RealIP(),
				UserAgent: req.UserAgent(),
			})
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
