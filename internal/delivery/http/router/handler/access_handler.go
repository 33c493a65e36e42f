package handler

import (
	"net/http"
	"time"

	"pairup/internal/delivery/http/middleware"
	"pairup/internal/delivery/http/response"
	"pairup/internal/domain/policy"
	"pairup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AgeTokenCookie is the cookie carrying the signed age-verification token.
const AgeTokenCookie = "pairup_age_token"

// AccessHandler holds dependencies for the route policy and age gate handlers.
type AccessHandler struct {
	accessUC usecase.AccessUsecase
}

// NewAccessHandler is the constructor for AccessHandler, injected by Fx.
func NewAccessHandler(accessUC usecase.AccessUsecase) *AccessHandler {
	return &AccessHandler{accessUC: accessUC}
}

// Evaluate applies the route policy to the requested path. The age token is
// read from its cookie and the session from the optional bearer token; both
// are resolved by the usecase, so an invalid token is a fact here, never a 401.
func (h *AccessHandler) Evaluate(c echo.Context) error {
	path := c.QueryParam("path")
	if path == "" {
		return response.BadRequest(c, "INVALID_INPUT", "path query parameter is required")
	}

	ageToken := ""
	if cookie, err := c.Cookie(AgeTokenCookie); err == nil {
		ageToken = cookie.Value
	}

	decision, err := h.accessUC.EvaluateRoute(c.Request().Context(), usecase.EvaluateRouteInput{
		Path:        path,
		AgeToken:    ageToken,
		AccessToken: middleware.BearerToken(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{"allowed": decision.Action == policy.ActionAllow}
	if decision.Action == policy.ActionRedirect {
		payload["redirect"] = decision.Target
	}

	return response.Success(c, http.StatusOK, payload, "")
}

type verifyAgeRequest struct {
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
}

// VerifyAge validates a date of birth and sets the signed age token cookie.
func (h *AccessHandler) VerifyAge(c echo.Context) error {
	var req verifyAgeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid age verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dateOfBirth, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "dateOfBirth must be YYYY-MM-DD")
	}

	output, err := h.accessUC.VerifyAge(c.Request().Context(), dateOfBirth)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AgeTokenCookie,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(output.ExpiresIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]any{
		"token":     output.Token,
		"expiresIn": int(output.ExpiresIn.Seconds()),
	}, "Age verified")
}
