// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"pairup/internal/delivery/http/response"
	"pairup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	sessionUC usecase.SessionUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(userUC usecase.UserUsecase, sessionUC usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{
		userUC:    userUC,
		sessionUC: sessionUC,
	}
}

type signupRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	Name          string `json:"name"`
	TermsAccepted bool   `json:"termsAccepted"`
	AgeConfirmed  bool   `json:"ageConfirmed"`
}

// Signup handles the account creation request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:         req.Email,
		Password:      req.Password,
		Name:          req.Name,
		TermsAccepted: req.TermsAccepted,
		AgeConfirmed:  req.AgeConfirmed,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, authPayload(output), "Account created")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authPayload(output), "Login successful")
}

// OAuthCallback handles the provider redirect carrying the authorization code.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	code := c.QueryParam("code")

	output, err := h.userUC.ExchangeOAuthCode(c.Request().Context(), usecase.OAuthCallbackInput{Code: code})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authPayload(output), "Login successful")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Refresh handles the token rotation request.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.sessionUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
	}, "Token refreshed")
}

type logoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Logout revokes the presented refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req logoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if err := h.sessionUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

func authPayload(output *usecase.AuthOutput) map[string]any {
	return map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"user": map[string]any{
			"id":    output.User.ID,
			"email": output.User.Email,
			"name":  output.User.Name,
		},
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
