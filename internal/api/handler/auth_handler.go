package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/api/middleware"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// sessionTTL bounds both the JWT expiry and the cookie lifetime.
const sessionTTL = 24 * time.Hour

// AuthHandler handles registration, login, logout and session introspection.
// cookieDomain scopes the session cookie; empty issues a host-only cookie.
type AuthHandler struct {
	authService  ports.AuthService
	cookieDomain string
}

func NewAuthHandler(authService ports.AuthService, cookieDomain string) *AuthHandler {
	return &AuthHandler{authService: authService, cookieDomain: cookieDomain}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type registerResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type loginResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    domain.PublicProfile `json:"user"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userResponse struct {
	Success bool                 `json:"success"`
	User    domain.PublicProfile `json:"user"`
}

// Register creates a new account. It does not log the user in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(strings.ToUpper(req.Role)).Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Success: true,
		Message: "Account created successfully.",
		UserID:  userID,
	})
}

// Login authenticates a user and issues the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials plus the role being signed in as"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(sessionCookie(token, sessionTTL, h.cookieDomain))

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome back %s", user.Name),
		User:    user.Public(),
	})
}

// Logout clears the session cookie. Idempotent: succeeds whether or not a
// session existed.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(expiredSessionCookie(h.cookieDomain))
	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Logged out successfully.",
	})
}

// Me returns the current user's public profile.
//
// @Summary      Who am I
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{Success: true, User: user.Public()})
}

// sessionCookie builds the HTTP-only cross-site cookie the session token
// travels in. SameSite=None with Secure matches the browser requirements for
// a client served from a different origin.
func sessionCookie(token string, ttl time.Duration, domain string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func expiredSessionCookie(domain string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
