package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// AdminHandler handles the admin console endpoints. Every route it serves
// sits behind RBAC(ADMIN).
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type dashboardResponse struct {
	Success bool                   `json:"success"`
	Stats   ports.DashboardStats   `json:"stats"`
	Users   []domain.PublicProfile `json:"users"`
	Stores  []ports.DashboardStore `json:"stores"`
}

type createUserResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	User    domain.PublicProfile `json:"user"`
}

type usersResponse struct {
	Success bool                   `json:"success"`
	Users   []domain.PublicProfile `json:"users"`
}

type storesResponse struct {
	Success bool                 `json:"success"`
	Stores  []ports.StoreSummary `json:"stores"`
}

type userDetailResponse struct {
	Success bool             `json:"success"`
	User    ports.UserDetail `json:"user"`
}

// Dashboard handles GET /admin/dashboard.
//
// @Summary      Platform-wide metrics plus full user and store lists
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      403  {object}  messageResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	result, err := h.adminService.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		Success: true,
		Stats:   result.Stats,
		Users:   result.Users,
		Stores:  result.Stores,
	})
}

// CreateUser handles POST /admin/create-user: same validation as
// self-registration, admin route policy.
//
// @Summary      Create an account as admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  createUserResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /admin/create-user [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.adminService.CreateUser(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()

	return c.JSON(http.StatusCreated, createUserResponse{
		Success: true,
		Message: "User created",
		User:    user.Public(),
	})
}

// Users handles GET /admin/users with optional name/email/address/role
// filters, AND-combined.
//
// @Summary      Filter users
// @Tags         admin
// @Produce      json
// @Param        name     query  string  false  "Substring on name"
// @Param        email    query  string  false  "Substring on email"
// @Param        address  query  string  false  "Substring on address"
// @Param        role     query  string  false  "Exact role match"
// @Success      200  {object}  usersResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	filter := ports.UserFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	}
	if roleParam := c.QueryParam("role"); roleParam != "" {
		role, err := domain.ParseRole(roleParam)
		if err != nil {
			return err
		}
		filter.Role = role
	}

	users, err := h.adminService.FilterUsers(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{Success: true, Users: users})
}

// Stores handles GET /admin/stores with optional name/email/address filters.
//
// @Summary      Filter stores
// @Tags         admin
// @Produce      json
// @Param        name     query  string  false  "Substring on name"
// @Param        email    query  string  false  "Substring on email"
// @Param        address  query  string  false  "Substring on address"
// @Success      200  {object}  storesResponse
// @Router       /admin/stores [get]
func (h *AdminHandler) Stores(c echo.Context) error {
	stores, err := h.adminService.FilterStores(c.Request().Context(), ports.StoreFilter{
		Name:    c.QueryParam("name"),
		Email:   c.QueryParam("email"),
		Address: c.QueryParam("address"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, storesResponse{Success: true, Stores: stores})
}

// UserDetails handles GET /admin/user/:id.
//
// @Summary      One account's details
// @Tags         admin
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userDetailResponse
// @Failure      404  {object}  messageResponse
// @Router       /admin/user/{id} [get]
func (h *AdminHandler) UserDetails(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	detail, err := h.adminService.UserDetails(c.Request().Context(), uint(id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userDetailResponse{Success: true, User: *detail})
}
