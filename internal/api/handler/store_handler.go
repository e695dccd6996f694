package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// StoreHandler handles store browsing, creation and the owner's ratings view.
type StoreHandler struct {
	storeService ports.StoreService
}

func NewStoreHandler(storeService ports.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

type createStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required"`
	OwnerID uint   `json:"ownerId" validate:"required"`
}

type createStoreResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Store   *domain.Store `json:"store"`
}

// List handles GET /store/get. Unlike every other endpoint it returns a bare
// JSON array; the original client consumes it that way.
//
// @Summary      List stores with computed averages
// @Tags         stores
// @Produce      json
// @Param        search  query  string  false  "Substring matched against store name or address"
// @Param        sortBy  query  string  false  "Sort column: name or email (default name)"
// @Param        order   query  string  false  "Sort direction: asc or desc (default asc)"
// @Success      200  {array}   ports.StoreListItem
// @Failure      401  {object}  messageResponse
// @Router       /store/get [get]
func (h *StoreHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.storeService.ListStores(c.Request().Context(), ports.ListStoresInput{
		Search:      c.QueryParam("search"),
		SortBy:      c.QueryParam("sortBy"),
		Order:       c.QueryParam("order"),
		RequesterID: userID,
		Role:        role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

// Create handles POST /store/create and POST /admin/create-store. Route
// policy restricts both to admins.
//
// @Summary      Create a store for an owner
// @Tags         stores
// @Accept       json
// @Produce      json
// @Param        body  body      createStoreRequest  true  "Store details"
// @Success      201   {object}  createStoreResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /store/create [post]
func (h *StoreHandler) Create(c echo.Context) error {
	var req createStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.CreateStore(c.Request().Context(), ports.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		return err
	}

	metrics.StoresCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, createStoreResponse{
		Success: true,
		Message: "Store created successfully",
		Store:   store,
	})
}

// MyRatings handles GET /store/my-ratings: every rating on the caller's
// stores with rater contact details, as a bare array.
//
// @Summary      Ratings received on the caller's stores
// @Tags         stores
// @Produce      json
// @Success      200  {array}   ports.OwnerStoreRatings
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /store/my-ratings [get]
func (h *StoreHandler) MyRatings(c echo.Context) error {
	ownerID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.storeService.OwnerRatings(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
