package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ratewise/store-ratings/internal/api/metrics"
	"github.com/ratewise/store-ratings/internal/core/domain"
	"github.com/ratewise/store-ratings/internal/core/ports"
)

// UserHandler handles password changes and rating submissions.
type UserHandler struct {
	authService   ports.AuthService
	ratingService ports.RatingService
}

func NewUserHandler(authService ports.AuthService, ratingService ports.RatingService) *UserHandler {
	return &UserHandler{authService: authService, ratingService: ratingService}
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

type ratingRequest struct {
	StoreID uint `json:"storeId" validate:"required"`
	Value   int  `json:"value" validate:"required"`
}

// UpdatePassword handles PUT /user/update-password and its OWNER twin under
// /store. The caller re-authenticates with the old password.
//
// @Summary      Change the caller's password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updatePasswordRequest  true  "Old and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /user/update-password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Password updated successfully",
	})
}

// SubmitRating handles POST /user/rate: the absent → rated transition. A 409
// tells the client the pair is already rated and to retry as an update.
//
// @Summary      Submit a first-time rating for a store
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      ratingRequest  true  "Store id and a 1-5 value"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /user/rate [post]
func (h *UserHandler) SubmitRating(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.ratingService.Submit(c.Request().Context(), userID, req.StoreID, req.Value); err != nil {
		if errors.Is(err, domain.ErrRatingExists) {
			metrics.RatingsTotal.WithLabelValues("conflict").Inc()
		}
		return err
	}

	metrics.RatingsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, messageResponse{
		Success: true,
		Message: "Rating submitted successfully",
	})
}

// UpdateRating handles PUT /user/rate: overwrites the value of an existing
// rating, leaving the pair in the rated state.
//
// @Summary      Update an existing rating
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      ratingRequest  true  "Store id and a 1-5 value"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /user/rate [put]
func (h *UserHandler) UpdateRating(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req ratingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.ratingService.Update(c.Request().Context(), userID, req.StoreID, req.Value); err != nil {
		return err
	}

	metrics.RatingsTotal.WithLabelValues("updated").Inc()

	return c.JSON(http.StatusOK, messageResponse{
		Success: true,
		Message: "Rating updated successfully",
	})
}
