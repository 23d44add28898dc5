package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/api/metrics"
	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type profileRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// GetAll lists every access profile.
//
// @Summary      List profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {array}  domain.Profile
// @Router       /api/profiles [get]
func (h *ProfileHandler) GetAll(c echo.Context) error {
	profiles, err := h.profileService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// GetByParams resolves the filter form to a single profile.
//
// @Summary      Find one profile by filter params
// @Tags         profiles
// @Produce      json
// @Param        id    query  int     false  "Profile id"
// @Param        name  query  string  false  "Name prefix"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/profiles/search [get]
func (h *ProfileHandler) GetByParams(c echo.Context) error {
	filter := domain.ProfileFilter{Name: c.QueryParam("name")}
	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
		}
		filter.ID = &id
	}

	profile, err := h.profileService.GetByParams(c.Request().Context(), filter)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("profile", "no_match").Inc()
		return err
	}

	metrics.LookupsTotal.WithLabelValues("profile", "match").Inc()
	return c.JSON(http.StatusOK, profile)
}

// Create adds a new profile.
//
// @Summary      Create profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      201   {object}  domain.Profile
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileService.Create(c.Request().Context(), ports.ProfileInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("profile", "create").Inc()
	return c.JSON(http.StatusCreated, profile)
}

// Update replaces the mutable fields of a profile.
//
// @Summary      Update profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Profile id"
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  domain.Profile
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/profiles/{id} [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	profile, err := h.profileService.Update(c.Request().Context(), id, ports.ProfileInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("profile", "update").Inc()
	return c.JSON(http.StatusOK, profile)
}

// Delete removes a profile. Profiles still attached to users are refused.
//
// @Summary      Delete profile
// @Tags         profiles
// @Produce      json
// @Param        id  path  int  true  "Profile id"
// @Success      200  {object}  map[string]string
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.profileService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("profile", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "profile deleted"})
}
