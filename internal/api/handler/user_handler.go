package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/accessflow/accessflow/internal/api/metrics"
	"github.com/accessflow/accessflow/internal/core/domain"
	"github.com/accessflow/accessflow/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userRequest struct {
	Name       string  `json:"name"        validate:"required,min=3"`
	Email      string  `json:"email"       validate:"required,email"`
	Password   string  `json:"password"    validate:"omitempty,min=6"`
	Active     bool    `json:"active"`
	ProfileIDs []int64 `json:"profile_ids" validate:"required,min=1"`
}

// GetAll lists every user with embedded profiles.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.User
// @Router       /api/users [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.userService.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByParams resolves the filter form to a single user. The response is
// always one record; the screen wraps it in a one-element list.
//
// @Summary      Find one user by filter params
// @Tags         users
// @Produce      json
// @Param        id     query  int     false  "User id"
// @Param        name   query  string  false  "Name prefix"
// @Param        email  query  string  false  "Exact email"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/users/search [get]
func (h *UserHandler) GetByParams(c echo.Context) error {
	filter := domain.UserFilter{
		Name:  c.QueryParam("name"),
		Email: c.QueryParam("email"),
	}
	if raw := c.QueryParam("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "id must be numeric")
		}
		filter.ID = &id
	}

	user, err := h.userService.GetByParams(c.Request().Context(), filter)
	if err != nil {
		metrics.LookupsTotal.WithLabelValues("user", "no_match").Inc()
		return err
	}

	metrics.LookupsTotal.WithLabelValues("user", "match").Inc()
	return c.JSON(http.StatusOK, user)
}

// Create adds a new user.
//
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User fields"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Password == "" {
		return &domain.ValidationError{Fields: map[string]string{"password": "password is required"}}
	}

	user, err := h.userService.Create(c.Request().Context(), ports.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Active:     req.Active,
		ProfileIDs: req.ProfileIDs,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "create").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Update replaces the mutable fields of a user. An empty password keeps the
// current one.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "User id"
// @Param        body  body      userRequest  true  "User fields"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  api.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	// Users may update their own record; everything else is admin territory.
	userID, admin, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if !admin && userID != id {
		return domain.ErrForbidden
	}

	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), id, ports.UserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Active:     req.Active,
		ProfileIDs: req.ProfileIDs,
	})
	if err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user.
//
// @Summary      Delete user
// @Tags         users
// @Produce      json
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.MutationsTotal.WithLabelValues("user", "delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	return id, nil
}
