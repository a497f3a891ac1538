package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifeassist/goals/internal/api/service"
	"github.com/lifeassist/goals/internal/api/store"
	"github.com/lifeassist/goals/internal/core/ports"
)

// Accounts is what the handlers need from the account use cases.
type Accounts interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (store.Account, error)
	Get(ctx context.Context, userID string) (store.Account, error)
	AddGoal(ctx context.Context, userID, title string, steps []service.StepInput) (store.Goal, error)
	SetGoalStatus(ctx context.Context, userID, goalID, status string) error
	UpdateProfile(ctx context.Context, userID string, upd store.ProfileUpdate) (store.Account, error)
}

var _ Accounts = (*service.AccountService)(nil)

type AccountHandler struct {
	accounts Accounts
}

func NewAccountHandler(accounts Accounts) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// bindValid decodes the body into req and runs the struct validator.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Register handles POST /api/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	id, err := h.accounts.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ports.RegisterResponse{Message: "User registered successfully", UserID: id})
}

// Login handles POST /api/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	acc, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ports.LoginResponse{
		UserID:      acc.ID,
		Email:       acc.Email,
		Username:    acc.Username,
		Description: acc.Description,
	})
}

// Get handles GET /api/users/:userId.
func (h *AccountHandler) Get(c echo.Context) error {
	acc, err := h.accounts.Get(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDataResponse(acc))
}

// UpdateProfile handles PATCH /api/users/:userId.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	acc, err := h.accounts.UpdateProfile(c.Request().Context(), c.Param("userId"), store.ProfileUpdate{
		Username:    &req.Username,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDataResponse(acc))
}

// UpdateDescription handles PATCH /api/users/:userId/description.
func (h *AccountHandler) UpdateDescription(c echo.Context) error {
	var req descriptionRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	acc, err := h.accounts.UpdateProfile(c.Request().Context(), c.Param("userId"), store.ProfileUpdate{
		Description: &req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserDataResponse(acc))
}
