package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifeassist/goals/internal/api/service"
	"github.com/lifeassist/goals/internal/core/ports"
)

type GoalHandler struct {
	accounts Accounts
}

func NewGoalHandler(accounts Accounts) *GoalHandler {
	return &GoalHandler{accounts: accounts}
}

// Submit handles POST /api/users/:userId/goals and echoes the stored goal.
func (h *GoalHandler) Submit(c echo.Context) error {
	var req goalRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	steps := make([]service.StepInput, 0, len(req.Steps))
	for _, s := range req.Steps {
		steps = append(steps, service.StepInput{Title: s.Title, Status: s.Status})
	}

	g, err := h.accounts.AddGoal(c.Request().Context(), c.Param("userId"), req.Title, steps)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toGoalResponse(g))
}

// UpdateStatus handles PUT /api/users/:userId/goals/:goalId/status.
func (h *GoalHandler) UpdateStatus(c echo.Context) error {
	var req goalStatusRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	if err := h.accounts.SetGoalStatus(c.Request().Context(), c.Param("userId"), c.Param("goalId"), req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ports.AckResponse{Message: "Goal status updated"})
}
