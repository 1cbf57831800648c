package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/middleware"
)

// budgetHandler handles the embedded budgets of a company.
type budgetHandler struct {
	companyService ports.CompanySvcFacade
}

// registerBudgetRoutes nests the budget routes under a company group.
func registerBudgetRoutes(companies *gin.RouterGroup, companyService ports.CompanySvcFacade) {
	h := &budgetHandler{companyService: companyService}

	budgets := companies.Group("/:email/budgets")
	{
		budgets.GET("", h.listBudgets)
		budgets.POST("", h.addBudget)
		budgets.PUT("/:budgetID", h.updateBudget)
		budgets.DELETE("/:budgetID", h.deleteBudget)
		budgets.GET("/:budgetID/overspend", h.checkOverspend)
	}
}

// addBudget godoc
// @Summary Add a budget allocation
// @Tags budgets
// @Accept json
// @Produce json
// @Param email path string true "Company email"
// @Param budget body dto.BudgetRequest true "Budget fields"
// @Success 201 {object} dto.BudgetResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Security BearerAuth
// @Router /companies/{email}/budgets [post]
func (h *budgetHandler) addBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add budget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.companyService.AddBudget(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to add budget")
		return
	}

	logger.Info("Budget added", slog.String("budget_id", budget.BudgetID))
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) listBudgets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budgets, err := h.companyService.ListBudgets(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, logger, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

func (h *budgetHandler) updateBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update budget", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	budget, err := h.companyService.UpdateBudget(c.Request.Context(), c.Param("email"), c.Param("budgetID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

func (h *budgetHandler) deleteBudget(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.companyService.DeleteBudget(c.Request.Context(), c.Param("email"), c.Param("budgetID")); err != nil {
		respondError(c, logger, err, "Failed to delete budget")
		return
	}

	logger.Info("Budget deleted", slog.String("budget_id", c.Param("budgetID")))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// checkOverspend godoc
// @Summary Check a budget against its alert threshold
// @Description Overspent means current expenditure strictly exceeds the alert threshold.
// @Tags budgets
// @Produce json
// @Param email path string true "Company email"
// @Param budgetID path string true "Budget ID"
// @Success 200 {object} dto.OverspendResponse
// @Failure 404 {object} map[string]string "Company or budget not found"
// @Security BearerAuth
// @Router /companies/{email}/budgets/{budgetID}/overspend [get]
func (h *budgetHandler) checkOverspend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	budget, overspent, err := h.companyService.CheckOverspend(c.Request.Context(), c.Param("email"), c.Param("budgetID"))
	if err != nil {
		respondError(c, logger, err, "Failed to check overspend")
		return
	}

	c.JSON(http.StatusOK, dto.OverspendResponse{
		Budget:    dto.ToBudgetResponse(budget),
		Overspent: overspent,
	})
}
