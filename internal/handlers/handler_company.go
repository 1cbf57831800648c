package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/middleware"
)

// companyHandler handles HTTP requests for the company aggregate.
type companyHandler struct {
	companyService ports.CompanySvcFacade
}

func newCompanyHandler(cs ports.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

// registerCompanyPublicRoutes registers the ungated single-record lookups.
func registerCompanyPublicRoutes(rg *gin.RouterGroup, companyService ports.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	rg.GET("/companies/:email", h.getCompanyByEmail)
	rg.GET("/single-company/:name", h.getCompanyByName)
}

// registerCompanyRoutes registers the credential-gated company operations.
// Identifier-keyed mutations live under the singular /company prefix so
// the :email and :id parameters never share a route segment.
func registerCompanyRoutes(rg *gin.RouterGroup, companyService ports.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.POST("", h.createCompany)
		companies.PATCH("/:email/financials", h.setFinancialSnapshot)
	}

	rg.DELETE("/company/:id", h.deleteCompany)
	rg.PUT("/company/:id/ledger/:date", h.updateLedgerEntry)

	registerEventRoutes(companies, companyService)
	registerBudgetRoutes(companies, companyService)
}

// createCompany godoc
// @Summary Register a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 409 {object} map[string]string "Email already registered"
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create company", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create company")
		return
	}

	logger.Info("Company created", slog.String("company_id", company.CompanyID))
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompanyByEmail godoc
// @Summary Fetch one company by email
// @Tags companies
// @Produce json
// @Param email path string true "Company email"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /companies/{email} [get]
func (h *companyHandler) getCompanyByEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	company, err := h.companyService.GetCompanyByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, logger, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *companyHandler) getCompanyByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	company, err := h.companyService.GetCompanyByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, logger, err, "Failed to get company")
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

func (h *companyHandler) deleteCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete company")
		return
	}

	logger.Info("Company deleted", slog.String("company_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// setFinancialSnapshot godoc
// @Summary Record today's ledger entry and replace the balance snapshot
// @Description Appends the income/expense entry under today's date (server clock) and replaces the balance sheet wholesale.
// @Tags companies
// @Accept json
// @Produce json
// @Param email path string true "Company email"
// @Param snapshot body dto.FinancialSnapshotRequest true "Snapshot"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /companies/{email}/financials [patch]
func (h *companyHandler) setFinancialSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.FinancialSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for financial snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	dateKey, err := h.companyService.SetFinancialSnapshot(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to set financial snapshot")
		return
	}

	logger.Info("Financial snapshot recorded", slog.String("date", dateKey))
	c.JSON(http.StatusOK, gin.H{"date": dateKey})
}

// updateLedgerEntry rewrites an existing dated ledger entry. This path is
// update-only: unknown dates report not found rather than upserting.
func (h *companyHandler) updateLedgerEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateLedgerEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ledger entry update", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.companyService.UpdateLedgerEntry(c.Request.Context(), c.Param("id"), c.Param("date"), req); err != nil {
		respondError(c, logger, err, "Failed to update ledger entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}
