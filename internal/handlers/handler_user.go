package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expensemaster/expense_master_app/internal/core/ports"
	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/middleware"
)

// userHandler handles HTTP requests for the user directory.
type userHandler struct {
	userService ports.UserSvcFacade
}

func newUserHandler(us ports.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserPublicRoutes registers the ungated single-record lookup and
// the email classification endpoint.
func registerUserPublicRoutes(rg *gin.RouterGroup, userService ports.UserSvcFacade) {
	h := newUserHandler(userService)

	rg.GET("/users/:email", h.getUserByEmail)
	rg.GET("/classify-email", h.classifyEmail)
}

// registerUserRoutes registers the credential-gated user operations.
func registerUserRoutes(rg *gin.RouterGroup, userService ports.UserSvcFacade) {
	h := newUserHandler(userService)

	// Approval and role changes are PATCH routes keyed by :id; the join
	// request is the lone PUT route keyed by :email. Keeping the methods
	// apart keeps each method tree on a single parameter name.
	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.POST("", h.createUser)
		users.DELETE("/:id", h.deleteUser)
		users.PUT("/:email/join", h.requestJoin)
		users.PATCH("/:id/approve", h.approveUser)
		users.PATCH("/:id/reject", h.rejectUser)
		users.PATCH("/:id/admin", h.setAdmin)
	}
}

// createUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 409 {object} map[string]string "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create user", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create user")
		return
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// listUsers supports an optional ?company= filter; with the filter, no
// matches yields an empty list rather than an error.
func (h *userHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if companyName := c.Query("company"); companyName != "" {
		matched, err := h.userService.ListUsersByCompanyName(c.Request.Context(), companyName)
		if err != nil {
			respondError(c, logger, err, "Failed to list users")
			return
		}
		c.JSON(http.StatusOK, dto.ToListUsersResponse(matched))
		return
	}

	all, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(all))
}

func (h *userHandler) getUserByEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, logger, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// requestJoin godoc
// @Summary Request to join a company
// @Description Overwrites the user's join request; the new request starts as pending.
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Param request body dto.JoinRequestPayload true "Target company"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /users/{email}/join [put]
func (h *userHandler) requestJoin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.JoinRequestPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for join request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.RequestJoin(c.Request.Context(), c.Param("email"), req.CompanyName); err != nil {
		respondError(c, logger, err, "Failed to set join request")
		return
	}

	logger.Info("Join request recorded", slog.String("company_name", req.CompanyName))
	c.JSON(http.StatusOK, gin.H{"requested": true})
}

func (h *userHandler) approveUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.userService.ApproveUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to approve user")
		return
	}

	logger.Info("User approved", slog.String("user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"approved": true})
}

func (h *userHandler) rejectUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.userService.RejectUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to reject user")
		return
	}

	logger.Info("User rejected", slog.String("user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"rejected": true})
}

func (h *userHandler) setAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.userService.SetAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to grant admin role")
		return
	}

	logger.Info("Admin role granted", slog.String("user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"admin": true})
}

func (h *userHandler) deleteUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Failed to delete user")
		return
	}

	logger.Info("User deleted", slog.String("user_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// classifyEmail godoc
// @Summary Classify an email as user or company
// @Tags users
// @Produce json
// @Param email query string true "Email to classify"
// @Success 200 {object} dto.ClassifyEmailResponse
// @Failure 404 {object} map[string]string "Email not registered"
// @Router /classify-email [get]
func (h *userHandler) classifyEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	kind, err := h.userService.ClassifyEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, logger, err, "Failed to classify email")
		return
	}

	c.JSON(http.StatusOK, dto.ClassifyEmailResponse{Email: email, Kind: string(kind)})
}
