package controller

import (
	"wellnessa_backend/internal/service"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController serves the user management and reporting endpoints open
// to admins and above.
type AdminController struct {
	UserService      *service.UserService
	ResultService    *service.ResultService
	AnalyticsService *service.AnalyticsService
	ExportService    *service.ExportService
}

func NewAdminController(userService *service.UserService, resultService *service.ResultService, analyticsService *service.AnalyticsService, exportService *service.ExportService) *AdminController {
	return &AdminController{
		UserService:      userService,
		ResultService:    resultService,
		AnalyticsService: analyticsService,
		ExportService:    exportService,
	}
}

// ListUsers godoc
// @Summary All users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Failure 403 {object} util.Response
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// CreateUser godoc
// @Summary Create a user
// @Description The new user's access level is lowered to one below the caller's when it would otherwise be equal or higher
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.CreateUserRequest true "New user"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Username taken"
// @Router /api/admin/users [post]
func (c *AdminController) CreateUser(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req service.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.CreateUser(ctx.Request.Context(), claims.AccessLevel, req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// ListResults godoc
// @Summary All results, most recent first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AssessmentResult}
// @Router /api/admin/results [get]
func (c *AdminController) ListResults(ctx *gin.Context) {
	results, err := c.ResultService.ListAllResults(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// UserAnalytics godoc
// @Summary Score trend of a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} util.Response{data=model.AnalyticsSummary}
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id}/analytics [get]
func (c *AdminController) UserAnalytics(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	summary, err := c.AnalyticsService.GetAnalyticsForUser(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// ExportResults godoc
// @Summary Export all results as CSV
// @Description Uploads the CSV to the configured storage and returns its URL
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ExportResult}
// @Router /api/admin/results/export [post]
func (c *AdminController) ExportResults(ctx *gin.Context) {
	res, err := c.ExportService.ExportResults(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}
