package controller

import (
	"wellnessa_backend/internal/service"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService    *service.ResultService
	AnalyticsService *service.AnalyticsService
}

func NewResultController(resultService *service.ResultService, analyticsService *service.AnalyticsService) *ResultController {
	return &ResultController{ResultService: resultService, AnalyticsService: analyticsService}
}

// MyResults godoc
// @Summary Caller's results, most recent first
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.AssessmentResult}
// @Router /api/user/results [get]
func (c *ResultController) MyResults(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	results, err := c.ResultService.ListUserResults(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// MyResult godoc
// @Summary One of the caller's results
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path string true "Result ID"
// @Success 200 {object} util.Response{data=model.AssessmentResult}
// @Failure 404 {object} util.Response
// @Router /api/user/results/{id} [get]
func (c *ResultController) MyResult(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	result, err := c.ResultService.GetUserResult(ctx.Request.Context(), claims.UserID, ctx.Param("id"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// MyAnalytics godoc
// @Summary Caller's score trend
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.AnalyticsSummary}
// @Router /api/user/analytics [get]
func (c *ResultController) MyAnalytics(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	summary, err := c.AnalyticsService.GetUserAnalytics(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
