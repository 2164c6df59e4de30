package controller

import (
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/service"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// SubmitRequest is the body of an assessment submission.
// swagger:model SubmitRequest
type SubmitRequest struct {
	Responses []model.Response `json:"responses" binding:"required,min=1,dive"`
}

// ListDue godoc
// @Summary Assessments due for the caller
// @Description Active assessments when the caller is due, otherwise an empty list
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/user/assessments/due [get]
func (c *AssessmentController) ListDue(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	list, err := c.AssessmentService.ListDue(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// GetAssessment godoc
// @Summary Get an active assessment
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Success 200 {object} util.Response{data=service.AssessmentView}
// @Failure 404 {object} util.Response
// @Router /api/user/assessments/{id} [get]
func (c *AssessmentController) GetAssessment(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	view, err := c.AssessmentService.GetActiveAssessment(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// Submit godoc
// @Summary Submit answers
// @Description Scores the answers, stores the result and schedules the next assessment
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param body body SubmitRequest true "Answers"
// @Success 201 {object} util.Response{data=model.AssessmentResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/assessments/{id}/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.Submit(ctx.Request.Context(), claims.UserID, id, req.Responses)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
