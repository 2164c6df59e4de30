package controller

import (
	"wellnessa_backend/internal/model"
	"wellnessa_backend/internal/service"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController manages assessments and their questions. Super admin
// only.
type CatalogController struct {
	AssessmentService *service.AssessmentService
	QuestionService   *service.QuestionService
}

func NewCatalogController(assessmentService *service.AssessmentService, questionService *service.QuestionService) *CatalogController {
	return &CatalogController{AssessmentService: assessmentService, QuestionService: questionService}
}

// swagger:model SetActiveRequest
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ListAssessments godoc
// @Summary All assessments, active or not
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Assessment}
// @Router /api/superadmin/assessments [get]
func (c *CatalogController) ListAssessments(ctx *gin.Context) {
	list, err := c.AssessmentService.ListAll(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, list)
}

// CreateAssessment godoc
// @Summary Create an assessment with its groups, subgroups, questions and options
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Assessment true "Questionnaire"
// @Success 201 {object} util.Response{data=model.Assessment}
// @Failure 400 {object} util.Response
// @Router /api/superadmin/assessments [post]
func (c *CatalogController) CreateAssessment(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	var a model.Assessment
	if err := ctx.ShouldBindJSON(&a); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.AssessmentService.CreateAssessment(ctx.Request.Context(), claims.UserID, &a); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

// SetActive godoc
// @Summary Show or hide an assessment
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assessment ID"
// @Param body body SetActiveRequest true "Visibility"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/superadmin/assessments/{id}/active [patch]
func (c *CatalogController) SetActive(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	var req SetActiveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.AssessmentService.SetActive(ctx.Request.Context(), id, *req.Active); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "active": *req.Active})
}

// ListQuestions godoc
// @Summary Question catalog across all assessments
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]service.CatalogEntry}
// @Router /api/superadmin/questions [get]
func (c *CatalogController) ListQuestions(ctx *gin.Context) {
	entries, err := c.QuestionService.ListQuestions(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// AddQuestion godoc
// @Summary Add a question to a subgroup
// @Description Options are keyed a, b, c... in the order given
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.NewQuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.Question}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/superadmin/questions [post]
func (c *CatalogController) AddQuestion(ctx *gin.Context) {
	var req service.NewQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.AddQuestion(ctx.Request.Context(), req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags superadmin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/superadmin/questions/{id} [delete]
func (c *CatalogController) DeleteQuestion(ctx *gin.Context) {
	id, ok := uintParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuestionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id})
}
