package controller

import (
	"encoding/json"
	"io"
	"wellnessa_backend/internal/service"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const maxContentBytes = 1 << 20

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetPage godoc
// @Summary Page content
// @Description Saved content of the home or about page, or the built-in default
// @Tags content
// @Produce json
// @Param page path string true "home or about"
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response
// @Router /api/content/{page} [get]
func (c *ContentController) GetPage(ctx *gin.Context) {
	body, err := c.ContentService.GetPage(ctx.Request.Context(), ctx.Param("page"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, json.RawMessage(body))
}

// UpdatePage godoc
// @Summary Replace page content
// @Tags superadmin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page path string true "home or about"
// @Param body body object true "Page document"
// @Success 200 {object} util.Response{data=model.PageContent}
// @Failure 400 {object} util.Response
// @Router /api/superadmin/content/{page} [put]
func (c *ContentController) UpdatePage(ctx *gin.Context) {
	claims, ok := currentUser(ctx)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxContentBytes))
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pc, err := c.ContentService.UpdatePage(ctx.Request.Context(), claims.UserID, ctx.Param("page"), body)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, pc)
}
