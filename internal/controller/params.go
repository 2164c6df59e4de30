package controller

import (
	"strconv"
	"wellnessa_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// uintParam parses a positive numeric path parameter. On failure it writes a
// 400 and returns ok=false.
func uintParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || v == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

// currentUser returns the authenticated caller. It writes a 401 when the
// auth middleware did not run.
func currentUser(ctx *gin.Context) (*util.Claims, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return nil, false
	}
	return claims, true
}
