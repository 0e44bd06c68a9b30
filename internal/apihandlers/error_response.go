package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BadRequest sends the 400 shape: { "error": msg }.
func BadRequest(ctx *gin.Context, msg string) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// Internal sends the 500 shape: { "error": msg, "details": details }. The
// generic message stays stable for callers; details carry the underlying
// error text.
func Internal(ctx *gin.Context, msg, details string) {
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": msg, "details": details})
}
