// Package handlers contains the Gin HTTP handlers for the public API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/interfaces/http/middleware"
	"hostelhub/internal/shared/utils"
)

// authenticatedUser reads the user ID placed in the context by the auth
// middleware, writing a 401 if it is absent.
func authenticatedUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return 0, false
	}
	return userID, true
}
