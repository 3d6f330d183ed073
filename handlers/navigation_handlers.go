package handlers

import (
	"github.com/fadhlanhapp/trekshare-backend/services"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// ResolveNavigation tells the client whether the requested page needs a redirect
func ResolveNavigation(c *gin.Context) {
	utils.HandleSuccess(c, services.ResolveNavigation(SessionFrom(c), c.Query("path")))
}
