package iterate

import (
	"github.com/gin-gonic/gin"

	itercore "codeberg.org/snippetlab/server/internal/iterate"
)

// registers code iteration routes
func RegisterRoutes(router *gin.RouterGroup, service *itercore.Service, middleware ...gin.HandlerFunc) {
	handlers := append(middleware, Handler(service)) //nolint:gocritic

	router.POST("/iterate", handlers...)
}
