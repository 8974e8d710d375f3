package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/snippetlab/server/api/rest/health"
	"codeberg.org/snippetlab/server/api/rest/iterate"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		iterate.RegisterRoutes(v1, server.iterator, server.limiter)
	}
}
