package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/snippetlab/server/internal/config"
	"codeberg.org/snippetlab/server/internal/iterate"
	"codeberg.org/snippetlab/server/internal/llm"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	generator llm.TextGenerator
	iterator  *iterate.Service
	limiter   gin.HandlerFunc
	router    *gin.Engine
}
