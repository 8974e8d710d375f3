package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/snippetlab/server/internal/config"
	"codeberg.org/snippetlab/server/internal/iterate"
	"codeberg.org/snippetlab/server/internal/llm"
	"codeberg.org/snippetlab/server/internal/logger"
	"codeberg.org/snippetlab/server/internal/ratelimit"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	generator, err := llm.NewGenerator(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM generator: %w", err)
	}

	iterator := iterate.New(generator)

	limiter, err := ratelimit.Middleware(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limiter: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		config:    cfg,
		generator: generator,
		iterator:  iterator,
		limiter:   limiter,
		router:    router,
	}

	RegisterRoutes(router, server)

	logger.Info("server configured",
		"provider", cfg.GeneratorProvider,
		"model", generator.Model(),
		"rate_limit", cfg.RateLimit,
	)

	return server, nil
}
