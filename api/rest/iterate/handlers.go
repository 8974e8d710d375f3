package iterate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/snippetlab/server/internal/errors"
	itercore "codeberg.org/snippetlab/server/internal/iterate"
)

// IterateHandler godoc
// @Summary Apply an AI-suggested change to a code snippet
// @Description Sends the code and change request to the configured model and returns the normalized result
// @Tags iterate
// @Accept json
// @Produce json
// @Param request body Request true "Iteration request"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/iterate [post]
func Handler(service *itercore.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		// missing input is rejected before any external call is attempted
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := service.Iterate(c.Request.Context(), itercore.IterationRequest{
			Code:   req.Code,
			Prompt: req.Prompt,
		})

		if err != nil {
			errors.InternalError(c, "failed to generate code iteration", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			ModifiedCode: resp.Result.ModifiedCode,
			Explanation:  resp.Result.Explanation,
			Model:        resp.Model,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		})
	}
}
