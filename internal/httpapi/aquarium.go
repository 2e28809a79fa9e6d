package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// toolHandler binds path and query parameters and returns the tool result as
// the JSON body.
func toolHandler(t *tools.AquariumTool) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := t.Invoke(c.Request.Context(), requestParams(c, t.Spec().Params))
		if err != nil {
			writeError(c, t.Name(), err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func requestParams(c *gin.Context, params []tools.Param) map[string]any {
	out := make(map[string]any, len(params))
	for _, p := range params {
		switch {
		case p.Source == tools.InPath:
			out[p.Name] = c.Param(p.Name)
		case p.Type == tools.ParamIntList:
			if vals := c.QueryArray(p.Name); len(vals) > 0 {
				out[p.Name] = vals
			}
		default:
			if v, ok := c.GetQuery(p.Name); ok {
				out[p.Name] = v
			}
		}
	}
	return out
}

func writeError(c *gin.Context, tool string, err error) {
	var argErr *tools.ArgumentError
	if errors.As(err, &argErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": argErr.Error(), "param": argErr.Param})
		return
	}
	slog.Error("Aquarium request failed", "tool", tool, "request_id", c.GetString(requestIDKey), "err", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
