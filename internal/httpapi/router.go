// Package httpapi serves the Aquarium catalog as REST endpoints next to the
// streamable MCP endpoint.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

const (
	AquariumPrefix = "/aquarium"
	MCPPath        = "/mcp"
)

// Options configures NewRouter.
type Options struct {
	Version string
	// MCP serves the MCP streamable HTTP transport; nil disables /mcp.
	MCP http.Handler
}

// NewRouter builds the gin engine with the general routes, one GET route per
// catalog tool under /aquarium and the MCP endpoint.
func NewRouter(catalog *tools.Catalog, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger())

	registerGeneral(r, opts.Version)

	group := r.Group(AquariumPrefix)
	for _, t := range catalog.All() {
		group.GET(t.Spec().Path, toolHandler(t))
	}

	if opts.MCP != nil {
		r.Any(MCPPath, gin.WrapH(opts.MCP))
	}
	return r
}
