// Package dependency wires core aquarium-mcp services using go.uber.org/dig.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gin-gonic/gin"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/dig"

	"github.com/crystaldolphin/aquarium-mcp/internal/agent"
	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium"
	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium/soap"
	"github.com/crystaldolphin/aquarium-mcp/internal/config"
	"github.com/crystaldolphin/aquarium-mcp/internal/httpapi"
	"github.com/crystaldolphin/aquarium-mcp/internal/mcp"
	"github.com/crystaldolphin/aquarium-mcp/internal/providers"
	"github.com/crystaldolphin/aquarium-mcp/internal/schema"
	"github.com/crystaldolphin/aquarium-mcp/internal/session"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// ServiceContainer resolves services on demand, so a command only needs the
// configuration its services depend on (the agent needs an LLM key, the
// server needs a CRM endpoint).
// Callers use the typed getter methods; they never need to import dig directly.
type ServiceContainer struct {
	d   *dig.Container
	cfg *config.Config
}

// Version is the build version reported by the MCP server and /status.
type Version string

// LLMModel is a named string type so dig can distinguish it from plain
// strings when injecting the effective model name.
type LLMModel string

// AgentRegistry wraps the tool registry the in-process agent uses.
type AgentRegistry struct{ *tools.Registry }

// New registers every constructor; nothing is built until a getter asks.
func New(cfg *config.Config, version string) (*ServiceContainer, error) {
	d := dig.New()

	constructors := []any{
		func() *config.Config { return cfg },
		func() Version { return Version(version) },
		newSOAPClient,
		newCRMClient,
		tools.NewCatalog,
		newAgentRegistry,
		newMCPServer,
		newRouter,
		newProvider,
		resolveLLMModel,
		newAgentSettings,
		newSessionManager,
	}
	for _, c := range constructors {
		if err := d.Provide(c); err != nil {
			return nil, err
		}
	}
	return &ServiceContainer{d: d, cfg: cfg}, nil
}

// Config returns the configuration the container was built from.
func (c *ServiceContainer) Config() *config.Config { return c.cfg }

// Catalog returns the Aquarium tool catalog bound to the SOAP client.
func (c *ServiceContainer) Catalog() (*tools.Catalog, error) {
	return resolve[*tools.Catalog](c.d)
}

// MCPServer returns the MCP server exposing the catalog.
func (c *ServiceContainer) MCPServer() (*sdk.Server, error) {
	return resolve[*sdk.Server](c.d)
}

// Router returns the gin engine serving REST and streamable MCP.
func (c *ServiceContainer) Router() (*gin.Engine, error) {
	return resolve[*gin.Engine](c.d)
}

// Sessions returns the store for agent conversations.
func (c *ServiceContainer) Sessions() (*session.Manager, error) {
	return resolve[*session.Manager](c.d)
}

// AgentFactory returns a factory for agents whose tools are either the
// in-process catalog or, when agent.mcpUrl is set, the tools of a remote MCP
// server. The returned close func releases the remote session.
func (c *ServiceContainer) AgentFactory(ctx context.Context) (*agent.AgentFactory, func(), error) {
	var (
		p        schema.LLMProvider
		settings schema.AgentSettings
	)
	err := c.d.Invoke(func(prov schema.LLMProvider, s schema.AgentSettings) {
		p, settings = prov, s
	})
	if err != nil {
		return nil, nil, err
	}

	if url := c.cfg.Agent.MCPURL; url != "" {
		remote, err := mcp.Dial(ctx, url, c.version(), c.cfg.Agent.MCPTimeout())
		if err != nil {
			return nil, nil, err
		}
		tl := tools.NewToolList()
		n, err := remote.RegisterTools(ctx, tl)
		if err != nil {
			_ = remote.Close()
			return nil, nil, err
		}
		slog.Info("Using remote MCP tools", "url", url, "count", n)
		return agent.NewFactory(p, settings, tl, c.cfg.Agent.Instruction), func() { _ = remote.Close() }, nil
	}

	reg, err := resolve[AgentRegistry](c.d)
	if err != nil {
		return nil, nil, err
	}
	return agent.NewFactory(p, settings, reg.AllTools(), c.cfg.Agent.Instruction), func() {}, nil
}

func (c *ServiceContainer) version() string {
	v, err := resolve[Version](c.d)
	if err != nil {
		return ""
	}
	return string(v)
}

func resolve[T any](d *dig.Container) (T, error) {
	var out T
	err := d.Invoke(func(v T) { out = v })
	return out, err
}

func newSOAPClient(cfg *config.Config) (*soap.Client, error) {
	aq := cfg.Aquarium
	if !aq.Configured() {
		return nil, fmt.Errorf("no Aquarium endpoint configured: set AQUARIUM_ENDPOINT or edit %s", config.ConfigPath())
	}
	return soap.NewClient(soap.Config{
		Endpoint:    aq.Endpoint,
		Namespace:   aq.Namespace,
		Credentials: soap.Credentials{Username: aq.Username, Password: aq.Password},
		Timeout:     aq.Timeout(),
	}), nil
}

func newCRMClient(sc *soap.Client) aquarium.Client {
	return aquarium.NewSOAPClient(sc)
}

func newAgentRegistry(catalog *tools.Catalog) AgentRegistry {
	return AgentRegistry{catalog.Registry()}
}

func newMCPServer(catalog *tools.Catalog, v Version) *sdk.Server {
	return mcp.NewServer(catalog, string(v))
}

func newRouter(catalog *tools.Catalog, server *sdk.Server, v Version) *gin.Engine {
	return httpapi.NewRouter(catalog, httpapi.Options{Version: string(v), MCP: mcp.HTTPHandler(server)})
}

func newProvider(cfg *config.Config) (schema.LLMProvider, error) {
	a := cfg.Agent
	if a.APIKey == "" && a.APIBase == "" {
		return nil, fmt.Errorf("no API key configured for model %q: set OPENAI_API_KEY or edit %s", a.Model, config.ConfigPath())
	}
	return providers.New(providers.Params{
		APIKey:       a.APIKey,
		APIBase:      a.APIBase,
		DefaultModel: a.Model,
	}), nil
}

func resolveLLMModel(cfg *config.Config, p schema.LLMProvider) LLMModel {
	m := cfg.Agent.Model
	if m == "" {
		m = p.DefaultModel()
	}

	return LLMModel(m)
}

func newAgentSettings(cfg *config.Config, m LLMModel) schema.AgentSettings {
	return schema.NewAgentSettings(
		string(m),
		cfg.Agent.MaxToolIter,
		cfg.Agent.Temperature,
		cfg.Agent.MaxTokens,
	)
}

func newSessionManager() (*session.Manager, error) {
	return session.NewManager(filepath.Join(config.DataDir(), "sessions"))
}
