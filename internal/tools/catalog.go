package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium"
)

// notFound formats a message with the named arguments substituted in order.
func notFound(format string, names ...string) func(Args) string {
	return func(a Args) string {
		vals := make([]any, len(names))
		for i, n := range names {
			vals[i] = a.Format(n)
		}
		return fmt.Sprintf(format, vals...)
	}
}

var detailContext = []string{"case_id", "lead_id", "matter_id"}

func detailValuesNotFound(a Args) string {
	var sb strings.Builder
	sb.WriteString("No detail field values found for field_ids: ")
	sb.WriteString(a.Format("field_ids"))
	for _, name := range detailContext {
		if _, ok := a[name]; ok {
			fmt.Fprintf(&sb, ", %s: %s", name, a.Format(name))
		}
	}
	return sb.String()
}

// catalog is the fixed set of Aquarium tools, in the order they are listed.
var catalog = []Spec{
	{
		Name:        "get_customers_by_email",
		Description: "Retrieve Aquarium customers by email address.",
		Path:        "/customers",
		Params:      []Param{queryString("email", "Customer email address")},
		NotFound:    notFound("No customers found for email: %s", "email"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.Customer, error) {
			return c.CustomersByEmail(ctx, a.String("email"))
		}),
	},
	{
		Name:        "get_cases_by_lead_id",
		Description: "Retrieve all cases for a lead.",
		Path:        "/cases/by-lead/:lead_id",
		Params:      []Param{pathInt("lead_id", "Aquarium lead ID")},
		NotFound:    notFound("No cases found for lead_id: %s", "lead_id"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.Case, error) {
			return c.CasesByLeadID(ctx, a.Int("lead_id"))
		}),
	},
	{
		Name:        "get_first_case_by_lead_id",
		Description: "Retrieve the first case for a lead.",
		Path:        "/cases/by-lead/:lead_id/first",
		Params:      []Param{pathInt("lead_id", "Aquarium lead ID")},
		NotFound:    notFound("No cases found for lead_id: %s", "lead_id"),
		invoke: single(func(ctx context.Context, c aquarium.Client, a Args) (*aquarium.Case, error) {
			return c.FirstCaseByLeadID(ctx, a.Int("lead_id"))
		}),
	},
	{
		Name:        "get_first_case_id_by_lead_id",
		Description: "Retrieve the CaseID of the first case for a lead.",
		Path:        "/cases/by-lead/:lead_id/first-id",
		Params:      []Param{pathString("lead_id", "Aquarium lead ID")},
		NotFound:    notFound("No CaseID found for lead_id: %s", "lead_id"),
		invoke: scalar(func(ctx context.Context, c aquarium.Client, a Args) (string, error) {
			return c.FirstCaseIDByLeadID(ctx, a.String("lead_id"))
		}),
	},
	{
		Name:        "get_leads_cases_matters_ids_by_customer_id",
		Description: "Retrieve the lead, case and matter IDs linked to a customer.",
		Path:        "/leads-cases-matters/by-customer/:customer_id",
		Params:      []Param{pathString("customer_id", "Aquarium customer ID")},
		NotFound:    notFound("No leads/cases/matters found for customer_id: %s", "customer_id"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.LeadCaseMatterIDs, error) {
			return c.LeadsCasesMattersIDsByCustomerID(ctx, a.String("customer_id"))
		}),
	},
	{
		Name:        "get_cases_by_customer_id",
		Description: "Retrieve all cases for a customer.",
		Path:        "/cases/by-customer/:customer_id",
		Params:      []Param{pathString("customer_id", "Aquarium customer ID")},
		NotFound:    notFound("No cases found for customer_id: %s", "customer_id"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.Case, error) {
			return c.CasesByCustomerID(ctx, a.String("customer_id"))
		}),
	},
	{
		Name:        "get_first_case_by_customer_id",
		Description: "Retrieve the first case for a customer.",
		Path:        "/cases/by-customer/:customer_id/first",
		Params:      []Param{pathString("customer_id", "Aquarium customer ID")},
		NotFound:    notFound("No cases found for customer_id: %s", "customer_id"),
		invoke: single(func(ctx context.Context, c aquarium.Client, a Args) (*aquarium.Case, error) {
			return c.FirstCaseByCustomerID(ctx, a.String("customer_id"))
		}),
	},
	{
		Name:        "get_cases_by_email",
		Description: "Retrieve all cases for the customer with the given email address.",
		Path:        "/cases/by-email",
		Params:      []Param{queryString("email", "Customer email address")},
		NotFound:    notFound("No cases found for email: %s", "email"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.Case, error) {
			return c.CasesByEmail(ctx, a.String("email"))
		}),
	},
	{
		Name:        "get_first_case_by_email",
		Description: "Retrieve the first case for the customer with the given email address.",
		Path:        "/cases/by-email/first",
		Params:      []Param{queryString("email", "Customer email address")},
		NotFound:    notFound("No cases found for email: %s", "email"),
		invoke: single(func(ctx context.Context, c aquarium.Client, a Args) (*aquarium.Case, error) {
			return c.FirstCaseByEmail(ctx, a.String("email"))
		}),
	},
	{
		Name:        "get_case_status_by_matter_id",
		Description: "Retrieve the case status for a matter.",
		Path:        "/case-status/by-matter/:matter_id",
		Params:      []Param{pathInt("matter_id", "Aquarium matter ID")},
		NotFound:    notFound("No status found for matter_id: %s", "matter_id"),
		invoke: scalar(func(ctx context.Context, c aquarium.Client, a Args) (string, error) {
			return c.CaseStatusByMatterID(ctx, a.Int("matter_id"))
		}),
	},
	{
		Name:        "get_first_matter_id_by_lead_id",
		Description: "Retrieve the first matter ID for a lead.",
		Path:        "/matters/first-by-lead/:lead_id",
		Params:      []Param{pathString("lead_id", "Aquarium lead ID")},
		NotFound:    notFound("No matter_id found for lead_id: %s", "lead_id"),
		invoke: scalar(func(ctx context.Context, c aquarium.Client, a Args) (string, error) {
			return c.FirstMatterIDByLeadID(ctx, a.String("lead_id"))
		}),
	},
	{
		Name:        "get_customer_by_customer_id",
		Description: "Retrieve a customer by customer ID.",
		Path:        "/customer/:customer_id",
		Params:      []Param{pathInt("customer_id", "Aquarium customer ID")},
		NotFound:    notFound("No customer found for customer_id: %s", "customer_id"),
		invoke: single(func(ctx context.Context, c aquarium.Client, a Args) (*aquarium.Customer, error) {
			return c.CustomerByCustomerID(ctx, a.Int("customer_id"))
		}),
	},
	{
		Name:        "get_event_history",
		Description: "Retrieve the event history of a case.",
		Path:        "/event-history/:case_id",
		Params:      []Param{pathInt("case_id", "Aquarium case ID")},
		NotFound:    notFound("No event history found for case_id: %s", "case_id"),
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.Event, error) {
			return c.EventHistory(ctx, a.Int("case_id"))
		}),
	},
	{
		Name:        "get_detail_values_by_field_ids",
		Description: "Retrieve detail field values by field IDs, optionally scoped to a case, lead or matter.",
		Path:        "/detail-values",
		Params: []Param{
			queryIntList("field_ids", "Detail field IDs"),
			optionalInt("case_id", "Restrict to this case"),
			optionalInt("lead_id", "Restrict to this lead"),
			optionalInt("matter_id", "Restrict to this matter"),
		},
		NotFound: detailValuesNotFound,
		invoke: list(func(ctx context.Context, c aquarium.Client, a Args) ([]aquarium.DetailValue, error) {
			return c.DetailValuesByFieldIDs(ctx, a.Ints("field_ids"), a.OptInt("case_id"), a.OptInt("lead_id"), a.OptInt("matter_id"))
		}),
	},
}

// Catalog is the set of Aquarium tools bound to one CRM client.
type Catalog struct {
	tools  []*AquariumTool
	byName map[string]*AquariumTool
}

// NewCatalog binds every catalog entry to client.
func NewCatalog(client aquarium.Client) *Catalog {
	c := &Catalog{
		tools:  make([]*AquariumTool, 0, len(catalog)),
		byName: make(map[string]*AquariumTool, len(catalog)),
	}
	for _, spec := range catalog {
		t := newAquariumTool(spec, client)
		c.tools = append(c.tools, t)
		c.byName[spec.Name] = t
	}
	return c
}

// All returns the tools in catalog order.
func (c *Catalog) All() []*AquariumTool {
	out := make([]*AquariumTool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Get returns the named tool or nil.
func (c *Catalog) Get(name string) *AquariumTool {
	return c.byName[name]
}

// Invoke runs the named tool.
func (c *Catalog) Invoke(ctx context.Context, name string, params map[string]any) (any, error) {
	t := c.byName[name]
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t.Invoke(ctx, params)
}

// Registry returns a tool registry holding the whole catalog.
func (c *Catalog) Registry() *Registry {
	b := NewRegistryBuilder()
	for _, t := range c.tools {
		b.WithTool(t)
	}
	return b.Build()
}
