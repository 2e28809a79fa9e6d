// Package aquarium is the client for the Aquarium CRM SOAP API.
package aquarium

import (
	"context"
	"strconv"
)

// Client is the set of CRM lookups the tool layer depends on.
//
// List methods return an empty slice when nothing matches, single-object
// methods return nil and scalar methods return "". Errors are transport or
// server faults.
type Client interface {
	CustomersByEmail(ctx context.Context, email string) ([]Customer, error)
	CasesByLeadID(ctx context.Context, leadID int) ([]Case, error)
	FirstCaseByLeadID(ctx context.Context, leadID int) (*Case, error)
	FirstCaseIDByLeadID(ctx context.Context, leadID string) (string, error)
	LeadsCasesMattersIDsByCustomerID(ctx context.Context, customerID string) ([]LeadCaseMatterIDs, error)
	CasesByCustomerID(ctx context.Context, customerID string) ([]Case, error)
	FirstCaseByCustomerID(ctx context.Context, customerID string) (*Case, error)
	CasesByEmail(ctx context.Context, email string) ([]Case, error)
	FirstCaseByEmail(ctx context.Context, email string) (*Case, error)
	CaseStatusByMatterID(ctx context.Context, matterID int) (string, error)
	FirstMatterIDByLeadID(ctx context.Context, leadID string) (string, error)
	CustomerByCustomerID(ctx context.Context, customerID int) (*Customer, error)
	EventHistory(ctx context.Context, caseID int) ([]Event, error)
	DetailValuesByFieldIDs(ctx context.Context, fieldIDs []int, caseID, leadID, matterID *int) ([]DetailValue, error)
}

// Caller performs one SOAP operation. *soap.Client satisfies it.
type Caller interface {
	Call(ctx context.Context, action string, req, resp any) error
}

// SOAPClient implements Client on top of the Aquarium SOAP operations.
type SOAPClient struct {
	soap Caller
}

// NewSOAPClient returns a Client that issues requests through caller.
func NewSOAPClient(caller Caller) *SOAPClient {
	return &SOAPClient{soap: caller}
}

var _ Client = (*SOAPClient)(nil)

func (c *SOAPClient) CustomersByEmail(ctx context.Context, email string) ([]Customer, error) {
	var resp getCustomersResponse
	if err := c.soap.Call(ctx, opGetCustomers, getCustomersRequest{EmailAddress: email}, &resp); err != nil {
		return nil, err
	}
	return resp.Customers, nil
}

func (c *SOAPClient) CustomerByCustomerID(ctx context.Context, customerID int) (*Customer, error) {
	var resp getCustomerResponse
	if err := c.soap.Call(ctx, opGetCustomer, getCustomerRequest{CustomerID: customerID}, &resp); err != nil {
		return nil, err
	}
	if resp.Customer == nil || resp.Customer.CustomerID == 0 {
		return nil, nil
	}
	return resp.Customer, nil
}

func (c *SOAPClient) CasesByLeadID(ctx context.Context, leadID int) ([]Case, error) {
	return c.cases(ctx, getCasesRequest{LeadID: strconv.Itoa(leadID)})
}

func (c *SOAPClient) FirstCaseByLeadID(ctx context.Context, leadID int) (*Case, error) {
	cases, err := c.CasesByLeadID(ctx, leadID)
	return first(cases, err)
}

func (c *SOAPClient) FirstCaseIDByLeadID(ctx context.Context, leadID string) (string, error) {
	cases, err := c.cases(ctx, getCasesRequest{LeadID: leadID})
	if err != nil || len(cases) == 0 {
		return "", err
	}
	return formatID(cases[0].CaseID), nil
}

func (c *SOAPClient) CasesByCustomerID(ctx context.Context, customerID string) ([]Case, error) {
	return c.cases(ctx, getCasesRequest{CustomerID: customerID})
}

func (c *SOAPClient) FirstCaseByCustomerID(ctx context.Context, customerID string) (*Case, error) {
	cases, err := c.CasesByCustomerID(ctx, customerID)
	return first(cases, err)
}

func (c *SOAPClient) CasesByEmail(ctx context.Context, email string) ([]Case, error) {
	return c.cases(ctx, getCasesRequest{EmailAddress: email})
}

func (c *SOAPClient) FirstCaseByEmail(ctx context.Context, email string) (*Case, error) {
	cases, err := c.CasesByEmail(ctx, email)
	return first(cases, err)
}

func (c *SOAPClient) LeadsCasesMattersIDsByCustomerID(ctx context.Context, customerID string) ([]LeadCaseMatterIDs, error) {
	matters, err := c.matters(ctx, getMattersRequest{CustomerID: customerID})
	if err != nil {
		return nil, err
	}
	ids := make([]LeadCaseMatterIDs, 0, len(matters))
	for _, m := range matters {
		ids = append(ids, LeadCaseMatterIDs{LeadID: m.LeadID, CaseID: m.CaseID, MatterID: m.MatterID})
	}
	return ids, nil
}

func (c *SOAPClient) FirstMatterIDByLeadID(ctx context.Context, leadID string) (string, error) {
	matters, err := c.matters(ctx, getMattersRequest{LeadID: leadID})
	if err != nil || len(matters) == 0 {
		return "", err
	}
	return formatID(matters[0].MatterID), nil
}

func (c *SOAPClient) CaseStatusByMatterID(ctx context.Context, matterID int) (string, error) {
	var resp getMatterResponse
	if err := c.soap.Call(ctx, opGetMatter, getMatterRequest{MatterID: matterID}, &resp); err != nil {
		return "", err
	}
	if resp.Matter == nil {
		return "", nil
	}
	return resp.Matter.StatusName, nil
}

func (c *SOAPClient) EventHistory(ctx context.Context, caseID int) ([]Event, error) {
	var resp getEventHistoryResponse
	if err := c.soap.Call(ctx, opGetEventHistory, getEventHistoryRequest{CaseID: caseID}, &resp); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (c *SOAPClient) DetailValuesByFieldIDs(ctx context.Context, fieldIDs []int, caseID, leadID, matterID *int) ([]DetailValue, error) {
	req := getDetailValuesRequest{
		DetailFieldIDs: fieldIDs,
		CaseID:         caseID,
		LeadID:         leadID,
		MatterID:       matterID,
	}
	var resp getDetailValuesResponse
	if err := c.soap.Call(ctx, opGetDetailValues, req, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (c *SOAPClient) cases(ctx context.Context, req getCasesRequest) ([]Case, error) {
	var resp getCasesResponse
	if err := c.soap.Call(ctx, opGetCases, req, &resp); err != nil {
		return nil, err
	}
	return resp.Cases, nil
}

func (c *SOAPClient) matters(ctx context.Context, req getMattersRequest) ([]Matter, error) {
	var resp getMattersResponse
	if err := c.soap.Call(ctx, opGetMatters, req, &resp); err != nil {
		return nil, err
	}
	return resp.Matters, nil
}

func first[T any](items []T, err error) (*T, error) {
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func formatID(id int) string {
	if id == 0 {
		return ""
	}
	return strconv.Itoa(id)
}
