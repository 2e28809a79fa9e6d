package tools

import (
	"context"

	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium"
)

// fakeCRM implements aquarium.Client with optional per-method overrides.
// Unset methods report nothing found.
type fakeCRM struct {
	customersByEmail     func(email string) ([]aquarium.Customer, error)
	casesByLeadID        func(leadID int) ([]aquarium.Case, error)
	firstCaseByLeadID    func(leadID int) (*aquarium.Case, error)
	firstCaseIDByLeadID  func(leadID string) (string, error)
	idsByCustomerID      func(customerID string) ([]aquarium.LeadCaseMatterIDs, error)
	casesByCustomerID    func(customerID string) ([]aquarium.Case, error)
	firstCaseByCustomer  func(customerID string) (*aquarium.Case, error)
	casesByEmail         func(email string) ([]aquarium.Case, error)
	firstCaseByEmail     func(email string) (*aquarium.Case, error)
	caseStatusByMatterID func(matterID int) (string, error)
	firstMatterIDByLead  func(leadID string) (string, error)
	customerByID         func(customerID int) (*aquarium.Customer, error)
	eventHistory         func(caseID int) ([]aquarium.Event, error)
	detailValues         func(fieldIDs []int, caseID, leadID, matterID *int) ([]aquarium.DetailValue, error)
}

var _ aquarium.Client = (*fakeCRM)(nil)

func (f *fakeCRM) CustomersByEmail(_ context.Context, email string) ([]aquarium.Customer, error) {
	if f.customersByEmail == nil {
		return nil, nil
	}
	return f.customersByEmail(email)
}

func (f *fakeCRM) CasesByLeadID(_ context.Context, leadID int) ([]aquarium.Case, error) {
	if f.casesByLeadID == nil {
		return nil, nil
	}
	return f.casesByLeadID(leadID)
}

func (f *fakeCRM) FirstCaseByLeadID(_ context.Context, leadID int) (*aquarium.Case, error) {
	if f.firstCaseByLeadID == nil {
		return nil, nil
	}
	return f.firstCaseByLeadID(leadID)
}

func (f *fakeCRM) FirstCaseIDByLeadID(_ context.Context, leadID string) (string, error) {
	if f.firstCaseIDByLeadID == nil {
		return "", nil
	}
	return f.firstCaseIDByLeadID(leadID)
}

func (f *fakeCRM) LeadsCasesMattersIDsByCustomerID(_ context.Context, customerID string) ([]aquarium.LeadCaseMatterIDs, error) {
	if f.idsByCustomerID == nil {
		return nil, nil
	}
	return f.idsByCustomerID(customerID)
}

func (f *fakeCRM) CasesByCustomerID(_ context.Context, customerID string) ([]aquarium.Case, error) {
	if f.casesByCustomerID == nil {
		return nil, nil
	}
	return f.casesByCustomerID(customerID)
}

func (f *fakeCRM) FirstCaseByCustomerID(_ context.Context, customerID string) (*aquarium.Case, error) {
	if f.firstCaseByCustomer == nil {
		return nil, nil
	}
	return f.firstCaseByCustomer(customerID)
}

func (f *fakeCRM) CasesByEmail(_ context.Context, email string) ([]aquarium.Case, error) {
	if f.casesByEmail == nil {
		return nil, nil
	}
	return f.casesByEmail(email)
}

func (f *fakeCRM) FirstCaseByEmail(_ context.Context, email string) (*aquarium.Case, error) {
	if f.firstCaseByEmail == nil {
		return nil, nil
	}
	return f.firstCaseByEmail(email)
}

func (f *fakeCRM) CaseStatusByMatterID(_ context.Context, matterID int) (string, error) {
	if f.caseStatusByMatterID == nil {
		return "", nil
	}
	return f.caseStatusByMatterID(matterID)
}

func (f *fakeCRM) FirstMatterIDByLeadID(_ context.Context, leadID string) (string, error) {
	if f.firstMatterIDByLead == nil {
		return "", nil
	}
	return f.firstMatterIDByLead(leadID)
}

func (f *fakeCRM) CustomerByCustomerID(_ context.Context, customerID int) (*aquarium.Customer, error) {
	if f.customerByID == nil {
		return nil, nil
	}
	return f.customerByID(customerID)
}

func (f *fakeCRM) EventHistory(_ context.Context, caseID int) ([]aquarium.Event, error) {
	if f.eventHistory == nil {
		return nil, nil
	}
	return f.eventHistory(caseID)
}

func (f *fakeCRM) DetailValuesByFieldIDs(_ context.Context, fieldIDs []int, caseID, leadID, matterID *int) ([]aquarium.DetailValue, error) {
	if f.detailValues == nil {
		return nil, nil
	}
	return f.detailValues(fieldIDs, caseID, leadID, matterID)
}
