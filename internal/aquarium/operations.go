package aquarium

// SOAP operation names.
const (
	opGetCustomers    = "GetCustomers"
	opGetCustomer     = "GetCustomer"
	opGetCases        = "GetCases"
	opGetMatters      = "GetMatters"
	opGetMatter       = "GetMatter"
	opGetEventHistory = "GetEventHistory"
	opGetDetailValues = "GetDetailValues"
)

type getCustomersRequest struct {
	EmailAddress string `xml:"EmailAddress"`
}

type getCustomersResponse struct {
	Customers []Customer `xml:"GetCustomersResult>Customer"`
}

type getCustomerRequest struct {
	CustomerID int `xml:"CustomerID"`
}

type getCustomerResponse struct {
	Customer *Customer `xml:"GetCustomerResult"`
}

// getCasesRequest filters by whichever field is set.
type getCasesRequest struct {
	LeadID       string `xml:"LeadID,omitempty"`
	CustomerID   string `xml:"CustomerID,omitempty"`
	EmailAddress string `xml:"EmailAddress,omitempty"`
}

type getCasesResponse struct {
	Cases []Case `xml:"GetCasesResult>Case"`
}

type getMattersRequest struct {
	LeadID     string `xml:"LeadID,omitempty"`
	CustomerID string `xml:"CustomerID,omitempty"`
}

type getMattersResponse struct {
	Matters []Matter `xml:"GetMattersResult>Matter"`
}

type getMatterRequest struct {
	MatterID int `xml:"MatterID"`
}

type getMatterResponse struct {
	Matter *Matter `xml:"GetMatterResult"`
}

type getEventHistoryRequest struct {
	CaseID int `xml:"CaseID"`
}

type getEventHistoryResponse struct {
	Events []Event `xml:"GetEventHistoryResult>Event"`
}

type getDetailValuesRequest struct {
	DetailFieldIDs []int `xml:"DetailFieldIDs>int"`
	CaseID         *int  `xml:"CaseID,omitempty"`
	LeadID         *int  `xml:"LeadID,omitempty"`
	MatterID       *int  `xml:"MatterID,omitempty"`
}

type getDetailValuesResponse struct {
	Values []DetailValue `xml:"GetDetailValuesResult>DetailValue"`
}
