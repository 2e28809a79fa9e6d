package aquarium

// Field names follow the Aquarium SOAP schema so normalized records read the
// same as the CRM's own responses.

// Customer is an Aquarium customer record.
type Customer struct {
	CustomerID      int    `xml:"CustomerID" json:"CustomerID"`
	Title           string `xml:"Title" json:"Title"`
	FirstName       string `xml:"FirstName" json:"FirstName"`
	LastName        string `xml:"LastName" json:"LastName"`
	EmailAddress    string `xml:"EmailAddress" json:"EmailAddress"`
	HomeTelephone   string `xml:"HomeTelephone" json:"HomeTelephone"`
	MobileTelephone string `xml:"MobileTelephone" json:"MobileTelephone"`
	Address1        string `xml:"Address1" json:"Address1"`
	Address2        string `xml:"Address2" json:"Address2"`
	Town            string `xml:"Town" json:"Town"`
	County          string `xml:"County" json:"County"`
	PostCode        string `xml:"PostCode" json:"PostCode"`
	DateOfBirth     string `xml:"DateOfBirth" json:"DateOfBirth"`
	IsBusiness      bool   `xml:"IsBusiness" json:"IsBusiness"`
	CompanyName     string `xml:"CompanyName" json:"CompanyName"`
}

// Case is an Aquarium case, with the matters filed under it.
type Case struct {
	CaseID      int      `xml:"CaseID" json:"CaseID"`
	LeadID      int      `xml:"LeadID" json:"LeadID"`
	CustomerID  int      `xml:"CustomerID" json:"CustomerID"`
	CaseNum     int      `xml:"CaseNum" json:"CaseNum"`
	CaseRef     string   `xml:"CaseRef" json:"CaseRef"`
	StatusID    int      `xml:"StatusID" json:"StatusID"`
	StatusName  string   `xml:"StatusName" json:"StatusName"`
	WhenCreated string   `xml:"WhenCreated" json:"WhenCreated"`
	Matters     []Matter `xml:"Matters>Matter" json:"Matters"`
}

// Matter is one matter of a case.
type Matter struct {
	MatterID    int    `xml:"MatterID" json:"MatterID"`
	CaseID      int    `xml:"CaseID" json:"CaseID"`
	LeadID      int    `xml:"LeadID" json:"LeadID"`
	CustomerID  int    `xml:"CustomerID" json:"CustomerID"`
	MatterRef   string `xml:"MatterRef" json:"MatterRef"`
	StatusName  string `xml:"StatusName" json:"StatusName"`
	WhenCreated string `xml:"WhenCreated" json:"WhenCreated"`
}

// LeadCaseMatterIDs links the identifiers of one lead/case/matter chain.
type LeadCaseMatterIDs struct {
	LeadID   int `json:"LeadID"`
	CaseID   int `json:"CaseID"`
	MatterID int `json:"MatterID"`
}

// Event is one entry of a case's event history.
type Event struct {
	LeadEventID   int    `xml:"LeadEventID" json:"LeadEventID"`
	CaseID        int    `xml:"CaseID" json:"CaseID"`
	LeadID        int    `xml:"LeadID" json:"LeadID"`
	EventTypeID   int    `xml:"EventTypeID" json:"EventTypeID"`
	EventTypeName string `xml:"EventTypeName" json:"EventTypeName"`
	Comments      string `xml:"Comments" json:"Comments"`
	WhenCreated   string `xml:"WhenCreated" json:"WhenCreated"`
	WhoCreated    string `xml:"WhoCreated" json:"WhoCreated"`
}

// DetailValue is the value of one detail field in a case, lead or matter.
type DetailValue struct {
	DetailFieldID int    `xml:"DetailFieldID" json:"DetailFieldID"`
	FieldCaption  string `xml:"FieldCaption" json:"FieldCaption"`
	DetailValue   string `xml:"DetailValue" json:"DetailValue"`
	LeadID        int    `xml:"LeadID" json:"LeadID"`
	CaseID        int    `xml:"CaseID" json:"CaseID"`
	MatterID      int    `xml:"MatterID" json:"MatterID"`
}
