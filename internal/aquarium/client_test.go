package aquarium

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium/soap"
)

const ns = "http://example.test/aquarium"

// crmStub answers SOAP requests with the canned body registered for the
// operation named in the SOAPAction header.
type crmStub struct {
	responses map[string]string

	mu       sync.Mutex
	requests map[string]string
}

func (s *crmStub) request(action string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[action]
}

func newCRM(t *testing.T, responses map[string]string) (*SOAPClient, *crmStub) {
	t.Helper()
	stub := &crmStub{responses: responses, requests: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		action := strings.Trim(r.Header.Get("SOAPAction"), `"`)
		action = strings.TrimPrefix(action, ns+"/")
		body, _ := io.ReadAll(r.Body)
		stub.mu.Lock()
		stub.requests[action] = string(body)
		stub.mu.Unlock()

		inner, ok := stub.responses[action]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			inner = `<soap:Fault><faultcode>soap:Client</faultcode><faultstring>unknown operation</faultstring></soap:Fault>`
		}
		_, _ = w.Write([]byte(`<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"><soap:Body>` +
			inner + `</soap:Body></soap:Envelope>`))
	}))
	t.Cleanup(srv.Close)

	caller := soap.NewClient(soap.Config{Endpoint: srv.URL, Namespace: ns})
	return NewSOAPClient(caller), stub
}

const casesXML = `<GetCasesResponse xmlns="` + ns + `"><GetCasesResult>` +
	`<Case><CaseID>11</CaseID><LeadID>5</LeadID><CustomerID>3</CustomerID><StatusName>Open</StatusName>` +
	`<Matters><Matter><MatterID>21</MatterID><CaseID>11</CaseID></Matter></Matters></Case>` +
	`<Case><CaseID>12</CaseID><LeadID>5</LeadID><CustomerID>3</CustomerID><StatusName>Closed</StatusName></Case>` +
	`</GetCasesResult></GetCasesResponse>`

const emptyCasesXML = `<GetCasesResponse xmlns="` + ns + `"><GetCasesResult/></GetCasesResponse>`

func TestSOAPClient_Customers(t *testing.T) {
	t.Run("Should decode customers by email", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{
			"GetCustomers": `<GetCustomersResponse><GetCustomersResult>` +
				`<Customer><CustomerID>3</CustomerID><FirstName>Ann</FirstName><EmailAddress>ann@example.com</EmailAddress></Customer>` +
				`</GetCustomersResult></GetCustomersResponse>`,
		})

		got, err := c.CustomersByEmail(t.Context(), "ann@example.com")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].CustomerID)
		assert.Equal(t, "Ann", got[0].FirstName)
		assert.Contains(t, stub.request("GetCustomers"), "<EmailAddress>ann@example.com</EmailAddress>")
	})

	t.Run("Should return nil for a missing customer", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{
			"GetCustomer": `<GetCustomerResponse><GetCustomerResult/></GetCustomerResponse>`,
		})

		got, err := c.CustomerByCustomerID(t.Context(), 99)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Should return a customer by id", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{
			"GetCustomer": `<GetCustomerResponse><GetCustomerResult><CustomerID>7</CustomerID><LastName>Jones</LastName></GetCustomerResult></GetCustomerResponse>`,
		})

		got, err := c.CustomerByCustomerID(t.Context(), 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Jones", got.LastName)
		assert.Contains(t, stub.request("GetCustomer"), "<CustomerID>7</CustomerID>")
	})
}

func TestSOAPClient_Cases(t *testing.T) {
	t.Run("Should decode cases with matters", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{"GetCases": casesXML})

		got, err := c.CasesByLeadID(t.Context(), 5)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 11, got[0].CaseID)
		assert.Equal(t, []Matter{{MatterID: 21, CaseID: 11}}, got[0].Matters)
		assert.Equal(t, "Closed", got[1].StatusName)
		assert.Contains(t, stub.request("GetCases"), "<LeadID>5</LeadID>")
		assert.NotContains(t, stub.request("GetCases"), "<CustomerID>")
	})

	t.Run("Should pick the first case", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{"GetCases": casesXML})

		byLead, err := c.FirstCaseByLeadID(t.Context(), 5)
		require.NoError(t, err)
		assert.Equal(t, 11, byLead.CaseID)

		byCustomer, err := c.FirstCaseByCustomerID(t.Context(), "3")
		require.NoError(t, err)
		assert.Equal(t, 11, byCustomer.CaseID)
		assert.Contains(t, stub.request("GetCases"), "<CustomerID>3</CustomerID>")

		byEmail, err := c.FirstCaseByEmail(t.Context(), "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, 11, byEmail.CaseID)
		assert.Contains(t, stub.request("GetCases"), "<EmailAddress>ann@example.com</EmailAddress>")

		id, err := c.FirstCaseIDByLeadID(t.Context(), "lead123")
		require.NoError(t, err)
		assert.Equal(t, "11", id)
		assert.Contains(t, stub.request("GetCases"), "<LeadID>lead123</LeadID>")
	})

	t.Run("Should return absent values when there are no cases", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{"GetCases": emptyCasesXML})

		list, err := c.CasesByEmail(t.Context(), "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, list)

		one, err := c.FirstCaseByEmail(t.Context(), "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, one)

		id, err := c.FirstCaseIDByLeadID(t.Context(), "lead123")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestSOAPClient_Matters(t *testing.T) {
	mattersXML := `<GetMattersResponse><GetMattersResult>` +
		`<Matter><MatterID>21</MatterID><CaseID>11</CaseID><LeadID>5</LeadID></Matter>` +
		`<Matter><MatterID>22</MatterID><CaseID>12</CaseID><LeadID>5</LeadID></Matter>` +
		`</GetMattersResult></GetMattersResponse>`

	t.Run("Should map matters to id triples", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{"GetMatters": mattersXML})

		got, err := c.LeadsCasesMattersIDsByCustomerID(t.Context(), "3")
		require.NoError(t, err)
		assert.Equal(t, []LeadCaseMatterIDs{
			{LeadID: 5, CaseID: 11, MatterID: 21},
			{LeadID: 5, CaseID: 12, MatterID: 22},
		}, got)
		assert.Contains(t, stub.request("GetMatters"), "<CustomerID>3</CustomerID>")
	})

	t.Run("Should return the first matter id", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{"GetMatters": mattersXML})

		got, err := c.FirstMatterIDByLeadID(t.Context(), "5")
		require.NoError(t, err)
		assert.Equal(t, "21", got)
	})

	t.Run("Should return the status name of a matter", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{
			"GetMatter": `<GetMatterResponse><GetMatterResult><MatterID>21</MatterID><StatusName>Awaiting documents</StatusName></GetMatterResult></GetMatterResponse>`,
		})

		got, err := c.CaseStatusByMatterID(t.Context(), 21)
		require.NoError(t, err)
		assert.Equal(t, "Awaiting documents", got)
	})

	t.Run("Should return empty status for an unknown matter", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{"GetMatter": `<GetMatterResponse/>`})

		got, err := c.CaseStatusByMatterID(t.Context(), 404)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSOAPClient_EventsAndDetails(t *testing.T) {
	t.Run("Should decode event history", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{
			"GetEventHistory": `<GetEventHistoryResponse><GetEventHistoryResult>` +
				`<Event><LeadEventID>1</LeadEventID><EventTypeName>Case opened</EventTypeName></Event>` +
				`<Event><LeadEventID>2</LeadEventID><EventTypeName>Letter sent</EventTypeName></Event>` +
				`</GetEventHistoryResult></GetEventHistoryResponse>`,
		})

		got, err := c.EventHistory(t.Context(), 11)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Letter sent", got[1].EventTypeName)
	})

	t.Run("Should send only the context ids that are set", func(t *testing.T) {
		c, stub := newCRM(t, map[string]string{
			"GetDetailValues": `<GetDetailValuesResponse><GetDetailValuesResult>` +
				`<DetailValue><DetailFieldID>100</DetailFieldID><DetailValue>yes</DetailValue><CaseID>11</CaseID></DetailValue>` +
				`</GetDetailValuesResult></GetDetailValuesResponse>`,
		})

		caseID := 11
		got, err := c.DetailValuesByFieldIDs(t.Context(), []int{100, 101}, &caseID, nil, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "yes", got[0].DetailValue)

		req := stub.request("GetDetailValues")
		assert.Contains(t, req, "<DetailFieldIDs><int>100</int><int>101</int></DetailFieldIDs>")
		assert.Contains(t, req, "<CaseID>11</CaseID>")
		assert.NotContains(t, req, "<LeadID>")
		assert.NotContains(t, req, "<MatterID>")
	})
}

func TestSOAPClient_Faults(t *testing.T) {
	t.Run("Should propagate SOAP faults", func(t *testing.T) {
		c, _ := newCRM(t, map[string]string{})

		_, err := c.EventHistory(t.Context(), 11)
		var fault *soap.Fault
		require.True(t, errors.As(err, &fault))
		assert.Equal(t, "unknown operation", fault.String)
	})

	t.Run("Should propagate caller errors unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		c := NewSOAPClient(callerFunc(func(context.Context, string, any, any) error { return boom }))

		_, err := c.CaseStatusByMatterID(t.Context(), 1)
		assert.Same(t, boom, err)
	})
}

type callerFunc func(ctx context.Context, action string, req, resp any) error

func (f callerFunc) Call(ctx context.Context, action string, req, resp any) error {
	return f(ctx, action, req, resp)
}
