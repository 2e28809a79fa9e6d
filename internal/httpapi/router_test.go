package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium"
	"github.com/crystaldolphin/aquarium-mcp/internal/aquarium/soap"
	"github.com/crystaldolphin/aquarium-mcp/internal/tools"
)

// crmStub records the arguments it receives. Methods not overridden here
// are never reached by these tests.
type crmStub struct {
	aquarium.Client

	gotLeadID   int
	gotFieldIDs []int
	gotCaseID   *int
	cases       []aquarium.Case
	err         error
}

func (s *crmStub) CustomersByEmail(context.Context, string) ([]aquarium.Customer, error) {
	return nil, s.err
}

func (s *crmStub) CasesByLeadID(_ context.Context, leadID int) ([]aquarium.Case, error) {
	s.gotLeadID = leadID
	return s.cases, s.err
}

func (s *crmStub) FirstCaseIDByLeadID(context.Context, string) (string, error) {
	return "", s.err
}

func (s *crmStub) DetailValuesByFieldIDs(_ context.Context, fieldIDs []int, caseID, _, _ *int) ([]aquarium.DetailValue, error) {
	s.gotFieldIDs = fieldIDs
	s.gotCaseID = caseID
	return nil, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, r http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_General(t *testing.T) {
	r := NewRouter(tools.NewCatalog(&crmStub{}), Options{Version: "0.1.0"})

	t.Run("Should serve the welcome page", func(t *testing.T) {
		rec := serve(t, r, "/", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "<h1>Aquarium MCP</h1>")
	})

	t.Run("Should serve the about text", func(t *testing.T) {
		rec := serve(t, r, "/about", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, rec.Body.String(), "About Aquarium MCP")
	})

	t.Run("Should report status", func(t *testing.T) {
		rec := serve(t, r, "/status", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"running","server":"Aquarium MCP","version":"0.1.0"}`, rec.Body.String())
	})

	t.Run("Should assign and echo request ids", func(t *testing.T) {
		rec := serve(t, r, "/status", nil)
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)

		rec = serve(t, r, "/status", http.Header{RequestIDHeader: {"abc-123"}})
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	})

	t.Run("Should leave /mcp unrouted without a handler", func(t *testing.T) {
		rec := serve(t, r, MCPPath, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_Aquarium(t *testing.T) {
	t.Run("Should return the not-found message as a JSON string", func(t *testing.T) {
		r := NewRouter(tools.NewCatalog(&crmStub{}), Options{})

		rec := serve(t, r, "/aquarium/customers?email=foo@bar.com", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var body string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "No customers found for email: foo@bar.com", body)
	})

	t.Run("Should bind path parameters and return ordered records", func(t *testing.T) {
		stub := &crmStub{cases: []aquarium.Case{{CaseID: 11, LeadID: 5}}}
		r := NewRouter(tools.NewCatalog(stub), Options{})

		rec := serve(t, r, "/aquarium/cases/by-lead/5", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 5, stub.gotLeadID)
		assert.Regexp(t, `^\[\{"CaseID":11,"LeadID":5,`, rec.Body.String())
	})

	t.Run("Should route the nested first-id path", func(t *testing.T) {
		r := NewRouter(tools.NewCatalog(&crmStub{}), Options{})

		rec := serve(t, r, "/aquarium/cases/by-lead/lead123/first-id", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `"No CaseID found for lead_id: lead123"`, rec.Body.String())
	})

	t.Run("Should accept repeated and comma separated list values", func(t *testing.T) {
		stub := &crmStub{}
		r := NewRouter(tools.NewCatalog(stub), Options{})

		rec := serve(t, r, "/aquarium/detail-values?field_ids=1&field_ids=2,3&case_id=7", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []int{1, 2, 3}, stub.gotFieldIDs)
		require.NotNil(t, stub.gotCaseID)
		assert.Equal(t, 7, *stub.gotCaseID)
		assert.Equal(t, `"No detail field values found for field_ids: [1, 2, 3], case_id: 7"`, rec.Body.String())
	})

	t.Run("Should reject mistyped parameters with 422", func(t *testing.T) {
		r := NewRouter(tools.NewCatalog(&crmStub{}), Options{})

		rec := serve(t, r, "/aquarium/cases/by-lead/abc", nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"param":"lead_id"`)

		rec = serve(t, r, "/aquarium/customers", nil)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"param":"email"`)
	})

	t.Run("Should map CRM faults to 502", func(t *testing.T) {
		fault := &soap.Fault{Code: "soap:Server", String: "Invalid session"}
		r := NewRouter(tools.NewCatalog(&crmStub{err: fault}), Options{})

		rec := serve(t, r, "/aquarium/customers?email=a@b.c", nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.JSONEq(t, `{"error":"soap fault soap:Server: Invalid session"}`, rec.Body.String())
	})

	t.Run("Should map transport errors to 502", func(t *testing.T) {
		r := NewRouter(tools.NewCatalog(&crmStub{err: errors.New("dial tcp: refused")}), Options{})

		rec := serve(t, r, "/aquarium/cases/by-lead/1", nil)
		require.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "dial tcp: refused")
	})
}

func TestRouter_MCP(t *testing.T) {
	t.Run("Should mount the MCP handler", func(t *testing.T) {
		var hits int
		mcp := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			w.WriteHeader(http.StatusAccepted)
		})
		r := NewRouter(tools.NewCatalog(&crmStub{}), Options{MCP: mcp})

		req := httptest.NewRequest(http.MethodPost, MCPPath, http.NoBody)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, hits)
	})
}
