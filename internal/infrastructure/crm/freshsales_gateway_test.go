package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/railflow/salesops/internal/domain/entities"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

func TestFreshsalesGateway_GetContact(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/contacts/11", r.URL.Path)
		require.Equal(t, "Token token=secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contact":{"id":11,"display_name":"Ada Lovelace","email":"ada@acme.com",
			"custom_field":{"cf_company":"Acme"}}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	contact, err := g.GetContact(context.Background(), 11)
	require.NoError(t, err)
	require.Equal(t, int64(11), contact.ID)
	require.Equal(t, "ada@acme.com", contact.Email)
	require.Equal(t, "Acme", contact.CustomField.Company)
}

func TestFreshsalesGateway_GetContactNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	contact, err := g.GetContact(context.Background(), 999)
	require.NoError(t, err, "404 is absence, not failure")
	require.Zero(t, contact.ID)
}

func TestFreshsalesGateway_FindContactByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/lookup", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "email", q.Get("f"))
		require.Equal(t, "contact", q.Get("entities"))
		require.Equal(t, "ada@acme.com", q.Get("q"))

		_, _ = w.Write([]byte(`{"contacts":{"contacts":[{"id":11,"email":"ada@acme.com"}]}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	contact, err := g.FindContactByEmail(context.Background(), "ada@acme.com")
	require.NoError(t, err)
	require.Equal(t, int64(11), contact.ID)
}

func TestFreshsalesGateway_FindContactByEmailNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"contacts":{"contacts":[]}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	contact, err := g.FindContactByEmail(context.Background(), "nobody@acme.com")
	require.NoError(t, err)
	require.Zero(t, contact.ID)
}

func TestFreshsalesGateway_CreateContactLinksPrimaryAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/contacts", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		contact := body["contact"].(map[string]any)
		accounts := contact["sales_accounts"].([]any)
		require.Len(t, accounts, 1)
		link := accounts[0].(map[string]any)
		require.Equal(t, float64(42), link["id"])
		require.Equal(t, true, link["is_primary"])

		_, _ = w.Write([]byte(`{"contact":{"id":11,"email":"ada@acme.com"}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	contact, err := g.CreateContact(context.Background(), entities.Contact{Email: "ada@acme.com"}, 42)
	require.NoError(t, err)
	require.Equal(t, int64(11), contact.ID)
}

func TestFreshsalesGateway_UpdateAccountCustomField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/sales_accounts/42", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		cf := body["sales_account"].(map[string]any)["custom_field"].(map[string]any)
		require.Equal(t, "nethash", cf["cf_network_hash"])

		_, _ = w.Write([]byte(`{"sales_account":{"id":42,"name":"Acme","custom_field":{"cf_network_hash":"nethash"}}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	account, err := g.UpdateAccountCustomField(context.Background(), 42, entities.AccountCustomField{NetworkHash: "nethash"})
	require.NoError(t, err)
	require.Equal(t, "nethash", account.CustomField.NetworkHash)
}

func TestFreshsalesGateway_CreateNote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/notes", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		note := body["note"].(map[string]any)
		require.Equal(t, "SalesAccount", note["targetable_type"])
		require.Equal(t, float64(42), note["targetable_id"])
		require.Equal(t, "Quote: https://railflow.hiveage.com/estm/abc123", note["description"])

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	err := g.CreateAccountNote(context.Background(), 42, "Quote: https://railflow.hiveage.com/estm/abc123")
	require.NoError(t, err)
}

func TestFreshsalesGateway_CreateOpportunity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/deals", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		deal := body["deal"].(map[string]any)
		require.Equal(t, "Acme: Enterprise: 3 Years License: 20-40 Users", deal["name"])
		require.Equal(t, "2024-03-31", deal["expected_close"])
		cf := deal["custom_field"].(map[string]any)
		require.Equal(t, "ada@acme.com", cf["cf_contact_email"])
		require.Equal(t, "20-40", cf["cf_number_of_agents"])

		_, _ = w.Write([]byte(`{"deal":{"id":900,"amount":"5610.0","deal_stage_id":16000263411}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	opp, err := g.CreateOpportunity(context.Background(), entities.OpportunityDraft{
		Name:           "Acme: Enterprise: 3 Years License: 20-40 Users",
		Amount:         mustDecimal(t, "5610"),
		SalesAccountID: 42,
		DealStageID:    16000263411,
		ExpectedClose:  mustDate(t, "2024-03-31"),
		ContactEmail:   "ada@acme.com",
		AgentBand:      "20-40",
	})
	require.NoError(t, err)
	require.Equal(t, int64(900), opp.ID)
	require.Equal(t, "5610", opp.Amount.String(), "string amounts on the wire decode exactly")
}

func TestFreshsalesGateway_UpdateOpportunityStage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/deals/700", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, float64(16000263411), body["deal"].(map[string]any)["deal_stage_id"])

		_, _ = w.Write([]byte(`{"deal":{"id":700,"amount":5610,"deal_stage_id":16000263411}}`))
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	opp, err := g.UpdateOpportunityStage(context.Background(), 700, 16000263411)
	require.NoError(t, err)
	require.Equal(t, int64(16000263411), opp.DealStageID)
}

func TestFreshsalesGateway_ServerErrorPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewFreshsalesGateway(srv.URL, "secret")
	_, err := g.GetAccount(context.Background(), 42)
	require.Error(t, err)
}
