// Package billing implements the billing collaborator gateway against a
// Hiveage-style REST API (networks, estimates, invoices, delivery).
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/railflow/salesops/internal/domain/entities"
	"github.com/railflow/salesops/internal/usecase/interfaces"
)

const requestTimeout = 15 * time.Second

const dateLayout = "2006-01-02"

// HiveageGateway speaks JSON/HTTP with basic auth: the API key is the
// username, the password stays empty.
type HiveageGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ interfaces.IBillingGateway = (*HiveageGateway)(nil)

func NewHiveageGateway(baseURL, apiKey string) *HiveageGateway {
	return &HiveageGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// statementDoc is the wire form of an InvoiceDocument. Prices go out as JSON
// numbers; totals come back as strings and are parsed into decimals.
type statementDoc struct {
	ConnectionID  int64     `json:"connection_id"`
	Date          string    `json:"date"`
	DueDate       string    `json:"due_date,omitempty"`
	Summary       string    `json:"summary"`
	Note          string    `json:"note"`
	SendReminders bool      `json:"send_reminders"`
	Items         []itemDoc `json:"items_attributes"`
}

type itemDoc struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit,omitempty"`
}

type statementResult struct {
	ID          int64           `json:"id"`
	StatementNo string          `json:"statement_no"`
	HashKey     string          `json:"hash_key"`
	BilledTotal decimal.Decimal `json:"billed_total"`
}

func toStatementDoc(doc entities.InvoiceDocument, withDueDate bool) statementDoc {
	out := statementDoc{
		ConnectionID:  doc.ConnectionID,
		Date:          doc.IssueDate.Format(dateLayout),
		Summary:       doc.Summary,
		Note:          doc.Note,
		SendReminders: doc.SendReminders,
	}
	if withDueDate {
		out.DueDate = doc.DueDate.Format(dateLayout)
	}
	for _, it := range doc.LineItems {
		out.Items = append(out.Items, itemDoc{
			Date:        it.Date.Format(dateLayout),
			Description: it.Description,
			Price:       it.Price.InexactFloat64(),
			Quantity:    it.Quantity,
			Unit:        it.Unit,
		})
	}
	return out
}

func (g *HiveageGateway) CreateNetwork(ctx context.Context, draft entities.NetworkDraft) (entities.Network, error) {
	var env struct {
		Network entities.Network `json:"network"`
	}
	if err := g.send(ctx, http.MethodPost, "/api/network", draft, &env); err != nil {
		return entities.Network{}, err
	}
	return env.Network, nil
}

func (g *HiveageGateway) GetNetwork(ctx context.Context, hashKey string) (entities.Network, error) {
	var env struct {
		Network entities.Network `json:"network"`
	}
	found, err := g.get(ctx, "/api/network/"+hashKey, &env)
	if err != nil || !found {
		return entities.Network{}, err
	}
	return env.Network, nil
}

func (g *HiveageGateway) CreateEstimate(ctx context.Context, doc entities.InvoiceDocument) (entities.StatementRef, error) {
	body := struct {
		Estimate statementDoc `json:"estimate"`
	}{Estimate: toStatementDoc(doc, false)}

	var env struct {
		Estimate statementResult `json:"estimate"`
	}
	if err := g.send(ctx, http.MethodPost, "/api/estm", body, &env); err != nil {
		return entities.StatementRef{}, err
	}
	return refFromResult(env.Estimate), nil
}

func (g *HiveageGateway) CreateInvoice(ctx context.Context, doc entities.InvoiceDocument) (entities.StatementRef, error) {
	body := struct {
		Invoice statementDoc `json:"invoice"`
	}{Invoice: toStatementDoc(doc, true)}

	var env struct {
		Invoice statementResult `json:"invoice"`
	}
	if err := g.send(ctx, http.MethodPost, "/api/invs", body, &env); err != nil {
		return entities.StatementRef{}, err
	}
	return refFromResult(env.Invoice), nil
}

func (g *HiveageGateway) DeliverInvoice(ctx context.Context, hashKey string, payload *entities.DeliveryPayload) error {
	path := fmt.Sprintf("/api/invs/%s/deliver", hashKey)
	if payload == nil {
		return g.send(ctx, http.MethodPost, path, nil, nil)
	}
	body := struct {
		Delivery entities.DeliveryPayload `json:"delivery"`
	}{Delivery: *payload}
	return g.send(ctx, http.MethodPost, path, body, nil)
}

func refFromResult(r statementResult) entities.StatementRef {
	return entities.StatementRef{
		ID:          r.ID,
		StatementNo: r.StatementNo,
		HashKey:     r.HashKey,
		BilledTotal: r.BilledTotal,
	}
}

func (g *HiveageGateway) get(ctx context.Context, path string, out any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("billing: create request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("billing: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("billing: GET %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("billing: GET %s: decode response: %w", path, err)
	}
	return true, nil
}

func (g *HiveageGateway) send(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("billing: marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("billing: create request: %w", err)
	}
	g.setHeaders(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("billing: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("billing: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("billing: %s %s: decode response: %w", method, path, err)
	}
	return nil
}

func (g *HiveageGateway) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.apiKey, "")
}
