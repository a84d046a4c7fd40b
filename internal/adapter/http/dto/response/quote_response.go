package response

import "github.com/railflow/salesops/internal/usecase"

type QuoteResponse struct {
	Message     string `json:"message"`
	QuoteLink   string `json:"quote_link"`
	StatementNo string `json:"statement_no"`
	RecordID    string `json:"record_id"`
}

func FromQuoteResult(res usecase.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Message:     "Quote created",
		QuoteLink:   res.Link,
		StatementNo: res.Ref.StatementNo,
		RecordID:    res.Record.ID,
	}
}
