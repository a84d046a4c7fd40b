package interfaces

import "context"

// INotifier abstracts the team notification channel (Slack webhook).
// Best-effort: orchestrators log failures and keep going.
type INotifier interface {
	PostMessage(ctx context.Context, text string) error
}
