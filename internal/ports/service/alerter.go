package service

import "context"

// IAlerterService delivers operational alerts (backend outages) to the ops
// channel. Implementations must be safe to call best-effort.
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
