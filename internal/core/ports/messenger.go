package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Messenger delivers a rendered notification text to a single recipient
// through the external chat transport. Delivery is a single attempt with no
// retry; a failure is reported to the caller, who logs it and moves on.
type Messenger interface {
	Send(ctx context.Context, recipient kernel.UserID, text string) error
}
