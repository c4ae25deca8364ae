package cmd

import (
	"strconv"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Config carries the startup settings. Immutable after parsing.
type Config struct {
	HTTPPort string

	// AdminIDs always pass the access gate and hold the admin role.
	AdminIDs []kernel.UserID
	// WhitelistEnabled toggles access enforcement for non-admins.
	WhitelistEnabled bool
	// DefaultWhitelist is the static allow set from configuration; it is not
	// stored and cannot be removed at runtime.
	DefaultWhitelist []kernel.UserID

	StorePath     string
	WhitelistPath string
	ExportDir     string

	// WebhookURL is where outbound notifications are POSTed. Empty means
	// notifications only go to the log.
	WebhookURL string
}

// ParseUserIDList parses a comma-separated list of user ids, for example
// "11111,22222". An empty string yields an empty list.
func ParseUserIDList(raw string) ([]kernel.UserID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]kernel.UserID, 0, len(parts))
	for _, part := range parts {
		id, err := kernel.ParseUserID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// ParseBool parses a configuration toggle. An empty string means false.
func ParseBool(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errs.NewValueIsInvalidErrorWithCause("boolean flag", err)
	}
	return value, nil
}
