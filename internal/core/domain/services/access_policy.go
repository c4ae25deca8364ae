package services

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// AccessPolicy is a domain service deciding which users may interact with the
// system at all, and managing the dynamic whitelist behind that decision.
//
// Authorization sources, in order of precedence:
//   - configured admin ids: always authorized, immune to whitelist changes
//   - enforcement toggle: when disabled, everyone is authorized
//   - configured default whitelist: a static bootstrap set
//   - persisted whitelist: the single mutable source of truth
//
// The admin and default sets are derived from configuration and held in
// memory; membership changes always go through the whitelist store so the
// store never diverges from what the policy enforces.
type AccessPolicy struct {
	adminIDs   map[int64]struct{}
	defaultIDs map[int64]struct{}
	enforce    bool
	whitelist  ports.WhitelistRepository
}

// NewAccessPolicy creates an AccessPolicy from static configuration and the
// persisted whitelist.
func NewAccessPolicy(
	adminIDs []kernel.UserID,
	defaultIDs []kernel.UserID,
	enforce bool,
	whitelist ports.WhitelistRepository,
) *AccessPolicy {
	p := &AccessPolicy{
		adminIDs:   make(map[int64]struct{}, len(adminIDs)),
		defaultIDs: make(map[int64]struct{}, len(defaultIDs)),
		enforce:    enforce,
		whitelist:  whitelist,
	}
	for _, id := range adminIDs {
		p.adminIDs[id.Int64()] = struct{}{}
	}
	for _, id := range defaultIDs {
		p.defaultIDs[id.Int64()] = struct{}{}
	}
	return p
}

// IsAdmin reports whether the id belongs to the configured admin set.
func (p *AccessPolicy) IsAdmin(id kernel.UserID) bool {
	_, ok := p.adminIDs[id.Int64()]
	return ok
}

// IsAuthorized reports whether the user may interact with the system.
//
// Admins are always authorized. With enforcement disabled everyone is.
// Otherwise the id must be in the configured default set or in the
// persisted whitelist.
func (p *AccessPolicy) IsAuthorized(ctx context.Context, id kernel.UserID) (bool, error) {
	if p.IsAdmin(id) {
		return true, nil
	}
	if !p.enforce {
		return true, nil
	}
	if _, ok := p.defaultIDs[id.Int64()]; ok {
		return true, nil
	}
	return p.whitelist.Contains(ctx, id)
}

// AddToWhitelist grants the id access. Adding a present id or an admin id
// is a no-op success.
func (p *AccessPolicy) AddToWhitelist(ctx context.Context, id kernel.UserID, addedAt string) error {
	if p.IsAdmin(id) {
		return nil
	}
	return p.whitelist.Add(ctx, id, addedAt)
}

// RemoveFromWhitelist revokes the id's access.
//
// Removing an admin id is a no-op success: admin access does not come from
// the whitelist and cannot be revoked through it. Removing an id that is
// not whitelisted returns an ObjectNotFound error.
func (p *AccessPolicy) RemoveFromWhitelist(ctx context.Context, id kernel.UserID) error {
	if p.IsAdmin(id) {
		return nil
	}

	removed, err := p.whitelist.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NewObjectNotFoundError("whitelist entry", id.Int64())
	}
	return nil
}

// ListWhitelist returns the persisted whitelist entries.
func (p *AccessPolicy) ListWhitelist(ctx context.Context) ([]ports.WhitelistEntry, error) {
	return p.whitelist.List(ctx)
}
