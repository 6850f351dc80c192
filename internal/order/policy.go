package order

import "github.com/angelmondragon/invitation-backend/pkg/config"

// Policy tunes the submission gate. The zero value is the permissive storefront
// behavior: unbounded quantity and no required details.
type Policy struct {
	MaxQuantity                int64
	RequireDetailsBeforeSubmit bool
}

// PolicyFromConfig maps the ordering configuration onto a Policy.
func PolicyFromConfig(cfg config.OrderingConfig) Policy {
	p := Policy{RequireDetailsBeforeSubmit: cfg.RequireDetails}
	if cfg.MaxQuantity > 0 {
		p.MaxQuantity = cfg.MaxQuantity
	}
	return p
}

// Bounded reports whether a quantity ceiling applies.
func (p Policy) Bounded() bool {
	return p.MaxQuantity > 0
}
