package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// Store implementations run against Tx when set, otherwise their own handle.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// Background is a convenience for call sites outside a request, such as the
// legacy-to-managed data migration during service registration.
func Background() Context {
	return Context{Ctx: context.Background()}
}
