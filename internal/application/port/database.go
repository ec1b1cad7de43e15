package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the local store connection. Implementations
// may open it on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
	IsInitialized() bool
}
