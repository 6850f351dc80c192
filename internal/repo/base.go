package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/angelmondragon/invitation-backend/pkg/pagination"
)

// Base provides a shared foundation for catalog repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// KeysetPage runs query ordered by (position, id) starting after cursor and
// returns at most limit rows plus the cursor for the following page. An empty
// next cursor means the listing is exhausted.
func KeysetPage[T any](query *gorm.DB, cursor string, limit int, key func(T) pagination.Cursor) ([]T, string, error) {
	normalized := pagination.NormalizeLimit(limit)
	after, err := pagination.ParseCursor(cursor)
	if err != nil {
		return nil, "", err
	}
	if after != nil {
		query = query.Where("(position > ?) OR (position = ? AND id > ?)", after.Position, after.Position, after.ID)
	}

	var rows []T
	if err := query.Order("position ASC").Order("id ASC").Limit(pagination.LimitWithBuffer(limit)).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > normalized {
		rows = rows[:normalized]
		next = pagination.EncodeCursor(key(rows[len(rows)-1]))
	}
	return rows, next, nil
}
