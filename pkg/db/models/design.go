package models

import (
	"time"

	"github.com/angelmondragon/invitation-backend/pkg/enums"
)

// Design is a ready-made invitation design in the catalog.
type Design struct {
	ID         string                 `gorm:"column:id;primaryKey"`
	Collection enums.DesignCollection `gorm:"column:collection;not null;index:idx_designs_collection_position,priority:1"`
	Name       string                 `gorm:"column:name;not null"`
	ImageURL   string                 `gorm:"column:image_url;not null"`
	Style      enums.DesignStyle      `gorm:"column:style;not null"`
	Theme      enums.DesignTheme      `gorm:"column:theme;not null"`
	Color      enums.DesignTone       `gorm:"column:color;not null"`
	Position   int                    `gorm:"column:position;not null;index:idx_designs_collection_position,priority:2"`
	CreatedAt  time.Time              `gorm:"column:created_at;autoCreateTime"`
}

func (Design) TableName() string { return "designs" }
