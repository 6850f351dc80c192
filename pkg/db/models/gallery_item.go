package models

import "time"

// GalleryItem is a customer story shown in the gallery.
type GalleryItem struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	Story     string    `gorm:"column:story;not null"`
	Position  int       `gorm:"column:position;not null;index:idx_gallery_items_position"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (GalleryItem) TableName() string { return "gallery_items" }
