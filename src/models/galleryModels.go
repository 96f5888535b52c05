package models

import "gorm.io/datatypes"

// MaxGalleryImages is the hard cap on stored images per named event.
const MaxGalleryImages = 8

type EventGalleryModel struct {
	Id        int                         `json:"eventId" gorm:"primaryKey;autoIncrement"`
	EventName string                      `json:"eventName" gorm:"column:event_name;type:varchar(255);not null;index"`
	ImageURLs datatypes.JSONSlice[string] `json:"cloudinaryLinks" gorm:"column:image_urls"`
}
