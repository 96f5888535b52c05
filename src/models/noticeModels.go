package models

import (
	"time"

	"gorm.io/datatypes"
)

type NoticeModel struct {
	Id        int                         `json:"id" gorm:"primaryKey;autoIncrement"`
	Subject   string                      `json:"subject" gorm:"column:subject;type:varchar(255);not null"`
	Body      string                      `json:"body" gorm:"column:body;type:text"`
	Links     datatypes.JSONSlice[string] `json:"links" gorm:"column:links"`
	CreatedAt time.Time                   `json:"createdAt"`
	UpdatedAt time.Time                   `json:"updatedAt"`
}
