package models

type MagazineModel struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	MagazineName string `json:"magazineName" gorm:"column:magazine_name;type:varchar(255);not null;uniqueIndex:idx_magazines_name_link"`
	MagazineLink string `json:"magazineLink" gorm:"column:magazine_link;type:varchar(512);not null;uniqueIndex:idx_magazines_name_link"`
}
