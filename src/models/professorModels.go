package models

type ProfessorModel struct {
	Id             int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Department     string `json:"department" gorm:"column:department;type:varchar(255);not null"`
	Specialization string `json:"specialization" gorm:"column:specialization;type:varchar(255);not null"`
	About          string `json:"about" gorm:"column:about;type:text;not null"`
	ImageURL       string `json:"imageUrl" gorm:"column:image_url;type:text;not null"`
	PublicID       string `json:"publicId" gorm:"column:public_id;type:varchar(255);not null"`
}
