package models

type Position string

const (
	PositionPresident      Position = "President"
	PositionVicePresident  Position = "Vice President"
	PositionSecretary      Position = "Secretary"
	PositionJointSecretary Position = "Joint Secretary"
	PositionTreasurer      Position = "Treasurer"
	PositionUnionAdvisor   Position = "Union Advisor"
)

// PositionCapacity is how many holders each role admits at once.
var PositionCapacity = map[Position]int{
	PositionPresident:      1,
	PositionVicePresident:  1,
	PositionSecretary:      1,
	PositionJointSecretary: 1,
	PositionTreasurer:      1,
	PositionUnionAdvisor:   2,
}

type PositionHolderModel struct {
	Id       int      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string   `json:"name" gorm:"column:name;type:varchar(255);not null"`
	Position Position `json:"position" gorm:"column:position;type:varchar(32);not null;index"`
	ImageURL string   `json:"imageUrl" gorm:"column:image_url;type:text;not null"`
}
