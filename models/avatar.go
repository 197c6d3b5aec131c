package models

type Avatar struct {
	PkAvatar  uint   `gorm:"column:pk_avatar;primaryKey" json:"pk_avatar"`
	ImgAvatar string `gorm:"column:img_avatar;type:text;not null" json:"img_avatar"`
}

func (Avatar) TableName() string {
	return "avatares"
}
