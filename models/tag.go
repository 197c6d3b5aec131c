package models

import (
	"time"
)

type Tag struct {
	PkTag   uint   `gorm:"column:pk_tag;primaryKey" json:"pk_tag"`
	NomeTag string `gorm:"column:nome_tag;type:varchar(100);uniqueIndex;not null" json:"nome_tag"`
	SlugTag string `gorm:"column:slug_tag;type:varchar(100)" json:"slug_tag"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}
