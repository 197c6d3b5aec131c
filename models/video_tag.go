package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoTag é a tabela pivô entre vídeos e tags.
type VideoTag struct {
	PkVideoTag string `gorm:"column:pk_video_tag;type:char(36);primaryKey" json:"pk_video_tag"`
	FkVideo    uint   `gorm:"column:fk_video;not null;uniqueIndex:idx_video_tag" json:"fk_video"`
	FkTag      uint   `gorm:"column:fk_tag;not null;uniqueIndex:idx_video_tag" json:"fk_tag"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (VideoTag) TableName() string {
	return "video_tags"
}

func (vt *VideoTag) BeforeCreate(tx *gorm.DB) error {
	if vt.PkVideoTag == "" {
		vt.PkVideoTag = uuid.New().String()
	}
	return nil
}
