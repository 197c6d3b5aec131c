package models

import (
	"time"
)

type Participante struct {
	PkParticipante      uint   `gorm:"column:pk_participante;primaryKey" json:"pk_participante"`
	NomeParticipante    string `gorm:"column:nome_participante;type:varchar(255);not null" json:"nome_participante"`
	FotoParticipante    string `gorm:"column:foto_participante;type:text" json:"foto_participante"`
	EMestreParticipante bool   `gorm:"column:e_mestre_participante;default:false" json:"e_mestre_participante"`
	FkVideo             uint   `gorm:"column:fk_video;not null" json:"fk_video"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Participante) TableName() string {
	return "participantes"
}
