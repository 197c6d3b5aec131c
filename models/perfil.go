package models

import (
	"time"
)

type Perfil struct {
	PkPerfil             uint      `gorm:"column:pk_perfil;primaryKey" json:"pk_perfil"`
	NomePerfil           string    `gorm:"column:nome_perfil;type:varchar(100);not null" json:"nome_perfil"`
	DataNascimentoPerfil time.Time `gorm:"column:data_nascimento_perfil;not null" json:"data_nascimento_perfil"`
	FkTipoPerfil         uint      `gorm:"column:fk_tipo_perfil;not null" json:"fk_tipo_perfil"`
	FkAvatar             uint      `gorm:"column:fk_avatar;not null" json:"fk_avatar"`
	FkUser               uint      `gorm:"column:fk_user;not null" json:"fk_user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TipoPerfil TipoPerfil `gorm:"foreignKey:FkTipoPerfil;references:PkTipoPerfil" json:"tipo_perfil,omitempty"`
	Avatar     Avatar     `gorm:"foreignKey:FkAvatar;references:PkAvatar" json:"avatar,omitempty"`
	User       User       `gorm:"foreignKey:FkUser;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Perfil) TableName() string {
	return "perfis"
}
