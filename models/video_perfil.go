package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoPerfil é a tabela pivô entre vídeos e perfis: guarda o andamento da
// reprodução (formato HH:MM:SS) e o marcador de favorito. O par
// (fk_video, fk_perfil) é único — nunca existem duas linhas para o mesmo par.
type VideoPerfil struct {
	PkVideoPerfil        string `gorm:"column:pk_video_perfil;type:char(36);primaryKey" json:"pk_video_perfil"`
	FkVideo              uint   `gorm:"column:fk_video;not null;uniqueIndex:idx_video_perfil" json:"fk_video"`
	FkPerfil             uint   `gorm:"column:fk_perfil;not null;uniqueIndex:idx_video_perfil" json:"fk_perfil"`
	// varchar(12) acomoda o campo de horas sem teto (ex.: "100:00:05")
	AndamentoVideoPerfil string `gorm:"column:andamento_video_perfil;type:varchar(12);default:'00:00:00'" json:"andamento_video_perfil"`
	EFavoritoVideoPerfil bool   `gorm:"column:e_favorito_video_perfil;default:false" json:"e_favorito_video_perfil"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"` // último acesso, ordena o "Continuar Assistindo"

	Video  Video  `gorm:"foreignKey:FkVideo;references:PkVideo;constraint:OnDelete:CASCADE" json:"video,omitempty"`
	Perfil Perfil `gorm:"foreignKey:FkPerfil;references:PkPerfil;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoPerfil) TableName() string {
	return "videos_perfis"
}

func (vp *VideoPerfil) BeforeCreate(tx *gorm.DB) error {
	if vp.PkVideoPerfil == "" {
		vp.PkVideoPerfil = uuid.New().String()
	}
	if vp.AndamentoVideoPerfil == "" {
		vp.AndamentoVideoPerfil = "00:00:00"
	}
	return nil
}
