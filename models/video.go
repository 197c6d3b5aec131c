package models

import (
	"time"
)

type Video struct {
	PkVideo                   uint      `gorm:"column:pk_video;primaryKey" json:"pk_video"`
	TituloVideo               string    `gorm:"column:titulo_video;type:varchar(255);not null" json:"titulo_video"`
	LinkVideo                 string    `gorm:"column:link_video;type:text;not null" json:"link_video"`
	DescricaoVideo            string    `gorm:"column:descricao_video;type:text" json:"descricao_video"`
	ThumbnailVideo            string    `gorm:"column:thumbnail_video;type:text" json:"thumbnail_video"`
	DataPublicacaoVideo       string    `gorm:"column:data_publicacao_video;type:varchar(10)" json:"data_publicacao_video"`
	ClassificacaoEtariaVideo  string    `gorm:"column:classificacao_etaria_video;type:varchar(2);not null" json:"classificacao_etaria_video"`
	DuracaoVideo              string    `gorm:"column:duracao_video;type:varchar(12);not null" json:"duracao_video"` // formato HH:MM:SS, horas sem teto
	VisualizacoesVideo        int       `gorm:"column:visualizacoes_video;default:0" json:"visualizacoes_video"`
	NomeCanalVideo            string    `gorm:"column:nome_canal_video;type:varchar(255)" json:"nome_canal_video"`
	FotoCanalVideo            string    `gorm:"column:foto_canal_video;type:text" json:"foto_canal_video"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tags          []Tag          `gorm:"many2many:video_tags;foreignKey:PkVideo;joinForeignKey:FkVideo;references:PkTag;joinReferences:FkTag" json:"tags"`
	Participantes []Participante `gorm:"foreignKey:FkVideo;references:PkVideo;constraint:OnDelete:CASCADE" json:"participantes"`
}

func (Video) TableName() string {
	return "videos"
}
