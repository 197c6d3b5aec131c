package models

type TipoPerfil struct {
	PkTipoPerfil   uint   `gorm:"column:pk_tipo_perfil;primaryKey" json:"pk_tipo_perfil"`
	NomeTipoPerfil string `gorm:"column:nome_tipo_perfil;type:varchar(50);not null" json:"nome_tipo_perfil"`
}

func (TipoPerfil) TableName() string {
	return "tipos_perfil"
}
