package models

import (
	"time"
)

type User struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email    string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	IsAdmin  bool   `gorm:"column:is_admin;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Perfis da conta (máximo 5, validado no controller)
	Perfis []Perfil `gorm:"foreignKey:FkUser;references:ID;constraint:OnDelete:CASCADE" json:"perfis,omitempty"`
}

func (User) TableName() string {
	return "users"
}
