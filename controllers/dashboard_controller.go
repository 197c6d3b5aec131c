package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
)

// DashboardStats devolve os contadores do painel admin.
// GET /api/admin/dashboard
func DashboardStats(c *gin.Context) {
	var totalVideos, totalUsuarios, totalPerfis, totalTags int64
	var totalFavoritos, totalEmAndamento int64

	config.DB.Model(&models.Video{}).Count(&totalVideos)
	config.DB.Model(&models.User{}).Count(&totalUsuarios)
	config.DB.Model(&models.Perfil{}).Count(&totalPerfis)
	config.DB.Model(&models.Tag{}).Count(&totalTags)
	config.DB.Model(&models.VideoPerfil{}).Where("e_favorito_video_perfil = ?", true).Count(&totalFavoritos)
	config.DB.Model(&models.VideoPerfil{}).Where("andamento_video_perfil <> ?", "00:00:00").Count(&totalEmAndamento)

	c.JSON(http.StatusOK, gin.H{
		"message": "Estatísticas carregadas com sucesso.",
		"stats": gin.H{
			"videos":       totalVideos,
			"usuarios":     totalUsuarios,
			"perfis":       totalPerfis,
			"tags":         totalTags,
			"favoritos":    totalFavoritos,
			"em_andamento": totalEmAndamento,
		},
	})
}

// ListarUsuarios lista as contas para o painel admin.
// GET /api/admin/usuarios
func ListarUsuarios(c *gin.Context) {
	var usuarios []models.User
	if err := config.DB.Preload("Perfis").Find(&usuarios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao listar usuários.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"usuarios": usuarios})
}
