package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

type PerfilInput struct {
	NomePerfil           string `json:"nome_perfil" binding:"required,max=100"`
	DataNascimentoPerfil string `json:"data_nascimento_perfil" binding:"required"`
	FkAvatar             uint   `json:"fk_avatar" binding:"required"`
}

func (in *PerfilInput) dataNascimento() (time.Time, error) {
	data, err := time.Parse("2006-01-02", in.DataNascimentoPerfil)
	if err != nil {
		return time.Time{}, errors.New("data de nascimento inválida, use AAAA-MM-DD")
	}
	if !data.Before(time.Now()) {
		return time.Time{}, errors.New("data de nascimento deve ser anterior a hoje")
	}
	return data, nil
}

// CriarPerfil cria um perfil de visualização. Cada conta tem no máximo 5 e o
// tipo (infantil/juvenil/adulto) é derivado da data de nascimento.
func CriarPerfil(c *gin.Context) {
	userID := c.GetUint("user_id")

	if c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Administradores não podem criar perfis de usuários."})
		return
	}

	var input PerfilInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	nascimento, err := input.dataNascimento()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"data_nascimento_perfil": err.Error()},
		})
		return
	}

	var avatar models.Avatar
	if err := config.DB.First(&avatar, "pk_avatar = ?", input.FkAvatar).Error; err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"fk_avatar": "avatar inexistente"},
		})
		return
	}

	var quantidade int64
	config.DB.Model(&models.Perfil{}).Where("fk_user = ?", userID).Count(&quantidade)
	if quantidade >= 5 {
		c.JSON(http.StatusForbidden, gin.H{"message": "Limite máximo de 5 perfis por usuário atingido."})
		return
	}

	perfil := models.Perfil{
		NomePerfil:           input.NomePerfil,
		DataNascimentoPerfil: nascimento,
		FkTipoPerfil:         utils.CalcularTipoPerfil(nascimento),
		FkAvatar:             input.FkAvatar,
		FkUser:               userID,
	}

	if err := config.DB.Create(&perfil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao tentar criar o perfil.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Perfil criado com sucesso.",
		"perfil":  perfil,
	})
}

func ListarPerfis(c *gin.Context) {
	userID := c.GetUint("user_id")

	var perfis []models.Perfil
	if err := config.DB.Preload("Avatar").Preload("TipoPerfil").
		Where("fk_user = ?", userID).
		Find(&perfis).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao tentar listar os perfis.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfis carregados com sucesso.",
		"perfis":  perfis,
	})
}

func DetalhesPerfil(c *gin.Context) {
	userID := c.GetUint("user_id")

	perfilID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
		return
	}

	var perfil models.Perfil
	if err := config.DB.Preload("Avatar").Preload("TipoPerfil").
		Where("pk_perfil = ? AND fk_user = ?", perfilID, userID).
		First(&perfil).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dados do perfil carregados com sucesso.",
		"perfil":  perfil,
	})
}

type EditarPerfilInput struct {
	NomePerfil           *string `json:"nome_perfil" binding:"omitempty,max=100"`
	DataNascimentoPerfil *string `json:"data_nascimento_perfil"`
	FkAvatar             *uint   `json:"fk_avatar"`
}

func EditarPerfil(c *gin.Context) {
	userID := c.GetUint("user_id")

	perfilID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
		return
	}

	var perfil models.Perfil
	if err := config.DB.First(&perfil, "pk_perfil = ?", perfilID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao buscar o perfil.", "error": err.Error()})
		return
	}

	if perfil.FkUser != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Você não tem permissão para editar este perfil."})
		return
	}

	var input EditarPerfilInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if input.NomePerfil != nil {
		perfil.NomePerfil = *input.NomePerfil
	}

	if input.DataNascimentoPerfil != nil {
		nascimento, err := time.Parse("2006-01-02", *input.DataNascimentoPerfil)
		if err != nil || !nascimento.Before(time.Now()) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Erro de validação.",
				"errors":  gin.H{"data_nascimento_perfil": "data inválida, use AAAA-MM-DD anterior a hoje"},
			})
			return
		}
		perfil.DataNascimentoPerfil = nascimento
		// Tipo acompanha a nova data
		perfil.FkTipoPerfil = utils.CalcularTipoPerfil(nascimento)
	}

	if input.FkAvatar != nil {
		var avatar models.Avatar
		if err := config.DB.First(&avatar, "pk_avatar = ?", *input.FkAvatar).Error; err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Erro de validação.",
				"errors":  gin.H{"fk_avatar": "avatar inexistente"},
			})
			return
		}
		perfil.FkAvatar = *input.FkAvatar
	}

	if err := config.DB.Save(&perfil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao editar perfil.", "error": err.Error()})
		return
	}

	config.DB.Preload("Avatar").Preload("TipoPerfil").First(&perfil, "pk_perfil = ?", perfil.PkPerfil)

	c.JSON(http.StatusOK, gin.H{
		"message": "Perfil editado com sucesso.",
		"perfil":  perfil,
	})
}

func DeletarPerfil(c *gin.Context) {
	userID := c.GetUint("user_id")

	perfilID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
		return
	}

	var perfil models.Perfil
	if err := config.DB.First(&perfil, "pk_perfil = ?", perfilID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Perfil não encontrado."})
		return
	}

	if perfil.FkUser != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": "Não é permitido deletar perfis que não são seus."})
		return
	}

	// Os registros de videos_perfis caem junto via cascade
	if err := config.DB.Delete(&perfil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao excluir o perfil.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Perfil excluído com sucesso."})
}

// ListarAvatares devolve os avatares disponíveis para os perfis.
func ListarAvatares(c *gin.Context) {
	var avatares []models.Avatar
	if err := config.DB.Find(&avatares).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao listar avatares.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatares": avatares})
}
