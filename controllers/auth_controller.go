package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func Register(c *gin.Context) {
	var input RegisterInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	// E-mail já usado?
	var existente models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existente).Error; err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"email": "e-mail já cadastrado"},
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Não foi possível criptografar a senha."})
		return
	}

	novoUser := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
	}

	if err := config.DB.Create(&novoUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar usuário.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Conta criada com sucesso.",
		"user":    novoUser,
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "E-mail ou senha incorretos."})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "E-mail ou senha incorretos."})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Não foi possível gerar o token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}

// Logout coloca o jti do token na denylist do Redis até o token expirar.
func Logout(c *gin.Context) {
	jti := c.GetString("jti")

	if config.RDB != nil && jti != "" {
		// A denylist só precisa viver até o token expirar (24h no máximo)
		config.RDB.Set(c.Request.Context(), "denylist:"+jti, "1", 24*time.Hour)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout realizado com sucesso."})
}

func Me(c *gin.Context) {
	userID := c.GetUint("user_id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Usuário não encontrado."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
