package controllers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

// perfilDoUsuario valida que o perfil existe e pertence à conta autenticada.
// Qualquer outra situação é 403, igual ao contrato do front.
func perfilDoUsuario(c *gin.Context, fkPerfil uint) (*models.Perfil, bool) {
	userID := c.GetUint("user_id")

	var perfil models.Perfil
	err := config.DB.Where("pk_perfil = ? AND fk_user = ?", fkPerfil, userID).First(&perfil).Error
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Perfil não encontrado ou não pertence a você."})
		return nil, false
	}
	return &perfil, true
}

func videoExistente(c *gin.Context) (*models.Video, bool) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return nil, false
	}

	var video models.Video
	if err := config.DB.First(&video, "pk_video = ?", videoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return nil, false
	}
	return &video, true
}

type PerfilRequest struct {
	FkPerfil uint `json:"fk_perfil" binding:"required"`
}

// AssistirVideo inicia (ou retoma) uma sessão de reprodução.
// POST /api/videos/assistir/:id
//
// Busca ou cria o registro do par (vídeo, perfil) com um upsert atômico:
// duas chamadas quase simultâneas nunca criam duas linhas, a segunda só
// devolve o andamento que já estava gravado.
func AssistirVideo(c *gin.Context) {
	if c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Administradores não podem iniciar sessões de vídeo."})
		return
	}

	var body PerfilRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if _, ok := perfilDoUsuario(c, body.FkPerfil); !ok {
		return
	}

	video, ok := videoExistente(c)
	if !ok {
		return
	}

	vp := models.VideoPerfil{
		FkVideo:              video.PkVideo,
		FkPerfil:             body.FkPerfil,
		AndamentoVideoPerfil: "00:00:00",
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fk_video"}, {Name: "fk_perfil"}},
		DoNothing: true,
	}).Create(&vp).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao iniciar a sessão.", "error": err.Error()})
		return
	}

	// Relê a linha que sobreviveu ao conflito (pode ser a antiga)
	if err := config.DB.Where("fk_video = ? AND fk_perfil = ?", video.PkVideo, body.FkPerfil).First(&vp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao iniciar a sessão.", "error": err.Error()})
		return
	}

	segundos, err := utils.HMSParaSegundos(vp.AndamentoVideoPerfil)
	if err != nil {
		segundos = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            "Sessão iniciada.",
		"progresso_segundos": segundos,
	})
}

type ProgressoRequest struct {
	FkPerfil   uint `json:"fk_perfil" binding:"required"`
	TempoAtual *int `json:"tempo_atual" binding:"required,min=0"`
}

// AtualizarProgresso grava a posição atual de reprodução.
// PUT /api/videos/progresso/:id
//
// Também é um upsert: uma sessão que começou sem AssistirVideo não perde o
// primeiro tick de progresso. O updated_at alimenta o "Continuar Assistindo".
func AtualizarProgresso(c *gin.Context) {
	if c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Administradores não podem salvar progresso."})
		return
	}

	var body ProgressoRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if _, ok := perfilDoUsuario(c, body.FkPerfil); !ok {
		return
	}

	video, ok := videoExistente(c)
	if !ok {
		return
	}

	andamento := utils.SegundosParaHMS(*body.TempoAtual)

	vp := models.VideoPerfil{
		FkVideo:              video.PkVideo,
		FkPerfil:             body.FkPerfil,
		AndamentoVideoPerfil: andamento,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "fk_video"}, {Name: "fk_perfil"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"andamento_video_perfil": andamento,
			"updated_at":             time.Now(),
		}),
	}).Create(&vp).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao salvar o progresso.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Progresso salvo."})
}

// FavoritarVideo alterna o favorito do par (vídeo, perfil).
// POST /api/videos/favoritar/:id
//
// É um toggle puro: chamadas repetidas alternam o estado. Se o registro não
// existe ainda, nasce com favorito ligado e andamento zerado.
func FavoritarVideo(c *gin.Context) {
	if c.GetBool("is_admin") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Administradores não podem favoritar vídeos."})
		return
	}

	var body PerfilRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if _, ok := perfilDoUsuario(c, body.FkPerfil); !ok {
		return
	}

	video, ok := videoExistente(c)
	if !ok {
		return
	}

	var vp models.VideoPerfil
	err := config.DB.Where("fk_video = ? AND fk_perfil = ?", video.PkVideo, body.FkPerfil).First(&vp).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		vp = models.VideoPerfil{
			FkVideo:              video.PkVideo,
			FkPerfil:             body.FkPerfil,
			AndamentoVideoPerfil: "00:00:00",
			EFavoritoVideoPerfil: true,
		}

		// Upsert atômico: se AssistirVideo criou a linha no meio do caminho,
		// ninguém duplica o par — só liga o favorito na linha que ficou.
		if err := config.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fk_video"}, {Name: "fk_perfil"}},
			DoNothing: true,
		}).Create(&vp).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao favoritar o vídeo.", "error": err.Error()})
			return
		}

		config.DB.Where("fk_video = ? AND fk_perfil = ?", video.PkVideo, body.FkPerfil).First(&vp)
		if !vp.EFavoritoVideoPerfil {
			config.DB.Model(&vp).Update("e_favorito_video_perfil", true)
			vp.EFavoritoVideoPerfil = true
		}

	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao favoritar o vídeo.", "error": err.Error()})
		return

	default:
		novo := !vp.EFavoritoVideoPerfil
		if err := config.DB.Model(&vp).Update("e_favorito_video_perfil", novo).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao favoritar o vídeo.", "error": err.Error()})
			return
		}
		vp.EFavoritoVideoPerfil = novo
	}

	mensagem := "Vídeo removido dos favoritos."
	if vp.EFavoritoVideoPerfil {
		mensagem = "Vídeo favoritado com sucesso!"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       mensagem,
		"video_perfil":  vp,
		"esta_favorito": vp.EFavoritoVideoPerfil,
	})
}

// ListarFavoritos devolve os vídeos favoritados do perfil, com busca,
// filtro por tag e paginação.
// GET /api/videos/favoritos?fk_perfil=&search=&tag=&page=&per_page=
func ListarFavoritos(c *gin.Context) {
	fkPerfil, err := strconv.Atoi(c.Query("fk_perfil"))
	if err != nil || fkPerfil < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"fk_perfil": "campo obrigatório"},
		})
		return
	}

	perfil, ok := perfilDoUsuario(c, uint(fkPerfil))
	if !ok {
		return
	}

	search := c.Query("search")
	if len(search) > 100 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"search": "valor máximo: 100"},
		})
		return
	}

	tagID, _ := strconv.Atoi(c.Query("tag"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	query := config.DB.Model(&models.VideoPerfil{}).
		Joins("JOIN videos ON videos.pk_video = videos_perfis.fk_video").
		Where("videos_perfis.fk_perfil = ? AND videos_perfis.e_favorito_video_perfil = ?", fkPerfil, true).
		Where("videos.classificacao_etaria_video IN ?", utils.ClassificacoesPermitidas(perfil.FkTipoPerfil)).
		Preload("Video.Tags").Preload("Video.Participantes")

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(videos.titulo_video) LIKE ? OR LOWER(videos.descricao_video) LIKE ? OR LOWER(videos.nome_canal_video) LIKE ?",
			like, like, like,
		)
	}

	if tagID > 0 {
		query = query.Where("videos.pk_video IN (SELECT fk_video FROM video_tags WHERE fk_tag = ?)", tagID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao listar os favoritos.", "error": err.Error()})
		return
	}

	var favoritos []models.VideoPerfil
	if err := query.Order("videos.created_at DESC").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&favoritos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao listar os favoritos.", "error": err.Error()})
		return
	}

	data := make([]gin.H, 0, len(favoritos))
	for _, f := range favoritos {
		segundos, _ := utils.HMSParaSegundos(f.AndamentoVideoPerfil)
		data = append(data, gin.H{
			"video":                   f.Video,
			"andamento_video_perfil":  f.AndamentoVideoPerfil,
			"progresso_segundos":      segundos,
			"e_favorito_video_perfil": f.EFavoritoVideoPerfil,
		})
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	c.JSON(http.StatusOK, gin.H{
		"message": "Vídeos favoritos listados com sucesso.",
		"data":    data,
		"pagination": gin.H{
			"current_page":   page,
			"per_page":       perPage,
			"total":          total,
			"total_pages":    totalPages,
			"has_more_pages": page < totalPages,
		},
		"filters": gin.H{
			"search": search,
			"tag":    tagID,
		},
	})
}

// ListarAssistindo devolve os vídeos com reprodução iniciada, do mais recente
// para o mais antigo.
// GET /api/videos/assistindo?fk_perfil=
func ListarAssistindo(c *gin.Context) {
	fkPerfil, err := strconv.Atoi(c.Query("fk_perfil"))
	if err != nil || fkPerfil < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"fk_perfil": "campo obrigatório"},
		})
		return
	}

	perfil, ok := perfilDoUsuario(c, uint(fkPerfil))
	if !ok {
		return
	}

	// '00:00:00' é a codificação de zero na coluna; a comparação fica aqui na
	// borda do storage, o resto do código trabalha com segundos inteiros.
	var registros []models.VideoPerfil
	err = config.DB.
		Joins("JOIN videos ON videos.pk_video = videos_perfis.fk_video").
		Where("videos_perfis.fk_perfil = ? AND videos_perfis.andamento_video_perfil <> ?", fkPerfil, "00:00:00").
		Where("videos.classificacao_etaria_video IN ?", utils.ClassificacoesPermitidas(perfil.FkTipoPerfil)).
		Order("videos_perfis.updated_at DESC").
		Preload("Video.Tags").Preload("Video.Participantes").
		Find(&registros).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro interno ao listar os vídeos em andamento.", "error": err.Error()})
		return
	}

	videos := make([]gin.H, 0, len(registros))
	for _, r := range registros {
		segundos, _ := utils.HMSParaSegundos(r.AndamentoVideoPerfil)
		videos = append(videos, gin.H{
			"video":                  r.Video,
			"andamento_video_perfil": r.AndamentoVideoPerfil,
			"progresso_segundos":     segundos,
			"ultimo_acesso":          r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
