package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/services"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

// ListarTags devolve só os nomes, para o select do admin.
func ListarTags(c *gin.Context) {
	var nomes []string
	if err := config.DB.Model(&models.Tag{}).Order("nome_tag").Pluck("nome_tag", &nomes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao listar as tags.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, nomes)
}

// BuscarDadosYoutube preenche o formulário do admin com os metadados do
// vídeo direto da API do YouTube.
// GET /api/videos/youtube-data?link=
func BuscarDadosYoutube(c *gin.Context) {
	link := c.Query("link")
	if link == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"link": "campo obrigatório"},
		})
		return
	}

	dados, err := services.BuscarDadosYoutube(c.Request.Context(), link)
	if err != nil {
		if err == services.ErrLinkInvalido {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Link inválido."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Não foi possível buscar os dados no YouTube.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dados)
}

type VideoInput struct {
	LinkVideo                string   `json:"link_video" binding:"required"`
	TituloVideo              string   `json:"titulo_video" binding:"required"`
	ThumbnailVideo           string   `json:"thumbnail_video" binding:"required"`
	DescricaoVideo           string   `json:"descricao_video" binding:"required"`
	ClassificacaoEtariaVideo string   `json:"classificacao_etaria_video" binding:"required"`
	DataPublicacaoVideo      string   `json:"data_publicacao_video" binding:"required"`
	DuracaoVideo             string   `json:"duracao_video" binding:"required"` // formato HH:MM:SS
	VisualizacoesVideo       int      `json:"visualizacoes_video"`
	NomeCanalVideo           string   `json:"nome_canal_video" binding:"required"`
	FotoCanalVideo           string   `json:"foto_canal_video"`
	Tags                     []string `json:"tags"`
	Master                   string   `json:"master" binding:"required"`
	Participantes            []string `json:"participantes"`
}

// AdicionarVideo cria o vídeo com tags (firstOrCreate pelo nome) e
// participantes (1 mestre + jogadores) numa transação só.
// POST /api/videos
func AdicionarVideo(c *gin.Context) {
	var input VideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if _, err := utils.HMSParaSegundos(input.DuracaoVideo); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  gin.H{"duracao_video": "use o formato HH:MM:SS"},
		})
		return
	}

	video := models.Video{
		TituloVideo:              input.TituloVideo,
		LinkVideo:                input.LinkVideo,
		DescricaoVideo:           input.DescricaoVideo,
		ThumbnailVideo:           input.ThumbnailVideo,
		DataPublicacaoVideo:      input.DataPublicacaoVideo,
		ClassificacaoEtariaVideo: input.ClassificacaoEtariaVideo,
		DuracaoVideo:             input.DuracaoVideo,
		VisualizacoesVideo:       input.VisualizacoesVideo,
		NomeCanalVideo:           input.NomeCanalVideo,
		FotoCanalVideo:           input.FotoCanalVideo,
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&video).Error; err != nil {
			return err
		}

		if err := sincronizarTags(tx, &video, input.Tags); err != nil {
			return err
		}

		return criarParticipantes(tx, video.PkVideo, input.Master, input.Participantes)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao criar vídeo.", "error": err.Error()})
		return
	}

	config.DB.Preload("Tags").Preload("Participantes").First(&video, "pk_video = ?", video.PkVideo)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Vídeo criado com sucesso!",
		"video":   video,
	})
}

// sincronizarTags faz o equivalente do sync do Laravel: busca ou cria cada
// tag pelo nome e deixa a pivô só com as enviadas.
func sincronizarTags(tx *gorm.DB, video *models.Video, nomes []string) error {
	if err := tx.Where("fk_video = ?", video.PkVideo).Delete(&models.VideoTag{}).Error; err != nil {
		return err
	}

	for _, nome := range nomes {
		nome = strings.TrimSpace(nome)
		if nome == "" {
			continue
		}

		var tag models.Tag
		if err := tx.Where("nome_tag = ?", nome).
			Attrs(models.Tag{SlugTag: slug.Make(nome)}).
			FirstOrCreate(&tag, models.Tag{NomeTag: nome}).Error; err != nil {
			return err
		}

		vt := models.VideoTag{FkVideo: video.PkVideo, FkTag: tag.PkTag}
		if err := tx.Create(&vt).Error; err != nil {
			return err
		}
	}
	return nil
}

func criarParticipantes(tx *gorm.DB, videoID uint, master string, jogadores []string) error {
	if strings.TrimSpace(master) != "" {
		p := models.Participante{
			NomeParticipante:    master,
			EMestreParticipante: true,
			FkVideo:             videoID,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	}

	for _, nome := range jogadores {
		if strings.TrimSpace(nome) == "" {
			continue
		}
		p := models.Participante{
			NomeParticipante: nome,
			FkVideo:          videoID,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListarVideos devolve o catálogo para qualquer usuário logado. Com
// fk_perfil na query o filtro de classificação etária do perfil é aplicado.
// GET /api/videos
func ListarVideos(c *gin.Context) {
	query := config.DB.Model(&models.Video{}).Preload("Tags").Preload("Participantes")

	if fkPerfil, err := strconv.Atoi(c.Query("fk_perfil")); err == nil && fkPerfil > 0 {
		perfil, ok := perfilDoUsuario(c, uint(fkPerfil))
		if !ok {
			return
		}
		query = query.Where("classificacao_etaria_video IN ?", utils.ClassificacoesPermitidas(perfil.FkTipoPerfil))
	}

	var videos []models.Video
	if err := query.Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao tentar listar os vídeos.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videos": videos})
}

// ListarVideosAdm é a listagem completa do painel admin.
// GET /api/videos/adm
func ListarVideosAdm(c *gin.Context) {
	var videos []models.Video
	if err := config.DB.Preload("Tags").Preload("Participantes").Find(&videos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ocorreu um erro interno ao tentar listar os vídeos.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Vídeos listados com sucesso.",
		"videos":  videos,
	})
}

// DetalhesVideo devolve um vídeo com tags e participantes.
// GET /api/videos/:id
func DetalhesVideo(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	var video models.Video
	if err := config.DB.Preload("Tags").Preload("Participantes").
		First(&video, "pk_video = ?", videoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Detalhes do vídeo recuperados com sucesso.",
		"video":   video,
	})
}

type EditarVideoInput struct {
	LinkVideo                *string  `json:"link_video"`
	DescricaoVideo           *string  `json:"descricao_video"`
	ClassificacaoEtariaVideo *string  `json:"classificacao_etaria_video"`
	Tags                     []string `json:"tags"`
	Master                   *string  `json:"master"`
	Participantes            []string `json:"participantes"`
}

// EditarVideo atualiza os campos básicos e recria tags/participantes.
// PUT /api/videos/:id
func EditarVideo(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	var video models.Video
	if err := config.DB.First(&video, "pk_video = ?", videoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	var input EditarVideoInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "Erro de validação.",
			"errors":  utils.MapaErros(err),
		})
		return
	}

	if input.LinkVideo != nil {
		video.LinkVideo = *input.LinkVideo
	}
	if input.DescricaoVideo != nil {
		video.DescricaoVideo = *input.DescricaoVideo
	}
	if input.ClassificacaoEtariaVideo != nil {
		video.ClassificacaoEtariaVideo = *input.ClassificacaoEtariaVideo
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&video).Error; err != nil {
			return err
		}

		if input.Tags != nil {
			if err := sincronizarTags(tx, &video, input.Tags); err != nil {
				return err
			}
		}

		// Estratégia do sync: limpa e recria, sem lógica de diff
		if input.Master != nil || input.Participantes != nil {
			if err := tx.Where("fk_video = ?", video.PkVideo).Delete(&models.Participante{}).Error; err != nil {
				return err
			}

			master := ""
			if input.Master != nil {
				master = *input.Master
			}
			return criarParticipantes(tx, video.PkVideo, master, input.Participantes)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao atualizar o vídeo.", "error": err.Error()})
		return
	}

	config.DB.Preload("Tags").Preload("Participantes").First(&video, "pk_video = ?", video.PkVideo)

	c.JSON(http.StatusOK, gin.H{
		"message": "Vídeo atualizado com sucesso!",
		"video":   video,
	})
}

// ExcluirVideo apaga o vídeo e os vínculos (tags, participantes, histórico).
// DELETE /api/videos/:id
func ExcluirVideo(c *gin.Context) {
	videoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	var video models.Video
	if err := config.DB.First(&video, "pk_video = ?", videoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Vídeo não encontrado."})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fk_video = ?", video.PkVideo).Delete(&models.VideoTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fk_video = ?", video.PkVideo).Delete(&models.Participante{}).Error; err != nil {
			return err
		}
		if err := tx.Where("fk_video = ?", video.PkVideo).Delete(&models.VideoPerfil{}).Error; err != nil {
			return err
		}
		return tx.Delete(&video).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Erro ao excluir o vídeo.", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vídeo excluído com sucesso."})
}
