package services

import (
	"context"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/GuilhermeLuzs/dice-play/models"
)

// IniciarAtualizadorVisualizacoes agenda a atualização diária dos contadores
// de views do catálogo. Devolve o cron para quem quiser parar no shutdown.
func IniciarAtualizadorVisualizacoes(db *gorm.DB) *cron.Cron {
	logger := zerolog.New(os.Stderr).With().Timestamp().Str("component", "visualizacoes").Logger()

	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		AtualizarVisualizacoes(context.Background(), db, logger)
	})
	if err != nil {
		logger.Error().Err(err).Msg("não foi possível agendar o atualizador")
		return c
	}

	c.Start()
	logger.Info().Msg("atualizador de visualizações agendado (@daily)")
	return c
}

// AtualizarVisualizacoes percorre o catálogo e sincroniza visualizacoes_video
// com o contador atual do YouTube. Falha em um vídeo não derruba os demais.
func AtualizarVisualizacoes(ctx context.Context, db *gorm.DB, logger zerolog.Logger) {
	inicio := time.Now()

	var videos []models.Video
	if err := db.Find(&videos).Error; err != nil {
		logger.Error().Err(err).Msg("erro ao carregar o catálogo")
		return
	}

	atualizados := 0
	for _, v := range videos {
		videoID := ExtrairIDYoutube(v.LinkVideo)
		if videoID == "" {
			logger.Warn().Uint("pk_video", v.PkVideo).Str("link", v.LinkVideo).Msg("link sem ID do YouTube")
			continue
		}

		views, err := VisualizacoesAtuais(ctx, videoID)
		if err != nil {
			logger.Warn().Err(err).Uint("pk_video", v.PkVideo).Msg("falha ao consultar o YouTube")
			continue
		}

		if views == v.VisualizacoesVideo {
			continue
		}

		if err := db.Model(&models.Video{}).
			Where("pk_video = ?", v.PkVideo).
			UpdateColumn("visualizacoes_video", views).Error; err != nil {
			logger.Warn().Err(err).Uint("pk_video", v.PkVideo).Msg("falha ao gravar visualizações")
			continue
		}
		atualizados++
	}

	logger.Info().
		Int("videos", len(videos)).
		Int("atualizados", atualizados).
		Dur("duracao", time.Since(inicio)).
		Msg("visualizações sincronizadas")
}
