package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/routes"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

// setupTest monta um ambiente completo por teste: banco SQLite em memória,
// Redis em memória para a denylist e o router com todas as rotas.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	mr := miniredis.RunT(t)
	config.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { config.RDB = nil })

	seedTipos(t, db)

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func seedTipos(t *testing.T, db *gorm.DB) {
	t.Helper()
	tipos := []models.TipoPerfil{
		{PkTipoPerfil: utils.TipoInfantil, NomeTipoPerfil: "Infantil"},
		{PkTipoPerfil: utils.TipoJuvenil, NomeTipoPerfil: "Juvenil"},
		{PkTipoPerfil: utils.TipoAdulto, NomeTipoPerfil: "Adulto"},
	}
	for _, tipo := range tipos {
		require.NoError(t, db.Create(&tipo).Error)
	}
}

func criarUsuario(t *testing.T, email string, admin bool) (models.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     "Usuário de Teste",
		Email:    email,
		Password: string(hash),
		IsAdmin:  admin,
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	require.NoError(t, err)

	return user, token
}

func criarAvatar(t *testing.T) models.Avatar {
	t.Helper()
	avatar := models.Avatar{ImgAvatar: "/avatares/ana.png"}
	require.NoError(t, config.DB.Create(&avatar).Error)
	return avatar
}

func criarPerfil(t *testing.T, userID uint, tipo uint) models.Perfil {
	t.Helper()

	avatar := models.Avatar{ImgAvatar: "/avatares/helena.png"}
	require.NoError(t, config.DB.Create(&avatar).Error)

	anos := map[uint]int{
		utils.TipoInfantil: 8,
		utils.TipoJuvenil:  14,
		utils.TipoAdulto:   30,
	}[tipo]

	perfil := models.Perfil{
		NomePerfil:           "Perfil de Teste",
		DataNascimentoPerfil: time.Now().AddDate(-anos, 0, -1),
		FkTipoPerfil:         tipo,
		FkAvatar:             avatar.PkAvatar,
		FkUser:               userID,
	}
	require.NoError(t, config.DB.Create(&perfil).Error)
	return perfil
}

func criarVideo(t *testing.T, titulo, classificacao string) models.Video {
	t.Helper()

	video := models.Video{
		TituloVideo:              titulo,
		LinkVideo:                "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		DescricaoVideo:           "Sessão gravada de mesa",
		ClassificacaoEtariaVideo: classificacao,
		DuracaoVideo:             "02:30:00",
		NomeCanalVideo:           "Canal de Teste",
	}
	require.NoError(t, config.DB.Create(&video).Error)
	return video
}

func fazerRequisicao(t *testing.T, router *gin.Engine, metodo, caminho, token string, corpo interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var leitor *bytes.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		require.NoError(t, err)
		leitor = bytes.NewReader(dados)
	} else {
		leitor = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(metodo, caminho, leitor)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodificarCorpo(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var corpo map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &corpo), w.Body.String())
	return corpo
}

func contarVideosPerfis(t *testing.T, videoID, perfilID uint) int64 {
	t.Helper()

	var total int64
	require.NoError(t, config.DB.Model(&models.VideoPerfil{}).
		Where("fk_video = ? AND fk_perfil = ?", videoID, perfilID).
		Count(&total).Error)
	return total
}
