package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

func corpoVideo(titulo string) map[string]interface{} {
	return map[string]interface{}{
		"titulo_video":               titulo,
		"link_video":                 "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"thumbnail_video":            "https://i.ytimg.com/vi/dQw4w9WgXcQ/hqdefault.jpg",
		"descricao_video":            "Sessão gravada",
		"classificacao_etaria_video": "L",
		"data_publicacao_video":      "2026-01-15",
		"duracao_video":              "02:30:00",
		"nome_canal_video":           "Canal de Teste",
		"master":                     "Mestre Gaspar",
		"participantes":              []string{"Ana", "Arthur"},
		"tags":                       []string{"D&D", "Campanha Longa"},
	}
}

func TestAdicionarVideoComTagsEParticipantes(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "admin@teste.com", true)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpoVideo("Sessão 1"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodificarCorpo(t, w)
	video := resp["video"].(map[string]interface{})
	assert.Equal(t, "Sessão 1", video["titulo_video"])
	assert.Len(t, video["tags"].([]interface{}), 2)
	assert.Len(t, video["participantes"].([]interface{}), 3, "mestre + 2 jogadores")

	// A tag ganhou slug
	var tag models.Tag
	require.NoError(t, config.DB.First(&tag, "nome_tag = ?", "Campanha Longa").Error)
	assert.Equal(t, "campanha-longa", tag.SlugTag)
}

func TestAdicionarVideoReaproveitaTag(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "admin@teste.com", true)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpoVideo("Sessão 1"))
	require.Equal(t, http.StatusCreated, w.Code)
	w = fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpoVideo("Sessão 2"))
	require.Equal(t, http.StatusCreated, w.Code)

	var total int64
	config.DB.Model(&models.Tag{}).Where("nome_tag = ?", "D&D").Count(&total)
	assert.EqualValues(t, 1, total, "tag com mesmo nome não duplica")
}

func TestAdicionarVideoDuracaoInvalida(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "admin@teste.com", true)

	corpo := corpoVideo("Sessão 1")
	corpo["duracao_video"] = "2h30m"

	w := fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpo)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAdicionarVideoExigeAdmin(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "comum@teste.com", false)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpoVideo("Sessão 1"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListarVideosFiltraPorPerfil(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)
	perfilInfantil := criarPerfil(t, user.ID, utils.TipoInfantil)

	criarVideo(t, "Aventura Leve", "L")
	criarVideo(t, "Intriga Política", "14")
	criarVideo(t, "Horror Cósmico", "18")

	// Sem perfil, o catálogo vem inteiro
	w := fazerRequisicao(t, router, http.MethodGet, "/api/videos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodificarCorpo(t, w)
	assert.Len(t, resp["videos"].([]interface{}), 3)

	// Perfil infantil só vê classificação livre
	w = fazerRequisicao(t, router, http.MethodGet,
		fmt.Sprintf("/api/videos?fk_perfil=%d", perfilInfantil.PkPerfil), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodificarCorpo(t, w)

	videos := resp["videos"].([]interface{})
	require.Len(t, videos, 1)
	assert.Equal(t, "Aventura Leve", videos[0].(map[string]interface{})["titulo_video"])
}

func TestEditarVideoRecriaVinculos(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "admin@teste.com", true)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/videos", token, corpoVideo("Sessão 1"))
	require.Equal(t, http.StatusCreated, w.Code)
	criado := decodificarCorpo(t, w)["video"].(map[string]interface{})
	videoID := uint(criado["pk_video"].(float64))

	w = fazerRequisicao(t, router, http.MethodPut, fmt.Sprintf("/api/videos/%d", videoID), token,
		map[string]interface{}{
			"classificacao_etaria_video": "16",
			"tags":                       []string{"One Shot"},
			"master":                     "Mestre Helena",
			"participantes":              []string{"Holly"},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodificarCorpo(t, w)
	video := resp["video"].(map[string]interface{})
	assert.Equal(t, "16", video["classificacao_etaria_video"])
	require.Len(t, video["tags"].([]interface{}), 1)
	assert.Len(t, video["participantes"].([]interface{}), 2)
}

func TestExcluirVideoLimpaHistorico(t *testing.T) {
	router := setupTest(t)
	_, tokenAdmin := criarUsuario(t, "admin@teste.com", true)
	user, tokenUser := criarUsuario(t, "gui@teste.com", false)
	perfil := criarPerfil(t, user.ID, utils.TipoAdulto)
	video := criarVideo(t, "Sessão 1", "L")

	w := fazerRequisicao(t, router, http.MethodPut, fmt.Sprintf("/api/videos/progresso/%d", video.PkVideo), tokenUser,
		map[string]interface{}{"fk_perfil": perfil.PkPerfil, "tempo_atual": 30})
	require.Equal(t, http.StatusOK, w.Code)

	w = fazerRequisicao(t, router, http.MethodDelete, fmt.Sprintf("/api/videos/%d", video.PkVideo), tokenAdmin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.EqualValues(t, 0, contarVideosPerfis(t, video.PkVideo, perfil.PkPerfil))

	var total int64
	config.DB.Model(&models.Video{}).Count(&total)
	assert.EqualValues(t, 0, total)
}

func TestListarTags(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)

	require.NoError(t, config.DB.Create(&models.Tag{NomeTag: "D&D", SlugTag: "d-d"}).Error)
	require.NoError(t, config.DB.Create(&models.Tag{NomeTag: "Call of Cthulhu", SlugTag: "call-of-cthulhu"}).Error)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/tags", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var nomes []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &nomes))
	assert.Equal(t, []string{"Call of Cthulhu", "D&D"}, nomes)
}
