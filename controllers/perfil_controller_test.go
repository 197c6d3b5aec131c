package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeLuzs/dice-play/config"
	"github.com/GuilhermeLuzs/dice-play/models"
	"github.com/GuilhermeLuzs/dice-play/utils"
)

func dataNascimento(anos int) string {
	return time.Now().AddDate(-anos, 0, -1).Format("2006-01-02")
}

func TestCriarPerfilDerivaTipo(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)
	avatar := criarAvatar(t)

	casos := []struct {
		anos int
		tipo uint
	}{
		{30, utils.TipoAdulto},
		{14, utils.TipoJuvenil},
		{8, utils.TipoInfantil},
	}

	for _, caso := range casos {
		w := fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{
			"nome_perfil":            fmt.Sprintf("Perfil %d anos", caso.anos),
			"data_nascimento_perfil": dataNascimento(caso.anos),
			"fk_avatar":              avatar.PkAvatar,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := decodificarCorpo(t, w)
		perfil := resp["perfil"].(map[string]interface{})
		assert.EqualValues(t, caso.tipo, perfil["fk_tipo_perfil"], "%d anos", caso.anos)
	}
}

func TestCriarPerfilLimiteDeCinco(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)
	avatar := criarAvatar(t)

	for i := 0; i < 5; i++ {
		criarPerfil(t, user.ID, utils.TipoAdulto)
	}

	w := fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{
		"nome_perfil":            "Sexto Perfil",
		"data_nascimento_perfil": dataNascimento(20),
		"fk_avatar":              avatar.PkAvatar,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCriarPerfilValidacoes(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)
	avatar := criarAvatar(t)

	// Data no futuro
	w := fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{
		"nome_perfil":            "Viajante do Tempo",
		"data_nascimento_perfil": time.Now().AddDate(1, 0, 0).Format("2006-01-02"),
		"fk_avatar":              avatar.PkAvatar,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Avatar inexistente
	w = fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{
		"nome_perfil":            "Sem Avatar",
		"data_nascimento_perfil": dataNascimento(20),
		"fk_avatar":              999,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Campos obrigatórios
	w = fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCriarPerfilComoAdmin(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "admin@teste.com", true)
	avatar := criarAvatar(t)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/perfis", token, map[string]interface{}{
		"nome_perfil":            "Perfil do Admin",
		"data_nascimento_perfil": dataNascimento(20),
		"fk_avatar":              avatar.PkAvatar,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListarPerfisSoDaConta(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)
	outro, _ := criarUsuario(t, "outro@teste.com", false)

	criarPerfil(t, user.ID, utils.TipoAdulto)
	criarPerfil(t, user.ID, utils.TipoInfantil)
	criarPerfil(t, outro.ID, utils.TipoAdulto)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/perfis", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodificarCorpo(t, w)
	assert.Len(t, resp["perfis"].([]interface{}), 2)
}

func TestEditarPerfilRecalculaTipo(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)
	perfil := criarPerfil(t, user.ID, utils.TipoInfantil)

	w := fazerRequisicao(t, router, http.MethodPut, fmt.Sprintf("/api/perfis/%d", perfil.PkPerfil), token,
		map[string]interface{}{"data_nascimento_perfil": dataNascimento(25)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var atualizado models.Perfil
	require.NoError(t, config.DB.First(&atualizado, "pk_perfil = ?", perfil.PkPerfil).Error)
	assert.Equal(t, utils.TipoAdulto, atualizado.FkTipoPerfil)
}

func TestEditarPerfilDeOutraConta(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)
	outro, _ := criarUsuario(t, "outro@teste.com", false)
	perfilAlheio := criarPerfil(t, outro.ID, utils.TipoAdulto)

	w := fazerRequisicao(t, router, http.MethodPut, fmt.Sprintf("/api/perfis/%d", perfilAlheio.PkPerfil), token,
		map[string]interface{}{"nome_perfil": "Invadido"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletarPerfil(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)
	perfil := criarPerfil(t, user.ID, utils.TipoAdulto)

	w := fazerRequisicao(t, router, http.MethodDelete, fmt.Sprintf("/api/perfis/%d", perfil.PkPerfil), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var total int64
	config.DB.Model(&models.Perfil{}).Where("pk_perfil = ?", perfil.PkPerfil).Count(&total)
	assert.EqualValues(t, 0, total)
}

func TestListarAvatares(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)
	criarAvatar(t)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/avatares", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodificarCorpo(t, w)
	assert.NotEmpty(t, resp["avatares"])
}
