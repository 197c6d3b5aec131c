package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterELogin(t *testing.T) {
	router := setupTest(t)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Guilherme",
		"email":    "gui@teste.com",
		"password": "senha123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodificarCorpo(t, w)
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "gui@teste.com", user["email"])
	assert.NotContains(t, user, "password", "a senha nunca sai na resposta")

	w = fazerRequisicao(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "gui@teste.com",
		"password": "senha123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp = decodificarCorpo(t, w)
	assert.NotEmpty(t, resp["token"])
}

func TestRegisterEmailDuplicado(t *testing.T) {
	router := setupTest(t)
	criarUsuario(t, "gui@teste.com", false)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Guilherme",
		"email":    "gui@teste.com",
		"password": "senha123",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegisterValidacao(t *testing.T) {
	router := setupTest(t)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Guilherme",
		"email":    "nao-e-email",
		"password": "123",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	resp := decodificarCorpo(t, w)
	erros := resp["errors"].(map[string]interface{})
	assert.Contains(t, erros, "email")
	assert.Contains(t, erros, "password")
}

func TestLoginSenhaErrada(t *testing.T) {
	router := setupTest(t)
	criarUsuario(t, "gui@teste.com", false)

	w := fazerRequisicao(t, router, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "gui@teste.com",
		"password": "senha-errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe(t *testing.T) {
	router := setupTest(t)
	user, token := criarUsuario(t, "gui@teste.com", false)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodificarCorpo(t, w)
	me := resp["user"].(map[string]interface{})
	assert.EqualValues(t, user.ID, me["id"])
	assert.Equal(t, "gui@teste.com", me["email"])
}

func TestLogoutRevogaToken(t *testing.T) {
	router := setupTest(t)
	_, token := criarUsuario(t, "gui@teste.com", false)

	// Antes do logout o token funciona
	w := fazerRequisicao(t, router, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = fazerRequisicao(t, router, http.MethodPost, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// O jti entrou na denylist: o mesmo token agora é recusado
	w = fazerRequisicao(t, router, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRotasProtegidasSemToken(t *testing.T) {
	router := setupTest(t)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = fazerRequisicao(t, router, http.MethodGet, "/api/me", "token-invalido", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRotasAdminExigemAdmin(t *testing.T) {
	router := setupTest(t)
	_, tokenComum := criarUsuario(t, "comum@teste.com", false)
	_, tokenAdmin := criarUsuario(t, "admin@teste.com", true)

	w := fazerRequisicao(t, router, http.MethodGet, "/api/admin/dashboard", tokenComum, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = fazerRequisicao(t, router, http.MethodGet, "/api/admin/dashboard", tokenAdmin, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
