// Package client é o consumidor Go da API do Dice Play: chamadas HTTP com
// bearer token, repórter de progresso com debounce e cache local de fallback.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

type Cliente struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
	Log     zerolog.Logger
}

func NovoCliente(baseURL, token string) *Cliente {
	return &Cliente{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Log:     zerolog.New(os.Stderr).With().Timestamp().Str("component", "client").Logger(),
	}
}

// IniciarSessao abre (ou retoma) a sessão de reprodução e devolve o
// progresso salvo em segundos.
func (c *Cliente) IniciarSessao(ctx context.Context, perfilID, videoID uint) (int, error) {
	var resp struct {
		ProgressoSegundos int `json:"progresso_segundos"`
	}

	err := c.fazer(ctx, http.MethodPost, fmt.Sprintf("/api/videos/assistir/%d", videoID),
		map[string]uint{"fk_perfil": perfilID}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ProgressoSegundos, nil
}

// SalvarProgresso grava a posição atual (em segundos) no servidor.
func (c *Cliente) SalvarProgresso(ctx context.Context, perfilID, videoID uint, segundos int) error {
	return c.fazer(ctx, http.MethodPut, fmt.Sprintf("/api/videos/progresso/%d", videoID),
		map[string]interface{}{"fk_perfil": perfilID, "tempo_atual": segundos}, nil)
}

// Favoritar alterna o favorito e devolve o estado resultante.
func (c *Cliente) Favoritar(ctx context.Context, perfilID, videoID uint) (bool, error) {
	var resp struct {
		EstaFavorito bool `json:"esta_favorito"`
	}

	err := c.fazer(ctx, http.MethodPost, fmt.Sprintf("/api/videos/favoritar/%d", videoID),
		map[string]uint{"fk_perfil": perfilID}, &resp)
	if err != nil {
		return false, err
	}
	return resp.EstaFavorito, nil
}

type FiltroFavoritos struct {
	Search  string
	Tag     uint
	Page    int
	PerPage int
}

type Paginacao struct {
	CurrentPage  int   `json:"current_page"`
	PerPage      int   `json:"per_page"`
	Total        int64 `json:"total"`
	TotalPages   int   `json:"total_pages"`
	HasMorePages bool  `json:"has_more_pages"`
}

type ItemFavorito struct {
	Video                json.RawMessage `json:"video"`
	AndamentoVideoPerfil string          `json:"andamento_video_perfil"`
	ProgressoSegundos    int             `json:"progresso_segundos"`
	EFavoritoVideoPerfil bool            `json:"e_favorito_video_perfil"`
}

type PaginaFavoritos struct {
	Data       []ItemFavorito `json:"data"`
	Pagination Paginacao      `json:"pagination"`
}

// Favoritos lista os vídeos favoritados do perfil, paginados.
func (c *Cliente) Favoritos(ctx context.Context, perfilID uint, filtro FiltroFavoritos) (*PaginaFavoritos, error) {
	valores := url.Values{}
	valores.Set("fk_perfil", strconv.FormatUint(uint64(perfilID), 10))
	if filtro.Search != "" {
		valores.Set("search", filtro.Search)
	}
	if filtro.Tag > 0 {
		valores.Set("tag", strconv.FormatUint(uint64(filtro.Tag), 10))
	}
	if filtro.Page > 0 {
		valores.Set("page", strconv.Itoa(filtro.Page))
	}
	if filtro.PerPage > 0 {
		valores.Set("per_page", strconv.Itoa(filtro.PerPage))
	}

	var pagina PaginaFavoritos
	if err := c.fazer(ctx, http.MethodGet, "/api/videos/favoritos?"+valores.Encode(), nil, &pagina); err != nil {
		return nil, err
	}
	return &pagina, nil
}

type ItemAssistindo struct {
	Video                json.RawMessage `json:"video"`
	AndamentoVideoPerfil string          `json:"andamento_video_perfil"`
	ProgressoSegundos    int             `json:"progresso_segundos"`
	UltimoAcesso         time.Time       `json:"ultimo_acesso"`
}

// Assistindo lista os vídeos em andamento, do mais recente para o mais antigo.
func (c *Cliente) Assistindo(ctx context.Context, perfilID uint) ([]ItemAssistindo, error) {
	var resp struct {
		Videos []ItemAssistindo `json:"videos"`
	}

	caminho := fmt.Sprintf("/api/videos/assistindo?fk_perfil=%d", perfilID)
	if err := c.fazer(ctx, http.MethodGet, caminho, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Videos, nil
}

func (c *Cliente) fazer(ctx context.Context, metodo, caminho string, corpo, destino interface{}) error {
	var leitor io.Reader
	if corpo != nil {
		dados, err := json.Marshal(corpo)
		if err != nil {
			return err
		}
		leitor = bytes.NewReader(dados)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.BaseURL+caminho, leitor)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &ErroAPI{Status: resp.StatusCode, Mensagem: envelope.Message}
	}

	if destino == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(destino)
}
