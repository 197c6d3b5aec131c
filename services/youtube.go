package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"time"
)

// BaseURLYoutube pode ser trocado nos testes por um servidor fake.
var BaseURLYoutube = "https://www.googleapis.com/youtube/v3"

var ErrLinkInvalido = errors.New("link do YouTube inválido")

var clienteHTTP = &http.Client{Timeout: 30 * time.Second}

// Captura o ID de URLs completas, encurtadas (youtu.be) ou embed
var reIDYoutube = regexp.MustCompile(`(?i)(?:youtube(?:-nocookie)?\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/ ]{11})`)

type DadosYoutube struct {
	TituloVideo         string   `json:"titulo_video"`
	DescricaoVideo      string   `json:"descricao_video"`
	ThumbnailVideo      string   `json:"thumbnail_video"`
	DataPublicacaoVideo string   `json:"data_publicacao_video"`
	DuracaoVideo        string   `json:"duracao_video"`
	VisualizacoesVideo  int      `json:"visualizacoes_video"`
	NomeCanalVideo      string   `json:"nome_canal_video"`
	FotoCanalVideo      string   `json:"foto_canal_video"`
	TagsSugeridas       []string `json:"tags_sugeridas"`
}

// ExtrairIDYoutube tira o ID de 11 caracteres de qualquer formato de link.
func ExtrairIDYoutube(link string) string {
	m := reIDYoutube.FindStringSubmatch(link)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

type respostaVideos struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelID    string `json:"channelId"`
			ChannelTitle string `json:"channelTitle"`
			PublishedAt  string `json:"publishedAt"`
			Thumbnails   struct {
				High struct {
					URL string `json:"url"`
				} `json:"high"`
			} `json:"thumbnails"`
			Tags []string `json:"tags"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type respostaCanais struct {
	Items []struct {
		Snippet struct {
			Thumbnails struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

// BuscarDadosYoutube consulta a API do YouTube e devolve os metadados já no
// formato que o formulário do admin espera.
func BuscarDadosYoutube(ctx context.Context, link string) (*DadosYoutube, error) {
	videoID := ExtrairIDYoutube(link)
	if videoID == "" {
		return nil, ErrLinkInvalido
	}

	apiKey := os.Getenv("YOUTUBE_API_KEY")

	// 1. Detalhes do vídeo
	var video respostaVideos
	err := buscarJSON(ctx, fmt.Sprintf("%s/videos?part=%s&id=%s&key=%s",
		BaseURLYoutube, url.QueryEscape("snippet,contentDetails,statistics"), videoID, apiKey), &video)
	if err != nil {
		return nil, err
	}
	if len(video.Items) == 0 {
		return nil, errors.New("vídeo não encontrado no YouTube")
	}

	item := video.Items[0]

	// 2. Detalhes do canal (para pegar a foto)
	var canal respostaCanais
	fotoCanal := ""
	err = buscarJSON(ctx, fmt.Sprintf("%s/channels?part=snippet&id=%s&key=%s",
		BaseURLYoutube, item.Snippet.ChannelID, apiKey), &canal)
	if err == nil && len(canal.Items) > 0 {
		fotoCanal = canal.Items[0].Snippet.Thumbnails.Default.URL
	}

	visualizacoes, _ := strconv.Atoi(item.Statistics.ViewCount)

	dataPublicacao := item.Snippet.PublishedAt
	if t, err := time.Parse(time.RFC3339, dataPublicacao); err == nil {
		dataPublicacao = t.Format("2006-01-02")
	}

	return &DadosYoutube{
		TituloVideo:         item.Snippet.Title,
		DescricaoVideo:      item.Snippet.Description,
		ThumbnailVideo:      item.Snippet.Thumbnails.High.URL,
		DataPublicacaoVideo: dataPublicacao,
		DuracaoVideo:        DuracaoISOParaHMS(item.ContentDetails.Duration),
		VisualizacoesVideo:  visualizacoes,
		NomeCanalVideo:      item.Snippet.ChannelTitle,
		FotoCanalVideo:      fotoCanal,
		TagsSugeridas:       item.Snippet.Tags,
	}, nil
}

// VisualizacoesAtuais busca só o contador de views de um vídeo, usado pelo
// atualizador periódico.
func VisualizacoesAtuais(ctx context.Context, videoID string) (int, error) {
	apiKey := os.Getenv("YOUTUBE_API_KEY")

	var resp respostaVideos
	err := buscarJSON(ctx, fmt.Sprintf("%s/videos?part=statistics&id=%s&key=%s",
		BaseURLYoutube, videoID, apiKey), &resp)
	if err != nil {
		return 0, err
	}
	if len(resp.Items) == 0 {
		return 0, errors.New("vídeo não encontrado no YouTube")
	}

	return strconv.Atoi(resp.Items[0].Statistics.ViewCount)
}

func buscarJSON(ctx context.Context, endpoint string, destino interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := clienteHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		corpo, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("o Google recusou a conexão, status %d: %s", resp.StatusCode, string(corpo))
	}

	return json.NewDecoder(resp.Body).Decode(destino)
}

var reDuracaoISO = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// DuracaoISOParaHMS converte a duração ISO 8601 do YouTube (PT1H2M3S) para
// HH:MM:SS. Entrada fora do formato vira 00:00:00, igual ao comportamento
// do formulário antigo.
func DuracaoISOParaHMS(iso string) string {
	m := reDuracaoISO.FindStringSubmatch(iso)
	if m == nil {
		return "00:00:00"
	}

	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	s, _ := strconv.Atoi(m[3])

	return fmt.Sprintf("%02d:%02d:%02d", h, min, s)
}
