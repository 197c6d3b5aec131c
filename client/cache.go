package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CacheLocal guarda o último progresso conhecido em disco, como
// fallback quando o servidor está fora do ar ou a resposta ainda não
// chegou. O arquivo é um JSON simples de "perfil:video" -> segundos.
type CacheLocal struct {
	caminho string

	mu      sync.Mutex
	valores map[string]int
}

func NovoCacheLocal(caminho string) (*CacheLocal, error) {
	cache := &CacheLocal{
		caminho: caminho,
		valores: make(map[string]int),
	}

	dados, err := os.ReadFile(caminho)
	if os.IsNotExist(err) {
		return cache, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(dados, &cache.valores); err != nil {
		// Cache corrompido vale menos que cache vazio.
		cache.valores = make(map[string]int)
	}
	return cache, nil
}

func chaveCache(perfilID, videoID uint) string {
	return fmt.Sprintf("%d:%d", perfilID, videoID)
}

// Gravar persiste a posição localmente.
func (c *CacheLocal) Gravar(perfilID, videoID uint, segundos int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.valores[chaveCache(perfilID, videoID)] = segundos
	return c.salvar()
}

// Ler devolve a posição salva e se ela existe.
func (c *CacheLocal) Ler(perfilID, videoID uint) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	segundos, ok := c.valores[chaveCache(perfilID, videoID)]
	return segundos, ok
}

// Remover apaga a entrada, usado quando o vídeo chega ao fim.
func (c *CacheLocal) Remover(perfilID, videoID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.valores, chaveCache(perfilID, videoID))
	return c.salvar()
}

func (c *CacheLocal) salvar() error {
	dados, err := json.Marshal(c.valores)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.caminho), 0o755); err != nil {
		return err
	}
	return os.WriteFile(c.caminho, dados, 0o644)
}

// PosicaoInicial decide de onde retomar a reprodução: o valor do
// servidor vence quando é maior que zero, senão cai no cache local.
func PosicaoInicial(servidor int, cache *CacheLocal, perfilID, videoID uint) int {
	if servidor > 0 {
		return servidor
	}
	if cache != nil {
		if segundos, ok := cache.Ler(perfilID, videoID); ok {
			return segundos
		}
	}
	return 0
}
