package client

import (
	"context"
	"sync"
	"time"
)

// GravadorProgresso é o destino das gravações; *Cliente satisfaz a
// interface, e os testes trocam por um fake.
type GravadorProgresso interface {
	SalvarProgresso(ctx context.Context, perfilID, videoID uint, segundos int) error
}

type chaveSessao struct {
	Perfil uint
	Video  uint
}

type envioPendente struct {
	timer    *time.Timer
	segundos int
}

// ReporterProgresso recebe a posição do player a cada tick e só grava no
// servidor depois que as atualizações param de chegar (trailing debounce).
// Pausa e fechamento forçam a gravação imediata e cancelam o timer
// pendente, então a gravação forçada é sempre a última a chegar.
type ReporterProgresso struct {
	gravador GravadorProgresso
	espera   time.Duration

	mu        sync.Mutex
	pendentes map[chaveSessao]*envioPendente
}

const esperaPadrao = 5 * time.Second

func NovoReporterProgresso(gravador GravadorProgresso, espera time.Duration) *ReporterProgresso {
	if espera <= 0 {
		espera = esperaPadrao
	}
	return &ReporterProgresso{
		gravador:  gravador,
		espera:    espera,
		pendentes: make(map[chaveSessao]*envioPendente),
	}
}

// Atualizar registra a posição atual e reinicia a janela de debounce da
// sessão. Só a última posição de uma rajada chega ao servidor.
func (r *ReporterProgresso) Atualizar(perfilID, videoID uint, segundos int) {
	chave := chaveSessao{Perfil: perfilID, Video: videoID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pendente, ok := r.pendentes[chave]; ok {
		pendente.segundos = segundos
		pendente.timer.Reset(r.espera)
		return
	}

	pendente := &envioPendente{segundos: segundos}
	pendente.timer = time.AfterFunc(r.espera, func() {
		r.gravarExpirado(chave)
	})
	r.pendentes[chave] = pendente
}

// gravarExpirado roda no goroutine do timer quando a janela fecha sem
// novas atualizações.
func (r *ReporterProgresso) gravarExpirado(chave chaveSessao) {
	r.mu.Lock()
	pendente, ok := r.pendentes[chave]
	if !ok {
		// Um Flush chegou primeiro e já gravou.
		r.mu.Unlock()
		return
	}
	delete(r.pendentes, chave)
	segundos := pendente.segundos
	r.mu.Unlock()

	_ = r.gravador.SalvarProgresso(context.Background(), chave.Perfil, chave.Video, segundos)
}

// Flush grava imediatamente a posição pendente da sessão, cancelando o
// timer. Chamado em pausa e no fechamento do player.
func (r *ReporterProgresso) Flush(ctx context.Context, perfilID, videoID uint) error {
	chave := chaveSessao{Perfil: perfilID, Video: videoID}

	r.mu.Lock()
	pendente, ok := r.pendentes[chave]
	if ok {
		pendente.timer.Stop()
		delete(r.pendentes, chave)
	}
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return r.gravador.SalvarProgresso(ctx, perfilID, videoID, pendente.segundos)
}

// FlushComPosicao grava a posição informada na hora, descartando o que
// estiver pendente. É o caminho da pausa, que conhece a posição exata
// do player no momento do clique.
func (r *ReporterProgresso) FlushComPosicao(ctx context.Context, perfilID, videoID uint, segundos int) error {
	chave := chaveSessao{Perfil: perfilID, Video: videoID}

	r.mu.Lock()
	if pendente, ok := r.pendentes[chave]; ok {
		pendente.timer.Stop()
		delete(r.pendentes, chave)
	}
	r.mu.Unlock()

	return r.gravador.SalvarProgresso(ctx, perfilID, videoID, segundos)
}

// Fechar grava tudo o que estiver pendente. Chamado quando o app encerra.
func (r *ReporterProgresso) Fechar(ctx context.Context) error {
	r.mu.Lock()
	restantes := make(map[chaveSessao]int, len(r.pendentes))
	for chave, pendente := range r.pendentes {
		pendente.timer.Stop()
		restantes[chave] = pendente.segundos
	}
	r.pendentes = make(map[chaveSessao]*envioPendente)
	r.mu.Unlock()

	var ultimoErro error
	for chave, segundos := range restantes {
		if err := r.gravador.SalvarProgresso(ctx, chave.Perfil, chave.Video, segundos); err != nil {
			ultimoErro = err
		}
	}
	return ultimoErro
}
