package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SegundosParaHMS converte segundos para o formato HH:MM:SS usado na coluna
// andamento_video_perfil. O campo de horas não tem teto (passa de 99 se
// precisar) e valores negativos viram 00:00:00.
func SegundosParaHMS(total int) string {
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// HMSParaSegundos converte HH:MM:SS para segundos inteiros.
func HMSParaSegundos(valor string) (int, error) {
	partes := strings.Split(valor, ":")
	if len(partes) != 3 {
		return 0, fmt.Errorf("duração inválida: %q", valor)
	}

	h, err := strconv.Atoi(partes[0])
	if err != nil || h < 0 {
		return 0, fmt.Errorf("duração inválida: %q", valor)
	}
	m, err := strconv.Atoi(partes[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("duração inválida: %q", valor)
	}
	s, err := strconv.Atoi(partes[2])
	if err != nil || s < 0 || s > 59 {
		return 0, fmt.Errorf("duração inválida: %q", valor)
	}

	return h*3600 + m*60 + s, nil
}

// PercentualAssistido calcula quanto do vídeo já foi visto, de 0 a 100.
// Só serve para a barra de progresso do front — nunca é persistido.
func PercentualAssistido(segundos int, duracao string) float64 {
	total, err := HMSParaSegundos(duracao)
	if err != nil || total <= 0 {
		return 0
	}

	p := float64(segundos) / float64(total) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Tipos de perfil (mesmos IDs do seeder).
const (
	TipoInfantil uint = 1
	TipoJuvenil  uint = 2
	TipoAdulto   uint = 3
)

// CalcularTipoPerfil deriva o tipo de perfil da data de nascimento:
// >= 18 anos adulto, >= 12 juvenil, abaixo disso infantil.
func CalcularTipoPerfil(nascimento time.Time) uint {
	idade := IdadeEmAnos(nascimento, time.Now())

	switch {
	case idade >= 18:
		return TipoAdulto
	case idade >= 12:
		return TipoJuvenil
	default:
		return TipoInfantil
	}
}

// IdadeEmAnos calcula a idade completa em anos na data de referência.
func IdadeEmAnos(nascimento, referencia time.Time) int {
	idade := referencia.Year() - nascimento.Year()
	aniversario := time.Date(referencia.Year(), nascimento.Month(), nascimento.Day(), 0, 0, 0, 0, referencia.Location())
	if referencia.Before(aniversario) {
		idade--
	}
	return idade
}

// NivelClassificacao mapeia a classificação etária para um nível numérico.
// "L" (livre) vale 0; qualquer valor não numérico cai no teto 18.
func NivelClassificacao(classificacao string) int {
	if classificacao == "L" {
		return 0
	}
	if n, err := strconv.Atoi(classificacao); err == nil {
		return n
	}
	return 18
}

// ClassificacaoMaxima devolve o teto de classificação por tipo de perfil:
// infantil 0, juvenil 14, adulto 18.
func ClassificacaoMaxima(tipoPerfil uint) int {
	switch tipoPerfil {
	case TipoInfantil:
		return 0
	case TipoJuvenil:
		return 14
	default:
		return 18
	}
}

// ClassificacoesPermitidas lista as classificações que um tipo de perfil pode
// assistir, para usar em cláusulas IN. Cobre a escala brasileira usada no
// catálogo (L, 10, 12, 14, 16, 18).
func ClassificacoesPermitidas(tipoPerfil uint) []string {
	escala := []string{"L", "10", "12", "14", "16", "18"}
	teto := ClassificacaoMaxima(tipoPerfil)

	permitidas := make([]string, 0, len(escala))
	for _, c := range escala {
		if NivelClassificacao(c) <= teto {
			permitidas = append(permitidas, c)
		}
	}
	return permitidas
}
