package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNaoAutenticado = errors.New("não autenticado")
	ErrProibido       = errors.New("ação não permitida para este perfil")
	ErrNaoEncontrado  = errors.New("recurso não encontrado")
	ErrValidacao      = errors.New("erro de validação")
)

// ErroAPI carrega o status e a mensagem que o backend devolveu.
type ErroAPI struct {
	Status   int
	Mensagem string
}

func (e *ErroAPI) Error() string {
	return fmt.Sprintf("api respondeu %d: %s", e.Status, e.Mensagem)
}

// Unwrap mapeia o status para a taxonomia de erros do front: 401 vira
// redirect de login, 403 vira toast sem mudança de estado, e por aí vai.
func (e *ErroAPI) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrNaoAutenticado
	case http.StatusForbidden:
		return ErrProibido
	case http.StatusNotFound:
		return ErrNaoEncontrado
	case http.StatusUnprocessableEntity:
		return ErrValidacao
	default:
		return nil
	}
}
