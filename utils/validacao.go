package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapaErros transforma um erro de binding do gin no mapa campo -> mensagem
// que o front espera dentro de "errors" (resposta 422).
func MapaErros(err error) map[string]string {
	erros := map[string]string{}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			campo := strings.ToLower(fe.Field())
			switch fe.Tag() {
			case "required":
				erros[campo] = "campo obrigatório"
			case "min":
				erros[campo] = fmt.Sprintf("valor mínimo: %s", fe.Param())
			case "max":
				erros[campo] = fmt.Sprintf("valor máximo: %s", fe.Param())
			case "email":
				erros[campo] = "e-mail inválido"
			default:
				erros[campo] = fmt.Sprintf("falha na regra %q", fe.Tag())
			}
		}
		return erros
	}

	erros["body"] = err.Error()
	return erros
}
