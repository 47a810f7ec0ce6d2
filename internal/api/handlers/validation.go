package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/prefeitura-rio/app-busca-processos/internal/search/query"
)

// campoPattern aceita caminhos de campo do índice, como "classe.nome"
var campoPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*(\.[A-Za-z][A-Za-z0-9_]*)*$`)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations registra as regras "cnj" e "campo" no validador do gin
func RegisterValidations() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("validador do gin não é go-playground/validator")
			return
		}
		if err := v.RegisterValidation("cnj", validateCNJ); err != nil {
			registerErr = fmt.Errorf("erro ao registrar validação cnj: %w", err)
			return
		}
		if err := v.RegisterValidation("campo", validateCampo); err != nil {
			registerErr = fmt.Errorf("erro ao registrar validação campo: %w", err)
		}
	})
	return registerErr
}

func validateCNJ(fl validator.FieldLevel) bool {
	return query.IsIdentifier(fl.Field().String())
}

func validateCampo(fl validator.FieldLevel) bool {
	return campoPattern.MatchString(fl.Field().String())
}

// validationDetails traduz os erros de validação por campo
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return details
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "max":
		return fmt.Sprintf("tamanho máximo %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("valores aceitos: %s", fe.Param())
	case "cnj":
		return "número CNJ inválido, formato NNNNNNN-DD.AAAA.J.TR.OOOO"
	case "campo":
		return "nome de campo inválido"
	}
	return fmt.Sprintf("falhou na regra %s", fe.Tag())
}
