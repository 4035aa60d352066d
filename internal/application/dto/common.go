package dto

import "github.com/fatec-votorantim/api-prestadores/internal/application/validation"

// ErrorsResponse corpo de erro HTTP: lista ordenada de falhas no formato
// {value, msg, param, location}. O primeiro elemento é o erro principal.
type ErrorsResponse struct {
	Errors []validation.Error `json:"errors"`
}

// SingleError monta um ErrorsResponse com uma única falha.
func SingleError(value interface{}, msg, param string) ErrorsResponse {
	return ErrorsResponse{Errors: []validation.Error{{
		Value:    value,
		Msg:      msg,
		Param:    param,
		Location: "body",
	}}}
}
