// Package validation implementa a validação declarativa de payloads: cada campo
// recebe uma cadeia ordenada de regras (síncronas ou assíncronas, como a checagem
// de unicidade no banco) e o runner coleta as falhas em uma lista estruturada.
package validation

import (
	"context"
	"strings"
)

// Error registro de falha de validação devolvido ao cliente.
type Error struct {
	Value    interface{} `json:"value"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Location string      `json:"location"`
}

// Rule regra de validação sobre o valor de um campo. Devolve nil quando passa;
// o texto do erro vira a mensagem exibida ao cliente.
type Rule func(ctx context.Context, value interface{}) error

type campo struct {
	param string
	value interface{}
	rules []Rule
}

// Validator acumula cadeias de regras por campo, na ordem de declaração.
type Validator struct {
	campos []campo
}

// New cria um Validator vazio.
func New() *Validator {
	return &Validator{}
}

// Field adiciona uma cadeia de regras para um campo. O param aceita caminho com
// ponto (ex.: "endereco.logradouro") apenas como rótulo; o valor já chega extraído.
func (v *Validator) Field(param string, value interface{}, rules ...Rule) *Validator {
	v.campos = append(v.campos, campo{param: param, value: value, rules: rules})
	return v
}

// Run avalia as cadeias na ordem declarada. Dentro de um campo, a primeira regra
// que falha encerra a cadeia daquele campo (as demais não rodam); os outros campos
// continuam sendo avaliados. Devolve a lista ordenada de falhas (vazia = passou).
func (v *Validator) Run(ctx context.Context) []Error {
	var errs []Error
	for _, c := range v.campos {
		for _, rule := range c.rules {
			err := rule(ctx, c.value)
			if err == errSkipChain {
				break
			}
			if err != nil {
				errs = append(errs, Error{
					Value:    c.value,
					Msg:      err.Error(),
					Param:    c.param,
					Location: "body",
				})
				break
			}
		}
	}
	return errs
}

// Lookup extrai um valor de um body decodificado seguindo um caminho com pontos
// (ex.: "localizacao.coordinates"). Devolve nil quando o caminho não existe.
func Lookup(body map[string]interface{}, path string) interface{} {
	parts := strings.Split(path, ".")
	var cur interface{} = body
	for _, p := range parts {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur = m[p]
	}
	return cur
}
