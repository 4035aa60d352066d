package validation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// errSkipChain encerra a cadeia do campo sem registrar falha (campo opcional ausente).
var errSkipChain = errors.New("skip")

var (
	reNumeric = regexp.MustCompile(`^[0-9]+$`)
	reEmail   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// isEmpty trata nil, string em branco e zero numérico como vazios.
func isEmpty(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	default:
		return false
	}
}

// asString devolve o valor como string (números JSON viram a forma decimal).
func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// Required falha quando o campo está ausente ou vazio.
func Required(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		if isEmpty(value) {
			return errors.New(msg)
		}
		return nil
	}
}

// Optional encerra a cadeia sem falha quando o campo está ausente ou vazio.
func Optional() Rule {
	return func(_ context.Context, value interface{}) error {
		if isEmpty(value) {
			return errSkipChain
		}
		return nil
	}
}

// Numeric exige apenas dígitos.
func Numeric(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || !reNumeric.MatchString(strings.TrimSpace(s)) {
			return errors.New(msg)
		}
		return nil
	}
}

// ExactLength exige exatamente n caracteres.
func ExactLength(n int, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || len([]rune(strings.TrimSpace(s))) != n {
			return errors.New(msg)
		}
		return nil
	}
}

// MinLength exige no mínimo n caracteres.
func MinLength(n int, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || len([]rune(strings.TrimSpace(s))) < n {
			return errors.New(msg)
		}
		return nil
	}
}

// MaxLength exige no máximo n caracteres.
func MaxLength(n int, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || len([]rune(strings.TrimSpace(s))) > n {
			return errors.New(msg)
		}
		return nil
	}
}

// Alphanumeric exige letras (com acentos) e dígitos, tolerando os caracteres de ignore.
func Alphanumeric(ignore, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok {
			return errors.New(msg)
		}
		for _, r := range s {
			if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(ignore, r) {
				continue
			}
			return errors.New(msg)
		}
		return nil
	}
}

// Matches exige que o valor case com a expressão regular.
func Matches(re *regexp.Regexp, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || !re.MatchString(s) {
			return errors.New(msg)
		}
		return nil
	}
}

// IsEmail exige um email em formato válido.
func IsEmail(msg string) Rule {
	return Matches(reEmail, msg)
}

// Lowercase exige que o valor não contenha maiúsculas.
func Lowercase(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || s != strings.ToLower(s) {
			return errors.New(msg)
		}
		return nil
	}
}

// In exige que o valor pertença ao conjunto permitido.
func In(allowed []string, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if ok {
			for _, a := range allowed {
				if s == a {
					return nil
				}
			}
		}
		return errors.New(msg)
	}
}

// Equals exige igualdade exata com want.
func Equals(want, msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := asString(value)
		if !ok || s != want {
			return errors.New(msg)
		}
		return nil
	}
}

// IsBool exige um booleano JSON.
func IsBool(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		if _, ok := value.(bool); !ok {
			return errors.New(msg)
		}
		return nil
	}
}

// IsURL exige uma URL http(s) válida.
func IsURL(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return errors.New(msg)
		}
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// IsArray exige um array JSON.
func IsArray(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		if _, ok := value.([]interface{}); !ok {
			return errors.New(msg)
		}
		return nil
	}
}

// FloatElements exige que todos os elementos do array sejam números.
func FloatElements(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		arr, ok := value.([]interface{})
		if !ok {
			return errors.New(msg)
		}
		for _, el := range arr {
			if _, ok := el.(float64); !ok {
				return errors.New(msg)
			}
		}
		return nil
	}
}

// StrongPassword exige minúscula, maiúscula, dígito e símbolo.
func StrongPassword(msg string) Rule {
	return func(_ context.Context, value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return errors.New(msg)
		}
		var lower, upper, digit, symbol bool
		for _, r := range s {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			default:
				symbol = true
			}
		}
		if !lower || !upper || !digit || !symbol {
			return errors.New(msg)
		}
		return nil
	}
}

// Custom executa uma checagem arbitrária, inclusive assíncrona (consulta ao banco).
// Qualquer erro devolvido vira a mensagem de falha do campo.
func Custom(fn func(ctx context.Context, value interface{}) error) Rule {
	return func(ctx context.Context, value interface{}) error {
		return fn(ctx, value)
	}
}
