package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não cadastrado")
	ErrSenhaIncorreta       = errors.New("senha incorreta")
	ErrIDInvalido           = errors.New("id inválido")
	ErrNaoAutorizado        = errors.New("não autorizado")
)
