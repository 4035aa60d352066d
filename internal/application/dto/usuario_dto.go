package dto

// UsuarioRequest payload de cadastro de usuário. A senha trafega em texto plano
// apenas aqui; vira hash bcrypt antes de chegar ao domínio.
type UsuarioRequest struct {
	Nome   string `json:"nome"`
	Email  string `json:"email"`
	Senha  string `json:"senha"`
	Ativo  *bool  `json:"ativo"`  // default true quando ausente
	Tipo   string `json:"tipo"`   // Admin ou Cliente; default Cliente
	Avatar string `json:"avatar"` // default derivado do nome quando ausente
}

// LoginRequest payload de autenticação.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse token de acesso devolvido no login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
