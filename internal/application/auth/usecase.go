package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatec-votorantim/api-prestadores/internal/application/dto"
	"github.com/fatec-votorantim/api-prestadores/internal/application/validation"
	"github.com/fatec-votorantim/api-prestadores/internal/domain"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/repository"
	"github.com/fatec-votorantim/api-prestadores/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração do access token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// validaUsuario cadeias de validação do cadastro de usuário. A unicidade do email
// é checada no banco, excluindo o próprio documento quando houver _id (update).
func (uc *AuthUseCase) validaUsuario(ctx context.Context, body map[string]interface{}, excludeID primitive.ObjectID) []validation.Error {
	v := validation.New()

	v.Field("nome", validation.Lookup(body, "nome"),
		validation.Required("É obrigatório informar o nome."),
		validation.MinLength(3, "O nome deve conter no mínimo 3 caracteres."),
		validation.MaxLength(100, "O nome deve conter no máximo 100 caracteres."),
	)

	v.Field("email", validation.Lookup(body, "email"),
		validation.Required("É obrigatório informar o email."),
		validation.Lowercase("O email não pode conter caracteres maiúsculos."),
		validation.IsEmail("Informe um email válido."),
		validation.Custom(func(ctx context.Context, value interface{}) error {
			email, _ := value.(string)
			n, err := uc.usuarioRepo.CountByEmail(ctx, email, excludeID)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("O email informado já está em uso.")
			}
			return nil
		}),
	)

	v.Field("senha", validation.Lookup(body, "senha"),
		validation.Required("É obrigatório informar a senha."),
		validation.MinLength(6, "A senha deve conter no mínimo 6 caracteres."),
		validation.StrongPassword("A senha informada não é segura. Informe no mínimo 1 letra maiúscula, 1 minúscula, 1 número e 1 caractere especial."),
	)

	v.Field("ativo", validation.Lookup(body, "ativo"),
		validation.Optional(),
		validation.IsBool("Informe apenas true ou false para o campo ativo."),
	)

	v.Field("tipo", validation.Lookup(body, "tipo"),
		validation.Optional(),
		validation.In([]string{entity.TipoAdmin, entity.TipoCliente}, "Informe apenas Admin ou Cliente para o tipo."),
	)

	v.Field("avatar", validation.Lookup(body, "avatar"),
		validation.Optional(),
		validation.IsURL("A URL do avatar é inválida."),
	)

	return scrubSenha(v.Run(ctx))
}

// scrubSenha remove o valor do campo senha dos erros: a senha em texto plano
// não volta na resposta nem vai para log.
func scrubSenha(errs []validation.Error) []validation.Error {
	for i := range errs {
		if errs[i].Param == "senha" {
			errs[i].Value = nil
		}
	}
	return errs
}

// validaLogin valida apenas o formato de email e senha (checagens síncronas).
func validaLogin(ctx context.Context, in dto.LoginRequest) []validation.Error {
	v := validation.New()
	v.Field("email", in.Email,
		validation.Required("É obrigatório informar o email para o login."),
		validation.IsEmail("Informe um email válido para o login."),
	)
	v.Field("senha", in.Senha,
		validation.Required("É obrigatório informar a senha para o login."),
	)
	return scrubSenha(v.Run(ctx))
}

// avatarDefault monta a URL de avatar derivada do nome.
func avatarDefault(nome string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=F00&color=FFF",
		strings.ReplaceAll(nome, " ", "+"))
}

// Register valida o cadastro, aplica os defaults (ativo, tipo, avatar), gera o hash
// bcrypt da senha e persiste. A senha em texto plano não é logada nem devolvida.
func (uc *AuthUseCase) Register(body map[string]interface{}, in dto.UsuarioRequest) (repository.InsertResult, []validation.Error, error) {
	ctx := context.Background()

	if errs := uc.validaUsuario(ctx, body, primitive.NilObjectID); len(errs) > 0 {
		return repository.InsertResult{}, errs, nil
	}

	// genSalt embutido no GenerateFromPassword: duas senhas iguais geram hashes diferentes
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return repository.InsertResult{}, nil, fmt.Errorf("gerar hash da senha: %w", err)
	}

	ativo := true
	if in.Ativo != nil {
		ativo = *in.Ativo
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoCliente
	}
	avatar := in.Avatar
	if avatar == "" {
		avatar = avatarDefault(in.Nome)
	}

	u := &entity.Usuario{
		Nome:   in.Nome,
		Email:  in.Email,
		Senha:  string(hash),
		Ativo:  ativo,
		Tipo:   tipo,
		Avatar: avatar,
	}
	res, err := uc.usuarioRepo.Insert(ctx, u)
	if err != nil {
		return repository.InsertResult{}, nil, err
	}
	return res, nil, nil
}

// Login verifica email/senha e devolve o access token JWT.
// Email não cadastrado -> ErrUsuarioNaoEncontrado (404 nomeando o email);
// senha errada -> ErrSenhaIncorreta (403, mensagem genérica, sem dica de qual lado falhou).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (dto.LoginResponse, []validation.Error, error) {
	ctx := context.Background()

	if errs := validaLogin(ctx, in); len(errs) > 0 {
		return dto.LoginResponse{}, errs, nil
	}

	usuario, err := uc.usuarioRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return dto.LoginResponse{}, nil, err
	}
	if usuario == nil {
		return dto.LoginResponse{}, nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Senha), []byte(in.Senha)); err != nil {
		return dto.LoginResponse{}, nil, domain.ErrSenhaIncorreta
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID.Hex(), uc.jwtCfg.ExpMinutes)
	if err != nil {
		return dto.LoginResponse{}, nil, fmt.Errorf("assinar token: %w", err)
	}
	return dto.LoginResponse{AccessToken: token}, nil, nil
}
