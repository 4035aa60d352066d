package usecase

import (
	"context"

	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/repository"
)

// UsuarioUseCase consultas sobre usuários (o cadastro e o login ficam em auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso de usuários.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devolve usuários paginados, sempre sem o campo senha.
func (uc *UsuarioUseCase) List(limit, skip int64) ([]entity.Usuario, error) {
	return uc.repo.List(context.Background(), limit, skip)
}
