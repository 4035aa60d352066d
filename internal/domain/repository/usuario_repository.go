package repository

import (
	"context"

	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	Insert(ctx context.Context, u *entity.Usuario) (InsertResult, error)
	// List devolve usuários paginados SEM o campo senha (projeção no banco).
	List(ctx context.Context, limit, skip int64) ([]entity.Usuario, error)
	// FindByEmail devolve nil quando não há usuário com o email dado.
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	// CountByEmail conta usuários com o email dado, excluindo excludeID quando não-zero.
	CountByEmail(ctx context.Context, email string, excludeID primitive.ObjectID) (int64, error)
}
