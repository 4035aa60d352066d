package repository

import (
	"context"

	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrestadorRepository define o porto de persistência para Prestador (DIP).
type PrestadorRepository interface {
	// List devolve uma página ordenada de prestadores.
	List(ctx context.Context, limit, skip int64, orderBy string) ([]entity.Prestador, error)
	// GetByID devolve zero ou um prestador.
	GetByID(ctx context.Context, id primitive.ObjectID) ([]entity.Prestador, error)
	// SearchByRazao busca por fragmento (case-insensitive) em razao_social OU nome_fantasia.
	SearchByRazao(ctx context.Context, filtro string) ([]entity.Prestador, error)
	Insert(ctx context.Context, p *entity.Prestador) (InsertResult, error)
	// Update substitui o documento inteiro pelo id.
	Update(ctx context.Context, id primitive.ObjectID, p *entity.Prestador) (UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (DeleteResult, error)
	// CountByCNPJ conta prestadores com o CNPJ dado, excluindo excludeID quando não-zero.
	// Usado pela validação de unicidade no insert e no update.
	CountByCNPJ(ctx context.Context, cnpj string, excludeID primitive.ObjectID) (int64, error)
}
