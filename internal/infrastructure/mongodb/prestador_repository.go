package mongodb

import (
	"context"
	"fmt"

	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.PrestadorRepository = (*PrestadorRepo)(nil)

// Campos de ordenação aceitos no List. Qualquer outro valor cai no default.
var camposOrdenacao = map[string]bool{
	"razao_social":          true,
	"nome_fantasia":         true,
	"cnpj":                  true,
	"cep":                   true,
	"data_inicio_atividade": true,
}

// PrestadorRepo implementação do porto PrestadorRepository sobre MongoDB.
type PrestadorRepo struct {
	col *mongo.Collection
}

// NewPrestadorRepository constrói o adaptador de persistência para prestadores.
func NewPrestadorRepository(db *mongo.Database) *PrestadorRepo {
	return &PrestadorRepo{col: db.Collection("prestadores")}
}

// List devolve uma página ordenada de prestadores.
func (r *PrestadorRepo) List(ctx context.Context, limit, skip int64, orderBy string) ([]entity.Prestador, error) {
	if !camposOrdenacao[orderBy] {
		orderBy = "razao_social"
	}
	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.D{{Key: orderBy, Value: 1}})

	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar prestadores: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []entity.Prestador{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decodificar prestadores: %w", err)
	}
	return docs, nil
}

// GetByID devolve zero ou um prestador, sempre como slice (contrato da API).
func (r *PrestadorRepo) GetByID(ctx context.Context, id primitive.ObjectID) ([]entity.Prestador, error) {
	docs := []entity.Prestador{}
	var p entity.Prestador
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return docs, nil
		}
		return nil, fmt.Errorf("obter prestador pelo id: %w", err)
	}
	return append(docs, p), nil
}

// SearchByRazao busca por fragmento em razao_social OU nome_fantasia, sem diferenciar
// maiúsculas de minúsculas.
func (r *PrestadorRepo) SearchByRazao(ctx context.Context, filtro string) ([]entity.Prestador, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"razao_social": bson.M{"$regex": filtro, "$options": "i"}},
		bson.M{"nome_fantasia": bson.M{"$regex": filtro, "$options": "i"}},
	}}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("buscar prestador pela razão social: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []entity.Prestador{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decodificar prestadores: %w", err)
	}
	return docs, nil
}

// Insert persiste um novo prestador já validado.
func (r *PrestadorRepo) Insert(ctx context.Context, p *entity.Prestador) (repository.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return repository.InsertResult{}, fmt.Errorf("inserir prestador: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return repository.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

// Update substitui o documento inteiro pelo id. O replacement não carrega _id
// (ID zero + omitempty), então o id original é preservado.
func (r *PrestadorRepo) Update(ctx context.Context, id primitive.ObjectID, p *entity.Prestador) (repository.UpdateResult, error) {
	doc := *p
	doc.ID = primitive.NilObjectID
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("alterar prestador: %w", err)
	}
	return repository.UpdateResult{Acknowledged: true, ModifiedCount: res.ModifiedCount}, nil
}

// Delete exclui o prestador pelo id.
func (r *PrestadorRepo) Delete(ctx context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("excluir prestador: %w", err)
	}
	return repository.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// CountByCNPJ conta prestadores com o CNPJ dado. Quando excludeID não é zero, o
// documento com esse id fica fora da contagem (unicidade excluindo o próprio no update).
func (r *PrestadorRepo) CountByCNPJ(ctx context.Context, cnpj string, excludeID primitive.ObjectID) (int64, error) {
	filter := bson.M{"cnpj": cnpj}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("contar prestadores por CNPJ: %w", err)
	}
	return n, nil
}
