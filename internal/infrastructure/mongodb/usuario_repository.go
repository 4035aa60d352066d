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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre MongoDB.
type UsuarioRepo struct {
	col *mongo.Collection
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(db *mongo.Database) *UsuarioRepo {
	return &UsuarioRepo{col: db.Collection("usuarios")}
}

// Insert persiste um novo usuário (a senha já chega como hash bcrypt).
func (r *UsuarioRepo) Insert(ctx context.Context, u *entity.Usuario) (repository.InsertResult, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return repository.InsertResult{}, fmt.Errorf("inserir usuário: %w", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return repository.InsertResult{Acknowledged: true, InsertedID: oid.Hex()}, nil
}

// List devolve usuários paginados. A projeção remove a senha ainda no banco,
// então o hash nunca trafega para fora do repositório.
func (r *UsuarioRepo) List(ctx context.Context, limit, skip int64) ([]entity.Usuario, error) {
	opts := options.Find().
		SetLimit(limit).
		SetSkip(skip).
		SetSort(bson.D{{Key: "nome", Value: 1}}).
		SetProjection(bson.M{"senha": 0})

	cursor, err := r.col.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listar usuários: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []entity.Usuario{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decodificar usuários: %w", err)
	}
	return docs, nil
}

// FindByEmail devolve nil quando não há usuário com o email dado (não é erro).
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("obter usuário pelo email: %w", err)
	}
	return &u, nil
}

// CountByEmail conta usuários com o email dado, excluindo excludeID quando não-zero.
func (r *UsuarioRepo) CountByEmail(ctx context.Context, email string, excludeID primitive.ObjectID) (int64, error) {
	filter := bson.M{"email": email}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("contar usuários por email: %w", err)
	}
	return n, nil
}
