package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tipos válidos para Usuario.
const (
	TipoAdmin   = "Admin"
	TipoCliente = "Cliente"
)

// Usuario representa um usuário do sistema.
// Senha guarda apenas o hash bcrypt e nunca é serializada em respostas JSON.
type Usuario struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Nome   string             `bson:"nome" json:"nome"`
	Email  string             `bson:"email" json:"email"` // minúsculo, único
	Senha  string             `bson:"senha,omitempty" json:"-"`
	Ativo  bool               `bson:"ativo" json:"ativo"`
	Tipo   string             `bson:"tipo" json:"tipo"` // Admin ou Cliente
	Avatar string             `bson:"avatar" json:"avatar"`
}
