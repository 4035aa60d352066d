package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// Endereco endereço do prestador de serviço.
type Endereco struct {
	Logradouro string `bson:"logradouro" json:"logradouro"`
	Numero     string `bson:"numero,omitempty" json:"numero,omitempty"`
	Bairro     string `bson:"bairro" json:"bairro"`
	Cidade     string `bson:"cidade,omitempty" json:"cidade,omitempty"`
	UF         string `bson:"uf" json:"uf"`
}

// Localizacao geolocalização no formato GeoJSON (type + par de coordenadas).
type Localizacao struct {
	Type        string    `bson:"type" json:"type"` // sempre "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Prestador representa um prestador de serviço cadastrado.
// O CNPJ é único na coleção, exceto pelo próprio documento durante o update.
type Prestador struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CNPJ                string             `bson:"cnpj" json:"cnpj"`
	RazaoSocial         string             `bson:"razao_social" json:"razao_social"`
	NomeFantasia        string             `bson:"nome_fantasia,omitempty" json:"nome_fantasia,omitempty"`
	CEP                 string             `bson:"cep" json:"cep"`
	Endereco            Endereco           `bson:"endereco" json:"endereco"`
	CnaeFiscal          int                `bson:"cnae_fiscal" json:"cnae_fiscal"`
	DataInicioAtividade string             `bson:"data_inicio_atividade" json:"data_inicio_atividade"` // yyyy-mm-dd
	Localizacao         Localizacao        `bson:"localizacao" json:"localizacao"`
}
