package repository

// Resultados de escrita devolvidos pelo armazenamento. O flag Acknowledged indica
// que o servidor confirmou a operação; não é garantia de correção por si só.

// InsertResult resultado de uma inserção.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult resultado de uma alteração. ModifiedCount == 0 significa
// "sem mudança" ou "não encontrado"; cabe ao chamador distinguir.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult resultado de uma exclusão.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
