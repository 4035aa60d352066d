package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/fatec-votorantim/api-prestadores/internal/application/validation"
	"github.com/fatec-votorantim/api-prestadores/internal/domain"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var reDataISO = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// PrestadorUseCase casos de uso de Prestador: consultas e CRUD validado.
type PrestadorUseCase struct {
	repo repository.PrestadorRepository
}

// NewPrestadorUseCase constrói o caso de uso de prestadores.
func NewPrestadorUseCase(repo repository.PrestadorRepository) *PrestadorUseCase {
	return &PrestadorUseCase{repo: repo}
}

// validaPrestador cadeias de validação do prestador, na ordem de declaração.
// No update, excludeID tira o próprio documento da checagem de unicidade do CNPJ;
// sem isso todo update colidiria com o valor já gravado.
func (uc *PrestadorUseCase) validaPrestador(ctx context.Context, body map[string]interface{}, excludeID primitive.ObjectID) []validation.Error {
	v := validation.New()

	v.Field("cnpj", validation.Lookup(body, "cnpj"),
		validation.Required("É obrigatório informar o CNPJ."),
		validation.Numeric("O CNPJ deve ter apenas números."),
		validation.ExactLength(14, "O CNPJ deve ter 14 números."),
		validation.Custom(func(ctx context.Context, value interface{}) error {
			cnpj, _ := value.(string)
			n, err := uc.repo.CountByCNPJ(ctx, cnpj, excludeID)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("O CNPJ informado já está cadastrado.")
			}
			return nil
		}),
	)

	v.Field("razao_social", validation.Lookup(body, "razao_social"),
		validation.Required("A razão social é um campo obrigatório."),
		validation.MinLength(5, "A razão é muito curta (mínimo de 5 caracteres)."),
		validation.MaxLength(200, "A razão é muito longa (máximo de 200 caracteres)."),
		validation.Alphanumeric("/.- ;:*", "A razão social não deve conter caracteres especiais."),
	)

	v.Field("cep", validation.Lookup(body, "cep"),
		validation.Required("É obrigatório informar o CEP"),
		validation.Numeric("O CEP deve conter apenas números"),
		validation.ExactLength(8, "O CEP informado é inválido"),
	)

	v.Field("endereco.logradouro", validation.Lookup(body, "endereco.logradouro"),
		validation.Required("O preenchimento do logradouro é obrigatório"),
		validation.MinLength(5, "O campo de logradouro deve conter no mínimo 5 caracteres."),
		validation.MaxLength(200, "O campo de logradouro deve conter no máximo 200 caracteres."),
	)

	v.Field("endereco.bairro", validation.Lookup(body, "endereco.bairro"),
		validation.Required("O preenchimento do campo bairro é obrigatório."),
	)

	v.Field("endereco.uf", validation.Lookup(body, "endereco.uf"),
		validation.Required("O preenchimento do campo uf é obrigatório."),
	)

	v.Field("cnae_fiscal", validation.Lookup(body, "cnae_fiscal"),
		validation.Required("O preenchimento do campo CNAE é obrigatório."),
	)

	v.Field("nome_fantasia", validation.Lookup(body, "nome_fantasia"),
		validation.Optional(),
	)

	v.Field("data_inicio_atividade", validation.Lookup(body, "data_inicio_atividade"),
		validation.Matches(reDataISO, "O formato de data é inválido Informe no formato yyyy-mm-dd"),
	)

	v.Field("localizacao.type", validation.Lookup(body, "localizacao.type"),
		validation.Equals("Point", "Tipo inválido"),
	)

	v.Field("localizacao.coordinates", validation.Lookup(body, "localizacao.coordinates"),
		validation.IsArray("Coordenadas inválidas."),
		validation.FloatElements("Os valores das coordenadas devem ser números."),
	)

	return v.Run(ctx)
}

// List devolve uma página ordenada de prestadores.
func (uc *PrestadorUseCase) List(limit, skip int64, orderBy string) ([]entity.Prestador, error) {
	return uc.repo.List(context.Background(), limit, skip, orderBy)
}

// GetByID devolve zero ou um prestador. Id fora do formato ObjectID é erro do
// cliente (ErrIDInvalido), não 500.
func (uc *PrestadorUseCase) GetByID(id string) ([]entity.Prestador, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIDInvalido
	}
	return uc.repo.GetByID(context.Background(), oid)
}

// SearchByRazao busca por fragmento na razão social ou no nome fantasia.
func (uc *PrestadorUseCase) SearchByRazao(filtro string) ([]entity.Prestador, error) {
	return uc.repo.SearchByRazao(context.Background(), filtro)
}

// Create valida e insere um novo prestador.
func (uc *PrestadorUseCase) Create(body map[string]interface{}, p entity.Prestador) (repository.InsertResult, []validation.Error, error) {
	ctx := context.Background()
	if errs := uc.validaPrestador(ctx, body, primitive.NilObjectID); len(errs) > 0 {
		return repository.InsertResult{}, errs, nil
	}
	p.ID = primitive.NilObjectID
	res, err := uc.repo.Insert(ctx, &p)
	if err != nil {
		return repository.InsertResult{}, nil, err
	}
	return res, nil, nil
}

// Update valida (excluindo o próprio _id da unicidade) e substitui o documento.
// ModifiedCount 0 não é erro: sinaliza "sem mudança" ou "não encontrado".
func (uc *PrestadorUseCase) Update(body map[string]interface{}, p entity.Prestador) (repository.UpdateResult, []validation.Error, error) {
	if p.ID.IsZero() {
		return repository.UpdateResult{}, nil, domain.ErrIDInvalido
	}
	ctx := context.Background()
	if errs := uc.validaPrestador(ctx, body, p.ID); len(errs) > 0 {
		return repository.UpdateResult{}, errs, nil
	}
	res, err := uc.repo.Update(ctx, p.ID, &p)
	if err != nil {
		return repository.UpdateResult{}, nil, err
	}
	return res, nil, nil
}

// Delete exclui pelo id. DeletedCount 0 indica "não encontrado"; o handler
// responde 404 nesse caso.
func (uc *PrestadorUseCase) Delete(id string) (repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, domain.ErrIDInvalido
	}
	return uc.repo.Delete(context.Background(), oid)
}
