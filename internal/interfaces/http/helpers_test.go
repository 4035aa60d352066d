package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fatec-votorantim/api-prestadores/internal/application/auth"
	"github.com/fatec-votorantim/api-prestadores/internal/application/usecase"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/entity"
	"github.com/fatec-votorantim/api-prestadores/internal/domain/repository"
	apphttp "github.com/fatec-votorantim/api-prestadores/internal/interfaces/http"
)

const (
	testJWTSecret = "secret-de-teste-para-unit-tests"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios fake em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakePrestadorRepo struct {
	docs []entity.Prestador
}

func (f *fakePrestadorRepo) List(_ context.Context, limit, skip int64, _ string) ([]entity.Prestador, error) {
	out := []entity.Prestador{}
	for i, p := range f.docs {
		if int64(i) < skip {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePrestadorRepo) GetByID(_ context.Context, id primitive.ObjectID) ([]entity.Prestador, error) {
	for _, p := range f.docs {
		if p.ID == id {
			return []entity.Prestador{p}, nil
		}
	}
	return []entity.Prestador{}, nil
}

func (f *fakePrestadorRepo) SearchByRazao(_ context.Context, filtro string) ([]entity.Prestador, error) {
	out := []entity.Prestador{}
	for _, p := range f.docs {
		if strings.Contains(strings.ToLower(p.RazaoSocial), strings.ToLower(filtro)) ||
			strings.Contains(strings.ToLower(p.NomeFantasia), strings.ToLower(filtro)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePrestadorRepo) Insert(_ context.Context, p *entity.Prestador) (repository.InsertResult, error) {
	doc := *p
	doc.ID = primitive.NewObjectID()
	f.docs = append(f.docs, doc)
	return repository.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (f *fakePrestadorRepo) Update(_ context.Context, id primitive.ObjectID, p *entity.Prestador) (repository.UpdateResult, error) {
	for i, existing := range f.docs {
		if existing.ID == id {
			doc := *p
			doc.ID = id
			f.docs[i] = doc
			return repository.UpdateResult{Acknowledged: true, ModifiedCount: 1}, nil
		}
	}
	return repository.UpdateResult{Acknowledged: true, ModifiedCount: 0}, nil
}

func (f *fakePrestadorRepo) Delete(_ context.Context, id primitive.ObjectID) (repository.DeleteResult, error) {
	for i, p := range f.docs {
		if p.ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return repository.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return repository.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

func (f *fakePrestadorRepo) CountByCNPJ(_ context.Context, cnpj string, excludeID primitive.ObjectID) (int64, error) {
	var n int64
	for _, p := range f.docs {
		if p.CNPJ == cnpj && (excludeID.IsZero() || p.ID != excludeID) {
			n++
		}
	}
	return n, nil
}

type fakeUsuarioRepo struct {
	usuarios []entity.Usuario
}

func (f *fakeUsuarioRepo) Insert(_ context.Context, u *entity.Usuario) (repository.InsertResult, error) {
	doc := *u
	doc.ID = primitive.NewObjectID()
	f.usuarios = append(f.usuarios, doc)
	return repository.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (f *fakeUsuarioRepo) List(_ context.Context, limit, skip int64) ([]entity.Usuario, error) {
	out := []entity.Usuario{}
	for i, u := range f.usuarios {
		if int64(i) < skip {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		u.Senha = "" // projeção remove a senha
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range f.usuarios {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsuarioRepo) CountByEmail(_ context.Context, email string, excludeID primitive.ObjectID) (int64, error) {
	var n int64
	for _, u := range f.usuarios {
		if u.Email == email && (excludeID.IsZero() || u.ID != excludeID) {
			n++
		}
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem da aplicação e helpers de requisição
// ──────────────────────────────────────────────────────────────────────────────

// buildApp monta a aplicação Fiber completa (router real) sobre repositórios fake.
func buildApp() (*fiber.App, *fakePrestadorRepo, *fakeUsuarioRepo) {
	prestadorRepo := &fakePrestadorRepo{}
	usuarioRepo := &fakeUsuarioRepo{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		PrestadorUC: usecase.NewPrestadorUseCase(prestadorRepo),
		UsuarioUC:   usecase.NewUsuarioUseCase(usuarioRepo),
		AuthUC: auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
		}),
		JWTSecret: testJWTSecret,
		Version:   "test",
	})
	return app, prestadorRepo, usuarioRepo
}

// doJSON dispara uma requisição com corpo JSON opcional e token opcional.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(apphttp.TokenHeader, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica o corpo da resposta em out.
func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// readBody devolve o corpo cru da resposta.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// cadastraELoga cria um usuário válido e devolve o access token.
func cadastraELoga(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/usuarios", "", map[string]interface{}{
		"nome":  "Jose Alves",
		"email": "josealves3@uol.com.br",
		"senha": "Alun0$",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/usuarios/login", "", map[string]interface{}{
		"email": "josealves3@uol.com.br",
		"senha": "Alun0$",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.AccessToken)
	return out.AccessToken
}

// dadosPrestador payload de prestador que passa em todas as regras.
func dadosPrestador() map[string]interface{} {
	return map[string]interface{}{
		"cnpj":         "13938578000162",
		"razao_social": "TIGRINHO 2 LTDA",
		"cep":          "01536000",
		"endereco": map[string]interface{}{
			"logradouro": "Av. Lacerda Franco",
			"numero":     "946",
			"bairro":     "Aclimação",
			"cidade":     "São Paulo",
			"uf":         "SP",
		},
		"cnae_fiscal":           321453,
		"nome_fantasia":         "Tigrinho 2",
		"data_inicio_atividade": "2011-05-01",
		"localizacao": map[string]interface{}{
			"type":        "Point",
			"coordinates": []float64{-23.2904, -47.2963},
		},
	}
}
