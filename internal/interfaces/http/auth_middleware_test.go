package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/fatec-votorantim/api-prestadores/pkg/jwt"
)

// Toda rota protegida sem token responde 401.
func TestAuthMiddleware_SemTokenRetorna401(t *testing.T) {
	app, _, _ := buildApp()

	rotas := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/prestadores"},
		{http.MethodGet, "/api/prestadores/id/65ef9588fa0477e499de2d8a"},
		{http.MethodGet, "/api/prestadores/razao/CHACARA"},
		{http.MethodPost, "/api/prestadores"},
		{http.MethodPut, "/api/prestadores"},
		{http.MethodDelete, "/api/prestadores/65ef9588fa0477e499de2d8a"},
		{http.MethodGet, "/api/usuarios"},
	}
	for _, r := range rotas {
		resp := doJSON(t, app, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s sem token deve responder 401", r.method, r.path)
		resp.Body.Close()
	}
}

func TestAuthMiddleware_TokenMalformadoRetorna401(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodGet, "/api/prestadores", "token.invalido.aqui", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	app, _, _ := buildApp()

	// expiração negativa: token já nasce expirado
	tok, err := pkgjwt.Generate(testJWTSecret, "65ef9588fa0477e499de2d8a", -1)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/api/prestadores", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenAssinadoComOutroSecretRetorna401(t *testing.T) {
	app, _, _ := buildApp()

	tok, err := pkgjwt.Generate("outro-secret-completamente-distinto", "65ef9588fa0477e499de2d8a", testExpMin)
	require.NoError(t, err)

	resp := doJSON(t, app, http.MethodGet, "/api/prestadores", tok, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPassa(t *testing.T) {
	app, _, _ := buildApp()
	token := cadastraELoga(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/prestadores", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Rotas públicas não exigem token.
func TestRotasPublicas_SemToken(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodGet, "/api/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/usuarios", "", map[string]interface{}{
		"nome":  "Jose Alves",
		"email": "josealves3@uol.com.br",
		"senha": "Alun0$",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// JWT: integridade do generate/parse.
func TestJWT_GenerateEParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, "65ef9588fa0477e499de2d8a", testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sub, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "65ef9588fa0477e499de2d8a", sub)
}

func TestJWT_SecretVazioEhErro(t *testing.T) {
	_, err := pkgjwt.Generate("", "id", testExpMin)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "qualquer.token.aqui")
	assert.Error(t, err)
}
