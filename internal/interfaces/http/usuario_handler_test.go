package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_FluxoCompleto(t *testing.T) {
	app, _, _ := buildApp()

	// login correto devolve um token que abre as rotas protegidas
	token := cadastraELoga(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/usuarios", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var usuarios []map[string]interface{}
	decodeBody(t, resp, &usuarios)
	require.Len(t, usuarios, 1)
	assert.Equal(t, "josealves3@uol.com.br", usuarios[0]["email"])
}

func TestLogin_EmailNaoCadastradoRetorna404NomeandoOEmail(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios/login", "", map[string]interface{}{
		"email": "ninguem@uol.com.br",
		"senha": "Alun0$",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "ninguem@uol.com.br", "a resposta nomeia o email não cadastrado")
	assert.Contains(t, body, "O email informado não está cadastrado.")
}

func TestLogin_SenhaErradaRetorna403Generico(t *testing.T) {
	app, _, _ := buildApp()
	cadastraELoga(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios/login", "", map[string]interface{}{
		"email": "josealves3@uol.com.br",
		"senha": "Errad4#",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body := readBody(t, resp)
	assert.Contains(t, body, "A senha informada está incorreta.")
	// a mensagem não revela se o email existe nem ecoa a senha tentada
	assert.NotContains(t, body, "josealves3@uol.com.br")
	assert.NotContains(t, body, "Errad4#")
}

func TestLogin_RespostaNuncaIncluiOHash(t *testing.T) {
	app, _, usuarioRepo := buildApp()
	token := cadastraELoga(t, app)

	require.NotEmpty(t, usuarioRepo.usuarios)
	hash := usuarioRepo.usuarios[0].Senha
	require.NotEmpty(t, hash)

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios/login", "", map[string]interface{}{
		"email": "josealves3@uol.com.br",
		"senha": "Alun0$",
	})
	assert.NotContains(t, readBody(t, resp), hash)

	resp = doJSON(t, app, http.MethodGet, "/api/usuarios", token, nil)
	assert.NotContains(t, readBody(t, resp), hash)
}

func TestListarUsuarios_NuncaIncluiOCampoSenha(t *testing.T) {
	app, _, _ := buildApp()
	token := cadastraELoga(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/usuarios", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := readBody(t, resp)
	assert.NotContains(t, body, `"senha"`, "nenhum documento devolvido carrega o campo senha")
	assert.Contains(t, body, `"nome"`)
	assert.Contains(t, body, `"avatar"`)
}

func TestCadastro_ValidacaoDevolveListaOrdenada(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios", "", map[string]interface{}{
		"email": "Jose@uol.com.br",
		"senha": "fraca",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out struct {
		Errors []struct {
			Msg   string `json:"msg"`
			Param string `json:"param"`
		} `json:"errors"`
	}
	decodeBody(t, resp, &out)
	require.Len(t, out.Errors, 3)
	assert.Equal(t, "É obrigatório informar o nome.", out.Errors[0].Msg)
	assert.Equal(t, "nome", out.Errors[0].Param)
	assert.Equal(t, "O email não pode conter caracteres maiúsculos.", out.Errors[1].Msg)
	assert.Equal(t, "A senha deve conter no mínimo 6 caracteres.", out.Errors[2].Msg)
}

func TestCadastro_TipoInvalido(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios", "", map[string]interface{}{
		"nome":  "Jose Alves",
		"email": "josealves3@uol.com.br",
		"senha": "Alun0$",
		"tipo":  "Gerente",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Informe apenas Admin ou Cliente para o tipo.")
}

func TestCadastro_CorpoInvalido(t *testing.T) {
	app, _, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/usuarios", "", "isto não é um objeto")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
