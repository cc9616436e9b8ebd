package usuario

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func novoHandler(t *testing.T) (*Handler, *Usuario) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	repo := NewRepository(db)
	u := &Usuario{
		Nome:        "Corretor Pro",
		Email:       "corretor@example.com",
		Senha:       "hash",
		MetaLocacao: 100,
		MetaVendas:  20,
		Tema:        "Violet",
	}
	require.NoError(t, repo.Criar(u))
	return NewHandler(repo), u
}

func requisicaoAutenticada(metodo, alvo, corpo string, usuarioID uint) *http.Request {
	req := httptest.NewRequest(metodo, alvo, strings.NewReader(corpo))
	ctx := context.WithValue(req.Context(), auth.UsuarioIDKey, usuarioID)
	return req.WithContext(ctx)
}

func TestMigracaoLocalPrimeiraVez(t *testing.T) {
	h, u := novoHandler(t)

	corpo := `{
		"perfil": {"nome": "Maria Lima", "telefone": "11988887777"},
		"metaLocacao": 50,
		"metaVendas": 10,
		"tema": "Ocean",
		"tourVisto": true
	}`
	w := httptest.NewRecorder()
	h.MigrarDadosLocais(w, requisicaoAutenticada(http.MethodPost, "/usuarios/me/migracao-local", corpo, u.ID))

	require.Equal(t, http.StatusOK, w.Code)
	var resposta MigracaoResposta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))
	assert.True(t, resposta.Migrado)
	assert.Equal(t, ChavesLocais, resposta.LimparChaves)

	depois, err := h.Repo.BuscarPorID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Lima", depois.Nome)
	assert.Equal(t, "(11) 98888-7777", depois.Telefone)
	assert.Equal(t, 50, depois.MetaLocacao)
	assert.Equal(t, 10, depois.MetaVendas)
	assert.Equal(t, "Ocean", depois.Tema)
	assert.True(t, depois.TourVisto)
	assert.True(t, depois.MigracaoLocalFeita)
}

// A segunda migração não sobrescreve nada; só reafirma as chaves a limpar.
func TestMigracaoLocalIdempotente(t *testing.T) {
	h, u := novoHandler(t)

	w := httptest.NewRecorder()
	h.MigrarDadosLocais(w, requisicaoAutenticada(http.MethodPost, "/usuarios/me/migracao-local", `{"metaLocacao": 50}`, u.ID))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.MigrarDadosLocais(w, requisicaoAutenticada(http.MethodPost, "/usuarios/me/migracao-local", `{"metaLocacao": 77}`, u.ID))
	require.Equal(t, http.StatusOK, w.Code)

	var resposta MigracaoResposta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resposta))
	assert.False(t, resposta.Migrado)

	depois, err := h.Repo.BuscarPorID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, depois.MetaLocacao)
}

func TestAtualizarMetas(t *testing.T) {
	h, u := novoHandler(t)

	w := httptest.NewRecorder()
	h.AtualizarMetas(w, requisicaoAutenticada(http.MethodPut, "/usuarios/me/metas", `{"metaVendas": 30}`, u.ID))
	require.Equal(t, http.StatusOK, w.Code)

	depois, err := h.Repo.BuscarPorID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, depois.MetaVendas)
	assert.Equal(t, 100, depois.MetaLocacao) // intacta
}

func TestAtualizarMetasNegativa(t *testing.T) {
	h, u := novoHandler(t)

	w := httptest.NewRecorder()
	h.AtualizarMetas(w, requisicaoAutenticada(http.MethodPut, "/usuarios/me/metas", `{"metaVendas": -1}`, u.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
