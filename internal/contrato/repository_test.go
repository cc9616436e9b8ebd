package contrato

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func novoBanco(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestCriarEBuscar(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	c := Contrato{UsuarioID: 1, Cliente: "Ana", ValorLocacao: 2500, Comissao: 775}
	c.RecalcularDerivados()
	require.NoError(t, repo.Criar(&c))
	require.NotZero(t, c.ID)

	achado, err := repo.BuscarPorID(1, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", achado.Cliente)
	assert.InDelta(t, 0.31, achado.PercentualComissao, 1e-9)
}

// Um corretor não enxerga contratos de outro.
func TestBuscarEscopoDoDono(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	c := Contrato{UsuarioID: 1, Cliente: "Ana", ValorLocacao: 2500, Comissao: 775}
	require.NoError(t, repo.Criar(&c))

	_, err := repo.BuscarPorID(2, c.ID)
	assert.Error(t, err)

	lista, err := repo.ListarPorUsuario(2)
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestListarMaisRecentePrimeiro(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	base := time.Date(2025, time.October, 1, 10, 0, 0, 0, time.UTC)
	for i, nome := range []string{"Primeiro", "Segundo", "Terceiro"} {
		c := Contrato{UsuarioID: 1, Cliente: nome, ValorLocacao: 1000, Comissao: 100}
		c.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.Criar(&c))
	}

	lista, err := repo.ListarPorUsuario(1)
	require.NoError(t, err)
	require.Len(t, lista, 3)
	assert.Equal(t, "Terceiro", lista[0].Cliente)
	assert.Equal(t, "Primeiro", lista[2].Cliente)
}

func TestAtualizarEDeletar(t *testing.T) {
	repo := NewRepository(novoBanco(t))

	c := Contrato{UsuarioID: 1, Cliente: "Ana", ValorLocacao: 2500, Comissao: 775}
	require.NoError(t, repo.Criar(&c))

	c.StatusRecebimento = RecebimentoSim
	require.NoError(t, repo.Atualizar(&c))

	achado, err := repo.BuscarPorID(1, c.ID)
	require.NoError(t, err)
	assert.Equal(t, RecebimentoSim, achado.StatusRecebimento)

	require.NoError(t, repo.Deletar(achado))
	_, err = repo.BuscarPorID(1, c.ID)
	assert.Error(t, err)
}
