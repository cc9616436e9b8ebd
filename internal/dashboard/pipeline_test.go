package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registrosDeExemplo() []Registro {
	return []Registro{
		{ID: 1, Tipo: TipoLocacao, Cliente: "Ana", Valor: 2500, Comissao: 775, AliquotaImposto: 6, ComissaoLiquida: 728.5, StatusRecebimento: "Não", DataRelevante: "15/10/2025", DataRecebimento: "20/10/2025"},
		{ID: 2, Tipo: TipoLocacao, Cliente: "Bruno", Valor: 1800, Comissao: 540, ComissaoLiquida: 540, StatusRecebimento: "Sim", DataRelevante: "03/09/2025", DataRecebimento: "10/09/2025"},
		{ID: 3, Tipo: TipoLocacao, Cliente: "Carla", Valor: 3200, Comissao: 960, ComissaoLiquida: 960, StatusRecebimento: "Não", DataRelevante: "data-quebrada", DataRecebimento: "01/11/2025"},
		{ID: 4, Tipo: TipoLocacao, Cliente: "Davi", Valor: 2100, Comissao: 630, ComissaoLiquida: 630, StatusRecebimento: "Sim", DataRelevante: "22/10/2025", DataRecebimento: "25/10/2025"},
	}
}

func TestFiltrarPorStatus(t *testing.T) {
	regs := registrosDeExemplo()

	todos := Filtrar(regs, Filtro{Status: StatusTodos})
	assert.Len(t, todos, 4)

	pendentes := Filtrar(regs, Filtro{Status: "Não"})
	require.Len(t, pendentes, 2)
	assert.Equal(t, uint(1), pendentes[0].ID)
	assert.Equal(t, uint(3), pendentes[1].ID)
}

func TestFiltrarPorPeriodo(t *testing.T) {
	regs := registrosDeExemplo()

	outubro := Filtrar(regs, Filtro{Status: StatusTodos, Mes: 10, Ano: 2025})
	require.Len(t, outubro, 3) // inclui a data quebrada, julgada só pelo status
	assert.Equal(t, uint(1), outubro[0].ID)
	assert.Equal(t, uint(3), outubro[1].ID)
	assert.Equal(t, uint(4), outubro[2].ID)

	setembro := Filtrar(regs, Filtro{Status: "Sim", Mes: 9, Ano: 2025})
	require.Len(t, setembro, 1)
	assert.Equal(t, uint(2), setembro[0].ID)
}

// Filtrar uma lista já filtrada com o mesmo critério não muda nada.
func TestFiltrarIdempotente(t *testing.T) {
	f := Filtro{Status: "Não", Mes: 10, Ano: 2025}
	uma := Filtrar(registrosDeExemplo(), f)
	duas := Filtrar(uma, f)
	assert.Equal(t, uma, duas)
}

func TestPaginar(t *testing.T) {
	regs := registrosDeExemplo()

	p1 := Paginar(regs, 1, 3)
	require.Len(t, p1, 3)
	assert.Equal(t, uint(1), p1[0].ID)

	p2 := Paginar(regs, 2, 3)
	require.Len(t, p2, 1)
	assert.Equal(t, uint(4), p2[0].ID)

	assert.Empty(t, Paginar(regs, 3, 3))
	assert.Empty(t, Paginar(regs, 0, 3))
	assert.Empty(t, Paginar(regs, 1, 0))
}

// Concatenar todas as páginas reproduz a lista inteira, sem perda nem repetição.
func TestPaginarCobreTudo(t *testing.T) {
	regs := registrosDeExemplo()
	porPagina := 3

	var juntadas []Registro
	for pagina := 1; ; pagina++ {
		p := Paginar(regs, pagina, porPagina)
		if len(p) == 0 {
			break
		}
		juntadas = append(juntadas, p...)
	}
	assert.Equal(t, regs, juntadas)
}

func TestAgregarVazio(t *testing.T) {
	res := Agregar(nil)
	assert.Zero(t, res.Quantidade)
	assert.Zero(t, res.ValorTotal)
	assert.Zero(t, res.ComissaoTotal)
	assert.Zero(t, res.RetornoMedio) // sem divisão por zero
	assert.Zero(t, res.TaxaEfetiva)
}

func TestAgregar(t *testing.T) {
	regs := []Registro{
		{Valor: 10000, Comissao: 1000, ComissaoLiquida: 1000, StatusRecebimento: "Sim"},
		{Valor: 5000, Comissao: 500, ComissaoLiquida: 500, StatusRecebimento: "Não"},
	}
	res := Agregar(regs)
	assert.Equal(t, 2, res.Quantidade)
	assert.InDelta(t, 15000, res.ValorTotal, 1e-9)
	assert.InDelta(t, 1500, res.ComissaoTotal, 1e-9)
	assert.InDelta(t, 1000, res.ComissaoRecebida, 1e-9)
	assert.InDelta(t, 10.0, res.RetornoMedio, 1e-9)
	assert.Zero(t, res.ImpostoRetido)
}

func TestAgregarComImposto(t *testing.T) {
	// comissão líquida ausente cai no recálculo bruto*(1-alíquota/100)
	regs := []Registro{
		{Valor: 2500, Comissao: 775, AliquotaImposto: 6, StatusRecebimento: "Não"},
	}
	res := Agregar(regs)
	assert.InDelta(t, 728.5, res.ComissaoTotal, 1e-9)
	assert.InDelta(t, 46.5, res.ImpostoRetido, 1e-9)
	assert.InDelta(t, 6.0, res.TaxaEfetiva, 1e-9)
	assert.Zero(t, res.ComissaoRecebida)
}

func TestFechamentosPorMes(t *testing.T) {
	regs := []Registro{
		{DataRelevante: "10/11/2025"},
		{DataRelevante: "15/10/2025"},
		{DataRelevante: "22/10/2025"},
		{DataRelevante: "quebrada"},
	}
	pontos := FechamentosPorMes(regs)
	require.Len(t, pontos, 2)
	// ordem cronológica, não de chegada
	assert.Equal(t, "Outubro 2025", pontos[0].Mes)
	assert.Equal(t, 2, pontos[0].Quantidade)
	assert.Equal(t, "Novembro 2025", pontos[1].Mes)
	assert.Equal(t, 1, pontos[1].Quantidade)
}

func TestComissoesPorMes(t *testing.T) {
	hoje := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.Local)
	regs := []Registro{
		{Comissao: 1000, StatusRecebimento: "Sim", DataRecebimento: "10/09/2025"},
		{Comissao: 500, StatusRecebimento: "Não", DataRecebimento: "20/10/2025"},
		{Comissao: 300, StatusRecebimento: "Não", DataRecebimento: "15/10/2025"}, // vence hoje, ainda projeta
		{Comissao: 999, StatusRecebimento: "Não", DataRecebimento: "01/10/2025"}, // vencida, fora da projeção
		{Comissao: 111, StatusRecebimento: "Não", DataRecebimento: "sem-data"},
	}
	serie := ComissoesPorMes(regs, hoje)

	require.Len(t, serie.Recebidas, 1)
	assert.Equal(t, "Setembro 2025", serie.Recebidas[0].Mes)
	assert.InDelta(t, 1000, serie.Recebidas[0].Valor, 1e-9)

	require.Len(t, serie.Projetadas, 1)
	assert.Equal(t, "Outubro 2025", serie.Projetadas[0].Mes)
	assert.InDelta(t, 800, serie.Projetadas[0].Valor, 1e-9)
}
