package venda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalcularDerivados(t *testing.T) {
	v := Venda{ValorVenda: 300000, Comissao: 18000, AliquotaImposto: 6}
	v.RecalcularDerivados()
	assert.InDelta(t, 0.06, v.PercentualComissao, 1e-9)
	assert.InDelta(t, 16920, v.ComissaoLiquida, 1e-9)
}

func TestCriarDTOPadroes(t *testing.T) {
	dto := CriarVendaDTO{Cliente: "Bruno", ValorVenda: 300000, Comissao: 18000}
	v := dto.ParaModelo(3)
	assert.Equal(t, RecebimentoNao, v.StatusRecebimento)
	assert.Equal(t, EtapaProposta, v.StatusVenda)
	assert.False(t, v.LembreteAtivo)
	assert.Zero(t, v.AliquotaImposto)
	assert.InDelta(t, 18000, v.ComissaoLiquida, 1e-9)
}

func TestAtualizarDTOAliquotaNegativaViraZero(t *testing.T) {
	v := Venda{ValorVenda: 100000, Comissao: 5000}
	v.RecalcularDerivados()

	negativa := -5.0
	dto := AtualizarVendaDTO{AliquotaImposto: &negativa}
	dto.Aplicar(&v)
	assert.Zero(t, v.AliquotaImposto)
	assert.InDelta(t, 5000, v.ComissaoLiquida, 1e-9)
}
