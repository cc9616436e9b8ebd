package contrato

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecalcularDerivados(t *testing.T) {
	c := Contrato{ValorLocacao: 2500, Comissao: 775, AliquotaImposto: 6}
	c.RecalcularDerivados()
	assert.InDelta(t, 0.31, c.PercentualComissao, 1e-9)
	assert.InDelta(t, 728.5, c.ComissaoLiquida, 1e-9)
}

func TestRecalcularDerivadosValorZero(t *testing.T) {
	c := Contrato{ValorLocacao: 0, Comissao: 500, AliquotaImposto: 10}
	c.RecalcularDerivados()
	assert.Zero(t, c.PercentualComissao)
	assert.InDelta(t, 450, c.ComissaoLiquida, 1e-9)
}

func TestCriarDTODerivados(t *testing.T) {
	dto := CriarContratoDTO{
		Cliente:         "  Ana Souza  ",
		ValorLocacao:    2500,
		Comissao:        775,
		AliquotaImposto: 6,
		Telefone:        "11988887777",
	}
	c := dto.ParaModelo(7)
	assert.Equal(t, uint(7), c.UsuarioID)
	assert.Equal(t, "Ana Souza", c.Cliente)
	assert.Equal(t, "(11) 98888-7777", c.Telefone)
	assert.Equal(t, RecebimentoNao, c.StatusRecebimento)
	assert.Equal(t, EtapaDocumentacao, c.StatusContrato)
	assert.False(t, c.LembreteAtivo)
	assert.InDelta(t, 0.31, c.PercentualComissao, 1e-9)
	assert.InDelta(t, 728.5, c.ComissaoLiquida, 1e-9)
}

func TestAtualizarDTORecalculaQuandoBaseMuda(t *testing.T) {
	c := Contrato{ValorLocacao: 2500, Comissao: 775, AliquotaImposto: 6}
	c.RecalcularDerivados()

	novaComissao := 1000.0
	dto := AtualizarContratoDTO{Comissao: &novaComissao}
	dto.Aplicar(&c)
	assert.InDelta(t, 0.4, c.PercentualComissao, 1e-9)
	assert.InDelta(t, 940, c.ComissaoLiquida, 1e-9)
}

func TestAtualizarDTONaoRecalculaSemMudancaDeBase(t *testing.T) {
	c := Contrato{ValorLocacao: 2500, Comissao: 775, AliquotaImposto: 6}
	c.RecalcularDerivados()
	antes := c.ComissaoLiquida

	status := RecebimentoSim
	dto := AtualizarContratoDTO{StatusRecebimento: &status}
	dto.Aplicar(&c)
	assert.Equal(t, RecebimentoSim, c.StatusRecebimento)
	assert.Equal(t, antes, c.ComissaoLiquida)
}

func TestAtualizarDTOValidar(t *testing.T) {
	vazio := "   "
	assert.NotEmpty(t, (&AtualizarContratoDTO{Cliente: &vazio}).Validar())

	zero := 0.0
	assert.NotEmpty(t, (&AtualizarContratoDTO{ValorLocacao: &zero}).Validar())
	assert.NotEmpty(t, (&AtualizarContratoDTO{Comissao: &zero}).Validar())

	ok := 100.0
	assert.Empty(t, (&AtualizarContratoDTO{Comissao: &ok}).Validar())
}
