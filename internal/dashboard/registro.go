package dashboard

import (
	"github.com/CorretorPro/api-corretor/internal/contrato"
	"github.com/CorretorPro/api-corretor/internal/venda"
)

// Tipos de registro aceitos pelo painel.
const (
	TipoLocacao = "locacao"
	TipoVenda   = "venda"
)

// Registro é a visão comum de um contrato de locação ou de uma venda sobre a
// qual o pipeline do painel opera. DataRelevante é a formalização para
// locações e a data da venda para vendas.
type Registro struct {
	ID                 uint    `json:"id"`
	Tipo               string  `json:"tipo"`
	Imovel             string  `json:"imovel"`
	Cliente            string  `json:"cliente"`
	Valor              float64 `json:"valor"`
	Comissao           float64 `json:"comissao"`
	PercentualComissao float64 `json:"percentualComissao"`
	AliquotaImposto    float64 `json:"aliquotaImposto"`
	ComissaoLiquida    float64 `json:"comissaoLiquida"`
	StatusRecebimento  string  `json:"statusRecebimento"`
	StatusEtapa        string  `json:"statusEtapa"`
	DataRelevante      string  `json:"dataRelevante"`
	DataRecebimento    string  `json:"dataRecebimento"`
	LembreteAtivo      bool    `json:"lembreteAtivo"`
}

// DeContrato projeta um contrato de locação na visão do painel.
func DeContrato(c contrato.Contrato) Registro {
	return Registro{
		ID:                 c.ID,
		Tipo:               TipoLocacao,
		Imovel:             c.Imovel,
		Cliente:            c.Cliente,
		Valor:              c.ValorLocacao,
		Comissao:           c.Comissao,
		PercentualComissao: c.PercentualComissao,
		AliquotaImposto:    c.AliquotaImposto,
		ComissaoLiquida:    c.ComissaoLiquida,
		StatusRecebimento:  c.StatusRecebimento,
		StatusEtapa:        c.StatusContrato,
		DataRelevante:      c.Formalizacao,
		DataRecebimento:    c.DataRecebimento,
		LembreteAtivo:      c.LembreteAtivo,
	}
}

// DeVenda projeta uma venda na visão do painel.
func DeVenda(v venda.Venda) Registro {
	return Registro{
		ID:                 v.ID,
		Tipo:               TipoVenda,
		Imovel:             v.Imovel,
		Cliente:            v.Cliente,
		Valor:              v.ValorVenda,
		Comissao:           v.Comissao,
		PercentualComissao: v.PercentualComissao,
		AliquotaImposto:    v.AliquotaImposto,
		ComissaoLiquida:    v.ComissaoLiquida,
		StatusRecebimento:  v.StatusRecebimento,
		StatusEtapa:        v.StatusVenda,
		DataRelevante:      v.DataVenda,
		DataRecebimento:    v.DataRecebimento,
		LembreteAtivo:      v.LembreteAtivo,
	}
}

// DeContratos preserva a ordem da lista (mais recente primeiro).
func DeContratos(cs []contrato.Contrato) []Registro {
	regs := make([]Registro, len(cs))
	for i, c := range cs {
		regs[i] = DeContrato(c)
	}
	return regs
}

// DeVendas preserva a ordem da lista (mais recente primeiro).
func DeVendas(vs []venda.Venda) []Registro {
	regs := make([]Registro, len(vs))
	for i, v := range vs {
		regs[i] = DeVenda(v)
	}
	return regs
}
