package lembrete

import (
	"math"
	"sort"
	"time"

	"github.com/CorretorPro/api-corretor/internal/formatters"
)

// JanelaDias é a antecedência máxima, em dias, para um recebimento pendente
// aparecer como lembrete. O vencimento de hoje conta (dia zero).
const JanelaDias = 3

// Item é o que o motor de lembretes precisa saber de um contrato ou venda.
type Item struct {
	ID                uint    `json:"id"`
	Tipo              string  `json:"tipo"`
	Cliente           string  `json:"cliente"`
	Comissao          float64 `json:"comissao"`
	ComissaoLiquida   float64 `json:"comissaoLiquida"`
	DataRecebimento   string  `json:"dataRecebimento"`
	StatusRecebimento string  `json:"statusRecebimento"`
	LembreteAtivo     bool    `json:"lembreteAtivo"`
}

// Lembrete é um item dentro da janela, com a contagem de dias até o vencimento.
type Lembrete struct {
	Item
	DiasParaVencer int `json:"diasParaVencer"`
}

const recebimentoNao = "Não"

func meiaNoite(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// diasAte conta os dias de hoje até a data, ambos à meia-noite, arredondando
// para cima para que qualquer fração de dia já conte como o dia seguinte.
func diasAte(vencimento, hoje time.Time) int {
	diff := meiaNoite(vencimento).Sub(meiaNoite(hoje))
	return int(math.Ceil(diff.Hours() / 24))
}

// Calcular varre os itens e devolve os lembretes da janela, do vencimento
// mais próximo para o mais distante. Entram apenas itens com lembrete ativo e
// recebimento pendente; data que não parseia exclui o item; pendência vencida
// (dias negativos) fica de fora.
func Calcular(itens []Item, hoje time.Time) []Lembrete {
	lembretes := make([]Lembrete, 0)
	for _, item := range itens {
		if !item.LembreteAtivo || item.StatusRecebimento != recebimentoNao {
			continue
		}
		vencimento, ok := formatters.ParseData(item.DataRecebimento)
		if !ok {
			continue
		}
		dias := diasAte(vencimento, hoje)
		if dias >= 0 && dias <= JanelaDias {
			lembretes = append(lembretes, Lembrete{Item: item, DiasParaVencer: dias})
		}
	}
	sort.SliceStable(lembretes, func(i, j int) bool {
		return lembretes[i].DiasParaVencer < lembretes[j].DiasParaVencer
	})
	return lembretes
}

// Proximos lista os próximos recebimentos pendentes (de hoje em diante,
// independente do lembrete estar ativo), os mais próximos primeiro, limitado
// a `limite` itens. É a visão "próximos pagamentos" do painel.
func Proximos(itens []Item, hoje time.Time, limite int) []Lembrete {
	proximos := make([]Lembrete, 0)
	for _, item := range itens {
		if item.StatusRecebimento != recebimentoNao {
			continue
		}
		vencimento, ok := formatters.ParseData(item.DataRecebimento)
		if !ok {
			continue
		}
		dias := diasAte(vencimento, hoje)
		if dias >= 0 {
			proximos = append(proximos, Lembrete{Item: item, DiasParaVencer: dias})
		}
	}
	sort.SliceStable(proximos, func(i, j int) bool {
		return proximos[i].DiasParaVencer < proximos[j].DiasParaVencer
	})
	if limite > 0 && len(proximos) > limite {
		proximos = proximos[:limite]
	}
	return proximos
}
