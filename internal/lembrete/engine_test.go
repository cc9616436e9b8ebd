package lembrete

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hoje = time.Date(2025, time.October, 15, 9, 30, 0, 0, time.Local)

func item(id uint, dataRecebimento, status string, ativo bool) Item {
	return Item{
		ID:                id,
		Tipo:              "locacao",
		Cliente:           "Cliente",
		Comissao:          100,
		ComissaoLiquida:   100,
		DataRecebimento:   dataRecebimento,
		StatusRecebimento: status,
		LembreteAtivo:     ativo,
	}
}

func TestCalcularJanela(t *testing.T) {
	itens := []Item{
		item(1, "15/10/2025", "Não", true), // vence hoje: dia zero
		item(2, "18/10/2025", "Não", true), // borda da janela: 3 dias
		item(3, "19/10/2025", "Não", true), // 4 dias: fora
		item(4, "14/10/2025", "Não", true), // vencida: fora
	}
	lembretes := Calcular(itens, hoje)
	require.Len(t, lembretes, 2)
	assert.Equal(t, uint(1), lembretes[0].ID)
	assert.Equal(t, 0, lembretes[0].DiasParaVencer)
	assert.Equal(t, uint(2), lembretes[1].ID)
	assert.Equal(t, 3, lembretes[1].DiasParaVencer)
}

func TestCalcularExclusoes(t *testing.T) {
	itens := []Item{
		item(1, "16/10/2025", "Não", false), // lembrete desligado
		item(2, "16/10/2025", "Sim", true),  // já recebido
		item(3, "sem-data", "Não", true),    // data não parseia
	}
	assert.Empty(t, Calcular(itens, hoje))
}

func TestCalcularOrdenaPorVencimento(t *testing.T) {
	itens := []Item{
		item(1, "18/10/2025", "Não", true),
		item(2, "15/10/2025", "Não", true),
		item(3, "16/10/2025", "Não", true),
	}
	lembretes := Calcular(itens, hoje)
	require.Len(t, lembretes, 3)
	assert.Equal(t, []int{0, 1, 3}, []int{
		lembretes[0].DiasParaVencer,
		lembretes[1].DiasParaVencer,
		lembretes[2].DiasParaVencer,
	})
	assert.Equal(t, uint(2), lembretes[0].ID)
}

func TestProximos(t *testing.T) {
	itens := []Item{
		item(1, "20/10/2025", "Não", false), // entra mesmo sem lembrete ativo
		item(2, "16/10/2025", "Não", true),
		item(3, "14/10/2025", "Não", true), // já venceu: fora
		item(4, "17/10/2025", "Sim", true), // recebida: fora
	}
	proximos := Proximos(itens, hoje, 5)
	require.Len(t, proximos, 2)
	assert.Equal(t, uint(2), proximos[0].ID)
	assert.Equal(t, uint(1), proximos[1].ID)
}

func TestProximosRespeitaLimite(t *testing.T) {
	var itens []Item
	for i := 0; i < 8; i++ {
		itens = append(itens, item(uint(i+1), "20/10/2025", "Não", false))
	}
	assert.Len(t, Proximos(itens, hoje, 5), 5)
}
