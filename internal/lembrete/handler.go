package lembrete

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/CorretorPro/api-corretor/internal/contrato"
	"github.com/CorretorPro/api-corretor/internal/utils"
	"github.com/CorretorPro/api-corretor/internal/venda"
)

// Handler computa lembretes sobre as duas coleções do corretor.
type Handler struct {
	Contratos *contrato.Repository
	Vendas    *venda.Repository
}

func NewHandler(contratos *contrato.Repository, vendas *venda.Repository) *Handler {
	return &Handler{Contratos: contratos, Vendas: vendas}
}

func deContrato(c contrato.Contrato) Item {
	return Item{
		ID:                c.ID,
		Tipo:              "locacao",
		Cliente:           c.Cliente,
		Comissao:          c.Comissao,
		ComissaoLiquida:   c.ComissaoLiquida,
		DataRecebimento:   c.DataRecebimento,
		StatusRecebimento: c.StatusRecebimento,
		LembreteAtivo:     c.LembreteAtivo,
	}
}

func deVenda(v venda.Venda) Item {
	return Item{
		ID:                v.ID,
		Tipo:              "venda",
		Cliente:           v.Cliente,
		Comissao:          v.Comissao,
		ComissaoLiquida:   v.ComissaoLiquida,
		DataRecebimento:   v.DataRecebimento,
		StatusRecebimento: v.StatusRecebimento,
		LembreteAtivo:     v.LembreteAtivo,
	}
}

// carregarItens concatena contratos e vendas do corretor na visão do motor.
func (h *Handler) carregarItens(usuarioID uint) ([]Item, error) {
	contratos, err := h.Contratos.ListarPorUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	vendas, err := h.Vendas.ListarPorUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	itens := make([]Item, 0, len(contratos)+len(vendas))
	for _, c := range contratos {
		itens = append(itens, deContrato(c))
	}
	for _, v := range vendas {
		itens = append(itens, deVenda(v))
	}
	return itens, nil
}

// Listar trata GET /lembretes — pendências com lembrete ativo vencendo na janela.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	itens, err := h.carregarItens(usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar itens para lembretes")
		http.Error(w, "Erro ao carregar lembretes", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Calcular(itens, time.Now()))
}

// ListarProximos trata GET /lembretes/proximos?limite=5 — próximos recebimentos
// pendentes, independente do lembrete.
func (h *Handler) ListarProximos(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	limite, _ := strconv.Atoi(r.URL.Query().Get("limite"))
	if limite < 1 {
		limite = 5
	}
	itens, err := h.carregarItens(usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar itens para próximos pagamentos")
		http.Error(w, "Erro ao carregar próximos pagamentos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Proximos(itens, time.Now(), limite))
}
