package venda

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/CorretorPro/api-corretor/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

var validate = validator.New()

// Handler gerencia as rotas de vendas
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /vendas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto CriarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dto.Cliente = strings.TrimSpace(dto.Cliente)
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: cliente, valor e comissão são obrigatórios", http.StatusBadRequest)
		return
	}

	v := dto.ParaModelo(usuarioID)
	if err := h.Repo.Criar(&v); err != nil {
		utils.Logger.WithError(err).Error("erro ao criar venda")
		http.Error(w, "Erro ao salvar venda", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// Listar trata GET /vendas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao listar vendas")
		http.Error(w, "Erro ao listar vendas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /vendas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Atualizar trata PUT /vendas/{id} com payload parcial
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var dto AtualizarVendaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := dto.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	dto.Aplicar(v)
	if err := h.Repo.Atualizar(v); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar venda")
		http.Error(w, "Erro ao atualizar venda", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// AtualizarRecebimento trata PATCH /vendas/{id}/recebimento
func (h *Handler) AtualizarRecebimento(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if payload.Status != RecebimentoSim && payload.Status != RecebimentoNao {
		http.Error(w, "Status de recebimento inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	v.StatusRecebimento = payload.Status
	if err := h.Repo.Atualizar(v); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar recebimento da venda")
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// AlternarLembrete trata PATCH /vendas/{id}/lembrete
func (h *Handler) AlternarLembrete(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	v, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	v.LembreteAtivo = !v.LembreteAtivo
	if err := h.Repo.Atualizar(v); err != nil {
		utils.Logger.WithError(err).Error("erro ao alternar lembrete da venda")
		http.Error(w, "Erro ao atualizar lembrete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Deletar trata DELETE /vendas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	v, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Venda não encontrada", http.StatusNotFound)
		return
	}
	if err := h.Repo.Deletar(v); err != nil {
		utils.Logger.WithError(err).Error("erro ao excluir venda")
		http.Error(w, "Erro ao excluir venda", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
