package contrato

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

// Handler gerencia as rotas de contratos de locação
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Criar trata POST /contratos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto CriarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dto.Cliente = strings.TrimSpace(dto.Cliente)
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: cliente, valor e comissão são obrigatórios", http.StatusBadRequest)
		return
	}

	c := dto.ParaModelo(usuarioID)
	if err := h.Repo.Criar(&c); err != nil {
		utils.Logger.WithError(err).Error("erro ao criar contrato")
		http.Error(w, "Erro ao salvar contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Listar trata GET /contratos — todos os contratos do corretor,
// do mais recente para o mais antigo.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	list, err := h.Repo.ListarPorUsuario(usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao listar contratos")
		http.Error(w, "Erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /contratos/{id}
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

	c, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Atualizar trata PUT /contratos/{id} com payload parcial
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

	var dto AtualizarContratoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := dto.Validar(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	c, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	dto.Aplicar(c)
	if err := h.Repo.Atualizar(c); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar contrato")
		http.Error(w, "Erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AtualizarRecebimento trata PATCH /contratos/{id}/recebimento
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

	c, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	// Voltar para "Não" não religa o lembrete; o corretor decide quando ativá-lo.
	c.StatusRecebimento = payload.Status
	if err := h.Repo.Atualizar(c); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar recebimento do contrato")
		http.Error(w, "Erro ao atualizar status", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// AlternarLembrete trata PATCH /contratos/{id}/lembrete
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

	c, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}

	c.LembreteAtivo = !c.LembreteAtivo
	if err := h.Repo.Atualizar(c); err != nil {
		utils.Logger.WithError(err).Error("erro ao alternar lembrete do contrato")
		http.Error(w, "Erro ao atualizar lembrete", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Deletar trata DELETE /contratos/{id}
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

	c, err := h.Repo.BuscarPorID(usuarioID, uint(id))
	if err != nil {
		http.Error(w, "Contrato não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repo.Deletar(c); err != nil {
		utils.Logger.WithError(err).Error("erro ao excluir contrato")
		http.Error(w, "Erro ao excluir contrato", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
