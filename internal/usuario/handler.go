package usuario

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/CorretorPro/api-corretor/internal/formatters"
	"github.com/CorretorPro/api-corretor/internal/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Handler gerencia cadastro, login, perfil e preferências do corretor.
type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// Registrar trata POST /usuarios (livre de autenticação)
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CriarUsuarioDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	dto.Nome = strings.TrimSpace(dto.Nome)
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "Dados inválidos: nome, email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(dto.Senha)
	if err != nil {
		http.Error(w, "Erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{
		Nome:        dto.Nome,
		Email:       strings.ToLower(strings.TrimSpace(dto.Email)),
		Senha:       hash,
		Telefone:    formatters.MascararTelefone(dto.Telefone),
		MetaLocacao: 100,
		MetaVendas:  20,
		Tema:        "Violet",
	}
	if err := h.Repo.Criar(&u); err != nil {
		utils.Logger.WithError(err).Error("erro ao registrar corretor")
		http.Error(w, "Erro ao salvar corretor", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Login trata POST /login e gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "email e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if !utils.CheckSenha(u.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(u.ID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao gerar token")
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// Perfil trata GET /usuarios/me
func (h *Handler) Perfil(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// AtualizarPerfil trata PUT /usuarios/me
func (h *Handler) AtualizarPerfil(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto AtualizarPerfilDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if dto.Nome != nil && strings.TrimSpace(*dto.Nome) == "" {
		http.Error(w, "nome não pode ficar vazio", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	if dto.Nome != nil {
		u.Nome = strings.TrimSpace(*dto.Nome)
	}
	if dto.Telefone != nil {
		u.Telefone = formatters.MascararTelefone(*dto.Telefone)
	}
	if dto.Avatar != nil {
		u.Avatar = *dto.Avatar
	}
	if dto.DoisFatoresAtivo != nil {
		u.DoisFatoresAtivo = *dto.DoisFatoresAtivo
	}
	if err := h.Repo.Atualizar(u); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar perfil")
		http.Error(w, "Erro ao atualizar perfil", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// AtualizarMetas trata PUT /usuarios/me/metas
func (h *Handler) AtualizarMetas(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto MetasDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "metas não podem ser negativas", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	if dto.MetaLocacao != nil {
		u.MetaLocacao = *dto.MetaLocacao
	}
	if dto.MetaVendas != nil {
		u.MetaVendas = *dto.MetaVendas
	}
	if err := h.Repo.Atualizar(u); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar metas")
		http.Error(w, "Erro ao atualizar metas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// AtualizarTema trata PUT /usuarios/me/tema
func (h *Handler) AtualizarTema(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto TemaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(dto); err != nil {
		http.Error(w, "tema é obrigatório", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	u.Tema = dto.Tema
	if err := h.Repo.Atualizar(u); err != nil {
		utils.Logger.WithError(err).Error("erro ao atualizar tema")
		http.Error(w, "Erro ao atualizar tema", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// MarcarTourVisto trata PATCH /usuarios/me/tour
func (h *Handler) MarcarTourVisto(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	u.TourVisto = true
	if err := h.Repo.Atualizar(u); err != nil {
		utils.Logger.WithError(err).Error("erro ao marcar tour")
		http.Error(w, "Erro ao atualizar", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MigrarDadosLocais trata POST /usuarios/me/migracao-local: a cópia única dos
// dados que o navegador guardava localmente (perfil, metas, tema, tour).
// Depois da primeira migração o endpoint vira no-op, mas continua devolvendo
// as chaves a limpar para o cliente ficar idempotente.
func (h *Handler) MigrarDadosLocais(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	defer r.Body.Close()

	var dto MigracaoLocalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	u, err := h.Repo.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}

	resposta := MigracaoResposta{Migrado: false, LimparChaves: ChavesLocais}
	if u.MigracaoLocalFeita {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resposta)
		return
	}

	if dto.Perfil != nil {
		if nome := strings.TrimSpace(dto.Perfil.Nome); nome != "" {
			u.Nome = nome
		}
		if dto.Perfil.Telefone != "" {
			u.Telefone = formatters.MascararTelefone(dto.Perfil.Telefone)
		}
		if dto.Perfil.Avatar != "" {
			u.Avatar = dto.Perfil.Avatar
		}
	}
	if dto.MetaLocacao != nil && *dto.MetaLocacao >= 0 {
		u.MetaLocacao = *dto.MetaLocacao
	}
	if dto.MetaVendas != nil && *dto.MetaVendas >= 0 {
		u.MetaVendas = *dto.MetaVendas
	}
	if dto.Tema != nil && *dto.Tema != "" {
		u.Tema = *dto.Tema
	}
	if dto.TourVisto != nil {
		u.TourVisto = *dto.TourVisto
	}
	u.MigracaoLocalFeita = true

	if err := h.Repo.Atualizar(u); err != nil {
		utils.Logger.WithError(err).Error("erro na migração de dados locais")
		http.Error(w, "Erro ao migrar dados locais", http.StatusInternalServerError)
		return
	}
	resposta.Migrado = true
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}
