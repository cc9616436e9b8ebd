package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/CorretorPro/api-corretor/internal/contrato"
	"github.com/CorretorPro/api-corretor/internal/usuario"
	"github.com/CorretorPro/api-corretor/internal/utils"
	"github.com/CorretorPro/api-corretor/internal/venda"
	"github.com/gorilla/mux"
)

const porPaginaPadrao = 10

// Handler expõe as listagens filtradas, os resumos e os gráficos do painel.
type Handler struct {
	Contratos *contrato.Repository
	Vendas    *venda.Repository
	Usuarios  *usuario.Repository
}

func NewHandler(contratos *contrato.Repository, vendas *venda.Repository, usuarios *usuario.Repository) *Handler {
	return &Handler{Contratos: contratos, Vendas: vendas, Usuarios: usuarios}
}

// carregar busca a coleção pedida já projetada na visão do painel.
func (h *Handler) carregar(tipo string, usuarioID uint) ([]Registro, error) {
	if tipo == TipoVenda {
		vs, err := h.Vendas.ListarPorUsuario(usuarioID)
		if err != nil {
			return nil, err
		}
		return DeVendas(vs), nil
	}
	cs, err := h.Contratos.ListarPorUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	return DeContratos(cs), nil
}

func tipoDaRota(r *http.Request) string {
	if mux.Vars(r)["tipo"] == "vendas" {
		return TipoVenda
	}
	return TipoLocacao
}

func filtroDaQuery(r *http.Request) Filtro {
	q := r.URL.Query()
	f := Filtro{Status: q.Get("status")}
	if f.Status == "" {
		f.Status = StatusTodos
	}
	f.Mes, _ = strconv.Atoi(q.Get("mes"))
	f.Ano, _ = strconv.Atoi(q.Get("ano"))
	return f
}

// Listar trata GET /dashboard/{tipo} com filtros e paginação via query params:
// status, mes, ano, pagina e porPagina.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	regs, err := h.carregar(tipoDaRota(r), usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar registros do painel")
		http.Error(w, "Erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	q := r.URL.Query()
	pagina, _ := strconv.Atoi(q.Get("pagina"))
	if pagina < 1 {
		pagina = 1
	}
	porPagina, _ := strconv.Atoi(q.Get("porPagina"))
	if porPagina < 1 {
		porPagina = porPaginaPadrao
	}

	filtrados := Filtrar(regs, filtroDaQuery(r))
	resposta := struct {
		Itens     []Registro `json:"itens"`
		Total     int        `json:"total"`
		Pagina    int        `json:"pagina"`
		PorPagina int        `json:"porPagina"`
	}{
		Itens:     Paginar(filtrados, pagina, porPagina),
		Total:     len(filtrados),
		Pagina:    pagina,
		PorPagina: porPagina,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// Resumo trata GET /dashboard/{tipo}/resumo — KPIs agregados sobre a lista
// filtrada, mais o progresso em relação à meta do corretor.
func (h *Handler) Resumo(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}

	tipo := tipoDaRota(r)
	regs, err := h.carregar(tipo, usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar registros do painel")
		http.Error(w, "Erro ao carregar registros", http.StatusInternalServerError)
		return
	}

	u, err := h.Usuarios.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "Corretor não encontrado", http.StatusNotFound)
		return
	}
	meta := u.MetaLocacao
	if tipo == TipoVenda {
		meta = u.MetaVendas
	}

	res := Agregar(Filtrar(regs, filtroDaQuery(r)))
	progresso := 0.0
	if meta > 0 {
		progresso = float64(res.Quantidade) / float64(meta) * 100
	}
	resposta := struct {
		Resumo
		Meta      int     `json:"meta"`
		Progresso float64 `json:"progresso"`
	}{Resumo: res, Meta: meta, Progresso: progresso}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resposta)
}

// FechamentosPorMes trata GET /dashboard/{tipo}/fechamentos-por-mes
func (h *Handler) FechamentosPorMes(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	regs, err := h.carregar(tipoDaRota(r), usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar registros do painel")
		http.Error(w, "Erro ao carregar registros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(FechamentosPorMes(regs))
}

// ComissoesPorMes trata GET /dashboard/{tipo}/comissoes-por-mes
func (h *Handler) ComissoesPorMes(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r.Context())
	if !ok {
		http.Error(w, "Não autenticado", http.StatusUnauthorized)
		return
	}
	regs, err := h.carregar(tipoDaRota(r), usuarioID)
	if err != nil {
		utils.Logger.WithError(err).Error("erro ao carregar registros do painel")
		http.Error(w, "Erro ao carregar registros", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComissoesPorMes(regs, time.Now()))
}
