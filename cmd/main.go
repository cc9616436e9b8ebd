package main

import (
	"log"
	"net/http"
	"os"

	"github.com/CorretorPro/api-corretor/internal/auth"
	"github.com/CorretorPro/api-corretor/internal/contrato"
	"github.com/CorretorPro/api-corretor/internal/dashboard"
	"github.com/CorretorPro/api-corretor/internal/lembrete"
	"github.com/CorretorPro/api-corretor/internal/usuario"
	"github.com/CorretorPro/api-corretor/internal/utils"
	"github.com/CorretorPro/api-corretor/internal/utils/db"
	"github.com/CorretorPro/api-corretor/internal/venda"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Sem arquivo .env; usando variáveis do ambiente")
	}
	utils.InitLogger()

	if os.Getenv("JWT_SECRET") == "" {
		utils.Logger.Fatal("JWT_SECRET não definida")
	}

	database, err := db.GetDB()
	if err != nil {
		utils.Logger.WithError(err).Fatal("Erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&contrato.Contrato{},
		&venda.Venda{},
	); err != nil {
		utils.Logger.WithError(err).Fatal("Erro no AutoMigrate")
	}

	// Repositórios
	usuarioRepo := usuario.NewRepository(database)
	contratoRepo := contrato.NewRepository(database)
	vendaRepo := venda.NewRepository(database)

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo)
	contratoHandler := contrato.NewHandler(contratoRepo)
	vendaHandler := venda.NewHandler(vendaRepo)
	dashboardHandler := dashboard.NewHandler(contratoRepo, vendaRepo, usuarioRepo)
	lembreteHandler := lembrete.NewHandler(contratoRepo, vendaRepo)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Registrar).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Perfil e preferências do corretor
	api.HandleFunc("/usuarios/me", usuarioHandler.Perfil).Methods("GET")
	api.HandleFunc("/usuarios/me", usuarioHandler.AtualizarPerfil).Methods("PUT")
	api.HandleFunc("/usuarios/me/metas", usuarioHandler.AtualizarMetas).Methods("PUT")
	api.HandleFunc("/usuarios/me/tema", usuarioHandler.AtualizarTema).Methods("PUT")
	api.HandleFunc("/usuarios/me/tour", usuarioHandler.MarcarTourVisto).Methods("PATCH")
	api.HandleFunc("/usuarios/me/migracao-local", usuarioHandler.MigrarDadosLocais).Methods("POST")

	// Contratos de locação
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/recebimento", contratoHandler.AtualizarRecebimento).Methods("PATCH")
	api.HandleFunc("/contratos/{id}/lembrete", contratoHandler.AlternarLembrete).Methods("PATCH")

	// Vendas
	api.HandleFunc("/vendas", vendaHandler.Criar).Methods("POST")
	api.HandleFunc("/vendas", vendaHandler.Listar).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/vendas/{id}", vendaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/vendas/{id}", vendaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/vendas/{id}/recebimento", vendaHandler.AtualizarRecebimento).Methods("PATCH")
	api.HandleFunc("/vendas/{id}/lembrete", vendaHandler.AlternarLembrete).Methods("PATCH")

	// Painel (listagem filtrada, KPIs e gráficos); {tipo} = locacoes | vendas
	api.HandleFunc("/dashboard/{tipo:locacoes|vendas}", dashboardHandler.Listar).Methods("GET")
	api.HandleFunc("/dashboard/{tipo:locacoes|vendas}/resumo", dashboardHandler.Resumo).Methods("GET")
	api.HandleFunc("/dashboard/{tipo:locacoes|vendas}/fechamentos-por-mes", dashboardHandler.FechamentosPorMes).Methods("GET")
	api.HandleFunc("/dashboard/{tipo:locacoes|vendas}/comissoes-por-mes", dashboardHandler.ComissoesPorMes).Methods("GET")

	// Lembretes de recebimento
	api.HandleFunc("/lembretes", lembreteHandler.Listar).Methods("GET")
	api.HandleFunc("/lembretes/proximos", lembreteHandler.ListarProximos).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("ALLOWED_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	utils.Logger.Infof("Servidor rodando em http://localhost:%s", porta)
	utils.Logger.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
