package usuario

// ChavesLocais são as chaves do armazenamento local do navegador que o
// cliente deve limpar depois que a migração única for concluída.
var ChavesLocais = []string{
	"app_profile_v2",
	"app_rental_goal_v2",
	"app_sales_goal_v2",
	"app-theme-v4",
	"hasSeenOnboarding",
}

type CriarUsuarioDTO struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Senha    string `json:"senha" validate:"required,min=6"`
	Telefone string `json:"telefone"`
}

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// AtualizarPerfilDTO edita o perfil; só os campos presentes são aplicados.
type AtualizarPerfilDTO struct {
	Nome             *string `json:"nome"`
	Telefone         *string `json:"telefone"`
	Avatar           *string `json:"avatar"`
	DoisFatoresAtivo *bool   `json:"doisFatoresAtivo"`
}

type MetasDTO struct {
	MetaLocacao *int `json:"metaLocacao" validate:"omitempty,gte=0"`
	MetaVendas  *int `json:"metaVendas" validate:"omitempty,gte=0"`
}

type TemaDTO struct {
	Tema string `json:"tema" validate:"required"`
}

// PerfilLocal é o que o navegador guardava sob "app_profile_v2".
type PerfilLocal struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	Avatar   string `json:"avatar"`
}

// MigracaoLocalDTO é o despejo do armazenamento local enviado no primeiro
// acesso autenticado; campos ausentes mantêm os valores padrão da conta.
type MigracaoLocalDTO struct {
	Perfil      *PerfilLocal `json:"perfil"`
	MetaLocacao *int         `json:"metaLocacao"`
	MetaVendas  *int         `json:"metaVendas"`
	Tema        *string      `json:"tema"`
	TourVisto   *bool        `json:"tourVisto"`
}

// MigracaoResposta informa se algo foi migrado e quais chaves locais limpar.
type MigracaoResposta struct {
	Migrado      bool     `json:"migrado"`
	LimparChaves []string `json:"limparChaves"`
}
