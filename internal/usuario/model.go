package usuario

import (
	"time"

	"gorm.io/gorm"
)

// Usuario é o corretor dono do painel: credenciais, perfil, metas e
// preferências que antes viviam no armazenamento local do navegador.
type Usuario struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome             string `gorm:"size:255;not null" json:"nome"`
	Email            string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha            string `gorm:"size:255;not null" json:"-"`
	Telefone         string `gorm:"size:20" json:"telefone"`
	Avatar           string `gorm:"type:text" json:"avatar"`
	DoisFatoresAtivo bool   `gorm:"not null;default:false" json:"doisFatoresAtivo"`

	// Metas de fechamentos (quantidade de negócios, não valor)
	MetaLocacao int `gorm:"not null;default:100" json:"metaLocacao"`
	MetaVendas  int `gorm:"not null;default:20" json:"metaVendas"`

	Tema      string `gorm:"size:50;not null;default:'Violet'" json:"tema"`
	TourVisto bool   `gorm:"not null;default:false" json:"tourVisto"`

	// Marca a cópia única dos dados do armazenamento local do navegador.
	MigracaoLocalFeita bool `gorm:"not null;default:false" json:"migracaoLocalFeita"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
