package venda

import (
	"time"

	"gorm.io/gorm"
)

const (
	RecebimentoSim = "Sim"
	RecebimentoNao = "Não"
)

// Etapas da venda, de proposta a vendido. Transição livre entre etapas.
const (
	EtapaProposta      = "Proposta"
	EtapaFinanciamento = "Financiamento"
	EtapaEscritura     = "Escritura"
	EtapaVendido       = "Vendido"
)

// Venda representa um contrato de venda e sua comissão.
type Venda struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	UsuarioID uint `gorm:"not null;index" json:"usuarioId"`

	Imovel             string  `gorm:"size:255" json:"imovel"`
	Cliente            string  `gorm:"size:255;not null" json:"cliente"`
	ValorVenda         float64 `gorm:"not null;default:0" json:"valorVenda"`
	Comissao           float64 `gorm:"not null;default:0" json:"comissao"`
	PercentualComissao float64 `gorm:"not null;default:0" json:"percentualComissao"`
	StatusRecebimento  string  `gorm:"size:50;not null;default:'Não'" json:"statusRecebimento"`
	StatusVenda        string  `gorm:"size:50;not null;default:'Proposta'" json:"statusVenda"`
	DataVenda          string  `gorm:"size:10" json:"dataVenda"`
	DataRecebimento    string  `gorm:"size:10" json:"dataRecebimento"`
	Telefone           string  `gorm:"size:20" json:"telefone"`
	Email              string  `gorm:"size:255" json:"email"`
	LembreteAtivo      bool    `gorm:"not null;default:false" json:"lembreteAtivo"`
	AliquotaImposto    float64 `gorm:"not null;default:0" json:"aliquotaImposto"`
	ComissaoLiquida    float64 `gorm:"not null;default:0" json:"comissaoLiquida"`
}

// RecalcularDerivados refaz percentual e comissão líquida a partir dos campos base.
func (v *Venda) RecalcularDerivados() {
	if v.ValorVenda > 0 {
		v.PercentualComissao = v.Comissao / v.ValorVenda
	} else {
		v.PercentualComissao = 0
	}
	v.ComissaoLiquida = v.Comissao * (1 - v.AliquotaImposto/100)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Venda{})
}
