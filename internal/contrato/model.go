package contrato

import (
	"time"

	"gorm.io/gorm"
)

// Status de recebimento da comissão, compartilhado com vendas.
const (
	RecebimentoSim = "Sim"
	RecebimentoNao = "Não"
)

// Etapas do contrato de locação. A transição entre etapas é livre:
// o formulário de edição pode levar de qualquer etapa para qualquer outra.
const (
	EtapaDocumentacao = "Documentação"
	EtapaAnalise      = "Análise"
	EtapaContrato     = "Contrato"
	EtapaAssinado     = "Assinado"
)

// Contrato representa um contrato de locação e sua comissão.
// As datas ficam no formato "DD/MM/AAAA", como o cliente as envia; os campos
// derivados (percentual e comissão líquida) são sempre recalculados no servidor.
type Contrato struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	UsuarioID uint `gorm:"not null;index" json:"usuarioId"`

	Imovel             string  `gorm:"size:255" json:"imovel"`
	Cliente            string  `gorm:"size:255;not null" json:"cliente"`
	ValorLocacao       float64 `gorm:"not null;default:0" json:"valorLocacao"`
	Comissao           float64 `gorm:"not null;default:0" json:"comissao"`
	PercentualComissao float64 `gorm:"not null;default:0" json:"percentualComissao"`
	StatusRecebimento  string  `gorm:"size:50;not null;default:'Não'" json:"statusRecebimento"`
	StatusContrato     string  `gorm:"size:50;not null;default:'Documentação'" json:"statusContrato"`
	Formalizacao       string  `gorm:"size:10" json:"formalizacao"`
	DataRecebimento    string  `gorm:"size:10" json:"dataRecebimento"`
	Telefone           string  `gorm:"size:20" json:"telefone"`
	Email              string  `gorm:"size:255" json:"email"`
	LembreteAtivo      bool    `gorm:"not null;default:false" json:"lembreteAtivo"`
	AliquotaImposto    float64 `gorm:"not null;default:0" json:"aliquotaImposto"`
	ComissaoLiquida    float64 `gorm:"not null;default:0" json:"comissaoLiquida"`
}

// RecalcularDerivados refaz percentual e comissão líquida a partir dos campos
// base. Valor de locação zero resulta em percentual zero, sem divisão por zero.
func (c *Contrato) RecalcularDerivados() {
	if c.ValorLocacao > 0 {
		c.PercentualComissao = c.Comissao / c.ValorLocacao
	} else {
		c.PercentualComissao = 0
	}
	c.ComissaoLiquida = c.Comissao * (1 - c.AliquotaImposto/100)
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Contrato{})
}
