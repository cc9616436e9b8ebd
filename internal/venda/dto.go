package venda

import (
	"strings"

	"github.com/CorretorPro/api-corretor/internal/formatters"
)

// CriarVendaDTO é o payload de criação; derivados são recalculados no servidor.
type CriarVendaDTO struct {
	Imovel            string  `json:"imovel"`
	Cliente           string  `json:"cliente" validate:"required"`
	ValorVenda        float64 `json:"valorVenda" validate:"required,gt=0"`
	Comissao          float64 `json:"comissao" validate:"required,gt=0"`
	StatusRecebimento string  `json:"statusRecebimento"`
	StatusVenda       string  `json:"statusVenda"`
	DataVenda         string  `json:"dataVenda"`
	DataRecebimento   string  `json:"dataRecebimento"`
	Telefone          string  `json:"telefone"`
	Email             string  `json:"email"`
	AliquotaImposto   float64 `json:"aliquotaImposto"`
}

func (dto *CriarVendaDTO) ParaModelo(usuarioID uint) Venda {
	aliquota := dto.AliquotaImposto
	if aliquota < 0 {
		aliquota = 0
	}
	statusRecebimento := dto.StatusRecebimento
	if statusRecebimento == "" {
		statusRecebimento = RecebimentoNao
	}
	statusVenda := dto.StatusVenda
	if statusVenda == "" {
		statusVenda = EtapaProposta
	}
	v := Venda{
		UsuarioID:         usuarioID,
		Imovel:            strings.TrimSpace(dto.Imovel),
		Cliente:           strings.TrimSpace(dto.Cliente),
		ValorVenda:        dto.ValorVenda,
		Comissao:          dto.Comissao,
		StatusRecebimento: statusRecebimento,
		StatusVenda:       statusVenda,
		DataVenda:         dto.DataVenda,
		DataRecebimento:   dto.DataRecebimento,
		Telefone:          formatters.MascararTelefone(dto.Telefone),
		Email:             strings.TrimSpace(dto.Email),
		LembreteAtivo:     false,
		AliquotaImposto:   aliquota,
	}
	v.RecalcularDerivados()
	return v
}

// AtualizarVendaDTO é o payload de edição parcial.
type AtualizarVendaDTO struct {
	Imovel            *string  `json:"imovel"`
	Cliente           *string  `json:"cliente"`
	ValorVenda        *float64 `json:"valorVenda"`
	Comissao          *float64 `json:"comissao"`
	StatusRecebimento *string  `json:"statusRecebimento"`
	StatusVenda       *string  `json:"statusVenda"`
	DataVenda         *string  `json:"dataVenda"`
	DataRecebimento   *string  `json:"dataRecebimento"`
	Telefone          *string  `json:"telefone"`
	Email             *string  `json:"email"`
	LembreteAtivo     *bool    `json:"lembreteAtivo"`
	AliquotaImposto   *float64 `json:"aliquotaImposto"`
}

func (dto *AtualizarVendaDTO) Aplicar(v *Venda) {
	baseMudou := false
	if dto.Imovel != nil {
		v.Imovel = strings.TrimSpace(*dto.Imovel)
	}
	if dto.Cliente != nil {
		v.Cliente = strings.TrimSpace(*dto.Cliente)
	}
	if dto.ValorVenda != nil {
		v.ValorVenda = *dto.ValorVenda
		baseMudou = true
	}
	if dto.Comissao != nil {
		v.Comissao = *dto.Comissao
		baseMudou = true
	}
	if dto.StatusRecebimento != nil {
		v.StatusRecebimento = *dto.StatusRecebimento
	}
	if dto.StatusVenda != nil {
		v.StatusVenda = *dto.StatusVenda
	}
	if dto.DataVenda != nil {
		v.DataVenda = *dto.DataVenda
	}
	if dto.DataRecebimento != nil {
		v.DataRecebimento = *dto.DataRecebimento
	}
	if dto.Telefone != nil {
		v.Telefone = formatters.MascararTelefone(*dto.Telefone)
	}
	if dto.Email != nil {
		v.Email = strings.TrimSpace(*dto.Email)
	}
	if dto.LembreteAtivo != nil {
		v.LembreteAtivo = *dto.LembreteAtivo
	}
	if dto.AliquotaImposto != nil {
		aliquota := *dto.AliquotaImposto
		if aliquota < 0 {
			aliquota = 0
		}
		v.AliquotaImposto = aliquota
		baseMudou = true
	}
	if baseMudou {
		v.RecalcularDerivados()
	}
}

func (dto *AtualizarVendaDTO) Validar() string {
	if dto.Cliente != nil && strings.TrimSpace(*dto.Cliente) == "" {
		return "cliente não pode ficar vazio"
	}
	if dto.ValorVenda != nil && *dto.ValorVenda <= 0 {
		return "valor de venda deve ser maior que zero"
	}
	if dto.Comissao != nil && *dto.Comissao <= 0 {
		return "comissão deve ser maior que zero"
	}
	return ""
}
