package contrato

import (
	"strings"

	"github.com/CorretorPro/api-corretor/internal/formatters"
)

// CriarContratoDTO é o payload de criação. Campos derivados (percentual e
// comissão líquida) não são aceitos: o servidor sempre os recalcula.
type CriarContratoDTO struct {
	Imovel            string  `json:"imovel"`
	Cliente           string  `json:"cliente" validate:"required"`
	ValorLocacao      float64 `json:"valorLocacao" validate:"required,gt=0"`
	Comissao          float64 `json:"comissao" validate:"required,gt=0"`
	StatusRecebimento string  `json:"statusRecebimento"`
	StatusContrato    string  `json:"statusContrato"`
	Formalizacao      string  `json:"formalizacao"`
	DataRecebimento   string  `json:"dataRecebimento"`
	Telefone          string  `json:"telefone"`
	Email             string  `json:"email"`
	AliquotaImposto   float64 `json:"aliquotaImposto"`
}

// ParaModelo monta o Contrato a partir do payload, com defaults e derivados.
func (dto *CriarContratoDTO) ParaModelo(usuarioID uint) Contrato {
	aliquota := dto.AliquotaImposto
	if aliquota < 0 {
		aliquota = 0
	}
	statusRecebimento := dto.StatusRecebimento
	if statusRecebimento == "" {
		statusRecebimento = RecebimentoNao
	}
	statusContrato := dto.StatusContrato
	if statusContrato == "" {
		statusContrato = EtapaDocumentacao
	}
	c := Contrato{
		UsuarioID:         usuarioID,
		Imovel:            strings.TrimSpace(dto.Imovel),
		Cliente:           strings.TrimSpace(dto.Cliente),
		ValorLocacao:      dto.ValorLocacao,
		Comissao:          dto.Comissao,
		StatusRecebimento: statusRecebimento,
		StatusContrato:    statusContrato,
		Formalizacao:      dto.Formalizacao,
		DataRecebimento:   dto.DataRecebimento,
		Telefone:          formatters.MascararTelefone(dto.Telefone),
		Email:             strings.TrimSpace(dto.Email),
		LembreteAtivo:     false,
		AliquotaImposto:   aliquota,
	}
	c.RecalcularDerivados()
	return c
}

// AtualizarContratoDTO é o payload de edição parcial: só os campos presentes
// são aplicados. Derivados continuam sendo recalculados pelo servidor.
type AtualizarContratoDTO struct {
	Imovel            *string  `json:"imovel"`
	Cliente           *string  `json:"cliente"`
	ValorLocacao      *float64 `json:"valorLocacao"`
	Comissao          *float64 `json:"comissao"`
	StatusRecebimento *string  `json:"statusRecebimento"`
	StatusContrato    *string  `json:"statusContrato"`
	Formalizacao      *string  `json:"formalizacao"`
	DataRecebimento   *string  `json:"dataRecebimento"`
	Telefone          *string  `json:"telefone"`
	Email             *string  `json:"email"`
	LembreteAtivo     *bool    `json:"lembreteAtivo"`
	AliquotaImposto   *float64 `json:"aliquotaImposto"`
}

// Aplicar mescla o payload no contrato e recalcula os derivados quando algum
// campo base (valor, comissão ou alíquota) mudou.
func (dto *AtualizarContratoDTO) Aplicar(c *Contrato) {
	baseMudou := false
	if dto.Imovel != nil {
		c.Imovel = strings.TrimSpace(*dto.Imovel)
	}
	if dto.Cliente != nil {
		c.Cliente = strings.TrimSpace(*dto.Cliente)
	}
	if dto.ValorLocacao != nil {
		c.ValorLocacao = *dto.ValorLocacao
		baseMudou = true
	}
	if dto.Comissao != nil {
		c.Comissao = *dto.Comissao
		baseMudou = true
	}
	if dto.StatusRecebimento != nil {
		c.StatusRecebimento = *dto.StatusRecebimento
	}
	if dto.StatusContrato != nil {
		c.StatusContrato = *dto.StatusContrato
	}
	if dto.Formalizacao != nil {
		c.Formalizacao = *dto.Formalizacao
	}
	if dto.DataRecebimento != nil {
		c.DataRecebimento = *dto.DataRecebimento
	}
	if dto.Telefone != nil {
		c.Telefone = formatters.MascararTelefone(*dto.Telefone)
	}
	if dto.Email != nil {
		c.Email = strings.TrimSpace(*dto.Email)
	}
	if dto.LembreteAtivo != nil {
		c.LembreteAtivo = *dto.LembreteAtivo
	}
	if dto.AliquotaImposto != nil {
		aliquota := *dto.AliquotaImposto
		if aliquota < 0 {
			aliquota = 0
		}
		c.AliquotaImposto = aliquota
		baseMudou = true
	}
	if baseMudou {
		c.RecalcularDerivados()
	}
}

// Validar confere as regras de negócio que a edição parcial pode violar.
func (dto *AtualizarContratoDTO) Validar() string {
	if dto.Cliente != nil && strings.TrimSpace(*dto.Cliente) == "" {
		return "cliente não pode ficar vazio"
	}
	if dto.ValorLocacao != nil && *dto.ValorLocacao <= 0 {
		return "valor de locação deve ser maior que zero"
	}
	if dto.Comissao != nil && *dto.Comissao <= 0 {
		return "comissão deve ser maior que zero"
	}
	return ""
}
