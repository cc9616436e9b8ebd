package formatters

import (
	"strings"

	"github.com/shopspring/decimal"
)

var cem = decimal.NewFromInt(100)

// apenasDigitos remove tudo que não for dígito da entrada.
func apenasDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// agruparMilhares insere pontos de milhar na parte inteira ("2500" -> "2.500").
func agruparMilhares(inteiro string) string {
	n := len(inteiro)
	if n <= 3 {
		return inteiro
	}
	var b strings.Builder
	resto := n % 3
	if resto > 0 {
		b.WriteString(inteiro[:resto])
	}
	for i := resto; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(inteiro[i : i+3])
	}
	return b.String()
}

// MascararMoeda aplica a máscara pt-BR de moeda sobre o que foi digitado.
// Os dígitos da entrada representam centavos: "250000" -> "2.500,00".
// Entrada sem dígitos retorna string vazia.
func MascararMoeda(entrada string) string {
	digitos := apenasDigitos(entrada)
	if digitos == "" {
		return ""
	}
	centavos, err := decimal.NewFromString(digitos)
	if err != nil {
		return ""
	}
	valor := centavos.Div(cem)
	fixo := valor.StringFixed(2) // sempre duas casas, separador "."
	partes := strings.SplitN(fixo, ".", 2)
	return agruparMilhares(partes[0]) + "," + partes[1]
}

// ParseMoeda desfaz a máscara e retorna o valor numérico.
// "2.500,00" -> 2500.00. Entrada sem dígitos retorna 0.
func ParseMoeda(entrada string) float64 {
	digitos := apenasDigitos(entrada)
	if digitos == "" {
		return 0
	}
	centavos, err := decimal.NewFromString(digitos)
	if err != nil {
		return 0
	}
	f, _ := centavos.Div(cem).Float64()
	return f
}

// FormatarMoedaBRL formata um valor para exibição: 2500.0 -> "R$ 2.500,00".
func FormatarMoedaBRL(valor float64) string {
	d := decimal.NewFromFloat(valor)
	negativo := d.IsNegative()
	if negativo {
		d = d.Neg()
	}
	fixo := d.StringFixed(2)
	partes := strings.SplitN(fixo, ".", 2)
	s := "R$ " + agruparMilhares(partes[0]) + "," + partes[1]
	if negativo {
		s = "-" + s
	}
	return s
}
