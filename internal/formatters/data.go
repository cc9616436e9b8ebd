package formatters

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var nomesMeses = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// ParseData interpreta uma data no formato "DD/MM/AAAA".
// Retorna ok=false para formato inválido ou data inexistente (ex: 31/02/2025);
// quem chama decide o que fazer com a falha.
func ParseData(s string) (time.Time, bool) {
	if len(s) != 10 || s[2] != '/' || s[5] != '/' {
		return time.Time{}, false
	}
	dia, err1 := strconv.Atoi(s[0:2])
	mes, err2 := strconv.Atoi(s[3:5])
	ano, err3 := strconv.Atoi(s[6:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if mes < 1 || mes > 12 {
		return time.Time{}, false
	}
	t := time.Date(ano, time.Month(mes), dia, 0, 0, 0, 0, time.Local)
	// time.Date normaliza datas inexistentes; confere se nada mudou
	if t.Day() != dia || t.Month() != time.Month(mes) || t.Year() != ano {
		return time.Time{}, false
	}
	return t, true
}

// DataParaISO converte "DD/MM/AAAA" para "AAAA-MM-DD". Entrada inválida vira "".
func DataParaISO(s string) string {
	partes := strings.Split(s, "/")
	if len(partes) != 3 {
		return ""
	}
	return partes[2] + "-" + partes[1] + "-" + partes[0]
}

// DataDeISO converte "AAAA-MM-DD" para "DD/MM/AAAA". Entrada inválida vira "".
func DataDeISO(s string) string {
	partes := strings.Split(s, "-")
	if len(partes) != 3 {
		return ""
	}
	return partes[2] + "/" + partes[1] + "/" + partes[0]
}

// MascararData aplica a máscara "DD/MM/AAAA" progressivamente sobre o digitado.
func MascararData(entrada string) string {
	v := apenasDigitos(entrada)
	if len(v) > 8 {
		v = v[:8]
	}
	switch {
	case len(v) > 4:
		return v[0:2] + "/" + v[2:4] + "/" + v[4:]
	case len(v) > 2:
		return v[0:2] + "/" + v[2:]
	default:
		return v
	}
}

// FormatarMesAno produz o rótulo de mês usado nos gráficos: "Janeiro 2025".
func FormatarMesAno(t time.Time) string {
	return fmt.Sprintf("%s %d", nomesMeses[int(t.Month())-1], t.Year())
}

// ParseMesAno desfaz FormatarMesAno, para ordenação cronológica dos rótulos.
func ParseMesAno(s string) (time.Time, bool) {
	partes := strings.Fields(s)
	if len(partes) != 2 {
		return time.Time{}, false
	}
	ano, err := strconv.Atoi(partes[1])
	if err != nil {
		return time.Time{}, false
	}
	for i, nome := range nomesMeses {
		if strings.EqualFold(nome, partes[0]) {
			return time.Date(ano, time.Month(i+1), 1, 0, 0, 0, 0, time.Local), true
		}
	}
	return time.Time{}, false
}
