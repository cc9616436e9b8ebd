package dashboard

import (
	"sort"
	"time"

	"github.com/CorretorPro/api-corretor/internal/formatters"
)

// StatusTodos desliga o filtro por status de recebimento.
const StatusTodos = "Todos"

// Filtro são os critérios de listagem do painel. Mes e Ano em zero
// significam "todos os períodos".
type Filtro struct {
	Status string
	Mes    int
	Ano    int
}

// Filtrar aplica status, mês e ano sobre a data relevante de cada registro,
// preservando a ordem de entrada. Registro com data relevante que não parseia
// é julgado só pelo status.
func Filtrar(regs []Registro, f Filtro) []Registro {
	out := make([]Registro, 0, len(regs))
	for _, r := range regs {
		statusOK := f.Status == "" || f.Status == StatusTodos || r.StatusRecebimento == f.Status

		data, ok := formatters.ParseData(r.DataRelevante)
		if !ok {
			if statusOK {
				out = append(out, r)
			}
			continue
		}
		mesOK := f.Mes == 0 || int(data.Month()) == f.Mes
		anoOK := f.Ano == 0 || data.Year() == f.Ano
		if statusOK && mesOK && anoOK {
			out = append(out, r)
		}
	}
	return out
}

// Paginar devolve a página pedida (1-indexada) da lista já filtrada.
// Página fora do alcance devolve lista vazia, nunca erro.
func Paginar(regs []Registro, pagina, porPagina int) []Registro {
	if pagina < 1 || porPagina < 1 {
		return []Registro{}
	}
	inicio := (pagina - 1) * porPagina
	if inicio >= len(regs) {
		return []Registro{}
	}
	fim := inicio + porPagina
	if fim > len(regs) {
		fim = len(regs)
	}
	return regs[inicio:fim]
}

// Resumo agrega os KPIs do painel. Comissões "total" e "recebida" são líquidas;
// a bruta entra apenas no cálculo da taxa efetiva de imposto.
type Resumo struct {
	Quantidade       int     `json:"quantidade"`
	ValorTotal       float64 `json:"valorTotal"`
	ComissaoTotal    float64 `json:"comissaoTotal"`
	ComissaoRecebida float64 `json:"comissaoRecebida"`
	RetornoMedio     float64 `json:"retornoMedio"`
	ComissaoBruta    float64 `json:"comissaoBruta"`
	ImpostoRetido    float64 `json:"impostoRetido"`
	TaxaEfetiva      float64 `json:"taxaEfetiva"`
}

// liquida devolve a comissão líquida gravada, ou a recalcula para registros
// antigos que ainda não a tenham.
func liquida(r Registro) float64 {
	if r.ComissaoLiquida != 0 {
		return r.ComissaoLiquida
	}
	return r.Comissao * (1 - r.AliquotaImposto/100)
}

// Agregar computa os totais do painel. Sobre lista vazia tudo é zero.
func Agregar(regs []Registro) Resumo {
	var res Resumo
	res.Quantidade = len(regs)
	for _, r := range regs {
		liq := liquida(r)
		res.ValorTotal += r.Valor
		res.ComissaoTotal += liq
		res.ComissaoBruta += r.Comissao
		res.ImpostoRetido += r.Comissao - liq
		if r.StatusRecebimento == recebimentoSim {
			res.ComissaoRecebida += liq
		}
	}
	if res.ValorTotal > 0 {
		res.RetornoMedio = res.ComissaoTotal / res.ValorTotal * 100
	}
	if res.ComissaoBruta > 0 {
		res.TaxaEfetiva = res.ImpostoRetido / res.ComissaoBruta * 100
	}
	return res
}

const (
	recebimentoSim = "Sim"
	recebimentoNao = "Não"
)

// PontoMensal é um balde do gráfico de fechamentos: rótulo "Janeiro 2025".
type PontoMensal struct {
	Mes        string `json:"mes"`
	Quantidade int    `json:"quantidade"`
}

// FechamentosPorMes conta registros por mês da data relevante, em ordem
// cronológica crescente. Datas que não parseiam ficam de fora.
func FechamentosPorMes(regs []Registro) []PontoMensal {
	baldes := map[time.Time]int{}
	for _, r := range regs {
		data, ok := formatters.ParseData(r.DataRelevante)
		if !ok {
			continue
		}
		chave := time.Date(data.Year(), data.Month(), 1, 0, 0, 0, 0, time.Local)
		baldes[chave]++
	}
	chaves := make([]time.Time, 0, len(baldes))
	for k := range baldes {
		chaves = append(chaves, k)
	}
	sort.Slice(chaves, func(i, j int) bool { return chaves[i].Before(chaves[j]) })

	pontos := make([]PontoMensal, len(chaves))
	for i, k := range chaves {
		pontos[i] = PontoMensal{Mes: formatters.FormatarMesAno(k), Quantidade: baldes[k]}
	}
	return pontos
}

// PontoComissao é um balde do detalhamento de comissões por mês (valor bruto).
type PontoComissao struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

// SerieComissoes separa comissões recebidas das projetadas, por mês da data
// de recebimento.
type SerieComissoes struct {
	Recebidas  []PontoComissao `json:"recebidas"`
	Projetadas []PontoComissao `json:"projetadas"`
}

// ComissoesPorMes agrupa a comissão bruta por mês de recebimento: recebidas
// (status "Sim") e projetadas (status "Não" com data de hoje em diante).
// Pendências vencidas não entram na projeção.
func ComissoesPorMes(regs []Registro, hoje time.Time) SerieComissoes {
	hoje = time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.Local)

	recebidas := map[time.Time]float64{}
	projetadas := map[time.Time]float64{}
	for _, r := range regs {
		data, ok := formatters.ParseData(r.DataRecebimento)
		if !ok {
			continue
		}
		chave := time.Date(data.Year(), data.Month(), 1, 0, 0, 0, 0, time.Local)
		switch {
		case r.StatusRecebimento == recebimentoSim:
			recebidas[chave] += r.Comissao
		case r.StatusRecebimento == recebimentoNao && !data.Before(hoje):
			projetadas[chave] += r.Comissao
		}
	}
	return SerieComissoes{
		Recebidas:  ordenarPontos(recebidas),
		Projetadas: ordenarPontos(projetadas),
	}
}

func ordenarPontos(baldes map[time.Time]float64) []PontoComissao {
	chaves := make([]time.Time, 0, len(baldes))
	for k := range baldes {
		chaves = append(chaves, k)
	}
	sort.Slice(chaves, func(i, j int) bool { return chaves[i].Before(chaves[j]) })
	pontos := make([]PontoComissao, len(chaves))
	for i, k := range chaves {
		pontos[i] = PontoComissao{Mes: formatters.FormatarMesAno(k), Valor: baldes[k]}
	}
	return pontos
}
