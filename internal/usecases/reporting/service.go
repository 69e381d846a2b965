// Package reporting deriva as visões agregadas de um mês: totais da equipe,
// metas da equipe, ranking e séries para os gráficos do painel.
package reporting

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vfg2006/sales-kpi-api/internal/domain"
)

// leaderboardSize é o tamanho fixo do ranking exibido no painel
const leaderboardSize = 5

// PercentOf calcula o percentual (arredondado) de actual sobre target,
// limitado a [0, 100]. Meta zero ou ausente resulta em 0, nunca em erro.
func PercentOf(actual, target int) int {
	if target <= 0 {
		return 0
	}

	percent := int(math.Round(100 * float64(actual) / float64(target)))

	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}

	return percent
}

// TeamTotals soma cada métrica entre todos os associados.
// Métrica ausente conta como zero.
func TeamTotals(associates []*domain.Associate) map[domain.Metric]int {
	totals := make(map[domain.Metric]int, len(domain.MetricOrder))

	for _, metric := range domain.MetricOrder {
		totals[metric] = 0
		for _, associate := range associates {
			totals[metric] += associate.Metric(metric)
		}
	}

	return totals
}

// TeamTargets escala a meta por associado pelo tamanho da equipe.
// O multiplicador nunca fica abaixo de 1: com a equipe vazia as metas
// continuam sendo as individuais, não zero.
func TeamTargets(targets domain.TargetSet, headcount int) map[domain.Metric]int {
	multiplier := headcount
	if multiplier < 1 {
		multiplier = 1
	}

	teamTargets := make(map[domain.Metric]int, len(domain.MetricOrder))
	for _, metric := range domain.MetricOrder {
		teamTargets[metric] = targets[metric] * multiplier
	}

	return teamTargets
}

// Progress calcula o progresso do associado: média dos percentuais de cada
// métrica contra a meta individual.
func Progress(associate *domain.Associate, targets domain.TargetSet) int {
	if len(domain.MetricOrder) == 0 {
		return 0
	}

	sum := 0
	for _, metric := range domain.MetricOrder {
		sum += PercentOf(associate.Metric(metric), targets[metric])
	}

	return int(math.Round(float64(sum) / float64(len(domain.MetricOrder))))
}

// Leaderboard ordena os associados por listagens geradas e, em empate, pelo
// progresso médio. A ordenação é estável; não há desempate além das duas
// chaves. Retorna no máximo as cinco primeiras posições.
func Leaderboard(associates []*domain.Associate, targets domain.TargetSet) []domain.LeaderboardEntry {
	entries := make([]domain.LeaderboardEntry, 0, len(associates))

	for _, associate := range associates {
		entries = append(entries, domain.LeaderboardEntry{
			AssociateID:       associate.ID,
			Name:              associate.Name,
			ListingsGenerated: associate.Metric(domain.MetricListingsGenerated),
			Progress:          Progress(associate, targets),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].ListingsGenerated != entries[j].ListingsGenerated {
			return entries[i].ListingsGenerated > entries[j].ListingsGenerated
		}
		return entries[i].Progress > entries[j].Progress
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

// ChartSeries monta a série realizado × meta da equipe na ordem fixa das métricas
func ChartSeries(state *domain.MonthState) []domain.MetricSeriesPoint {
	totals := TeamTotals(state.Associates)
	teamTargets := TeamTargets(state.Targets, len(state.Associates))

	series := make([]domain.MetricSeriesPoint, 0, len(domain.MetricOrder))
	for _, metric := range domain.MetricOrder {
		series = append(series, domain.MetricSeriesPoint{
			Metric: metric,
			Label:  metric.Label(),
			Actual: totals[metric],
			Target: teamTargets[metric],
		})
	}

	return series
}

// BuildReport agrega todas as visões derivadas de um mês
func BuildReport(month string, state *domain.MonthState) *domain.MonthReport {
	return &domain.MonthReport{
		Month:       month,
		Headcount:   len(state.Associates),
		Totals:      TeamTotals(state.Associates),
		TeamTargets: TeamTargets(state.Targets, len(state.Associates)),
		Leaderboard: Leaderboard(state.Associates, state.Targets),
		ChartSeries: ChartSeries(state),
	}
}

// SummaryText monta o bloco de texto legível do resumo diário: linha de
// título com o mês e o total de associados, depois uma linha por métrica
// com soma, meta da equipe e percentual.
func SummaryText(month string, state *domain.MonthState) string {
	totals := TeamTotals(state.Associates)
	teamTargets := TeamTargets(state.Targets, len(state.Associates))

	var b strings.Builder
	fmt.Fprintf(&b, "KPI Summary %s (%d associates)\n", month, len(state.Associates))

	for _, metric := range domain.MetricOrder {
		actual := totals[metric]
		target := teamTargets[metric]
		fmt.Fprintf(&b, "%s: %d / %d (%d%%)\n", metric.Label(), actual, target, PercentOf(actual, target))
	}

	return b.String()
}
