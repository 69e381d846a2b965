package domain

// MetricSeriesPoint é um ponto da série do gráfico: realizado versus meta da equipe
type MetricSeriesPoint struct {
	Metric Metric `json:"metric"`
	Label  string `json:"label"`
	Actual int    `json:"actual"`
	Target int    `json:"target"`
}

// LeaderboardEntry é uma posição do ranking de associados do mês
type LeaderboardEntry struct {
	Position          int    `json:"position"`
	AssociateID       string `json:"associateId"`
	Name              string `json:"name"`
	ListingsGenerated int    `json:"listingsGenerated"`
	Progress          int    `json:"progress"`
}

// MonthReport agrega as visões derivadas de um mês para o painel
type MonthReport struct {
	Month       string              `json:"month"`
	Headcount   int                 `json:"headcount"`
	Totals      map[Metric]int      `json:"totals"`
	TeamTargets map[Metric]int      `json:"teamTargets"`
	Leaderboard []LeaderboardEntry  `json:"leaderboard"`
	ChartSeries []MetricSeriesPoint `json:"chartSeries"`
}
