package domain

import "time"

// MonthKeyLayout é o formato da chave de mês usado em toda a aplicação (YYYY-MM)
const MonthKeyLayout = "2006-01"

// MonthKey formata a data no identificador de mês (ex: "2025-08")
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// ValidMonthKey verifica se a string está no formato YYYY-MM
func ValidMonthKey(month string) bool {
	_, err := time.Parse(MonthKeyLayout, month)
	return err == nil
}

// TargetSet é a meta mensal por associado, indexada por métrica
type TargetSet map[Metric]int

// Associate representa um associado da equipe de vendas e seus contadores do mês
type Associate struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Metrics map[Metric]int `json:"metrics"`
}

// MonthState é o estado de um mês: metas vigentes e a lista ordenada de associados
type MonthState struct {
	Targets    TargetSet    `json:"targets"`
	Associates []*Associate `json:"associates"`
}

// Store mapeia identificador de mês (YYYY-MM) para o estado daquele mês
type Store map[string]*MonthState

// DefaultTargets retorna a meta mensal padrão por associado
func DefaultTargets() TargetSet {
	return TargetSet{
		MetricConnects:          300,
		MetricGeoData:           150,
		MetricBuyerAppointments: 20,
		MetricMarketAppraisals:  12,
		MetricListingsGenerated: 6,
	}
}

// NewMonthState cria um estado de mês vazio com as metas padrão
func NewMonthState() *MonthState {
	return &MonthState{
		Targets:    DefaultTargets(),
		Associates: []*Associate{},
	}
}

// NewAssociate cria um associado com todos os contadores zerados
func NewAssociate(id, name string) *Associate {
	metrics := make(map[Metric]int, len(MetricOrder))
	for _, metric := range MetricOrder {
		metrics[metric] = 0
	}

	return &Associate{
		ID:      id,
		Name:    name,
		Metrics: metrics,
	}
}

// Normalize garante que o associado tenha as cinco métricas preenchidas.
// Chaves ausentes são materializadas com zero na fronteira de desserialização,
// para que valores parciais nunca se propaguem pelo restante da aplicação.
func (a *Associate) Normalize() {
	if a.Metrics == nil {
		a.Metrics = make(map[Metric]int, len(MetricOrder))
	}

	for _, metric := range MetricOrder {
		if _, ok := a.Metrics[metric]; !ok {
			a.Metrics[metric] = 0
		}
	}
}

// Metric retorna o valor do contador, tratando chave ausente como zero
func (a *Associate) Metric(metric Metric) int {
	if a == nil || a.Metrics == nil {
		return 0
	}
	return a.Metrics[metric]
}

// Normalize completa metas e métricas ausentes no estado do mês
func (s *MonthState) Normalize() {
	if s.Targets == nil {
		s.Targets = DefaultTargets()
	}

	if s.Associates == nil {
		s.Associates = []*Associate{}
	}

	for _, associate := range s.Associates {
		associate.Normalize()
	}
}

// Associate busca um associado pelo ID; retorna nil quando não encontrado
func (s *MonthState) Associate(id string) *Associate {
	for _, associate := range s.Associates {
		if associate.ID == id {
			return associate
		}
	}
	return nil
}

// RemoveAssociate remove o associado pelo ID preservando a ordem da lista
func (s *MonthState) RemoveAssociate(id string) bool {
	for i, associate := range s.Associates {
		if associate.ID == id {
			s.Associates = append(s.Associates[:i], s.Associates[i+1:]...)
			return true
		}
	}
	return false
}

// Clone devolve uma cópia profunda do estado do mês
func (s *MonthState) Clone() *MonthState {
	if s == nil {
		return nil
	}

	clone := &MonthState{
		Targets:    make(TargetSet, len(s.Targets)),
		Associates: make([]*Associate, 0, len(s.Associates)),
	}

	for metric, target := range s.Targets {
		clone.Targets[metric] = target
	}

	for _, associate := range s.Associates {
		metrics := make(map[Metric]int, len(associate.Metrics))
		for metric, value := range associate.Metrics {
			metrics[metric] = value
		}

		clone.Associates = append(clone.Associates, &Associate{
			ID:      associate.ID,
			Name:    associate.Name,
			Metrics: metrics,
		})
	}

	return clone
}

// Normalize normaliza todos os meses do store
func (st Store) Normalize() {
	for _, state := range st {
		state.Normalize()
	}
}
