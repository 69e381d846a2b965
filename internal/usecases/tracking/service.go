// Package tracking é o dono do Store mensal de KPIs: mantém o estado em
// memória, aplica as mutações disparadas pelo painel e grava cada mudança
// de volta na persistência (write-through).
package tracking

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/infrastructure/repository"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
	"github.com/vfg2006/sales-kpi-api/pkg/utils"
)

// Nomes dos associados de exemplo criados na primeira execução
var seedAssociateNames = []string{"Ana Souza", "Bruno Lima", "Carla Mendes"}

// Tracker expõe as operações sobre o Store mensal de KPIs
type Tracker interface {
	GetMonth(month string) (*domain.MonthState, error)
	SetTargets(month string, targets domain.TargetSet) (*domain.MonthState, error)
	AddAssociate(month, name string) (*domain.Associate, error)
	UpdateMetric(month, associateID string, metric domain.Metric, value int) (*domain.Associate, error)
	RemoveAssociate(month, associateID string) error
	ReplaceMonth(month string, state *domain.MonthState) error
}

// Service implementa Tracker sobre um Store carregado uma única vez no boot.
// O estado é explicitamente possuído por este serviço e protegido por mutex;
// não há singleton de processo.
type Service struct {
	mu    sync.RWMutex
	store domain.Store
	repo  repository.KPIStoreRepository
}

// NewService carrega o Store persistido. Em falha de leitura o serviço parte
// de um store vazio sem semear nem gravar nada: o store real pode ainda
// existir no banco e não pode ser sobrescrito por causa de uma falha
// transitória de leitura. A semente com três associados de exemplo só
// acontece na primeira execução de fato, quando a leitura teve sucesso e
// voltou vazia.
func NewService(repo repository.KPIStoreRepository) *Service {
	store, err := repo.LoadStore()
	if err != nil {
		logrus.WithError(err).Warn("Falha ao carregar o store de KPIs, iniciando vazio")
		store = domain.Store{}
	}

	service := &Service{
		store: store,
		repo:  repo,
	}

	if err == nil && len(store) == 0 {
		service.seedFirstRun()
	}

	return service
}

// seedFirstRun cria o mês corrente com associados de exemplo
func (s *Service) seedFirstRun() {
	month := domain.MonthKey(time.Now())
	state := domain.NewMonthState()

	for _, name := range seedAssociateNames {
		state.Associates = append(state.Associates, domain.NewAssociate(utils.NewAssociateID(), name))
	}

	s.store[month] = state
	s.persistBestEffort()

	logrus.WithFields(logrus.Fields{
		"month":      month,
		"associates": len(state.Associates),
	}).Info("Primeira execução: mês corrente semeado com associados de exemplo")
}

// GetMonth retorna o estado do mês. Mês ausente resulta em um estado novo
// com as metas padrão, sem gravar nada.
func (s *Service) GetMonth(month string) (*domain.MonthState, error) {
	if !domain.ValidMonthKey(month) {
		return nil, ErrInvalidMonth
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.store[month]
	if !ok {
		return domain.NewMonthState(), nil
	}

	return state.Clone(), nil
}

func (s *Service) SetTargets(month string, targets domain.TargetSet) (*domain.MonthState, error) {
	if !domain.ValidMonthKey(month) {
		return nil, ErrInvalidMonth
	}

	for metric, value := range targets {
		if !metric.Valid() {
			return nil, ErrUnknownMetric
		}
		if value < 0 {
			return nil, ErrNegativeValue
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensureMonth(month)
	for _, metric := range domain.MetricOrder {
		if value, ok := targets[metric]; ok {
			state.Targets[metric] = value
		}
	}

	s.persistBestEffort()

	return state.Clone(), nil
}

func (s *Service) AddAssociate(month, name string) (*domain.Associate, error) {
	if !domain.ValidMonthKey(month) {
		return nil, ErrInvalidMonth
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensureMonth(month)
	associate := domain.NewAssociate(utils.NewAssociateID(), name)
	state.Associates = append(state.Associates, associate)

	s.persistBestEffort()

	logrus.WithFields(logrus.Fields{
		"month":        month,
		"associate_id": associate.ID,
	}).Info("Associado criado")

	clone := *associate
	return &clone, nil
}

func (s *Service) UpdateMetric(month, associateID string, metric domain.Metric, value int) (*domain.Associate, error) {
	if !domain.ValidMonthKey(month) {
		return nil, ErrInvalidMonth
	}
	if !metric.Valid() {
		return nil, ErrUnknownMetric
	}
	if value < 0 {
		return nil, ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensureMonth(month)
	associate := state.Associate(associateID)
	if associate == nil {
		return nil, ErrAssociateNotFound
	}

	associate.Metrics[metric] = value

	s.persistBestEffort()

	clone := *associate
	return &clone, nil
}

func (s *Service) RemoveAssociate(month, associateID string) error {
	if !domain.ValidMonthKey(month) {
		return ErrInvalidMonth
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.ensureMonth(month)
	if !state.RemoveAssociate(associateID) {
		return ErrAssociateNotFound
	}

	s.persistBestEffort()

	logrus.WithFields(logrus.Fields{
		"month":        month,
		"associate_id": associateID,
	}).Info("Associado removido")

	return nil
}

// ReplaceMonth substitui integralmente o estado do mês (caminho de importação)
func (s *Service) ReplaceMonth(month string, state *domain.MonthState) error {
	if !domain.ValidMonthKey(month) {
		return ErrInvalidMonth
	}

	state.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[month] = state.Clone()

	s.persistBestEffort()

	logrus.WithFields(logrus.Fields{
		"month":      month,
		"associates": len(state.Associates),
	}).Info("Estado do mês substituído por importação")

	return nil
}

// ensureMonth devolve o estado do mês, criando o padrão se ausente.
// Chamar somente com o lock de escrita em posse.
func (s *Service) ensureMonth(month string) *domain.MonthState {
	state, ok := s.store[month]
	if !ok {
		state = domain.NewMonthState()
		s.store[month] = state
	}

	return state
}

// persistBestEffort grava o Store inteiro de volta na persistência.
// Política explícita de melhor esforço: falha de escrita é registrada em log
// e nunca propagada, a mutação em memória permanece válida.
// Chamar somente com o lock em posse.
func (s *Service) persistBestEffort() {
	if err := s.repo.SaveStore(s.store); err != nil {
		logrus.WithError(err).Error("Falha ao persistir o store de KPIs (melhor esforço, mutação mantida em memória)")
	}
}
