package repository

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-kpi-api/internal/domain"
)

const kpiStoreKey = "kpi_store"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KPIStoreRepository persiste o Store de KPIs inteiro sob uma única chave
type KPIStoreRepository interface {
	LoadStore() (domain.Store, error)
	SaveStore(store domain.Store) error
}

type kpiStoreRepository struct {
	state AppStateRepository
}

func NewKPIStoreRepository(state AppStateRepository) KPIStoreRepository {
	return &kpiStoreRepository{
		state: state,
	}
}

// LoadStore carrega o Store persistido. Conteúdo ausente resulta em um store
// vazio; conteúdo ilegível é descartado com aviso e também resulta em um
// store vazio — falha de leitura nunca é propagada como erro de parse.
func (r *kpiStoreRepository) LoadStore() (domain.Store, error) {
	raw, err := r.state.Get(kpiStoreKey)
	if err != nil {
		return nil, err
	}

	if raw == "" {
		return domain.Store{}, nil
	}

	store := domain.Store{}
	if err := json.UnmarshalFromString(raw, &store); err != nil {
		logrus.WithError(err).Warn("Store de KPIs persistido é ilegível, usando store vazio")
		return domain.Store{}, nil
	}

	store.Normalize()

	return store, nil
}

func (r *kpiStoreRepository) SaveStore(store domain.Store) error {
	raw, err := json.MarshalToString(store)
	if err != nil {
		return err
	}

	return r.state.Set(kpiStoreKey, raw)
}
