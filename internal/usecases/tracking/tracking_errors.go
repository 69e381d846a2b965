package tracking

import "github.com/pkg/errors"

var (
	ErrInvalidMonth      = errors.New("identificador de mês inválido, use o formato YYYY-MM")
	ErrAssociateNotFound = errors.New("associado não encontrado")
	ErrUnknownMetric     = errors.New("métrica desconhecida")
	ErrNegativeValue     = errors.New("valor de métrica não pode ser negativo")
	ErrEmptyName         = errors.New("nome do associado é obrigatório")
)
