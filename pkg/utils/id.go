package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// AssociateIDPrefix é o prefixo fixo de todos os IDs de associado
	AssociateIDPrefix = "assoc_"

	characters       = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	fallbackIDLength = 8
)

// NewAssociateID gera um identificador único para um novo associado.
// Usa UUID aleatório; se a fonte de entropia falhar, cai para um sufixo
// nanoid mais timestamp. A unicidade é prática, não garantida: os IDs só
// são comparados por igualdade dentro da lista em memória de um processo.
func NewAssociateID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return AssociateIDPrefix + id.String()
	}

	suffix, err := gonanoid.Generate(characters, fallbackIDLength)
	if err != nil {
		suffix = "x"
	}

	return AssociateIDPrefix + suffix + strconv.FormatInt(time.Now().UnixMilli(), 36)
}
