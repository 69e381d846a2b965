// Package webhook implementa o cliente HTTP que entrega o resumo diário
// a um endpoint configurado pelo usuário.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SummaryPayload é o corpo JSON enviado ao webhook configurado
type SummaryPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	CSV     string `json:"csv"`
	Month   string `json:"month"`
}

type Client interface {
	SendSummary(ctx context.Context, endpoint string, payload SummaryPayload) error
}

type HTTPClient struct {
	httpClient *http.Client
}

func NewClient() Client {
	return &HTTPClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendSummary faz um único POST para o endpoint. Qualquer status fora da
// faixa 2xx é tratado como falha; o corpo da resposta não é interpretado.
// Não há retentativa — a política de envio é uma tentativa por disparo.
func (c *HTTPClient) SendSummary(ctx context.Context, endpoint string, payload SummaryPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao codificar o corpo da requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return nil
}
