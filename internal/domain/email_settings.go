package domain

const (
	// DefaultSummaryRecipient é o destinatário usado quando nenhum foi configurado
	DefaultSummaryRecipient = "equipe.vendas@ivendas.com.br"

	// DefaultSendHour é a hora local padrão do envio do resumo diário
	DefaultSendHour = 18
)

// EmailSettings guarda a configuração de envio do resumo diário.
// Persistida de forma independente do Store de KPIs.
type EmailSettings struct {
	To            string `json:"to"`
	WebhookURL    string `json:"webhookUrl,omitempty"`
	SendHourLocal int    `json:"sendHourLocal"`
}

// DefaultEmailSettings retorna a configuração de fallback
func DefaultEmailSettings() EmailSettings {
	return EmailSettings{
		To:            DefaultSummaryRecipient,
		SendHourLocal: DefaultSendHour,
	}
}

// Normalize substitui campos vazios ou inválidos pelos padrões
func (e *EmailSettings) Normalize() {
	if e.To == "" {
		e.To = DefaultSummaryRecipient
	}

	if e.SendHourLocal < 0 || e.SendHourLocal > 23 {
		e.SendHourLocal = DefaultSendHour
	}
}
