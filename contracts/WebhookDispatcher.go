package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(cellId string, webhookUrl string)
	GetWebhookUrl(cellId string) string
	SubscribedCells() []string

	// Notify enqueues payloads for delivery; unchanged payloads are skipped.
	Notify(cells []*CellPayload)

	Start()
	Close()
}
