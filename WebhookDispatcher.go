package main

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"spreadsheetEngine/contracts"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Payload []byte
}

// WebhookDispatcher delivers cell-change notifications: subscriptions
// are kept per cell id, deliveries run on a small worker pool, and a
// payload identical to the previously delivered one is skipped.
type WebhookDispatcher struct {
	serializer contracts.CellSerializer

	mutex    sync.RWMutex
	webhooks map[string]string
	lastSent map[string]string

	queue chan WebhookSendCommand
}

func NewWebhookDispatcher(serializer contracts.CellSerializer) *WebhookDispatcher {
	return &WebhookDispatcher{
		serializer: serializer,
		webhooks:   map[string]string{},
		lastSent:   map[string]string{},
		queue:      make(chan WebhookSendCommand, 20),
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(cellId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, cellId)
		delete(manager.lastSent, cellId)
	} else {
		manager.webhooks[cellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(cellId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[cellId]
}

func (manager *WebhookDispatcher) SubscribedCells() []string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	cells := make([]string, 0, len(manager.webhooks))
	for cellId := range manager.webhooks {
		cells = append(cells, cellId)
	}
	return cells
}

func (manager *WebhookDispatcher) Notify(cells []*contracts.CellPayload) {
	commands := manager.collectCommands(cells)
	if len(commands) > 0 {
		go manager.addToQueue(commands)
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) collectCommands(cells []*contracts.CellPayload) []WebhookSendCommand {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	commands := make([]WebhookSendCommand, 0, len(cells))
	for _, cell := range cells {
		webhook, ok := manager.webhooks[cell.CellId]
		if !ok {
			continue
		}

		payload, err := manager.serializer.Marshal(cell)
		if err != nil {
			continue
		}
		if manager.lastSent[cell.CellId] == string(payload) {
			continue
		}
		manager.lastSent[cell.CellId] = string(payload)

		commands = append(commands, WebhookSendCommand{Webhook: webhook, Payload: payload})
	}

	return commands
}

func (manager *WebhookDispatcher) addToQueue(commands []WebhookSendCommand) {
	for _, command := range commands {
		manager.queue <- command
	}
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		response, err = client.Post(command.Webhook, "application/json", bytes.NewReader(command.Payload))

		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			_, _ = fmt.Fprintf(os.Stderr, "Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}
