package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"time"

	"gridsheet/contracts"

	json "github.com/bytedance/sonic"
)

const NotifierWorkersCount = 5

type notification struct {
	Webhook string
	Update  contracts.CellUpdate
}

// WebhookNotifier posts recalculated cell state to per-cell subscriber URLs
// through a small worker pool.
type WebhookNotifier struct {
	mu       sync.Mutex
	closed   bool
	pending  sync.WaitGroup
	queue    chan notification
	webhooks map[string]string
	codec    contracts.RefCodec
}

func NewWebhookNotifier(codec contracts.RefCodec) *WebhookNotifier {
	return &WebhookNotifier{
		queue:    make(chan notification, 20),
		webhooks: map[string]string{},
		codec:    codec,
	}
}

func (n *WebhookNotifier) Subscribe(label string, webhookUrl string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if webhookUrl == "" {
		delete(n.webhooks, label)
	} else {
		n.webhooks[label] = webhookUrl
	}
}

func (n *WebhookNotifier) WebhookUrl(label string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.webhooks[label]
}

// Notify is asynchronous; deliveries registered before Close starts are
// flushed into the queue, a Notify racing Close is dropped.
func (n *WebhookNotifier) Notify(updates []contracts.CellUpdate) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.pending.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.pending.Done()
		n.enqueue(updates)
	}()
}

func (n *WebhookNotifier) enqueue(updates []contracts.CellUpdate) {
	for _, update := range updates {
		webhook := n.WebhookUrl(n.codec.Encode(update.Ref.Row, update.Ref.Col))
		if webhook != "" {
			n.queue <- notification{Webhook: webhook, Update: update}
		}
	}
}

func (n *WebhookNotifier) Start() {
	for i := 0; i < NotifierWorkersCount; i++ {
		go n.runSenderWorker()
	}
}

func (n *WebhookNotifier) Close() {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	n.pending.Wait()
	close(n.queue)
}

func (n *WebhookNotifier) runSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for item := range n.queue {
		payload, _ := json.Marshal(item.Update)
		response, err := client.Post(item.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("unexpected webhook response status: %s\n", response.Status)
		}
	}
}
