package contracts

// ChangeNotifier delivers recalculated cell state to subscribers.
type ChangeNotifier interface {
	Subscribe(label string, webhookUrl string)
	WebhookUrl(label string) string
	Notify(updates []CellUpdate)
	Start()
	Close()
}
