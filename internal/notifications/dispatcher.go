package notifications

import (
	"sync"

	"aircnc/pkg/logger"
)

// Notifier accepts a notification without blocking the caller. Delivery is
// best-effort; failures are logged and never reach the HTTP response.
type Notifier interface {
	Notify(n Notification)
}

// Dispatcher queues notifications and delivers them on a background worker,
// decoupling the mail relay from the request path.
type Dispatcher struct {
	mailer Mailer
	queue  chan Notification
	log    *logger.Logger
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(mailer Mailer, queueSize int, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		mailer: mailer,
		queue:  make(chan Notification, queueSize),
		log:    log,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) Notify(n Notification) {
	select {
	case d.queue <- n:
	default:
		d.log.Warn("Notification queue full, dropping notification",
			"to", n.To,
			"subject", n.Subject,
		)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for n := range d.queue {
		if err := d.mailer.Send(n); err != nil {
			d.log.Error("Failed to send notification email",
				"to", n.To,
				"subject", n.Subject,
				"error", err,
			)
			continue
		}
		d.log.Info("Notification email sent", "to", n.To, "subject", n.Subject)
	}
}

// Stop drains the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

// NopMailer is used when no mail relay is configured.
type NopMailer struct {
	log *logger.Logger
}

func NewNopMailer(log *logger.Logger) *NopMailer {
	return &NopMailer{log: log}
}

func (m *NopMailer) Send(n Notification) error {
	m.log.Debug("Mail relay not configured, skipping notification", "to", n.To)
	return nil
}
