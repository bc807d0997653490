package entities

import (
	"context"
	"fmt"
	"sync"

	"ordenes_xpto/pkg"

	"github.com/google/uuid"
)

var ErrRecipientNotFound = pkg.NewDomainErrorSimple("RECIPIENT_NOT_FOUND", "Recipient not found", pkg.KindNotFound)

// Notifiable is anything that can receive a broadcast text message.
type Notifiable interface {
	Notify(ctx context.Context, message string) error
}

// RecipientID is the handle returned when a recipient is registered.
// Removal goes through the handle, never through recipient equality.
type RecipientID string

type recipientEntry struct {
	id        RecipientID
	recipient Notifiable
}

// NotificationHub keeps an ordered list of recipients and broadcasts
// messages to them.
//
// Domain notes:
//   - Registration order is delivery order.
//   - No uniqueness: the same recipient registered twice is notified twice.
//   - Delivery is synchronous and fail-fast: the first recipient error
//     aborts the rest of the broadcast.
//
// The zero value is ready to use. A hub must not be copied after first use.
type NotificationHub struct {
	mu         sync.Mutex
	recipients []recipientEntry
}

func (h *NotificationHub) AddRecipient(r Notifiable) RecipientID {
	id := RecipientID(uuid.NewString())

	h.mu.Lock()
	defer h.mu.Unlock()
	h.recipients = append(h.recipients, recipientEntry{id: id, recipient: r})
	return id
}

func (h *NotificationHub) RemoveRecipient(id RecipientID) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, entry := range h.recipients {
		if entry.id == id {
			h.recipients = append(h.recipients[:i], h.recipients[i+1:]...)
			return nil
		}
	}
	return ErrRecipientNotFound
}

// NotifyRecipients delivers message to a snapshot of the current recipients.
func (h *NotificationHub) NotifyRecipients(ctx context.Context, message string) error {
	h.mu.Lock()
	snapshot := make([]recipientEntry, len(h.recipients))
	copy(snapshot, h.recipients)
	h.mu.Unlock()

	for _, entry := range snapshot {
		if err := entry.recipient.Notify(ctx, message); err != nil {
			return fmt.Errorf("notify recipient %s: %w", entry.id, err)
		}
	}
	return nil
}

// Recipients returns the registered handles in delivery order.
func (h *NotificationHub) Recipients() []RecipientID {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]RecipientID, 0, len(h.recipients))
	for _, entry := range h.recipients {
		ids = append(ids, entry.id)
	}
	return ids
}

func (h *NotificationHub) RecipientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.recipients)
}
