package service

import (
	"context"

	"github.com/alexanderramin/nexus/internal/domain"
	"github.com/google/uuid"
)

// NoticeVariant tells the presentation layer how to style a notice.
type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeSuccess     NoticeVariant = "success"
	NoticeInfo        NoticeVariant = "info"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a user-visible confirmation raised by the record store.
type Notice struct {
	ID       string
	Title    string
	Message  string
	Variant  NoticeVariant
	Kind     domain.Kind
	RecordID int
}

// Notifier delivers notices to the user. The store calls it synchronously
// after a mutation has been applied.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NoopNotifier drops every notice.
type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, Notice) {}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

func newNotice(title, message string, variant NoticeVariant) Notice {
	return Notice{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
		Variant: variant,
	}
}
