package mail

import "context"

//go:generate mockgen -destination=../mocks/mock_dispatcher.go -package=mocks github.com/hamoodahalabed/book-network/internal/mail Dispatcher

type TemplateName string

const (
	TemplateActivateAccount TemplateName = "activate_account"
)

// Message carries everything a template needs to render and send one email.
type Message struct {
	To             string
	Username       string
	Template       TemplateName
	ActivationURL  string
	ActivationCode string
	Subject        string
}

// Dispatcher sends templated emails. Implementations must be safe for
// concurrent use by multiple request handlers.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
