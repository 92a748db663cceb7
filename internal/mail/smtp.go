package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	gomail "github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPDispatcher renders the embedded HTML templates and delivers them over
// SMTP. It dials a fresh connection per send, which is fine at registration
// volumes.
type SMTPDispatcher struct {
	cfg       SMTPConfig
	templates *template.Template
}

func NewSMTPDispatcher(cfg SMTPConfig) (*SMTPDispatcher, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &SMTPDispatcher{cfg: cfg, templates: tmpl}, nil
}

func (d *SMTPDispatcher) Send(ctx context.Context, msg Message) error {
	var body bytes.Buffer
	if err := d.templates.ExecuteTemplate(&body, string(msg.Template)+".html", msg); err != nil {
		return fmt.Errorf("failed to render template %s: %w", msg.Template, err)
	}

	m := gomail.NewMsg()
	if err := m.From(d.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, body.String())

	opts := []gomail.Option{
		gomail.WithPort(d.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if d.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(d.cfg.Username),
			gomail.WithPassword(d.cfg.Password),
		)
	}

	client, err := gomail.NewClient(d.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, m)
}
