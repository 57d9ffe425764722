package relay

import (
	"context"
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/kohinoor-interiors/showroom/internal/models"
)

// Notifier tells staff that a quote request arrived.
type Notifier interface {
	Notify(ctx context.Context, q *models.QuoteRequest) error
}

// LogNotifier writes the request to the log. It is used when no SMTP server
// is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(_ context.Context, q *models.QuoteRequest) error {
	n.Logger.Info("new quote request",
		zap.String("id", q.PublicID),
		zap.String("name", q.FullName),
		zap.String("email", q.Email),
		zap.String("phone", q.Phone),
		zap.String("project_type", string(q.ProjectType)))
	return nil
}

// mailSender delivers composed messages. *mail.Client satisfies it.
type mailSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier emails staff a plain-text summary with Reply-To set to the
// requester so staff can answer directly.
type SMTPNotifier struct {
	From   string
	To     string
	addr   string
	sender mailSender
}

// NewSMTPNotifier returns a notifier that delivers through host:port. STARTTLS
// is used when the server offers it; auth is PLAIN when user is set.
func NewSMTPNotifier(host string, port int, user, pass, from, to string) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(pass))
	}
	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client for %s: %w", host, err)
	}
	return &SMTPNotifier{
		From:   from,
		To:     to,
		addr:   fmt.Sprintf("%s:%d", host, port),
		sender: client,
	}, nil
}

func (n *SMTPNotifier) Notify(ctx context.Context, q *models.QuoteRequest) error {
	msg, err := ComposeMessage(n.From, n.To, q)
	if err != nil {
		return err
	}
	if err := n.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", n.addr, err)
	}
	return nil
}

// ComposeMessage builds the message sent to staff. Non-ASCII header values
// such as the requester's name are RFC 2047 encoded by go-mail.
func ComposeMessage(from, to string, q *models.QuoteRequest) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("mail from %q: %w", from, err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("mail to %q: %w", to, err)
	}
	// A Reply-To the parser rejects is left off; staff still get the address
	// in the body.
	replyTo := netmail.Address{Name: oneLine(q.FullName), Address: q.Email}
	_ = m.ReplyTo(replyTo.String())

	m.Subject("New quote request from " + oneLine(q.FullName))
	m.SetDateWithValue(q.ReceivedAt)

	var b strings.Builder
	fmt.Fprintf(&b, "Reference:    %s\n", q.PublicID)
	fmt.Fprintf(&b, "Name:         %s\n", q.FullName)
	fmt.Fprintf(&b, "Email:        %s\n", q.Email)
	fmt.Fprintf(&b, "Phone:        %s\n", q.Phone)
	fmt.Fprintf(&b, "Project type: %s\n", q.ProjectType.Label())
	b.WriteString("\n")
	b.WriteString(q.Message)
	b.WriteString("\n")
	m.SetBodyString(mail.TypeTextPlain, b.String())
	return m, nil
}

// oneLine folds CR/LF so user input cannot start a new header.
func oneLine(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
