package email

import (
	"context"

	"refspring/internal/clients/mail"
)

// MailClient delivers rendered messages
type MailClient interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}
