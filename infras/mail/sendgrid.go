package mail

import (
	"context"
	"fmt"
	"sync"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridSendPath = "/v3/mail/send"

// SendGrid sends through a SendGrid dynamic template. ServiceID is the verified sender
// address and PublicKey the API key.
type SendGrid struct {
	initOnce
	fromName  string
	recipient string
	host      string

	mu     sync.Mutex
	client *sendgrid.Client
}

func NewSendGrid(fromName, recipient string) *SendGrid {
	return &SendGrid{fromName: fromName, recipient: recipient}
}

func (s *SendGrid) Init(publicKey string) {
	s.init(publicKey, func(key string) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.client = s.newClient(key)
	})
}

func (s *SendGrid) newClient(key string) *sendgrid.Client {
	client := sendgrid.NewSendClient(key)
	if s.host != "" {
		client.BaseURL = s.host + sendGridSendPath
	}

	return client
}

func (s *SendGrid) clientFor(req Request) *sendgrid.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.PublicKey != "" && req.PublicKey != s.publicKey {
		return s.newClient(req.PublicKey)
	}

	if s.client == nil {
		s.client = s.newClient(s.key(req))
	}

	return s.client
}

func (s *SendGrid) Send(ctx context.Context, req Request) (int, error) {
	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(s.fromName, req.ServiceID))
	message.SetTemplateID(req.TemplateID)

	personalization := sgmail.NewPersonalization()
	personalization.AddTos(sgmail.NewEmail(s.fromName, s.recipient))
	for key, value := range req.Params {
		personalization.SetDynamicTemplateData(key, value)
	}
	message.AddPersonalizations(personalization)

	if replyTo := req.Params["reply_to"]; replyTo != "" {
		message.SetReplyTo(sgmail.NewEmail(req.Params["from_name"], replyTo))
	}

	resp, err := s.clientFor(req).SendWithContext(ctx, message)
	if err != nil {
		return 0, fmt.Errorf("sending sendgrid mail: %w", err)
	}

	return resp.StatusCode, nil
}
