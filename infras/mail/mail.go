// Package mail delivers templated transactional email through one of several providers.
package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"strings"
	"sync"

	"lifecare/config"

	"github.com/rs/zerolog/log"
)

const (
	ProviderEmailJS  = "emailjs"
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
)

// Request is one templated send. ServiceID, TemplateID and PublicKey are the provider's
// identifiers; Params fills the template.
type Request struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	Params     map[string]string
}

// Provider sends templated email. Init prepares the provider once per process; later
// calls are ignored. Send reports the provider's HTTP-equivalent status code.
type Provider interface {
	Init(publicKey string)
	Send(ctx context.Context, req Request) (int, error)
}

// New returns the provider selected by MAIL_PROVIDER, defaulting to EmailJS.
func New(cfg *config.Config) Provider {
	mailCfg := cfg.External.Mail

	switch strings.ToLower(mailCfg.Provider) {
	case ProviderSendGrid:
		return NewSendGrid(cfg.App.Name, mailCfg.Recipient)
	case ProviderSES:
		return NewSES(mailCfg.SES.Region, mailCfg.SES.SecretAccessKey, mailCfg.Recipient)
	case ProviderEmailJS, "":
		return NewEmailJS(mailCfg.EmailJS.Endpoint, mailCfg.EmailJS.AccessToken)
	default:
		log.Warn().Str("provider", mailCfg.Provider).Msg("unknown mail provider, using emailjs")

		return NewEmailJS(mailCfg.EmailJS.Endpoint, mailCfg.EmailJS.AccessToken)
	}
}

// initOnce records the public key handed to the first Init call.
type initOnce struct {
	once      sync.Once
	publicKey string
}

func (i *initOnce) init(publicKey string, setup func(publicKey string)) {
	if publicKey == "" {
		return
	}

	i.once.Do(func() {
		i.publicKey = publicKey
		if setup != nil {
			setup(publicKey)
		}
	})
}

// key prefers the key carried by the request over the one given to Init.
func (i *initOnce) key(req Request) string {
	if req.PublicKey != "" {
		return req.PublicKey
	}

	return i.publicKey
}
