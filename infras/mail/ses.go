package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SES sends through an Amazon SES stored template. ServiceID is the verified sender
// address and PublicKey the access key id.
type SES struct {
	initOnce
	region    string
	secret    string
	recipient string

	mu     sync.Mutex
	client sesAPI
}

func NewSES(region, secret, recipient string) *SES {
	return &SES{region: region, secret: secret, recipient: recipient}
}

func (s *SES) Init(publicKey string) {
	s.init(publicKey, func(key string) {
		client, err := s.newClient(context.Background(), key)
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize ses client")
			return
		}

		s.mu.Lock()
		s.client = client
		s.mu.Unlock()
	})
}

func (s *SES) newClient(ctx context.Context, accessKeyID string) (sesAPI, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(s.region)}
	if accessKeyID != "" && s.secret != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, s.secret, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return sesv2.NewFromConfig(cfg), nil
}

func (s *SES) clientFor(ctx context.Context, req Request) (sesAPI, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := s.newClient(ctx, s.key(req))
	if err != nil {
		return nil, err
	}
	s.client = client

	return client, nil
}

func (s *SES) Send(ctx context.Context, req Request) (int, error) {
	data, err := json.Marshal(req.Params)
	if err != nil {
		return 0, fmt.Errorf("encoding ses template data: %w", err)
	}

	client, err := s.clientFor(ctx, req)
	if err != nil {
		return 0, err
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(req.ServiceID),
		Destination:      &types.Destination{ToAddresses: []string{s.recipient}},
		Content: &types.EmailContent{
			Template: &types.Template{
				TemplateName: aws.String(req.TemplateID),
				TemplateData: aws.String(string(data)),
			},
		},
	}
	if replyTo := req.Params["reply_to"]; replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}

	if _, err := client.SendEmail(ctx, input); err != nil {
		return 0, fmt.Errorf("sending ses mail: %w", err)
	}

	return http.StatusOK, nil
}
