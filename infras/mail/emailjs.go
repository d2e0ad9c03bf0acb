package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lifecare/shared/constant"
)

const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type emailJSPayload struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
	AccessToken    string            `json:"accessToken,omitempty"`
}

// EmailJS posts the template parameters to the EmailJS REST endpoint.
type EmailJS struct {
	initOnce
	endpoint    string
	accessToken string
	client      *http.Client
}

func NewEmailJS(endpoint, accessToken string) *EmailJS {
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}

	return &EmailJS{
		endpoint:    endpoint,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

func (e *EmailJS) Init(publicKey string) {
	e.init(publicKey, nil)
}

func (e *EmailJS) Send(ctx context.Context, req Request) (int, error) {
	body, err := json.Marshal(emailJSPayload{
		ServiceID:      req.ServiceID,
		TemplateID:     req.TemplateID,
		UserID:         e.key(req),
		TemplateParams: req.Params,
		AccessToken:    e.accessToken,
	})
	if err != nil {
		return 0, fmt.Errorf("encoding emailjs payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("building emailjs request: %w", err)
	}
	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("sending emailjs request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
