package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lifecare/config"
	"lifecare/infras/mail"
	"lifecare/infras/metrics"
	"lifecare/infras/otel"
	"lifecare/internal/domains/booking/model"
	"lifecare/internal/domains/booking/model/dto"
	"lifecare/internal/domains/content/catalog"
	"lifecare/shared/constant"
	"lifecare/shared/timezone"
	"lifecare/shared/validator"

	"github.com/rs/zerolog/log"
)

var errProviderPanicked = errors.New("mail provider panicked")

type Booking interface {
	Options(ctx context.Context) dto.OptionsResponse
	Validate(form model.FormData, now time.Time) model.FormErrors
	Submit(ctx context.Context, form model.FormData) model.Result
}

type serviceImpl struct {
	provider mail.Provider
	cfg      *config.Config
	otel     otel.Otel
	metrics  *metrics.Metrics
	now      func() time.Time
}

func New(provider mail.Provider, cfg *config.Config, otel otel.Otel, m *metrics.Metrics) Booking {
	if key := cfg.External.Mail.PublicKey; key != "" {
		provider.Init(key)
	}

	return &serviceImpl{
		provider: provider,
		cfg:      cfg,
		otel:     otel,
		metrics:  m,
		now:      timezone.Now,
	}
}

func (s *serviceImpl) Options(ctx context.Context) (res dto.OptionsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Options")
	defer scope.End()

	res.FromModels(model.Options(catalog.Doctors()), model.TimeSlots, timezone.StartOfDay(s.now()))

	return res
}

// Validate checks every field of form and reports one message per invalid field.
// Dates are compared against the calendar day of now in the clinic's timezone.
func (s *serviceImpl) Validate(form model.FormData, now time.Time) model.FormErrors {
	ctx := validator.WithReferenceTime(context.Background(), now)

	return validator.ValidateFields(ctx, &form, model.FieldMessages)
}

func (s *serviceImpl) configured() bool {
	mailCfg := s.cfg.External.Mail

	return mailCfg.ServiceID != "" && mailCfg.TemplateID != "" && mailCfg.PublicKey != ""
}

// templateParams renders the form into the parameters of the notification template.
func templateParams(form model.FormData) map[string]string {
	service, doctor := form.Selection()
	label := model.ServiceLabel(service)

	if service == "" {
		label = model.SpecialistConsultation
		if known, ok := catalog.DoctorByName(doctor); ok {
			label = model.ServiceLabel(string(known.Specialty))
		}
	}

	doctorInfo := model.AnyAvailableDoctor
	if doctor != "" {
		doctorInfo = fmt.Sprintf("%s (%s)", doctor, label)
	}

	message := form.Message
	if message == "" {
		message = model.NoAdditionalMessage
	}

	return map[string]string{
		"to_name":        catalog.ClinicName,
		"from_name":      form.Name,
		"from_phone":     form.Phone,
		"from_email":     form.Email,
		"preferred_date": form.PreferredDate,
		"preferred_time": form.PreferredTime,
		"service":        label,
		"doctor":         doctorInfo,
		"message":        message,
		"reply_to":       form.Email,
	}
}

// send makes the single delivery attempt, turning a provider panic into an error.
func (s *serviceImpl) send(ctx context.Context, req mail.Request) (status int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errProviderPanicked, r)
		}
	}()

	return s.provider.Send(ctx, req)
}

// Submit validates form and, when it is valid, emails it to the clinic. It never returns an
// error: every failure is reported through the result message.
func (s *serviceImpl) Submit(ctx context.Context, form model.FormData) (result model.Result) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()

	defer func() {
		scope.SetAttribute("booking.outcome", string(result.Outcome))
		s.metrics.ObserveBooking(string(result.Outcome))
	}()

	if errs := s.Validate(form, s.now()); !errs.Valid() {
		return model.Result{Message: model.MessageInvalid, Outcome: model.OutcomeInvalid, Errors: errs}
	}

	if !s.configured() {
		log.Error().Msg("mail service is not configured")

		return model.Result{Message: model.MessageNotConfigured, Outcome: model.OutcomeNotConfigured}
	}

	mailCfg := s.cfg.External.Mail

	status, err := s.send(ctx, mail.Request{
		ServiceID:  mailCfg.ServiceID,
		TemplateID: mailCfg.TemplateID,
		PublicKey:  mailCfg.PublicKey,
		Params:     templateParams(form),
	})

	switch {
	case errors.Is(err, errProviderPanicked):
		scope.TraceError(err)
		log.Error().Err(err).Msg("booking submission crashed")

		return model.Result{Message: model.MessageError, Outcome: model.OutcomeError}
	case err != nil:
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send booking request")

		return model.Result{Message: model.MessageFailed, Outcome: model.OutcomeFailed}
	case status < http.StatusOK || status >= http.StatusMultipleChoices:
		log.Error().Int("status", status).Msg("mail provider rejected booking request")

		return model.Result{Message: model.MessageFailed, Outcome: model.OutcomeRejected}
	}

	log.Info().Str("preferred_date", form.PreferredDate).Str("preferred_time", form.PreferredTime).Msg("booking request sent")

	return model.Result{Success: true, Message: model.MessageSent, Outcome: model.OutcomeSent}
}
