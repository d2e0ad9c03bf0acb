package booking

import (
	"net/http"

	"lifecare/infras/otel"
	"lifecare/internal/domains/booking/model"
	"lifecare/internal/domains/booking/model/dto"
	"lifecare/internal/domains/booking/service"
	"lifecare/shared/constant"
	"lifecare/shared/failure"
	"lifecare/shared/timezone"
	"lifecare/shared/validator"
	"lifecare/transport/http/middleware"
	"lifecare/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Booking
	middleware middleware.AppMiddleware
	otel       otel.Otel
}

func New(service service.Booking, middleware middleware.AppMiddleware, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/options", handler.GetOptions)
		routerGroup.Post("/validate", handler.ValidateBooking)
		routerGroup.With(handler.middleware.RateLimit()).Post("/", handler.SubmitBooking)
	})
}

// outcomeFailure is the failure an unsuccessful submission stands for, nil when it was sent.
func outcomeFailure(result model.Result) error {
	switch result.Outcome {
	case model.OutcomeSent:
		return nil
	case model.OutcomeInvalid:
		return failure.UnprocessableEntity(result.Message) //nolint:wrapcheck
	case model.OutcomeNotConfigured:
		return failure.ServiceUnavailable(result.Message) //nolint:wrapcheck
	default:
		return failure.BadGateway(result.Message) //nolint:wrapcheck
	}
}

// GetOptions returns everything the appointment form needs to render.
// @Summary Get appointment form options
// @Description Service and doctor choices, the bookable time slots and the earliest selectable date.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.OptionsResponse]
// @Router /v1/bookings/options [get]
func (handler *Handler) GetOptions(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOptions")
	defer scope.End()

	response.WithJSON(writer, http.StatusOK, handler.service.Options(ctx))
}

// ValidateBooking checks an appointment request without sending it.
// @Summary Validate an appointment request
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body model.FormData true "Appointment request"
// @Success 200 {object} response.Data[dto.ValidateResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Data[dto.ValidateResponse]
// @Router /v1/bookings/validate [post]
func (handler *Handler) ValidateBooking(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateBooking")
	defer scope.End()

	form := model.FormData{}

	if err := validator.Decode(request.Body, &form); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res := dto.ValidateResponse{Errors: handler.service.Validate(form, timezone.Now())}

	code := http.StatusOK
	if !res.Errors.Valid() {
		code = http.StatusUnprocessableEntity
	}

	response.WithJSON(writer, code, res)
}

// SubmitBooking validates an appointment request and emails it to the clinic.
// @Summary Submit an appointment request
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body model.FormData true "Appointment request"
// @Success 200 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Data[dto.SubmitResponse]
// @Failure 429 {object} response.Message
// @Failure 502 {object} response.Data[dto.SubmitResponse]
// @Failure 503 {object} response.Data[dto.SubmitResponse]
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	form := model.FormData{}

	if err := validator.Decode(request.Body, &form); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("invalid booking request body")

		response.WithError(writer, err)

		return
	}

	result := handler.service.Submit(ctx, form)

	res := dto.SubmitResponse{}
	res.FromModel(result)

	code := http.StatusOK
	if err := outcomeFailure(result); err != nil {
		scope.TraceError(err)

		code = failure.GetCode(err)
	}

	response.WithJSON(writer, code, res)
}
