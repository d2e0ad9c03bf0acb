package model

import (
	"slices"
	"strings"

	contentModel "lifecare/internal/domains/content/model"
	"lifecare/shared/validator"

	val "github.com/go-playground/validator/v10"
)

const (
	EntityName = "booking"

	selectionSeparator = "|"
)

const (
	GroupGeneralServices        = "General Services"
	GroupSpecialistConsultation = "Specialist Consultations"
	AnyAvailableDoctor          = "Any available doctor"
	NoAdditionalMessage         = "No additional message"
	SpecialistConsultation      = "Specialist Consultation"
)

const (
	MessageSent          = "Your appointment request has been sent successfully! We will contact you shortly."
	MessageFailed        = "Failed to send your request. Please try again or contact us directly."
	MessageError         = "An error occurred. Please try again or contact us directly."
	MessageNotConfigured = "Email service is not configured. Please contact us directly."
	MessageInvalid       = "Please correct the highlighted fields."
)

// TimeSlots are the bookable appointment times. There is no slot at 13:00.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00"}

var serviceLabels = map[string]string{
	"general":          "Family Clinic & General Practice",
	"neurology":        "Neurology Consultation",
	"orthopaedics":     "Orthopaedics Consultation",
	"paediatrics":      "Paediatrics Consultation",
	"pulmonology":      "Pulmonology Consultation",
	"general-practice": "General Practice Consultation",
	"lab":              "Laboratory Services",
	"neuro-lab":        "Neuro Diagnostic Lab (NCS, EEG)",
	"physio":           "Physiotherapy & Rehabilitation",
	"home-care":        "Home Care Services",
}

// generalServiceCodes are the selector entries not tied to a doctor, in display order.
var generalServiceCodes = []string{"general", "lab", "neuro-lab", "physio", "home-care"}

// ServiceLabel returns the readable name of a service code, or the code itself when unknown.
func ServiceLabel(code string) string {
	if label, ok := serviceLabels[code]; ok {
		return label
	}

	return code
}

// FormData is an appointment request. ServiceDoctor holds the combined selector value
// "<service code>|<doctor name>"; either part may be empty, not both.
type FormData struct {
	Name          string `json:"name"           validate:"notblank"`
	Phone         string `json:"phone"          validate:"notblank,phone"`
	Email         string `json:"email"          validate:"notblank,contactemail"`
	PreferredDate string `json:"preferred_date" validate:"required,dateonly,notpast"`
	PreferredTime string `json:"preferred_time" validate:"required,timeslot"`
	ServiceDoctor string `json:"service_doctor" validate:"required,selection"`
	Message       string `json:"message"`
}

// Selection splits the combined selector into service code and doctor name.
func (f FormData) Selection() (service, doctor string) {
	service, doctor, _ = strings.Cut(f.ServiceDoctor, selectionSeparator)

	return strings.TrimSpace(service), strings.TrimSpace(doctor)
}

// FieldMessages are the user-facing messages for each failing rule, keyed "<field>.<tag>".
var FieldMessages = map[string]string{
	"name.notblank":              "Name is required",
	"phone.notblank":             "Phone number is required",
	"phone.phone":                "Please enter a valid phone number",
	"email.notblank":             "Email is required",
	"email.contactemail":         "Please enter a valid email address",
	"preferred_date.required":    "Preferred date is required",
	"preferred_date.dateonly":    "Please select a valid date",
	"preferred_date.notpast":     "Please select a future date",
	"preferred_time.required":    "Preferred time is required",
	"preferred_time.timeslot":    "Please select a valid time slot",
	"service_doctor.required":    "Please select a service or doctor",
	"service_doctor.selection":   "Please select a service or doctor",
}

// FormErrors maps a field's JSON name to its message. Empty means the form is valid.
type FormErrors map[string]string

func (e FormErrors) Valid() bool {
	return len(e) == 0
}

type Outcome string

const (
	OutcomeSent          Outcome = "sent"
	OutcomeRejected      Outcome = "rejected"
	OutcomeFailed        Outcome = "failed"
	OutcomeError         Outcome = "error"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeInvalid       Outcome = "invalid"
)

// Result is what the visitor is told after a submission.
type Result struct {
	Success bool
	Message string
	Outcome Outcome
	Errors  FormErrors
}

type Option struct {
	Value string
	Label string
	Group string
}

// Options builds the combined service/doctor selector: the general services first, then one
// entry per doctor.
func Options(doctors []contentModel.Doctor) []Option {
	options := make([]Option, 0, len(generalServiceCodes)+len(doctors))

	for _, code := range generalServiceCodes {
		options = append(options, Option{
			Value: code + selectionSeparator,
			Label: ServiceLabel(code),
			Group: GroupGeneralServices,
		})
	}

	for _, doctor := range doctors {
		options = append(options, Option{
			Value: string(doctor.Specialty) + selectionSeparator + doctor.Name,
			Label: doctor.Name + " — " + doctor.SpecialtyLabel,
			Group: GroupSpecialistConsultation,
		})
	}

	return options
}

func isTimeSlot(fl val.FieldLevel) bool {
	return slices.Contains(TimeSlots, fl.Field().String())
}

// hasSelection accepts a selector naming a service, a doctor or both.
func hasSelection(fl val.FieldLevel) bool {
	service, doctor, _ := strings.Cut(fl.Field().String(), selectionSeparator)

	return strings.TrimSpace(service) != "" || strings.TrimSpace(doctor) != ""
}

func init() {
	if err := validator.RegisterValidation("timeslot", isTimeSlot); err != nil {
		panic(err)
	}

	if err := validator.RegisterValidation("selection", hasSelection); err != nil {
		panic(err)
	}
}
