package dto

import (
	"time"

	"lifecare/internal/domains/booking/model"
	"lifecare/shared/constant"
)

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Group string `json:"group"`
}

type TimeSlotResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type OptionsResponse struct {
	Options   []OptionResponse   `json:"options"`
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	MinDate   string             `json:"min_date"`
}

func (r *OptionsResponse) FromModels(options []model.Option, slots []string, today time.Time) {
	r.Options = make([]OptionResponse, len(options))
	for i, option := range options {
		r.Options[i] = OptionResponse{Value: option.Value, Label: option.Label, Group: option.Group}
	}

	r.TimeSlots = make([]TimeSlotResponse, len(slots))
	for i, slot := range slots {
		r.TimeSlots[i] = TimeSlotResponse{Value: slot, Label: slotLabel(slot)}
	}

	r.MinDate = today.Format(constant.DateOnlyFormat)
}

// slotLabel renders "14:00" as "2:00 PM".
func slotLabel(slot string) string {
	parsed, err := time.Parse(constant.SlotFormat, slot)
	if err != nil {
		return slot
	}

	return parsed.Format("3:04 PM")
}

type ValidateResponse struct {
	Errors model.FormErrors `json:"errors"`
}

type SubmitResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Errors  model.FormErrors `json:"errors,omitempty"`
}

func (r *SubmitResponse) FromModel(result model.Result) {
	r.Success = result.Success
	r.Message = result.Message
	r.Errors = result.Errors
}
