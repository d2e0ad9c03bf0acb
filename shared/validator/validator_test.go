package validator_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"lifecare/shared/failure"
	"lifecare/shared/timezone"
	"lifecare/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	Name  string `json:"name"  validate:"notblank"`
	Phone string `json:"phone" validate:"notblank,phone"`
	Email string `json:"email" validate:"notblank,contactemail"`
	Date  string `json:"date"  validate:"notblank,dateonly,notpast"`
}

func validContact() contactForm {
	return contactForm{Name: "Asha", Phone: "9876543210", Email: "a@b.com", Date: "2999-01-01"}
}

func TestValidateFields_CustomTags(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(f *contactForm)
		wantField string
	}{
		{name: "blank name", mutate: func(f *contactForm) { f.Name = "   " }, wantField: "name"},
		{name: "padded name", mutate: func(f *contactForm) { f.Name = " Asha " }},
		{name: "ten digits phone", mutate: func(f *contactForm) { f.Phone = "9876543210" }},
		{name: "phone with plus, spaces and hyphens", mutate: func(f *contactForm) { f.Phone = "+91 85477-34214" }},
		{name: "phone with no-break space", mutate: func(f *contactForm) { f.Phone = "+91\u00a08547734214" }},
		{name: "phone with vertical tab", mutate: func(f *contactForm) { f.Phone = "98470\v12345" }},
		{name: "short phone", mutate: func(f *contactForm) { f.Phone = "12345" }, wantField: "phone"},
		{name: "phone with letters", mutate: func(f *contactForm) { f.Phone = "98765abcde" }, wantField: "phone"},
		{name: "plus only allowed at start", mutate: func(f *contactForm) { f.Phone = "98765+43210" }, wantField: "phone"},
		{name: "simple email", mutate: func(f *contactForm) { f.Email = "a@b.com" }},
		{name: "email without tld", mutate: func(f *contactForm) { f.Email = "a@b" }, wantField: "email"},
		{name: "email with space", mutate: func(f *contactForm) { f.Email = "a b@c.com" }, wantField: "email"},
		{name: "email with no-break space", mutate: func(f *contactForm) { f.Email = "a\u00a0b@c.com" }, wantField: "email"},
		{name: "email with vertical tab", mutate: func(f *contactForm) { f.Email = "a@b\v.com" }, wantField: "email"},
		{name: "email with byte order mark", mutate: func(f *contactForm) { f.Email = "a@b.\ufeffcom" }, wantField: "email"},
		{name: "email with two at signs", mutate: func(f *contactForm) { f.Email = "a@b@c.com" }, wantField: "email"},
		{name: "impossible date", mutate: func(f *contactForm) { f.Date = "2030-02-30" }, wantField: "date"},
		{name: "date with time", mutate: func(f *contactForm) { f.Date = "2030-02-28T10:00:00Z" }, wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validContact()
			tt.mutate(&form)

			errs := validator.ValidateFields(context.Background(), &form, nil)

			if tt.wantField == "" {
				assert.Empty(t, errs)

				return
			}

			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.wantField)
		})
	}
}

func TestValidateFields_ReportsEveryFieldOnce(t *testing.T) {
	form := &contactForm{Name: " ", Phone: "123", Email: "", Date: "not-a-date"}

	errs := validator.ValidateFields(context.Background(), form, map[string]string{
		"name.notblank":  "Name is required",
		"phone.phone":    "Please enter a valid phone number",
		"email.notblank": "Email is required",
	})

	assert.Equal(t, map[string]string{
		"name":  "Name is required",
		"phone": "Please enter a valid phone number",
		"email": "Email is required",
		"date":  "date must be a date in YYYY-MM-DD format",
	}, errs)
}

func TestValidateFields_ValidInput(t *testing.T) {
	form := validContact()

	errs := validator.ValidateFields(context.Background(), &form, nil)

	assert.Empty(t, errs)
}

func TestValidateFields_NotPastUsesReferenceDay(t *testing.T) {
	now := time.Date(2026, 5, 10, 23, 30, 0, 0, time.UTC)
	ctx := validator.WithReferenceTime(context.Background(), now)
	today := now.In(timezone.GetLocation()).Format(time.DateOnly)
	yesterday := now.In(timezone.GetLocation()).AddDate(0, 0, -1).Format(time.DateOnly)

	errs := validator.ValidateFields(ctx, &contactForm{Name: "A", Phone: "9876543210", Email: "a@b.com", Date: today}, nil)
	assert.Empty(t, errs)

	errs = validator.ValidateFields(ctx, &contactForm{Name: "A", Phone: "9876543210", Email: "a@b.com", Date: yesterday}, nil)
	assert.Equal(t, map[string]string{"date": "date must not be in the past"}, errs)
}

func TestDecode(t *testing.T) {
	var form contactForm

	require.NoError(t, validator.Decode(strings.NewReader(`{"name":"Asha","email":"nope"}`), &form))
	assert.Equal(t, "Asha", form.Name)
	assert.Equal(t, "nope", form.Email)

	err := validator.Decode(strings.NewReader(`{"name":`), &form)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestRegisterValidation_RejectsEmptyTag(t *testing.T) {
	assert.Error(t, validator.RegisterValidation("", nil))
}
