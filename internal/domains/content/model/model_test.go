package model_test

import (
	"encoding/json"
	"testing"

	"lifecare/internal/domains/content/model"

	"github.com/stretchr/testify/assert"
)

func TestParseBlogContent(t *testing.T) {
	paragraph := []model.Block{{
		Type:     "paragraph",
		Children: []model.Block{{Type: "text", Text: "Stay hydrated.", Bold: true}},
	}}

	tests := []struct {
		name     string
		input    string
		expected model.BlogContent
	}{
		{
			name:     "block array",
			input:    `[{"type":"paragraph","children":[{"type":"text","text":"Stay hydrated.","bold":true}]}]`,
			expected: model.StructuredContent(paragraph),
		},
		{
			name:     "serialized block array inside a string",
			input:    `"[{\"type\":\"paragraph\",\"children\":[{\"type\":\"text\",\"text\":\"Stay hydrated.\",\"bold\":true}]}]"`,
			expected: model.StructuredContent(paragraph),
		},
		{
			name:     "html string",
			input:    `"<p>Regular checkups matter.</p>"`,
			expected: model.RawContent("<p>Regular checkups matter.</p>"),
		},
		{
			name:     "string holding null",
			input:    `"null"`,
			expected: model.RawContent("null"),
		},
		{
			name:     "missing content",
			input:    ``,
			expected: model.RawContent(""),
		},
		{
			name:     "json null",
			input:    `null`,
			expected: model.RawContent(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ParseBlogContent(json.RawMessage(tt.input))

			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		input    string
		expected model.ServiceType
		known    bool
	}{
		{input: "general", expected: model.ServiceTypeGeneral, known: true},
		{input: "specialty", expected: model.ServiceTypeSpecialty, known: true},
		{input: "speciality", expected: model.ServiceTypeSpecialty, known: true},
		{input: "neuro-lab", expected: model.ServiceTypeNeuroLab, known: true},
		{input: "home-care", expected: model.ServiceTypeHomeCare, known: true},
		{input: "dental", expected: model.ServiceType("dental"), known: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, known := model.ParseServiceType(tt.input)

			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestDoctor_IsPrimaryCare(t *testing.T) {
	assert.True(t, model.Doctor{Specialty: model.SpecialtyGeneralPractice}.IsPrimaryCare())
	assert.False(t, model.Doctor{Specialty: model.SpecialtyNeurology}.IsPrimaryCare())
}
