package model

import (
	"encoding/json"
	"time"
)

const (
	EntityDoctor   = "doctor"
	EntityService  = "service"
	EntityReview   = "review"
	EntityBlogPost = "blog post"
)

// Source tells callers where a piece of content came from.
type Source string

const (
	SourceCMS     Source = "cms"
	SourceCatalog Source = "catalog"
)

type Specialty string

const (
	SpecialtyNeurology       Specialty = "neurology"
	SpecialtyOrthopaedics    Specialty = "orthopaedics"
	SpecialtyPaediatrics     Specialty = "paediatrics"
	SpecialtyPulmonology     Specialty = "pulmonology"
	SpecialtyGeneralPractice Specialty = "general-practice"
)

type ServiceType string

const (
	ServiceTypeGeneral   ServiceType = "general"
	ServiceTypeSpecialty ServiceType = "specialty"
	ServiceTypeLab       ServiceType = "lab"
	ServiceTypeNeuroLab  ServiceType = "neuro-lab"
	ServiceTypePhysio    ServiceType = "physio"
	ServiceTypeHomeCare  ServiceType = "home-care"
)

// ParseServiceType normalizes a service type, accepting the "speciality" spelling.
func ParseServiceType(value string) (ServiceType, bool) {
	switch value {
	case "speciality":
		return ServiceTypeSpecialty, true
	case string(ServiceTypeGeneral), string(ServiceTypeSpecialty), string(ServiceTypeLab),
		string(ServiceTypeNeuroLab), string(ServiceTypePhysio), string(ServiceTypeHomeCare):
		return ServiceType(value), true
	default:
		return ServiceType(value), false
	}
}

type Doctor struct {
	ID             int
	Name           string
	Qualifications string
	Specialty      Specialty
	SpecialtyLabel string
	Bio            string
	Availability   string
	ImageURL       string
	Featured       bool
	Order          int
}

// IsPrimaryCare reports whether the doctor is the clinic's daily provider rather than a visiting specialist.
func (d Doctor) IsPrimaryCare() bool {
	return d.Specialty == SpecialtyGeneralPractice
}

type Service struct {
	ID          int
	Icon        string
	Name        string
	Slug        string
	Description string
	ServiceType ServiceType
	ListItems   []string
	Hours       string
	Order       int
}

type Review struct {
	ID           int
	ReviewerName string
	Rating       int
	ReviewDate   time.Time
	ReviewText   string
	Source       string
	Verified     bool
	Published    bool
}

type BlogPost struct {
	ID              int
	Title           string
	Slug            string
	Excerpt         string
	Content         BlogContent
	CoverImage      string
	Author          string
	PublicationDate time.Time
}

type ContentKind string

const (
	ContentKindStructured ContentKind = "structured"
	ContentKindRaw        ContentKind = "raw"
)

// BlogContent is either a rich-text block document or a raw HTML string.
type BlogContent struct {
	Kind   ContentKind
	Blocks []Block
	Raw    string
}

// Block is one node of a rich-text document. Text nodes carry Text and formatting flags,
// every other node carries Children.
type Block struct {
	Type          string  `json:"type"`
	Level         int     `json:"level,omitempty"`
	Format        string  `json:"format,omitempty"`
	URL           string  `json:"url,omitempty"`
	Text          string  `json:"text,omitempty"`
	Bold          bool    `json:"bold,omitempty"`
	Italic        bool    `json:"italic,omitempty"`
	Underline     bool    `json:"underline,omitempty"`
	Strikethrough bool    `json:"strikethrough,omitempty"`
	Code          bool    `json:"code,omitempty"`
	Image         *Image  `json:"image,omitempty"`
	Children      []Block `json:"children,omitempty"`
}

type Image struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}

func StructuredContent(blocks []Block) BlogContent {
	return BlogContent{Kind: ContentKindStructured, Blocks: blocks}
}

func RawContent(raw string) BlogContent {
	return BlogContent{Kind: ContentKindRaw, Raw: raw}
}

// ParseBlogContent decodes content as delivered by the CMS: a block array, a string holding
// a serialized block array, or a plain string.
func ParseBlogContent(data json.RawMessage) BlogContent {
	if len(data) == 0 || string(data) == "null" {
		return RawContent("")
	}

	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err == nil {
		return StructuredContent(blocks)
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return RawContent(string(data))
	}

	if err := json.Unmarshal([]byte(text), &blocks); err == nil && blocks != nil {
		return StructuredContent(blocks)
	}

	return RawContent(text)
}

type ClinicInfo struct {
	MainLine      string
	SubLine       string
	IntroText     string
	Phone         string
	Email         string
	WhatsappLink  string
	LocationLink  string
	StreetAddress string
	InstagramLink string
	FacebookLink  string
	ClinicHours   string
}

type Box struct {
	ID          int
	Icon        string
	Title       string
	Description string
	Order       int
}

type HomeCareService struct {
	Slug        string
	Icon        string
	Title       string
	Description string
	Details     []string
}
