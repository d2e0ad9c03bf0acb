package dto

import (
	"time"

	"lifecare/internal/domains/content/model"
	gDto "lifecare/shared/dto"
	"lifecare/shared/timezone"
)

type DoctorResponse struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"name"`
	Qualifications string `json:"qualifications"`
	Specialty      string `json:"specialty"`
	SpecialtyLabel string `json:"specialty_label"`
	Bio            string `json:"bio,omitempty"`
	Availability   string `json:"availability"`
	ImageURL       string `json:"image_url"`
	Featured       bool   `json:"featured"`
	PrimaryCare    bool   `json:"primary_care"`
	Order          int    `json:"order"`
}

func (r *DoctorResponse) FromModel(m model.Doctor) {
	r.ID = m.ID
	r.Name = m.Name
	r.Qualifications = m.Qualifications
	r.Specialty = string(m.Specialty)
	r.SpecialtyLabel = m.SpecialtyLabel
	r.Bio = m.Bio
	r.Availability = m.Availability
	r.ImageURL = m.ImageURL
	r.Featured = m.Featured
	r.PrimaryCare = m.IsPrimaryCare()
	r.Order = m.Order
}

type DoctorsResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Source  model.Source     `json:"source"`
}

func (r *DoctorsResponse) FromModels(models []model.Doctor, source model.Source) {
	r.Source = source
	r.Doctors = make([]DoctorResponse, len(models))

	for i, m := range models {
		r.Doctors[i].FromModel(m)
	}
}

type ServiceResponse struct {
	ID          int          `json:"id,omitempty"`
	Icon        string       `json:"icon"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	ServiceType string       `json:"service_type"`
	ListItems   []string     `json:"list_items,omitempty"`
	Hours       string       `json:"hours,omitempty"`
	Order       int          `json:"order"`
	Source      model.Source `json:"source,omitempty"`
}

func (r *ServiceResponse) FromModel(m model.Service) {
	r.ID = m.ID
	r.Icon = m.Icon
	r.Name = m.Name
	r.Slug = m.Slug
	r.Description = m.Description
	r.ServiceType = string(m.ServiceType)
	r.ListItems = m.ListItems
	r.Hours = m.Hours
	r.Order = m.Order
}

type ServicesResponse struct {
	Services []ServiceResponse `json:"services"`
	Source   model.Source      `json:"source"`
}

func (r *ServicesResponse) FromModels(models []model.Service, source model.Source) {
	r.Source = source
	r.Services = make([]ServiceResponse, len(models))

	for i, m := range models {
		r.Services[i].FromModel(m)
	}
}

type ReviewResponse struct {
	ID           int    `json:"id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	ReviewDate   string `json:"review_date"`
	ReviewText   string `json:"review_text"`
	Source       string `json:"source"`
	Verified     bool   `json:"verified"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.ReviewerName = m.ReviewerName
	r.Rating = m.Rating
	r.ReviewText = m.ReviewText
	r.Source = m.Source
	r.Verified = m.Verified

	if !m.ReviewDate.IsZero() {
		r.ReviewDate = timezone.Format(m.ReviewDate, time.DateOnly)
	}
}

type ReviewsMeta struct {
	Total     int          `json:"total"`
	FetchedAt string       `json:"fetched_at"`
	Source    model.Source `json:"source"`
}

type ReviewsResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
	Meta    ReviewsMeta      `json:"meta"`
}

func (r *ReviewsResponse) FromModels(models []model.Review, source model.Source, fetchedAt time.Time) {
	r.Reviews = make([]ReviewResponse, len(models))
	for i, m := range models {
		r.Reviews[i].FromModel(m)
	}

	r.Meta = ReviewsMeta{
		Total:     len(models),
		FetchedAt: fetchedAt.UTC().Format(time.RFC3339),
		Source:    source,
	}
}

type BlogContentResponse struct {
	Kind   model.ContentKind `json:"kind"`
	Blocks []model.Block     `json:"blocks,omitempty"`
	Raw    string            `json:"raw,omitempty"`
}

type BlogPostResponse struct {
	ID              int                  `json:"id,omitempty"`
	Title           string               `json:"title"`
	Slug            string               `json:"slug"`
	Excerpt         string               `json:"excerpt"`
	Content         *BlogContentResponse `json:"content,omitempty"`
	CoverImage      string               `json:"cover_image,omitempty"`
	Author          string               `json:"author,omitempty"`
	PublicationDate string               `json:"publication_date,omitempty"`
	Source          model.Source         `json:"source,omitempty"`
}

// FromModel fills the response. Content is left out of list views.
func (r *BlogPostResponse) FromModel(m model.BlogPost, withContent bool) {
	r.ID = m.ID
	r.Title = m.Title
	r.Slug = m.Slug
	r.Excerpt = m.Excerpt
	r.CoverImage = m.CoverImage
	r.Author = m.Author

	if !m.PublicationDate.IsZero() {
		r.PublicationDate = timezone.Format(m.PublicationDate, time.DateOnly)
	}

	if withContent {
		r.Content = &BlogContentResponse{
			Kind:   m.Content.Kind,
			Blocks: m.Content.Blocks,
			Raw:    m.Content.Raw,
		}
	}
}

type BlogsResponse struct {
	Blogs      []BlogPostResponse `json:"blogs"`
	Pagination gDto.Pagination    `json:"pagination"`
	Source     model.Source       `json:"source"`
}

func (r *BlogsResponse) FromModels(models []model.BlogPost, pagination gDto.Pagination, source model.Source) {
	r.Pagination = pagination
	r.Source = source
	r.Blogs = make([]BlogPostResponse, len(models))

	for i, m := range models {
		r.Blogs[i].FromModel(m, false)
	}
}

type BlogSlugsResponse struct {
	Slugs  []string     `json:"slugs"`
	Source model.Source `json:"source"`
}

type ClinicInfoResponse struct {
	MainLine      string       `json:"main_line"`
	SubLine       string       `json:"sub_line"`
	IntroText     string       `json:"intro_text"`
	Phone         string       `json:"phone"`
	Email         string       `json:"email,omitempty"`
	WhatsappLink  string       `json:"whatsapp_link"`
	LocationLink  string       `json:"location_link"`
	StreetAddress string       `json:"street_address"`
	InstagramLink string       `json:"instagram_link"`
	FacebookLink  string       `json:"facebook_link"`
	ClinicHours   string       `json:"clinic_hours"`
	Source        model.Source `json:"source"`
}

func (r *ClinicInfoResponse) FromModel(m model.ClinicInfo, source model.Source) {
	r.MainLine = m.MainLine
	r.SubLine = m.SubLine
	r.IntroText = m.IntroText
	r.Phone = m.Phone
	r.Email = m.Email
	r.WhatsappLink = m.WhatsappLink
	r.LocationLink = m.LocationLink
	r.StreetAddress = m.StreetAddress
	r.InstagramLink = m.InstagramLink
	r.FacebookLink = m.FacebookLink
	r.ClinicHours = m.ClinicHours
	r.Source = source
}

type BoxResponse struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type BoxesResponse struct {
	Boxes  []BoxResponse `json:"boxes"`
	Source model.Source  `json:"source"`
}

func (r *BoxesResponse) FromModels(models []model.Box, source model.Source) {
	r.Source = source
	r.Boxes = make([]BoxResponse, len(models))

	for i, m := range models {
		r.Boxes[i] = BoxResponse{
			ID:          m.ID,
			Icon:        m.Icon,
			Title:       m.Title,
			Description: m.Description,
			Order:       m.Order,
		}
	}
}

type LabsResponse struct {
	LabTests      []string `json:"lab_tests"`
	NeuroLabTests []string `json:"neuro_lab_tests"`
}

type PhysiotherapyResponse struct {
	Services   []string `json:"services"`
	Conditions []string `json:"conditions"`
}

type HomeCareServiceResponse struct {
	Slug        string   `json:"slug"`
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

type HomeCareResponse struct {
	Services     []HomeCareServiceResponse `json:"services"`
	ServiceAreas []string                  `json:"service_areas"`
}

func (r *HomeCareResponse) FromModels(models []model.HomeCareService, areas []string) {
	r.ServiceAreas = areas
	r.Services = make([]HomeCareServiceResponse, len(models))

	for i, m := range models {
		r.Services[i] = HomeCareServiceResponse{
			Slug:        m.Slug,
			Icon:        m.Icon,
			Title:       m.Title,
			Description: m.Description,
			Details:     m.Details,
		}
	}
}

type RevalidateResponse struct {
	Tag         string `json:"tag"`
	Revalidated bool   `json:"revalidated"`
}
