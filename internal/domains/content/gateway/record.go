package gateway

import (
	"encoding/json"
	"strings"
	"time"

	"lifecare/internal/domains/content/model"
	"lifecare/shared/timezone"
)

const placeholderImagePath = "/images/placeholder-doctor.svg"

// mediaRelation accepts a populated media relation in either the nested
// {data:{attributes:{url}}} form or the flat {url} form.
type mediaRelation struct {
	URL string
}

func (m *mediaRelation) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Data json.RawMessage `json:"data"`
		URL  string          `json:"url"`
	}

	// unexpected shapes leave the relation empty
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil
	}

	if wrapped.URL != "" {
		m.URL = wrapped.URL

		return nil
	}

	if isNull(wrapped.Data) {
		return nil
	}

	flat, err := flattenEntry(wrapped.Data)
	if err != nil {
		return nil
	}

	var inner struct {
		URL string `json:"url"`
	}
	_ = json.Unmarshal(flat, &inner)
	m.URL = inner.URL

	return nil
}

// lenientTime parses RFC3339 timestamps and plain dates.
type lenientTime struct {
	time.Time
}

func (t *lenientTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil || value == "" {
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		t.Time = parsed

		return nil
	}

	if parsed, err := timezone.Parse(time.DateOnly, value); err == nil {
		t.Time = parsed
	}

	return nil
}

type doctorRecord struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Qualifications string        `json:"qualifications"`
	Specialty      string        `json:"specialty"`
	Speciality     string        `json:"speciality"`
	SpecialtyLabel string        `json:"specialtyLabel"`
	Bio            string        `json:"bio"`
	Availability   string        `json:"availability"`
	ImageURL       string        `json:"imageUrl"`
	Image          mediaRelation `json:"image"`
	Featured       bool          `json:"featured"`
	Order          int           `json:"order"`
}

type serviceRecord struct {
	ID          int      `json:"id"`
	Icon        string   `json:"icon"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	ServiceType string   `json:"serviceType"`
	ListItems   []string `json:"listItems"`
	Hours       string   `json:"hours"`
	Order       int      `json:"order"`
}

type reviewRecord struct {
	ID           int         `json:"id"`
	ReviewerName string      `json:"reviewerName"`
	Rating       int         `json:"rating"`
	ReviewDate   lenientTime `json:"reviewDate"`
	ReviewText   string      `json:"reviewText"`
	Source       string      `json:"source"`
	Verified     bool        `json:"verified"`
	Published    bool        `json:"published"`
}

type blogRecord struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	Excerpt         string          `json:"excerpt"`
	Content         json.RawMessage `json:"content"`
	CoverImage      mediaRelation   `json:"coverImage"`
	Author          string          `json:"author"`
	PublicationDate lenientTime     `json:"publicationDate"`
}

type slugRecord struct {
	Slug string `json:"slug"`
}

type clinicInfoRecord struct {
	MainLine      string `json:"mainLine"`
	SubLine       string `json:"subLine"`
	IntroText     string `json:"introText"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	WhatsappLink  string `json:"whatsappLink"`
	LocationLink  string `json:"locationLink"`
	StreetAddress string `json:"streetAddress"`
	InstagramLink string `json:"instagramLink"`
	FacebookLink  string `json:"facebookLink"`
	ClinicHours   string `json:"clinicHours"`
}

type boxRecord struct {
	ID          int    `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// ResolveMediaURL turns a media path into an absolute URL. Empty paths resolve to the
// placeholder image on the site, absolute URLs are kept.
func ResolveMediaURL(siteURL, cmsBaseURL, path string) string {
	switch {
	case path == "":
		return strings.TrimRight(siteURL, "/") + placeholderImagePath
	case strings.HasPrefix(path, "http"):
		return path
	default:
		return strings.TrimRight(cmsBaseURL, "/") + path
	}
}

func (g *gatewayImpl) mediaURL(path string) string {
	return ResolveMediaURL(g.siteURL, g.cmsBaseURL, path)
}

func (g *gatewayImpl) toDoctor(r doctorRecord) model.Doctor {
	specialty := r.Specialty
	if specialty == "" {
		specialty = r.Speciality
	}

	image := r.ImageURL
	if image == "" {
		image = r.Image.URL
	}

	return model.Doctor{
		ID:             r.ID,
		Name:           r.Name,
		Qualifications: r.Qualifications,
		Specialty:      model.Specialty(specialty),
		SpecialtyLabel: r.SpecialtyLabel,
		Bio:            r.Bio,
		Availability:   r.Availability,
		ImageURL:       g.mediaURL(image),
		Featured:       r.Featured,
		Order:          r.Order,
	}
}

func (g *gatewayImpl) toService(r serviceRecord) model.Service {
	serviceType, _ := model.ParseServiceType(r.ServiceType)

	return model.Service{
		ID:          r.ID,
		Icon:        r.Icon,
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		ServiceType: serviceType,
		ListItems:   r.ListItems,
		Hours:       r.Hours,
		Order:       r.Order,
	}
}

func (g *gatewayImpl) toReview(r reviewRecord) model.Review {
	return model.Review{
		ID:           r.ID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		ReviewDate:   r.ReviewDate.Time,
		ReviewText:   r.ReviewText,
		Source:       r.Source,
		Verified:     r.Verified,
		Published:    r.Published,
	}
}

func (g *gatewayImpl) toBlogPost(r blogRecord) model.BlogPost {
	var cover string
	if r.CoverImage.URL != "" {
		cover = g.mediaURL(r.CoverImage.URL)
	}

	return model.BlogPost{
		ID:              r.ID,
		Title:           r.Title,
		Slug:            r.Slug,
		Excerpt:         r.Excerpt,
		Content:         model.ParseBlogContent(r.Content),
		CoverImage:      cover,
		Author:          r.Author,
		PublicationDate: r.PublicationDate.Time,
	}
}

func (g *gatewayImpl) toClinicInfo(r clinicInfoRecord) model.ClinicInfo {
	return model.ClinicInfo{
		MainLine:      r.MainLine,
		SubLine:       r.SubLine,
		IntroText:     r.IntroText,
		Phone:         r.Phone,
		Email:         r.Email,
		WhatsappLink:  r.WhatsappLink,
		LocationLink:  r.LocationLink,
		StreetAddress: r.StreetAddress,
		InstagramLink: r.InstagramLink,
		FacebookLink:  r.FacebookLink,
		ClinicHours:   r.ClinicHours,
	}
}

func (g *gatewayImpl) toBox(r boxRecord) model.Box {
	return model.Box{
		ID:          r.ID,
		Icon:        r.Icon,
		Title:       r.Title,
		Description: r.Description,
		Order:       r.Order,
	}
}
