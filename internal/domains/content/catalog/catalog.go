// Package catalog holds the clinic's built-in content. It is served whenever the CMS is
// unreachable or returns nothing, so every page can render without network access.
//
// Every accessor returns a fresh copy; callers may modify the result freely.
package catalog

import (
	"slices"
	"time"

	"lifecare/internal/domains/content/model"
)

const (
	ClinicName     = "Swasti Lifecare"
	ClinicHours    = "9:00 AM – 9:00 PM"
	ClinicPhone    = "+91-8547734214"
	ClinicEmail    = "contact@swastilifescare.com"
	PlaceholderImg = "/images/placeholder-doctor.svg"
)

var doctors = []model.Doctor{
	{
		ID:             1,
		Name:           "Dr. Anoop Sugunan",
		Qualifications: "MBBS, MD, DrNB (Neurology)",
		Specialty:      model.SpecialtyNeurology,
		SpecialtyLabel: "Neurology",
		Availability:   "Consultation available on scheduled days",
		ImageURL:       "/images/doctors/dr-anoop-sugunan.jpg",
		Featured:       true,
		Order:          1,
	},
	{
		ID:             2,
		Name:           "Dr. Rahul L S",
		Qualifications: "MBBS, DNB – Consultant Orthopaedic Surgeon",
		Specialty:      model.SpecialtyOrthopaedics,
		SpecialtyLabel: "Orthopaedics",
		Availability:   "Consultation on scheduled days",
		ImageURL:       "/images/doctors/dr-rahul-ls.jpg",
		Featured:       true,
		Order:          2,
	},
	{
		ID:             3,
		Name:           "Dr. Akhilesh Arjun",
		Qualifications: "MBBS, MS (Orthopaedics), FIEORA, FRIC",
		Specialty:      model.SpecialtyOrthopaedics,
		SpecialtyLabel: "Orthopaedics",
		Availability:   "Consultation on scheduled days",
		ImageURL:       "/images/doctors/dr-akhilesh-arjun.jpg",
		Featured:       true,
		Order:          3,
	},
	{
		ID:             4,
		Name:           "Dr. K P Asokan Pillai",
		Qualifications: "MBBS, DCH",
		Specialty:      model.SpecialtyPaediatrics,
		SpecialtyLabel: "Paediatrics",
		Availability:   "Consultation on scheduled days",
		ImageURL:       "/images/doctors/dr-kp-asokan-pillai.png",
		Featured:       true,
		Order:          4,
	},
	{
		ID:             5,
		Name:           "Dr. Sajith S L",
		Qualifications: "MBBS, MD (Respiratory Medicine)",
		Specialty:      model.SpecialtyPulmonology,
		SpecialtyLabel: "Pulmonology",
		Availability:   "Senior Consultant Pulmonologist (Allergy, Asthma & Sleep Medicine)",
		ImageURL:       "/images/doctors/dr-sajith-sl.jpg",
		Featured:       true,
		Order:          5,
	},
	{
		ID:             6,
		Name:           "Dr. Vishnu S Kumar",
		Qualifications: "MBBS – General Practitioner",
		Specialty:      model.SpecialtyGeneralPractice,
		SpecialtyLabel: "General Practice / Family Medicine",
		Availability:   "Available all days: " + ClinicHours,
		ImageURL:       "/images/doctors/dr-vishnu-s-kumar.png",
		Featured:       true,
		Order:          6,
	},
}

var services = []model.Service{
	{
		ID:          1,
		Icon:        "🏥",
		Name:        "Family General Clinic",
		Slug:        "family-clinic",
		Description: "A comprehensive family clinic providing care for all common medical conditions.",
		ServiceType: model.ServiceTypeGeneral,
		ListItems: []string{
			"Consultation for all age groups",
			"Management of acute and chronic illnesses",
			"Preventive care and routine health check-ups",
			"Focused on whole health, long-term wellness, and continuity of care",
		},
		Hours: ClinicHours,
		Order: 1,
	},
	{
		ID:          2,
		Icon:        "🩺",
		Name:        "Speciality Care Services",
		Slug:        "specialty-care",
		Description: "Access to specialist consultations with coordinated follow-up through our clinic.",
		ServiceType: model.ServiceTypeSpecialty,
		ListItems: []string{
			"Neurology",
			"Orthopaedics",
			"Paediatrics",
			"Pulmonology",
			"Physiotherapy & Rehabilitation",
		},
		Hours: "Scheduled days",
		Order: 2,
	},
	{
		ID:          3,
		Icon:        "🔬",
		Name:        "Laboratory Services",
		Slug:        "laboratory",
		Description: "Comprehensive laboratory testing services under one roof.",
		ServiceType: model.ServiceTypeLab,
		ListItems:   labTests,
		Hours:       ClinicHours,
		Order:       3,
	},
	{
		ID:          4,
		Icon:        "🧠",
		Name:        "Neuro Laboratory Services",
		Slug:        "neuro-laboratory",
		Description: "Advanced diagnostic studies for evaluation of nerve and brain function.",
		ServiceType: model.ServiceTypeNeuroLab,
		ListItems:   neuroLabTests,
		Order:       4,
	},
	{
		ID:          5,
		Icon:        "🏃‍♂️",
		Name:        "Physiotherapy Services",
		Slug:        "physiotherapy",
		Description: "Comprehensive physiotherapy and rehabilitation care.",
		ServiceType: model.ServiceTypePhysio,
		ListItems:   physioServices,
		Order:       5,
	},
	{
		ID:          6,
		Icon:        "🏠",
		Name:        "Home Care Services",
		Slug:        "home-care",
		Description: "Healthcare services delivered at home for patient convenience and continuity of care.",
		ServiceType: model.ServiceTypeHomeCare,
		ListItems: []string{
			"Doctor home visits",
			"Home blood sample collection",
			"Home physiotherapy services",
			"Medicine delivery services",
		},
		Order: 6,
	},
}

var labTests = []string{
	"All routine hematology investigations",
	"Biochemistry tests",
	"Hormone assays",
	"Urine and stool analysis",
	"Infection and disease markers",
	"Home sample collection",
}

var neuroLabTests = []string{
	"Nerve Conduction Study (NCS / NCV)",
	"EEG & Paediatric EEG",
	"Carpal Tunnel Syndrome (CTS) studies",
	"Brachial plexus & Lumbar plexus studies",
	"Repetitive Nerve Stimulation (RNS)",
	"Visual Evoked Potential (VEP)",
	"Brainstem Evoked Response Audiometry (BERA)",
	"Electromyography (EMG)",
}

var physioServices = []string{
	"Stroke & Brain injury rehabilitation",
	"Spinal cord injury rehabilitation",
	"Musculoskeletal & Pain management",
	"Cardiopulmonary rehabilitation",
	"Paediatric & Geriatric rehabilitation",
	"Telerehabilitation & Home-based physio",
}

var physioConditions = []string{
	"Stroke Recovery",
	"Joint Replacement Rehab",
	"Fracture Recovery",
	"Back Pain & Sciatica",
	"Neck Pain & Stiffness",
	"Sports Injuries",
	"Arthritis Management",
	"Parkinson's Disease",
	"Post-Surgery Rehabilitation",
	"Balance Disorders",
	"Muscle Weakness",
	"Mobility Issues",
}

var homeCareServices = []model.HomeCareService{
	{
		Slug:        "home-care-overview",
		Icon:        "🏠",
		Title:       "Home Care Services",
		Description: "Medical care delivered at home for patients unable to visit the clinic",
		Details: []string{
			"Suitable for elderly, bedridden, chronically ill, and post-hospitalization patients",
			"Focus on continuity, safety, and professional care",
			"Comprehensive support in the comfort of your home",
		},
	},
	{
		Slug:        "doctor-visits",
		Icon:        "👨‍⚕️",
		Title:       "Doctor Home Visits",
		Description: "Comprehensive medical consultations and evaluations at your doorstep",
		Details: []string{
			"Evaluation of acute and chronic medical conditions",
			"Post-discharge follow-ups and medication review",
			"Supportive and palliative care when required",
			"Clear, evidence-based medical decision making",
		},
	},
	{
		Slug:        "nursing-care",
		Icon:        "👩‍⚕️",
		Title:       "Nursing Care at Home",
		Description: "Professional nursing services for medical treatments and daily care",
		Details: []string{
			"Injections and vital sign monitoring",
			"Post-operative nursing care",
			"Ryle's tube insertion and care",
			"Urinary catheterisation and catheter care",
			"Wound dressing with strict hygiene protocols",
		},
	},
	{
		Slug:        "physiotherapy",
		Icon:        "🏃‍♂️",
		Title:       "Physiotherapy at Home",
		Description: "Expert rehabilitation and mobility support in your familiar environment",
		Details: []string{
			"Post-stroke and post-operative rehabilitation",
			"Pain management and mobility training",
			"Geriatric physiotherapy",
			"Functional recovery in a familiar environment",
		},
	},
	{
		Slug:        "medicine-delivery",
		Icon:        "💊",
		Title:       "Medicine Home Delivery",
		Description: "Convenient home delivery of prescribed medicines",
		Details: []string{
			"Home delivery of prescribed medicines",
			"Ensures uninterrupted treatment",
			"Coordinated with doctor consultations and follow-ups",
		},
	},
	{
		Slug:        "bedridden-elderly-care",
		Icon:        "🛏️",
		Title:       "Care for Bedridden & Elderly Patients",
		Description: "Specialized care and support for long-term patient needs",
		Details: []string{
			"Regular medical and nursing visits",
			"Chronic disease monitoring",
			"Pressure sore prevention",
			"Guidance and support for caregivers",
		},
	},
	{
		Slug:        "post-hospitalization",
		Icon:        "🏥",
		Title:       "Post-Hospitalization & Recovery Care",
		Description: "Comprehensive recovery support after hospital discharge",
		Details: []string{
			"Monitoring during recovery after surgery or illness",
			"Medication adherence support",
			"Early identification of complications",
			"Reduced need for hospital readmissions",
		},
	},
}

var serviceAreas = []string{
	"Ooninmoodu",
	"Paravur",
	"Bhoothakulam",
	"Chirakara",
	"Puthenkulam",
	"Parippally",
	"Varkala",
}

var reviews = []model.Review{
	{
		ID:           1,
		ReviewerName: "Sruthy Panikar",
		Rating:       5,
		ReviewDate:   time.Date(2025, 6, 6, 10, 14, 0, 0, time.UTC),
		ReviewText: "I am so grateful for the excellent care I received at SWASTI LIFECARE. Dr Vishnu was knowledgeable, " +
			"compassionate, and took the time to explain everything in a way that made me feel comfortable. " +
			"I would highly recommend this hospital to anyone looking for good medical care.",
		Source:    "Google",
		Verified:  true,
		Published: true,
	},
	{
		ID:           2,
		ReviewerName: "Ameen Salim",
		Rating:       5,
		ReviewDate:   time.Date(2025, 7, 14, 10, 14, 0, 0, time.UTC),
		ReviewText: "I have got professional care at affordable cost. The Doctor was very kind, attentive to my ailments " +
			"and took time to explain everything clearly. Nurses and staffs were compassionate and always available.",
		Source:    "Google",
		Verified:  true,
		Published: true,
	},
	{
		ID:           3,
		ReviewerName: "Sinan Miv",
		Rating:       5,
		ReviewDate:   time.Date(2025, 5, 29, 10, 14, 0, 0, time.UTC),
		ReviewText: "One of the best primary care clinics I've been to. The clinic is clean, well-organized, and the staff " +
			"are friendly and efficient. You can really tell they care.",
		Source:    "Facebook",
		Verified:  false,
		Published: true,
	},
}

var blogPosts = []model.BlogPost{
	{
		ID:    1,
		Title: "Understanding the Importance of Regular Health Checkups",
		Slug:  "importance-of-regular-health-checkups",
		Excerpt: "Regular health checkups are essential for maintaining good health and catching potential issues early. " +
			"Learn why preventive care should be a priority for everyone.",
		Content: model.RawContent(`<p>Regular health checkups are one of the most important steps you can take to maintain your overall health and wellbeing.</p>
<h2>Why Regular Checkups Matter</h2>
<ul>
<li>Detect diseases in early stages when treatment is most effective</li>
<li>Monitor existing health conditions</li>
<li>Update vaccinations and preventive care</li>
</ul>
<h2>How Often Should You Get a Checkup?</h2>
<ul>
<li>Young adults (18-39): Every 2-3 years if healthy</li>
<li>Adults (40-64): Annually</li>
<li>Seniors (65+): Annually or as recommended</li>
</ul>
<p>Don't wait until you feel unwell to see a doctor. Schedule your preventive health checkup today at Swasti Lifecare.</p>`),
		Author:          "Dr. Nisha Jayan",
		PublicationDate: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:    2,
		Title: "Managing Chronic Pain: Tips and Strategies",
		Slug:  "managing-chronic-pain-tips",
		Excerpt: "Chronic pain affects millions of people. Discover effective strategies for managing pain and improving " +
			"your quality of life with expert advice from our specialists.",
		Content: model.RawContent(`<p>Chronic pain persists for months or even years and can significantly impact quality of life.</p>
<h2>Effective Management Strategies</h2>
<h3>1. Work with Healthcare Professionals</h3>
<p>A multidisciplinary approach often works best, including your general physician, specialists, and physiotherapists.</p>
<h3>2. Physical Therapy</h3>
<p>Targeted exercises can strengthen muscles, improve flexibility, and reduce pain.</p>
<h3>3. Lifestyle Modifications</h3>
<ul>
<li>Maintain a healthy weight to reduce stress on joints</li>
<li>Practice good posture</li>
<li>Get adequate sleep</li>
</ul>
<p>If pain is affecting your daily life, our team at Swasti Lifecare can help develop a pain management plan tailored to your needs.</p>`),
		Author:          "Swasti Lifecare Team",
		PublicationDate: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
	},
	{
		ID:    3,
		Title: "The Benefits of Physiotherapy After Surgery",
		Slug:  "benefits-of-physiotherapy-after-surgery",
		Excerpt: "Post-surgical physiotherapy plays a crucial role in recovery. Learn how targeted exercises and therapy " +
			"can help you regain strength and mobility faster.",
		Content: model.RawContent(`<p>Post-surgical physiotherapy is essential for regaining strength, mobility, and returning to your normal activities.</p>
<h2>Why Physiotherapy After Surgery?</h2>
<ul>
<li>Reducing pain and swelling</li>
<li>Preventing complications like blood clots</li>
<li>Restoring range of motion</li>
<li>Rebuilding muscle strength</li>
</ul>
<h2>Common Surgeries That Benefit from Physiotherapy</h2>
<ul>
<li>Joint replacements (knee, hip, shoulder)</li>
<li>Spinal surgery</li>
<li>Fracture fixation</li>
</ul>`),
		Author:          "Swasti Lifecare Team",
		PublicationDate: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC),
	},
}

var clinicInfo = model.ClinicInfo{
	MainLine: "Clarity. Compassion. Care that continues.",
	SubLine: "At Swasti Lifecare, healthcare is not rushed or impersonal. It is calm, thoughtful, and centred around " +
		"the person sitting in front of us. We believe patients heal better when they feel understood, reassured, and supported.",
	IntroText: "Swasti Lifecare is built on the principles of trust, clarity, and respectful medical care. " +
		"We believe that effective healthcare begins with listening carefully, understanding the individual behind the symptoms, " +
		"and explaining medical concerns in a clear and honest manner. Consultations are thoughtful and unhurried, and we continue " +
		"to guide patients after consultations with appropriate follow-up and referrals when needed.",
	Phone:         ClinicPhone,
	Email:         ClinicEmail,
	WhatsappLink:  "https://wa.me/918547734214",
	LocationLink:  "https://www.google.com/maps/search/?api=1&query=Swasti+Lifecare+Paravur+Parippally+Rd+opp+bus+stop+Parippally+Kerala+691574",
	StreetAddress: "Paravur - Parippally Rd, opp. bus stop, Parippally, Kerala 691574",
	InstagramLink: "https://www.instagram.com/swasti_lifecare",
	FacebookLink:  "https://www.facebook.com/p/Swasti-Lifecare-61577658077432/",
	ClinicHours:   ClinicHours,
}

var valueBoxes = []model.Box{
	{
		ID:          1,
		Icon:        "🩺",
		Title:       "Whole-Person, Family-First Care",
		Description: "Our family clinic treats every patient as a person, not a number, with time, attention, and a commitment to long-term relationships.",
		Order:       1,
	},
	{
		ID:          2,
		Icon:        "🧠",
		Title:       "Expert-Led Specialty Services",
		Description: "From neurology to orthopaedics, our visiting specialists bring advanced expertise right to your neighborhood.",
		Order:       2,
	},
	{
		ID:          3,
		Icon:        "🔬",
		Title:       "Diagnostics You Can Trust",
		Description: "With a full-service lab on-site and neuro-specific diagnostics like EEG and NCV, we ensure accurate, timely results.",
		Order:       3,
	},
	{
		ID:          4,
		Icon:        "🏠",
		Title:       "Continuity Beyond the Clinic",
		Description: "Whether it's physiotherapy or palliative care, our home care services extend quality healthcare into your living room.",
		Order:       4,
	},
}

func Doctors() []model.Doctor {
	return slices.Clone(doctors)
}

func DoctorByName(name string) (model.Doctor, bool) {
	for _, doctor := range doctors {
		if doctor.Name == name {
			return doctor, true
		}
	}

	return model.Doctor{}, false
}

// FeaturedDoctors returns the doctors highlighted on the home page.
func FeaturedDoctors() []model.Doctor {
	result := make([]model.Doctor, 0, len(doctors))

	for _, doctor := range doctors {
		if doctor.Featured {
			result = append(result, doctor)
		}
	}

	return result
}

func Services() []model.Service {
	result := make([]model.Service, len(services))

	for i, service := range services {
		service.ListItems = slices.Clone(service.ListItems)
		result[i] = service
	}

	return result
}

func ServicesByType(serviceType model.ServiceType) []model.Service {
	return slices.DeleteFunc(Services(), func(service model.Service) bool {
		return service.ServiceType != serviceType
	})
}

func ServiceBySlug(slug string) (model.Service, bool) {
	for _, service := range Services() {
		if service.Slug == slug {
			return service, true
		}
	}

	return model.Service{}, false
}

func LabTests() []string {
	return slices.Clone(labTests)
}

func NeuroLabTests() []string {
	return slices.Clone(neuroLabTests)
}

func PhysioServices() []string {
	return slices.Clone(physioServices)
}

func PhysioConditions() []string {
	return slices.Clone(physioConditions)
}

func HomeCareServices() []model.HomeCareService {
	result := make([]model.HomeCareService, len(homeCareServices))

	for i, service := range homeCareServices {
		service.Details = slices.Clone(service.Details)
		result[i] = service
	}

	return result
}

func ServiceAreas() []string {
	return slices.Clone(serviceAreas)
}

// Reviews returns the published reviews, newest first.
func Reviews() []model.Review {
	result := slices.DeleteFunc(slices.Clone(reviews), func(review model.Review) bool {
		return !review.Published
	})

	slices.SortStableFunc(result, func(a, b model.Review) int {
		return b.ReviewDate.Compare(a.ReviewDate)
	})

	return result
}

// BlogPosts returns the posts newest first.
func BlogPosts() []model.BlogPost {
	result := slices.Clone(blogPosts)

	slices.SortStableFunc(result, func(a, b model.BlogPost) int {
		return b.PublicationDate.Compare(a.PublicationDate)
	})

	return result
}

func BlogPostBySlug(slug string) (model.BlogPost, bool) {
	for _, post := range blogPosts {
		if post.Slug == slug {
			return post, true
		}
	}

	return model.BlogPost{}, false
}

func BlogSlugs() []string {
	posts := BlogPosts()
	result := make([]string, len(posts))

	for i, post := range posts {
		result[i] = post.Slug
	}

	return result
}

func ClinicInfo() model.ClinicInfo {
	return clinicInfo
}

func ValueBoxes() []model.Box {
	return slices.Clone(valueBoxes)
}
