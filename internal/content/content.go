// Package content holds the site's marketing copy. Everything here is a
// literal; pages only read from it.
package content

import "github.com/kohinoor-interiors/showroom/internal/models"

// Company is the contact block shown in the footer, the contact page and the
// floating social bar.
type Company struct {
	Name      string
	Tagline   string
	Phone     string
	Email     string
	WhatsApp  string
	Instagram string
	Facebook  string
	LinkedIn  string
	Hours     []string
}

// Kohinoor is the single company this site markets.
var Kohinoor = Company{
	Name:      "Kohinoor Interiors",
	Tagline:   "Crafting spaces that reflect who you are",
	Phone:     "+91 9866652824",
	Email:     "kohinoorinteriors09@gmail.com",
	WhatsApp:  "https://wa.me/919866652824",
	Instagram: "https://instagram.com",
	Facebook:  "https://facebook.com",
	LinkedIn:  "https://linkedin.com",
	Hours: []string{
		"Monday - Friday: 9:00 AM - 6:00 PM",
		"Saturday: 10:00 AM - 4:00 PM",
		"Sunday: Closed",
	},
}

// NavItem is one entry in the top navigation.
type NavItem struct {
	Label string
	Path  string
}

// Navigation lists the header links in display order.
var Navigation = []NavItem{
	{Label: "Home", Path: "/"},
	{Label: "About", Path: "/about"},
	{Label: "Projects", Path: "/projects"},
	{Label: "Contact", Path: "/contact"},
}

// Testimonial is one client quote in the home page carousel.
type Testimonial struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// Testimonials is the fixed carousel list.
var Testimonials = []Testimonial{
	{
		Name:    "Sadhanandha Reddy",
		Role:    "Homeowner",
		Content: "Kohinoor Interiors exceeded all our expectations! They transformed our living space into something truly magical. Their attention to detail and creative vision is absolutely outstanding.",
		Rating:  5,
	},
	{
		Name:    "Soundarya",
		Role:    "Property Owner",
		Content: "Working with Kohinoor Interiors was an amazing experience from start to finish. They understood our vision perfectly and delivered beyond what we imagined.",
		Rating:  5,
	},
	{
		Name:    "Sarah Johnson",
		Role:    "Homeowner",
		Content: "Kohinoor Interiors transformed our home beyond our wildest dreams. We couldn't be happier with the results!",
		Rating:  5,
	},
	{
		Name:    "Narayana Reddy",
		Role:    "Business Owner",
		Content: "The office renovation was completed on time and exceeded all expectations. Our employees love the new workspace, and clients keep complimenting the design.",
		Rating:  5,
	},
	{
		Name:    "Venkateshwara Rao",
		Role:    "Property Developer",
		Content: "Working with Kohinoor Interiors has been a game-changer for our luxury developments. Their expertise and professionalism are truly exceptional.",
		Rating:  5,
	},
}

// Service is one offering on the home page.
type Service struct {
	Title       string
	Description string
}

var Services = []Service{
	{
		Title:       "Residential Interior Design",
		Description: "Transform your home into a beautiful, functional living space that reflects your personal style and needs.",
	},
	{
		Title:       "Office Renovation",
		Description: "Create inspiring workspaces that boost productivity and reflect your company's brand and culture.",
	},
	{
		Title:       "Custom Construction Projects",
		Description: "From concept to completion, we handle all aspects of your custom construction and renovation needs.",
	},
}

// Room is a category landing page (kitchen, bedroom, living).
type Room struct {
	Slug       string
	Title      string
	Intro      string
	Highlights []string
	CallToAct  string
}

var Rooms = []Room{
	{
		Slug:  "kitchen",
		Title: "Kitchen",
		Intro: "From layout planning to material selection, we design ergonomic, easy-to-maintain kitchens that suit your cooking style and maximize storage.",
		Highlights: []string{
			"Modular and semi-modular layouts",
			"Moisture-resistant carcass and premium laminates",
			"Soft-close hardware and tall pantry units",
			"Task and under-cabinet lighting",
		},
		CallToAct: "Share your kitchen size and preferred style and we'll suggest a solution and timeline.",
	},
	{
		Slug:  "bedroom",
		Title: "Bedroom",
		Intro: "Calm, restful bedrooms with custom wardrobes, layered lighting and finishes chosen for comfort.",
		Highlights: []string{
			"Sliding and hinged wardrobes with internal organisers",
			"Upholstered headboards and bed-back panelling",
			"Layered ambient lighting",
			"Study and dresser units",
		},
		CallToAct: "Tell us about your room and storage needs and we'll plan a layout around them.",
	},
	{
		Slug:  "living",
		Title: "Living",
		Intro: "Living rooms designed for everyday family life and for entertaining, with storage that keeps clutter out of sight.",
		Highlights: []string{
			"TV units and feature walls",
			"False ceilings with cove lighting",
			"Crockery and display units",
			"Space planning for seating and circulation",
		},
		CallToAct: "Send us your floor plan and we'll propose a living room concept.",
	},
}

// Project is a completed job shown in the portfolio.
type Project struct {
	Slug        string
	Title       string
	Category    string
	Location    string
	Year        string
	Duration    string
	Summary     string
	Overview    string
	Features    []string
	Specs       []Spec
	Challenges  string
	Solutions   string
	Results     string
	ProjectType models.ProjectType
}

// Spec is a labelled technical detail.
type Spec struct {
	Label string
	Value string
}

var Projects = []Project{
	{
		Slug:        "modern-kitchen",
		Title:       "Modern Kitchen",
		Category:    "Residential",
		Location:    "Downtown Apartment",
		Year:        "2024",
		Duration:    "6 weeks",
		Summary:     "A sleek and functional kitchen design featuring premium appliances, marble countertops, and contemporary cabinetry.",
		Overview:    "A complete renovation of a dated apartment kitchen into a contemporary space that balances function with a clean, minimal look.",
		ProjectType: models.ProjectTypeResidential,
		Features: []string{
			"Premium stainless steel appliances",
			"Carrara marble countertops",
			"Custom shaker-style cabinetry",
			"Under-cabinet LED lighting",
			"Pull-out pantry systems",
		},
		Specs: []Spec{
			{Label: "Dimensions", Value: "12' x 18'"},
			{Label: "Style", Value: "Contemporary Minimalist"},
			{Label: "Colour Scheme", Value: "White, Gray, and Natural Wood"},
			{Label: "Materials", Value: "Marble, Stainless Steel, Engineered Wood"},
		},
		Challenges: "Working inside an occupied apartment building meant every electrical and plumbing upgrade had to be coordinated with building management.",
		Solutions:  "Cabinetry was pre-fabricated off-site and installed in modules, keeping on-site work short and disruption low.",
		Results:    "The kitchen became the social hub of the apartment and noticeably raised the property's appeal.",
	},
	{
		Slug:        "cozy-bedroom",
		Title:       "Cozy Bedroom",
		Category:    "Residential",
		Location:    "Suburban Villa",
		Year:        "2024",
		Duration:    "4 weeks",
		Summary:     "A warm and inviting bedroom retreat with custom furniture, ambient lighting, and luxurious finishes.",
		Overview:    "A plain bedroom reworked into a quiet retreat while keeping the villa's existing architectural details.",
		ProjectType: models.ProjectTypeResidential,
		Features: []string{
			"Custom upholstered headboard",
			"Walk-in wardrobe with organisers",
			"Layered ambient lighting",
			"Blackout drapery",
		},
		Specs: []Spec{
			{Label: "Dimensions", Value: "14' x 16'"},
			{Label: "Style", Value: "Warm Contemporary"},
			{Label: "Colour Scheme", Value: "Beige, Taupe, and Soft Gold"},
		},
		Challenges: "Existing window and door positions left little free wall for storage and the bed.",
		Solutions:  "Layered lighting and made-to-measure furniture used every usable wall without crowding the room.",
		Results:    "The homeowners now have a calm space to rest in, and the room reads larger than before.",
	},
	{
		Slug:        "corporate-office",
		Title:       "Corporate Office",
		Category:    "Commercial",
		Location:    "Business District",
		Year:        "2023",
		Duration:    "12 weeks",
		Summary:     "Professional workspace design that promotes productivity and reflects the company's modern brand identity.",
		Overview:    "A cubicle floor converted into a flexible office with zones for focused, collaborative and client-facing work.",
		ProjectType: models.ProjectTypeCommercial,
		Features: []string{
			"Movable acoustic partitions",
			"Collaborative lounges",
			"Glass-walled meeting rooms",
			"Branded reception",
		},
		Specs: []Spec{
			{Label: "Area", Value: "8,000 sq ft"},
			{Label: "Style", Value: "Modern Corporate"},
			{Label: "Capacity", Value: "120 workstations"},
		},
		Challenges: "The floor plan had to change completely without touching the building's structure.",
		Solutions:  "Modular partitions and flexible furniture systems split the floor into zones that can be rearranged later.",
		Results:    "Employee satisfaction went up and the office is now part of how the company recruits.",
	},
	{
		Slug:        "luxury-lobby",
		Title:       "Luxury Lobby",
		Category:    "Commercial",
		Location:    "Hotel Complex",
		Year:        "2023",
		Duration:    "10 weeks",
		Summary:     "An elegant hotel lobby featuring premium materials, sophisticated lighting, and timeless design elements.",
		Overview:    "A hotel lobby redesigned to work for daily operations and to act as the property's signature space.",
		ProjectType: models.ProjectTypeCommercial,
		Features: []string{
			"Italian marble flooring",
			"Custom chandelier installation",
			"Concierge and lounge zones",
			"Statement reception desk",
		},
		Specs: []Spec{
			{Label: "Area", Value: "5,500 sq ft"},
			{Label: "Style", Value: "Timeless Luxury"},
			{Label: "Materials", Value: "Marble, Brass, Walnut"},
		},
		Challenges: "The lobby had to stay open to guests throughout while becoming a visual statement for the brand.",
		Solutions:  "Work was phased zone by zone, with custom lighting defining each area and tying them together.",
		Results:    "The lobby became a destination in itself and guest satisfaction scores rose.",
	},
}

// FAQ is a question on the contact page.
type FAQ struct {
	Question string
	Answer   string
}

var FAQs = []FAQ{
	{
		Question: "How long does a typical project take?",
		Answer:   "Residential projects typically take 4-8 weeks, while commercial projects may take 8-16 weeks depending on scope.",
	},
	{
		Question: "Do you provide free consultations?",
		Answer:   "Yes. The first consultation is free: we discuss your project, understand your needs and share preliminary recommendations.",
	},
	{
		Question: "What's included in your service?",
		Answer:   "Design consultation, 3D visualization, project management, construction coordination and post-completion support.",
	},
	{
		Question: "Do you work within budgets?",
		Answer:   "Absolutely. We work with a range of budgets and propose options that fit yours without compromising quality.",
	},
}

// ProjectBySlug finds a portfolio project.
func ProjectBySlug(slug string) (Project, bool) {
	for _, p := range Projects {
		if p.Slug == slug {
			return p, true
		}
	}
	return Project{}, false
}

// RoomBySlug finds a room category.
func RoomBySlug(slug string) (Room, bool) {
	for _, r := range Rooms {
		if r.Slug == slug {
			return r, true
		}
	}
	return Room{}, false
}
