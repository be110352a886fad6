// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import "sitesmith/internal/models"

// categoryDisplayNames maps category ids to the labels shown in the
// template picker.
var categoryDisplayNames = map[string]string{
	"headers":      "Headers",
	"heroes":       "Hero Sections",
	"features":     "Feature Grids",
	"pricing":      "Pricing Tables",
	"testimonials": "Testimonials",
	"cta":          "Call to Action",
	"gallery":      "Galleries",
	"contact":      "Contact",
	"faq":          "FAQ",
	"footers":      "Footers",
}

// builtinTemplates is the full template set. DefaultContent is the
// payload copied onto new section instances; the core stores it opaquely.
var builtinTemplates = []models.SectionTemplate{
	{
		ID:          "header-classic",
		Category:    "headers",
		DisplayName: "Classic Header",
		Description: "Logo left, navigation right.",
		DefaultContent: map[string]any{
			"logoText": "Your Brand",
			"links": []any{
				map[string]any{"label": "Home", "href": "#"},
				map[string]any{"label": "About", "href": "#about"},
				map[string]any{"label": "Contact", "href": "#contact"},
			},
		},
	},
	{
		ID:          "header-centered",
		Category:    "headers",
		DisplayName: "Centered Header",
		Description: "Stacked logo with centered navigation.",
		DefaultContent: map[string]any{
			"logoText": "Your Brand",
			"tagline":  "A short tagline",
			"links": []any{
				map[string]any{"label": "Home", "href": "#"},
				map[string]any{"label": "Services", "href": "#services"},
			},
		},
	},
	{
		ID:          "hero-modern",
		Category:    "heroes",
		DisplayName: "Modern Hero",
		Description: "Large headline with a primary action button.",
		DefaultContent: map[string]any{
			"headline":    "Build something great",
			"subheadline": "Launch your site in minutes, not weeks.",
			"buttonText":  "Get Started",
			"buttonHref":  "#",
			"image":       "",
		},
	},
	{
		ID:          "hero-split",
		Category:    "heroes",
		DisplayName: "Split Hero",
		Description: "Text on the left, image on the right.",
		DefaultContent: map[string]any{
			"headline":   "Your product, front and center",
			"body":       "Explain the value in one or two sentences.",
			"buttonText": "Learn More",
			"image":      "",
		},
	},
	{
		ID:          "features-grid",
		Category:    "features",
		DisplayName: "Feature Grid",
		Description: "Three-column feature overview.",
		DefaultContent: map[string]any{
			"title": "Why choose us",
			"items": []any{
				map[string]any{"icon": "bolt", "title": "Fast", "body": "Pages load instantly."},
				map[string]any{"icon": "shield", "title": "Secure", "body": "Your data stays yours."},
				map[string]any{"icon": "heart", "title": "Simple", "body": "No configuration needed."},
			},
		},
	},
	{
		ID:          "features-list",
		Category:    "features",
		DisplayName: "Feature List",
		Description: "Vertical list with alternating imagery.",
		DefaultContent: map[string]any{
			"title": "Everything you need",
			"items": []any{
				map[string]any{"title": "Drag and drop", "body": "Reorder sections freely.", "image": ""},
				map[string]any{"title": "Themes", "body": "Switch looks with one click.", "image": ""},
			},
		},
	},
	{
		ID:          "pricing-three-tier",
		Category:    "pricing",
		DisplayName: "Three-Tier Pricing",
		Description: "Starter, Pro, and Business columns.",
		DefaultContent: map[string]any{
			"title": "Pricing",
			"tiers": []any{
				map[string]any{"name": "Starter", "price": "0", "period": "mo", "features": []any{"1 site", "Community support"}},
				map[string]any{"name": "Pro", "price": "12", "period": "mo", "features": []any{"10 sites", "Custom domain"}, "highlighted": true},
				map[string]any{"name": "Business", "price": "49", "period": "mo", "features": []any{"Unlimited sites", "Priority support"}},
			},
		},
	},
	{
		ID:          "pricing-simple",
		Category:    "pricing",
		DisplayName: "Simple Pricing",
		Description: "Single plan with a feature list.",
		DefaultContent: map[string]any{
			"title":      "One plan, everything included",
			"price":      "19",
			"period":     "mo",
			"features":   []any{"Unlimited pages", "Analytics", "Custom domain"},
			"buttonText": "Start free trial",
		},
	},
	{
		ID:          "testimonials-cards",
		Category:    "testimonials",
		DisplayName: "Testimonial Cards",
		Description: "Grid of customer quotes.",
		DefaultContent: map[string]any{
			"title": "Loved by our users",
			"quotes": []any{
				map[string]any{"author": "Ada L.", "role": "Founder", "text": "Shipped our site in an afternoon."},
				map[string]any{"author": "Grace H.", "role": "Designer", "text": "The templates are beautiful."},
			},
		},
	},
	{
		ID:          "cta-simple",
		Category:    "cta",
		DisplayName: "Simple CTA",
		Description: "One line and one button.",
		DefaultContent: map[string]any{
			"headline":   "Ready to get started?",
			"buttonText": "Create your site",
			"buttonHref": "#",
		},
	},
	{
		ID:          "cta-newsletter",
		Category:    "cta",
		DisplayName: "Newsletter Signup",
		Description: "Email capture with a short pitch.",
		DefaultContent: map[string]any{
			"headline":    "Stay in the loop",
			"body":        "Occasional updates, no spam.",
			"placeholder": "you@example.com",
			"buttonText":  "Subscribe",
		},
	},
	{
		ID:          "gallery-grid",
		Category:    "gallery",
		DisplayName: "Image Grid",
		Description: "Responsive grid of images.",
		DefaultContent: map[string]any{
			"title":  "Gallery",
			"images": []any{},
		},
	},
	{
		ID:          "contact-form",
		Category:    "contact",
		DisplayName: "Contact Form",
		Description: "Name, email, and message fields.",
		DefaultContent: map[string]any{
			"title":      "Get in touch",
			"email":      "hello@example.com",
			"buttonText": "Send message",
		},
	},
	{
		ID:          "contact-map",
		Category:    "contact",
		DisplayName: "Contact with Map",
		Description: "Address block next to an embedded map.",
		DefaultContent: map[string]any{
			"title":   "Visit us",
			"address": "1 Main Street",
			"city":    "Springfield",
			"mapURL":  "",
		},
	},
	{
		ID:          "faq-accordion",
		Category:    "faq",
		DisplayName: "FAQ Accordion",
		Description: "Expandable question list.",
		DefaultContent: map[string]any{
			"title": "Frequently asked questions",
			"items": []any{
				map[string]any{"question": "Can I use my own domain?", "answer": "Yes, on paid plans."},
				map[string]any{"question": "Is there a free tier?", "answer": "Yes, one site is free forever."},
			},
		},
	},
	{
		ID:          "footer-simple",
		Category:    "footers",
		DisplayName: "Simple Footer",
		Description: "Copyright line with social links.",
		DefaultContent: map[string]any{
			"text":   "© Your Brand. All rights reserved.",
			"social": []any{},
		},
	},
	{
		ID:          "footer-columns",
		Category:    "footers",
		DisplayName: "Column Footer",
		Description: "Multi-column link footer.",
		DefaultContent: map[string]any{
			"columns": []any{
				map[string]any{"title": "Product", "links": []any{map[string]any{"label": "Features", "href": "#"}}},
				map[string]any{"title": "Company", "links": []any{map[string]any{"label": "About", "href": "#"}}},
			},
			"text": "© Your Brand",
		},
	},
}
