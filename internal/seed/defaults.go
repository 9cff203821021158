package seed

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ahamedusman/portfolio-core/internal/models"
	"github.com/ahamedusman/portfolio-core/internal/pkg/fallback"
)

// Content is a full in-memory content set, one field per collection.
type Content struct {
	Profile      *models.ProfileModel
	Header       *models.HeaderModel
	Footer       *models.FooterModel
	Skills       []models.SkillModel
	Experiences  []models.ExperienceModel
	Services     []models.ServiceModel
	Projects     []models.ProjectModel
	Testimonials []models.TestimonialModel
	Blogs        []models.BlogModel
}

func date(value string) *time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return &t
}

// Defaults is the built-in content set used when no dump provides a
// collection. It mirrors what the site renders before any real content
// exists.
func Defaults() Content {
	return Content{
		Profile: &models.ProfileModel{
			Name:         "Ahamed Usman",
			Title:        "Full Stack Developer",
			Tagline:      "I create thoughtfully crafted digital experiences that combine elegant design with powerful functionality.",
			About:        "I'm a passionate Full Stack Developer with expertise in modern web technologies.",
			Journey:      "I'm a passionate Full Stack Developer with expertise in modern web technologies. With a keen eye for design and strong technical skills, I build applications that are not just functional but also provide exceptional user experiences.",
			Availability: "I'm currently available for freelance projects and full-time opportunities. Let's create something amazing together.",
			ProfileImage: "/profile.jpg",
			ContactCTA:   "Interested in working together?",
		},
		Header: &models.HeaderModel{
			Logo: "Ahamed Usman",
			Navigation: []models.NavItem{
				{Label: "Home", Href: "/"},
				{Label: "About", Href: "/about"},
				{Label: "Projects", Href: "/projects"},
				{Label: "Services", Href: "/services"},
				{Label: "Contact", Href: "/contact"},
			},
			CTAButton: models.CTAButton{Label: "Get in Touch", Href: "/contact"},
		},
		Footer: &models.FooterModel{
			Copyright: "© 2025 Ahamed Usman. All rights reserved.",
			SocialLinks: []models.SocialLink{
				{Platform: "GitHub", URL: "https://github.com/username", Icon: "github"},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/username", Icon: "linkedin"},
				{Platform: "Twitter", URL: "https://twitter.com/username", Icon: "twitter"},
			},
			Links: []models.FooterLink{
				{Label: "Privacy Policy", Href: "/privacy"},
				{Label: "Terms of Service", Href: "/terms"},
			},
			Credits: "Designed and built by Ahamed Usman",
		},
		Skills: []models.SkillModel{
			{Name: "JavaScript", Category: "frontend", Icon: "javascript.svg", Order: 1},
			{Name: "React", Category: "frontend", Icon: "react.svg", Order: 2},
			{Name: "Node.js", Category: "backend", Icon: "node.svg", Order: 3},
			{Name: "TypeScript", Category: "frontend", Icon: "typescript.svg", Order: 4},
			{Name: "Next.js", Category: "frontend", Icon: "next.svg", Order: 5},
			{Name: "TailwindCSS", Category: "frontend", Icon: "tailwind.svg", Order: 6},
			{Name: "MongoDB", Category: "database", Icon: "mongodb.svg", Order: 7},
			{Name: "GraphQL", Category: "backend", Icon: "graphql.svg", Order: 8},
		},
		Experiences: []models.ExperienceModel{
			{
				Role: "Senior Developer", Company: "Tech Solutions Inc",
				Period:      "2021 - Present",
				Description: "Led development of multiple web applications using React and Node.js",
				StartDate:   date("2021-01-01"), Current: true, Order: 1,
			},
			{
				Role: "Full Stack Developer", Company: "Digital Innovations",
				Period:      "2018 - 2021",
				Description: "Worked on e-commerce platforms and content management systems",
				StartDate:   date("2018-01-01"), EndDate: date("2020-12-31"), Order: 2,
			},
			{
				Role: "Frontend Developer", Company: "Creative Studio",
				Period:      "2016 - 2018",
				Description: "Developed responsive websites and interactive user interfaces",
				StartDate:   date("2016-01-01"), EndDate: date("2017-12-31"), Order: 3,
			},
		},
		Services: []models.ServiceModel{
			{
				Title:       "Web Development",
				Description: "I build responsive, performant websites with modern frameworks and best practices.",
				Icon:        "🌐", Order: 1,
			},
			{
				Title:       "Mobile Applications",
				Description: "Cross-platform mobile apps that provide native-like experiences on all devices.",
				Icon:        "📱", Order: 2,
			},
			{
				Title:       "UI/UX Design",
				Description: "User-centered design that balances aesthetics with functionality and accessibility.",
				Icon:        "🎨", Order: 3,
			},
		},
		Projects: []models.ProjectModel{
			{
				Title:        "E-commerce Platform",
				Description:  "A full-featured e-commerce platform built with Next.js, Node.js, and MongoDB. Includes product management, cart functionality, user authentication, and payment processing.",
				Technologies: models.StringSlice{"Next.js", "Node.js", "MongoDB", "Stripe", "TailwindCSS"},
				Role:         "Full Stack Developer",
				Challenge:    "Creating a seamless shopping experience while ensuring secure payment processing and efficient inventory management.",
				Outcome:      "Increased conversion rates by 25% and reduced cart abandonment by implementing an optimized checkout flow.",
				Duration:     "4 months", Year: "2024",
				Images: models.StringSlice{"/projects/ecommerce-1.jpg", "/projects/ecommerce-2.jpg"},
				Videos: []models.Video{{
					URL: "https://www.youtube.com/watch?v=example1", Title: "E-commerce Demo",
					Thumbnail: "/projects/ecommerce-thumbnail.jpg",
				}},
				Order: 1,
			},
			{
				Title:        "Health & Fitness App",
				Description:  "A mobile-first web application for tracking workouts, nutrition, and health metrics. Features include custom workout plans, meal tracking, and progress visualization.",
				Technologies: models.StringSlice{"React", "Firebase", "Chart.js", "PWA", "TailwindCSS"},
				Role:         "Frontend Developer & UX Designer",
				Challenge:    "Designing an intuitive interface that motivates users to maintain their fitness routines and track their progress effectively.",
				Outcome:      "Achieved 80% user retention rate after 3 months, with users reporting improved fitness outcomes.",
				Duration:     "3 months", Year: "2023",
				Images: models.StringSlice{"/projects/fitness-1.jpg", "/projects/fitness-2.jpg"},
				Order:  2,
			},
		},
		Testimonials: []models.TestimonialModel{
			{
				Name: "Sarah Johnson", Role: "Product Manager", Company: "Tech Solutions Inc",
				Text:  "An exceptional developer who delivers on time and communicates clearly throughout the project.",
				Order: 1, Featured: true,
			},
		},
		Blogs: []models.BlogModel{
			{
				Title:    "The Future of Web Development",
				Slug:     "future-of-web-development",
				Excerpt:  "Exploring upcoming technologies and trends that will shape web development in the coming years.",
				Content:  "<p>The web development landscape is constantly evolving, with new technologies and approaches emerging regularly.</p>",
				Category: "Technology",
				Tags:     models.StringSlice{"webdev", "trends"},
				Featured: true,
			},
		},
	}
}

// Resolve merges a fetched content set over the defaults, collection by
// collection. Nil or empty fetched collections fall back.
func Resolve(fetched, defaults Content) Content {
	profile := fallback.Resolve(fetched.Profile, *defaults.Profile)
	header := fallback.Resolve(fetched.Header, *defaults.Header)
	footer := fallback.Resolve(fetched.Footer, *defaults.Footer)
	return Content{
		Profile:      &profile,
		Header:       &header,
		Footer:       &footer,
		Skills:       fallback.ResolveSlice(fetched.Skills, defaults.Skills),
		Experiences:  fallback.ResolveSlice(fetched.Experiences, defaults.Experiences),
		Services:     fallback.ResolveSlice(fetched.Services, defaults.Services),
		Projects:     fallback.ResolveSlice(fetched.Projects, defaults.Projects),
		Testimonials: fallback.ResolveSlice(fetched.Testimonials, defaults.Testimonials),
		Blogs:        fallback.ResolveSlice(fetched.Blogs, defaults.Blogs),
	}
}

// ApplyDefaults replaces every collection with the default content set.
func ApplyDefaults(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range CollectionNames {
			if err := seedCollectionDefault(tx, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedCollectionDefaultIfEmpty(tx *gorm.DB, name string) error {
	var count int64
	if err := tx.Table(name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return seedCollectionDefault(tx, name)
}

func seedCollectionDefault(tx *gorm.DB, name string) error {
	defaults := Defaults()
	switch name {
	case "profiles":
		return replaceTyped(tx, []models.ProfileModel{*defaults.Profile})
	case "headers":
		return replaceTyped(tx, []models.HeaderModel{*defaults.Header})
	case "footers":
		return replaceTyped(tx, []models.FooterModel{*defaults.Footer})
	case "skills":
		return replaceTyped(tx, defaults.Skills)
	case "experiences":
		return replaceTyped(tx, defaults.Experiences)
	case "services":
		return replaceTyped(tx, defaults.Services)
	case "projects":
		return replaceTyped(tx, defaults.Projects)
	case "testimonials":
		return replaceTyped(tx, defaults.Testimonials)
	case "blogs":
		return replaceTyped(tx, defaults.Blogs)
	default:
		return fmt.Errorf("unknown collection: %s", name)
	}
}

func replaceTyped[T any](tx *gorm.DB, items []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T)).Error; err != nil {
		return err
	}
	for i := range items {
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
