package memory

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/sauticheck/sauticheck-api/internal/models"
)

// defaultAdminHash is the bcrypt hash of "admin123", carried over so a fresh
// process always has a working admin login. Override it in production with
// ADMIN_PASSWORD_HASH.
const (
	defaultAdminEmail = "admin@sauticheck.com"
	defaultAdminHash  = "$2b$10$mbTgI9Ke9PlA9LzSnBXyE.YDMtDpRVssEm4etuZSgnD/jJNNWHq6C"
)

// SeedOptions controls the startup fixtures.
type SeedOptions struct {
	AdminEmail        string
	AdminPasswordHash string
	FixtureFile       string
}

// NewSeeded returns a store preloaded with the admin user and sample content.
// When FixtureFile is set the sample articles, alerts, and jobs are read from
// that YAML file instead of the built-in defaults.
func NewSeeded(opts SeedOptions) (*Store, error) {
	s := New()
	s.seedAdmin(opts)

	fixtures := defaultFixtures()
	if opts.FixtureFile != "" {
		loaded, err := loadFixtures(opts.FixtureFile)
		if err != nil {
			return nil, fmt.Errorf("load seed fixtures: %w", err)
		}
		fixtures = loaded
	}
	s.seedFixtures(fixtures)
	return s, nil
}

func (s *Store) seedAdmin(opts SeedOptions) {
	email := opts.AdminEmail
	if email == "" {
		email = defaultAdminEmail
	}
	hash := opts.AdminPasswordHash
	if hash == "" {
		hash = defaultAdminHash
	}

	id := uuid.NewString()
	s.users[id] = models.User{
		ID:        id,
		Username:  "admin",
		Email:     email,
		Password:  hash,
		FirstName: "Admin",
		LastName:  "User",
		Location:  "HQ",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}
}

// seedFixtures inserts content directly so that the relative ages survive
// instead of being overwritten with the creation timestamp.
func (s *Store) seedFixtures(f fixtures) {
	now := time.Now()
	for _, a := range f.Articles {
		id := uuid.NewString()
		s.nextSeq(id)
		s.articles[id] = models.Article{
			ID:          id,
			Title:       a.Title,
			Excerpt:     a.Excerpt,
			Content:     a.Content,
			Category:    a.Category,
			Source:      a.Source,
			Author:      a.Author,
			ImageURL:    a.ImageURL,
			Verified:    a.Verified,
			PublishedAt: now.Add(-time.Duration(a.AgeHours) * time.Hour),
			CreatedAt:   now,
		}
	}
	for _, al := range f.Alerts {
		id := uuid.NewString()
		s.nextSeq(id)
		s.alerts[id] = models.CivicAlert{
			ID:         id,
			Title:      al.Title,
			Message:    al.Message,
			Type:       al.Type,
			Category:   al.Category,
			ActionText: al.ActionText,
			ActionURL:  al.ActionURL,
			IsActive:   al.IsActive,
			CreatedAt:  now.Add(-time.Duration(al.AgeHours) * time.Hour),
		}
	}
	for _, j := range f.Jobs {
		id := uuid.NewString()
		s.nextSeq(id)
		job := models.Job{
			ID:             id,
			Title:          j.Title,
			Company:        j.Company,
			Location:       j.Location,
			Type:           j.Type,
			Description:    j.Description,
			Requirements:   j.Requirements,
			Salary:         j.Salary,
			ApplicationURL: j.ApplicationURL,
			PostedAt:       now,
		}
		if j.ExpiresInDays > 0 {
			expires := now.Add(time.Duration(j.ExpiresInDays) * 24 * time.Hour)
			job.ExpiresAt = &expires
		}
		s.jobs[id] = job
	}
}

type fixtures struct {
	Articles []articleFixture `yaml:"articles"`
	Alerts   []alertFixture   `yaml:"alerts"`
	Jobs     []jobFixture     `yaml:"jobs"`
}

type articleFixture struct {
	Title    string  `yaml:"title"`
	Excerpt  string  `yaml:"excerpt"`
	Content  string  `yaml:"content"`
	Category string  `yaml:"category"`
	Source   string  `yaml:"source"`
	Author   *string `yaml:"author"`
	ImageURL *string `yaml:"imageUrl"`
	Verified bool    `yaml:"verified"`
	AgeHours int     `yaml:"ageHours"`
}

type alertFixture struct {
	Title      string  `yaml:"title"`
	Message    string  `yaml:"message"`
	Type       string  `yaml:"type"`
	Category   string  `yaml:"category"`
	ActionText *string `yaml:"actionText"`
	ActionURL  *string `yaml:"actionUrl"`
	IsActive   bool    `yaml:"isActive"`
	AgeHours   int     `yaml:"ageHours"`
}

type jobFixture struct {
	Title          string  `yaml:"title"`
	Company        string  `yaml:"company"`
	Location       string  `yaml:"location"`
	Type           string  `yaml:"type"`
	Description    string  `yaml:"description"`
	Requirements   string  `yaml:"requirements"`
	Salary         *string `yaml:"salary"`
	ApplicationURL *string `yaml:"applicationUrl"`
	ExpiresInDays  int     `yaml:"expiresInDays"`
}

func loadFixtures(path string) (fixtures, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fixtures{}, err
	}
	var f fixtures
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fixtures{}, err
	}
	return f, nil
}

func strPtr(s string) *string { return &s }

func defaultFixtures() fixtures {
	return fixtures{
		Articles: []articleFixture{
			{
				Title:    "Kenya Parliament Passes New Economic Stimulus Package",
				Excerpt:  "The National Assembly approved a comprehensive economic stimulus package aimed at supporting small businesses and creating employment opportunities for youth across the country.",
				Content:  "The Kenyan Parliament has unanimously passed a landmark economic stimulus package...",
				Category: "Politics",
				Source:   "The Daily Nation",
				Author:   strPtr("Jane Wanjiku"),
				ImageURL: strPtr("https://images.unsplash.com/photo-1551836022-d5d88e9218df?w=600&h=300&fit=crop"),
				Verified: true,
				AgeHours: 2,
			},
			{
				Title:    "Nairobi County Unveils New Urban Development Plan",
				Excerpt:  "The county government announced a comprehensive urban development strategy focusing on affordable housing and improved transportation infrastructure.",
				Content:  "Nairobi County Governor announced a comprehensive urban development plan...",
				Category: "Infrastructure",
				Source:   "Standard Digital",
				Author:   strPtr("Peter Maina"),
				ImageURL: strPtr("https://images.unsplash.com/photo-1554774853-aae0a22c8aa4?w=600&h=300&fit=crop"),
				Verified: true,
				AgeHours: 4,
			},
			{
				Title:    "New University Scholarship Program Launched",
				Excerpt:  "The Ministry of Education announced a new scholarship initiative targeting students from marginalized communities across Kenya.",
				Content:  "The Ministry of Education has launched a comprehensive scholarship program...",
				Category: "Education",
				Source:   "Capital FM",
				Author:   strPtr("Sarah Kiprotich"),
				ImageURL: strPtr("https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=600&h=300&fit=crop"),
				Verified: true,
				AgeHours: 6,
			},
			{
				Title:    "Healthcare Workers Strike Called Off",
				Excerpt:  "The Kenya Medical Practitioners union reached an agreement with the government ending the month-long strike action.",
				Content:  "After weeks of negotiations, the healthcare workers strike has been called off...",
				Category: "Health",
				Source:   "Nation Media",
				Author:   strPtr("Dr. James Mwangi"),
				ImageURL: strPtr("https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=600&h=300&fit=crop"),
				Verified: true,
				AgeHours: 8,
			},
			{
				Title:    "Youth Employment Initiative Creates 10,000 Jobs",
				Excerpt:  "A new government initiative in partnership with private sector aims to create sustainable employment opportunities for young Kenyans.",
				Content:  "The government has launched an ambitious youth employment initiative...",
				Category: "Economy",
				Source:   "Business Daily",
				Author:   strPtr("Mary Njoki"),
				ImageURL: strPtr("https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=600&h=300&fit=crop"),
				Verified: true,
				AgeHours: 12,
			},
		},
		Alerts: []alertFixture{
			{
				Title:      "Voter Registration",
				Message:    "IEBC opens voter registration centers across Nairobi. Register by December 15th.",
				Type:       "info",
				Category:   "Elections",
				ActionText: strPtr("Learn More"),
				ActionURL:  strPtr("#"),
				IsActive:   true,
				AgeHours:   48,
			},
			{
				Title:      "Public Hearing",
				Message:    "County budget hearing scheduled for Thursday at KICC. Public participation welcome.",
				Type:       "info",
				Category:   "Budget",
				ActionText: strPtr("Attend"),
				ActionURL:  strPtr("#"),
				IsActive:   true,
				AgeHours:   5,
			},
			{
				Title:      "Tax Deadline",
				Message:    "KRA reminds taxpayers of the December 31st deadline for annual returns filing.",
				Type:       "warning",
				Category:   "Tax",
				ActionText: strPtr("File Now"),
				ActionURL:  strPtr("#"),
				IsActive:   true,
				AgeHours:   24,
			},
		},
		Jobs: []jobFixture{
			{
				Title:          "Software Developer",
				Company:        "Safaricom PLC",
				Location:       "Nairobi, Kenya",
				Type:           "full-time",
				Description:    "We are looking for a talented software developer to join our digital innovation team.",
				Requirements:   "Bachelor's degree in Computer Science, 2+ years experience in software development, proficiency in JavaScript and Python.",
				Salary:         strPtr("KSh 80,000 - 120,000"),
				ApplicationURL: strPtr("https://safaricom.co.ke/careers"),
				ExpiresInDays:  30,
			},
			{
				Title:          "Marketing Intern",
				Company:        "Equity Bank",
				Location:       "Nairobi, Kenya",
				Type:           "internship",
				Description:    "Join our marketing team as an intern and gain hands-on experience in digital marketing and brand management.",
				Requirements:   "Currently pursuing a degree in Marketing, Business, or related field. Strong communication skills and creativity.",
				Salary:         strPtr("KSh 25,000 stipend"),
				ApplicationURL: strPtr("https://equitybank.co.ke/careers"),
				ExpiresInDays:  15,
			},
			{
				Title:          "Junior Accountant",
				Company:        "Kenya Commercial Bank",
				Location:       "Mombasa, Kenya",
				Type:           "full-time",
				Description:    "We are seeking a detail-oriented junior accountant to support our finance team.",
				Requirements:   "Bachelor's degree in Accounting or Finance, CPA Part I preferred, 1+ year experience.",
				Salary:         strPtr("KSh 60,000 - 80,000"),
				ApplicationURL: strPtr("https://kcbgroup.com/careers"),
				ExpiresInDays:  20,
			},
		},
	}
}
