package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/pkg/money"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCourseNotFound   = errors.New("course not found")
)

type courseEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Price int64  `yaml:"price"`
}

type categoryEntry struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	BundlePrice int64         `yaml:"bundle_price"`
	Courses     []courseEntry `yaml:"courses"`
}

type document struct {
	Version      int                  `yaml:"version"`
	Categories   []categoryEntry      `yaml:"categories"`
	BankAccounts []domain.BankAccount `yaml:"bank_accounts"`
}

// Catalog is the read-only table of categories and courses on offer.
type Catalog struct {
	version    int
	categories []domain.Category
	byCategory map[string]domain.Category
	courses    map[string]domain.Course
	inCategory map[string][]domain.Course
	accounts   []domain.BankAccount
}

// New loads the catalog compiled into the binary.
func New() (*Catalog, error) {
	return Load(defaultCatalog)
}

func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		version:    doc.Version,
		byCategory: make(map[string]domain.Category, len(doc.Categories)),
		courses:    make(map[string]domain.Course),
		inCategory: make(map[string][]domain.Course, len(doc.Categories)),
		accounts:   doc.BankAccounts,
	}

	for _, entry := range doc.Categories {
		if entry.ID == "" {
			return nil, errors.New("category without id")
		}
		if _, dup := c.byCategory[entry.ID]; dup {
			return nil, fmt.Errorf("duplicate category %q", entry.ID)
		}
		if entry.BundlePrice <= 0 {
			return nil, fmt.Errorf("category %q: bundle price must be positive", entry.ID)
		}
		category := domain.Category{
			ID:          entry.ID,
			Name:        entry.Name,
			Description: entry.Description,
			BundlePrice: money.FromNaira(entry.BundlePrice),
		}
		c.categories = append(c.categories, category)
		c.byCategory[category.ID] = category

		for _, ce := range entry.Courses {
			if ce.ID == "" {
				return nil, fmt.Errorf("category %q: course without id", entry.ID)
			}
			if _, dup := c.courses[ce.ID]; dup {
				return nil, fmt.Errorf("duplicate course %q", ce.ID)
			}
			if ce.Price <= 0 {
				return nil, fmt.Errorf("course %q: price must be positive", ce.ID)
			}
			course := domain.Course{
				ID:         ce.ID,
				CategoryID: category.ID,
				Name:       ce.Name,
				Price:      money.FromNaira(ce.Price),
			}
			c.courses[course.ID] = course
			c.inCategory[category.ID] = append(c.inCategory[category.ID], course)
		}
	}

	return c, nil
}

func (c *Catalog) Version() int {
	return c.version
}

func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) FindCategory(id string) (domain.Category, error) {
	category, ok := c.byCategory[id]
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}
	return category, nil
}

func (c *Catalog) FindCourse(id string) (domain.Course, error) {
	course, ok := c.courses[id]
	if !ok {
		return domain.Course{}, ErrCourseNotFound
	}
	return course, nil
}

// CoursesInCategory returns nil for an unknown category.
func (c *Catalog) CoursesInCategory(categoryID string) []domain.Course {
	courses := c.inCategory[categoryID]
	if courses == nil {
		return nil
	}
	out := make([]domain.Course, len(courses))
	copy(out, courses)
	return out
}

func (c *Catalog) BankAccounts() []domain.BankAccount {
	out := make([]domain.BankAccount, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Resolve turns a selection into the name and price printed on the receipt.
func (c *Catalog) Resolve(sel domain.Selection) (domain.Offering, error) {
	switch s := sel.(type) {
	case domain.CourseOffering:
		course, err := c.FindCourse(s.CourseID)
		if err != nil {
			return domain.Offering{}, err
		}
		return domain.Offering{Name: course.Name, Price: course.Price}, nil
	case domain.BundleOffering:
		category, err := c.FindCategory(s.CategoryID)
		if err != nil {
			return domain.Offering{}, err
		}
		return domain.Offering{Name: BundleName(category), Price: category.BundlePrice}, nil
	default:
		return domain.Offering{}, ErrCourseNotFound
	}
}

func BundleName(category domain.Category) string {
	return category.Name + " Bundle"
}
