package catalog

import (
	"testing"

	"github.com/GlebRadaev/elaccess/internal/domain"
	"github.com/GlebRadaev/elaccess/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *Catalog {
	c, err := New()
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	c := newCatalog(t)

	assert.Equal(t, 1, c.Version())
	assert.Len(t, c.Categories(), 6)
	assert.Len(t, c.BankAccounts(), 3)
	assert.Equal(t, "python", c.Categories()[0].ID)
}

func TestFindCourse(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name        string
		id          string
		expected    domain.Course
		expectedErr error
	}{
		{
			name: "Existing course",
			id:   "python-basics",
			expected: domain.Course{
				ID:         "python-basics",
				CategoryID: "python",
				Name:       "Python Basics",
				Price:      money.FromNaira(30000),
			},
		},
		{
			name:        "Unknown course",
			id:          "cobol-basics",
			expectedErr: ErrCourseNotFound,
		},
		{
			name:        "Empty id",
			id:          "",
			expectedErr: ErrCourseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, err := c.FindCourse(tt.id)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, course)
		})
	}
}

func TestFindCategory(t *testing.T) {
	c := newCatalog(t)

	category, err := c.FindCategory("javascript")
	require.NoError(t, err)
	assert.Equal(t, "JavaScript", category.Name)
	assert.Equal(t, money.FromNaira(25000), category.BundlePrice)

	_, err = c.FindCategory("html-css")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCoursesInCategory(t *testing.T) {
	c := newCatalog(t)

	courses := c.CoursesInCategory("backend")
	require.Len(t, courses, 5)
	for _, course := range courses {
		assert.Equal(t, "backend", course.CategoryID)
	}

	assert.Nil(t, c.CoursesInCategory("unknown"))

	courses[0].Name = "changed"
	assert.Equal(t, "Introduction to Backend Development", c.CoursesInCategory("backend")[0].Name)
}

func TestResolve(t *testing.T) {
	c := newCatalog(t)

	tests := []struct {
		name        string
		selection   domain.Selection
		expected    domain.Offering
		expectedErr error
	}{
		{
			name:      "Single course",
			selection: domain.CourseOffering{CourseID: "python-basics"},
			expected:  domain.Offering{Name: "Python Basics", Price: money.FromNaira(30000)},
		},
		{
			name:      "Bundle uses bundle price",
			selection: domain.BundleOffering{CategoryID: "javascript"},
			expected:  domain.Offering{Name: "JavaScript Bundle", Price: money.FromNaira(25000)},
		},
		{
			name:        "Unknown course",
			selection:   domain.CourseOffering{CourseID: "nope"},
			expectedErr: ErrCourseNotFound,
		},
		{
			name:        "Unknown bundle",
			selection:   domain.BundleOffering{CategoryID: "nope"},
			expectedErr: ErrCategoryNotFound,
		},
		{
			name:        "Nil selection",
			selection:   nil,
			expectedErr: ErrCourseNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offering, err := c.Resolve(tt.selection)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, offering)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "Malformed yaml",
			data: "categories: [",
		},
		{
			name: "Duplicate category",
			data: `
categories:
  - {id: a, name: A, bundle_price: 1}
  - {id: a, name: A, bundle_price: 1}
`,
		},
		{
			name: "Duplicate course across categories",
			data: `
categories:
  - id: a
    bundle_price: 1
    courses: [{id: x, name: X, price: 1}]
  - id: b
    bundle_price: 1
    courses: [{id: x, name: X, price: 1}]
`,
		},
		{
			name: "Non positive price",
			data: `
categories:
  - id: a
    bundle_price: 1
    courses: [{id: x, name: X, price: 0}]
`,
		},
		{
			name: "Missing bundle price",
			data: `
categories:
  - {id: a, name: A}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load([]byte(tt.data))
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}
