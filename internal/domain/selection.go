package domain

// Selection is either a single course or the bundle of a whole category.
type Selection interface {
	isSelection()
}

type CourseOffering struct {
	CourseID string
}

type BundleOffering struct {
	CategoryID string
}

func (CourseOffering) isSelection() {}
func (BundleOffering) isSelection() {}
