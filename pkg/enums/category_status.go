package enums

import "fmt"

// CategoryStatus represents the visibility state of a catalog category.
type CategoryStatus string

const (
	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

var validCategoryStatuses = []CategoryStatus{
	CategoryStatusActive,
	CategoryStatusInactive,
}

// String implements fmt.Stringer.
func (s CategoryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CategoryStatus.
func (s CategoryStatus) IsValid() bool {
	for _, candidate := range validCategoryStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCategoryStatus converts raw input into a CategoryStatus.
func ParseCategoryStatus(value string) (CategoryStatus, error) {
	for _, candidate := range validCategoryStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category status %q", value)
}
