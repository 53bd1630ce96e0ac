package projects

import (
	"sort"
	"strings"

	"github.com/rshade/projectinsights/internal/pagination"
)

// Sort fields accepted by Sorter.
const (
	SortBySerial     = "sno"
	SortByPercentage = "percentage"
	SortByPledged    = "pledged"
	SortByTitle      = "title"
	SortByBackers    = "backers"
)

// Sorter orders projects by a named field.
type Sorter struct {
	validFields map[string]bool
}

// NewSorter creates a Sorter with the supported fields.
func NewSorter() *Sorter {
	return &Sorter{
		validFields: map[string]bool{
			SortBySerial:     true,
			SortByPercentage: true,
			SortByPledged:    true,
			SortByTitle:      true,
			SortByBackers:    true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *Sorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields in a stable order.
func (s *Sorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort returns a sorted copy of list. An unknown field returns list unchanged.
func (s *Sorter) Sort(list []Project, field, order string) []Project {
	if !s.IsValidField(field) {
		return list
	}

	sorted := make([]Project, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		// Swap for descending order so the stable sort keeps ties in input order.
		if order == pagination.SortOrderDesc {
			i, j = j, i
		}

		switch field {
		case SortBySerial:
			return sorted[i].SerialNo < sorted[j].SerialNo
		case SortByPercentage:
			return sorted[i].PercentageFunded < sorted[j].PercentageFunded
		case SortByPledged:
			return sorted[i].AmountPledged < sorted[j].AmountPledged
		case SortByTitle:
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		case SortByBackers:
			return sorted[i].Backers() < sorted[j].Backers()
		default:
			return false
		}
	})

	return sorted
}

// CycleFields is the order in which the interactive view cycles sort fields.
func CycleFields() []string {
	return []string{SortBySerial, SortByPledged, SortByPercentage, SortByBackers, SortByTitle}
}
