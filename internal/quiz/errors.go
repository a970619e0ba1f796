package quiz

import "fmt"

// InsufficientDataError indicates a structurally valid bank does not meet the
// configured selection thresholds.
type InsufficientDataError struct {
	Reason string
}

// Error returns the threshold shortfall description.
func (err *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient question data: %s", err.Reason)
}

// InsufficientCategoryError indicates one category is too small for the
// requested per-category sample.
type InsufficientCategoryError struct {
	Category string
	Have     int
	Want     int
}

// Error names the short category and its shortfall.
func (err *InsufficientCategoryError) Error() string {
	return fmt.Sprintf("category %q has %d questions, need %d", err.Category, err.Have, err.Want)
}
