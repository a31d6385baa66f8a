package usecase

import "time"

const (
	// TopSpendingCategories is how many categories a spending analysis returns.
	TopSpendingCategories = 5

	// DefaultRateTTL is how long fetched exchange rates stay cached.
	DefaultRateTTL = time.Hour

	// contributionCategory labels the expense transaction a goal contribution creates.
	contributionCategory = "savings"
)
