package catalog

import (
	"fmt"

	"github.com/harrison/screener/internal/models"
)

// Builtin returns the instrument definitions shipped with screener, in menu order.
// Each call returns freshly built values.
func Builtin() []models.Instrument {
	return []models.Instrument{
		majorDepressionAdult(),
		generalizedAnxietyAdult(),
		adhdAdult(),
		postTraumaticStressAdult(),
		bipolarScreen(),
		obsessiveCompulsiveAdult(),
		depressionQuickCheck(),
		anxietyQuickCheck(),
		stressCheck(),
		sleepCheck(),
	}
}

// Default builds the built-in catalog. The built-in definitions are covered by
// tests, so a failure here is a programming error.
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(fmt.Sprintf("built-in catalog is invalid: %v", err))
	}
	return c
}
