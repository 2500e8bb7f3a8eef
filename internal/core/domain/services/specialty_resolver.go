package services

import (
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
)

// SpecialtyResolver maps free-form order-item customizations to the specialty
// tags a tailor must hold to work the order.
//
// The mapping is heuristic and intentionally pluggable: the customization
// vocabulary is open-ended, and strategies are expected to evolve without
// touching the dispatch flow.
type SpecialtyResolver interface {
	// Resolve returns the required specialties for the given order lines.
	// An empty result means any available tailor qualifies.
	Resolve(items []order.OrderItem) []tailor.Specialty
}

// customizationTypeMap is the default "type" key vocabulary.
var customizationTypeMap = map[string]tailor.Specialty{
	"suit":        tailor.Suits,
	"dress":       tailor.Dresses,
	"alteration":  tailor.Alterations,
	"traditional": tailor.Traditional,
	"custom":      tailor.CustomDesign,
}

// CustomizationTypeResolver is the default SpecialtyResolver strategy.
// It inspects each item's "type" customization and collects the matching
// specialty tags in first-seen order. Unknown or absent types contribute no
// requirement.
type CustomizationTypeResolver struct{}

// NewCustomizationTypeResolver creates the default resolver strategy.
func NewCustomizationTypeResolver() CustomizationTypeResolver {
	return CustomizationTypeResolver{}
}

// Resolve implements SpecialtyResolver.
func (CustomizationTypeResolver) Resolve(items []order.OrderItem) []tailor.Specialty {
	seen := make(map[tailor.Specialty]bool)
	var required []tailor.Specialty

	for _, item := range items {
		specialty, ok := customizationTypeMap[item.Customizations()["type"]]
		if !ok || seen[specialty] {
			continue
		}
		seen[specialty] = true
		required = append(required, specialty)
	}

	return required
}
