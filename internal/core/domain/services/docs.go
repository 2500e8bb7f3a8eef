// Package services contains stateless domain services that coordinate logic
// across aggregates: tailor selection for orders entering production and the
// pluggable mapping from item customizations to required specialties.
package services
