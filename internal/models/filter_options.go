package models

// AgeRange is the inclusive min/max age observed across all records.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptions is a point-in-time snapshot of the distinct values available
// for each filterable dimension. Snapshots are immutable once built; the
// options cache replaces them wholesale and hands out clones so a snapshot
// never escapes by reference.
type FilterOptions struct {
	Regions           []string `json:"regions"`
	Genders           []string `json:"genders"`
	AgeRange          AgeRange `json:"age_range"`
	ProductCategories []string `json:"product_categories"`
	Tags              []string `json:"tags"`
	PaymentMethods    []string `json:"payment_methods"`
}

// Clone returns a deep copy safe to hand to callers.
func (o *FilterOptions) Clone() *FilterOptions {
	if o == nil {
		return nil
	}
	clone := &FilterOptions{
		Regions:           append([]string(nil), o.Regions...),
		Genders:           append([]string(nil), o.Genders...),
		AgeRange:          o.AgeRange,
		ProductCategories: append([]string(nil), o.ProductCategories...),
		Tags:              append([]string(nil), o.Tags...),
		PaymentMethods:    append([]string(nil), o.PaymentMethods...),
	}
	return clone
}
