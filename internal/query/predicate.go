// Package query holds the backend-neutral core of the transaction search:
// predicate construction, sort resolution and pagination arithmetic. Both
// storage strategies consume these, so nothing here may touch a database.
package query

import (
	"strings"
	"time"

	"sales-insights/internal/models"
)

// Predicate is the normalized conjunction of filters built from a
// FilterCriteria. Each populated field is one conjunct; conjuncts are ANDed.
// The relational store translates it into bound-parameter SQL, the in-memory
// store evaluates it through Matches, so the two backends cannot drift.
type Predicate struct {
	// Search is the lowercased free-text term matched against customer name
	// and phone number.
	Search            string
	Regions           []string
	Genders           []string
	ProductCategories []string
	PaymentMethods    []string
	// Tags are lowercased requested tags; a record matches when its
	// comma-joined tag text contains any of them as a substring.
	Tags     []string
	AgeMin   *int
	AgeMax   *int
	DateFrom *time.Time
	DateTo   *time.Time
}

// BuildPredicate turns filter criteria into a predicate. Empty and
// whitespace-only values contribute no conjunct. Dates arrive pre-parsed:
// the API boundary rejects malformed date strings before criteria are built.
func BuildPredicate(c models.FilterCriteria) Predicate {
	p := Predicate{
		Search:            strings.ToLower(strings.TrimSpace(c.Search)),
		Regions:           compact(c.Regions),
		Genders:           compact(c.Genders),
		ProductCategories: compact(c.ProductCategories),
		PaymentMethods:    compact(c.PaymentMethods),
		AgeMin:            c.AgeMin,
		AgeMax:            c.AgeMax,
		DateFrom:          c.DateFrom,
		DateTo:            c.DateTo,
	}
	for _, tag := range compact(c.Tags) {
		p.Tags = append(p.Tags, strings.ToLower(tag))
	}
	return p
}

// IsEmpty reports whether the predicate imposes no constraint.
func (p Predicate) IsEmpty() bool {
	return p.Search == "" &&
		len(p.Regions) == 0 && len(p.Genders) == 0 &&
		len(p.ProductCategories) == 0 && len(p.PaymentMethods) == 0 &&
		len(p.Tags) == 0 &&
		p.AgeMin == nil && p.AgeMax == nil &&
		p.DateFrom == nil && p.DateTo == nil
}

// Matches evaluates the predicate against a single record. This is the
// reference semantics for both backends; the SQL translation in the
// relational store must agree with it.
func (p Predicate) Matches(t *models.Transaction) bool {
	if p.Search != "" {
		name := strings.ToLower(t.CustomerName)
		phone := strings.ToLower(t.PhoneNumber)
		if !strings.Contains(name, p.Search) && !strings.Contains(phone, p.Search) {
			return false
		}
	}
	if len(p.Regions) > 0 && !contains(p.Regions, t.CustomerRegion) {
		return false
	}
	if len(p.Genders) > 0 && !contains(p.Genders, t.Gender) {
		return false
	}
	if len(p.ProductCategories) > 0 && !contains(p.ProductCategories, t.ProductCategory) {
		return false
	}
	if len(p.PaymentMethods) > 0 && !contains(p.PaymentMethods, t.PaymentMethod) {
		return false
	}
	if len(p.Tags) > 0 && !p.matchesAnyTag(t.Tags) {
		return false
	}
	if p.AgeMin != nil && t.Age < *p.AgeMin {
		return false
	}
	if p.AgeMax != nil && t.Age > *p.AgeMax {
		return false
	}
	if p.DateFrom != nil && t.Date.Before(*p.DateFrom) {
		return false
	}
	if p.DateTo != nil && t.Date.After(*p.DateTo) {
		return false
	}
	return true
}

// matchesAnyTag applies OR semantics across the requested tags. Substring
// matching over the raw tag text tolerates inconsistent delimiter spacing in
// source data ("Gift, Electronics" vs "Gift,Electronics").
func (p Predicate) matchesAnyTag(tagText string) bool {
	haystack := strings.ToLower(tagText)
	for _, tag := range p.Tags {
		if strings.Contains(haystack, tag) {
			return true
		}
	}
	return false
}

func compact(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
