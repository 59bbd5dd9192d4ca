// Package types provides type definitions for structured data used throughout the resume-reviser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// SectionKind classifies a logical block of a resume document.
type SectionKind string

// SectionKind constants define the closed set of recognized section kinds
const (
	KindEducation    SectionKind = "EDUCATION"
	KindExperience   SectionKind = "EXPERIENCE"
	KindProjects     SectionKind = "PROJECTS"
	KindSkills       SectionKind = "SKILLS"
	KindAchievements SectionKind = "ACHIEVEMENTS"
	KindOther        SectionKind = "OTHER"
)

// AllKinds lists every valid section kind in canonical order.
var AllKinds = []SectionKind{
	KindEducation,
	KindExperience,
	KindProjects,
	KindSkills,
	KindAchievements,
	KindOther,
}

// ParseKind converts a raw marker tag into a SectionKind.
// Returns false for tags outside the closed set.
func ParseKind(tag string) (SectionKind, bool) {
	kind := SectionKind(tag)
	for _, k := range AllKinds {
		if kind == k {
			return k, true
		}
	}
	return "", false
}

// Section represents one logical block of a resume document.
// Content holds the verbatim block text excluding the surrounding markers.
type Section struct {
	Kind       SectionKind `json:"kind"`
	Content    string      `json:"content"`
	OrderIndex int         `json:"order_index"`
	IsLocked   bool        `json:"is_locked"`
}

// ParsedDocument is the transient decomposition of one document string.
type ParsedDocument struct {
	Preamble  string    `json:"preamble"`
	Sections  []Section `json:"sections"`
	Postamble string    `json:"postamble"`
}

// ErrDuplicateKind indicates two sections in one revision share a kind
type ErrDuplicateKind struct {
	Kind SectionKind
}

func (e *ErrDuplicateKind) Error() string {
	return fmt.Sprintf("duplicate section kind within revision: %s", e.Kind)
}

// ErrBadOrdering indicates section order indexes are not a 0..n-1 permutation
type ErrBadOrdering struct {
	Detail string
}

func (e *ErrBadOrdering) Error() string {
	return fmt.Sprintf("section ordering invalid: %s", e.Detail)
}

// ValidateSectionSet checks the per-revision invariants: kind uniqueness and
// OrderIndex values forming a permutation of 0..n-1. Violations are
// programming errors and must fail loudly rather than produce a corrupt
// document downstream.
func ValidateSectionSet(sections []Section) error {
	seenKinds := make(map[SectionKind]bool, len(sections))
	seenIndexes := make(map[int]bool, len(sections))

	for _, s := range sections {
		if seenKinds[s.Kind] {
			return &ErrDuplicateKind{Kind: s.Kind}
		}
		seenKinds[s.Kind] = true

		if s.OrderIndex < 0 || s.OrderIndex >= len(sections) {
			return &ErrBadOrdering{Detail: fmt.Sprintf("order index %d out of range [0,%d)", s.OrderIndex, len(sections))}
		}
		if seenIndexes[s.OrderIndex] {
			return &ErrBadOrdering{Detail: fmt.Sprintf("order index %d appears twice", s.OrderIndex)}
		}
		seenIndexes[s.OrderIndex] = true
	}

	return nil
}
