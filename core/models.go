package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so identical content
// always maps to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Seniority is the experience level extracted from a hiring query.
type Seniority string

const (
	SeniorityIntern  Seniority = "intern"
	SeniorityJunior  Seniority = "junior"
	SeniorityMid     Seniority = "mid"
	SenioritySenior  Seniority = "senior"
	SeniorityLead    Seniority = "lead"
	SeniorityUnknown Seniority = "unknown"
)

// RemoteRequirement expresses whether a query requires remote-capable
// assessments. Extraction is unreliable, so "unknown" is a first-class value.
type RemoteRequirement int

const (
	// RemoteUnknown means the query did not state a remote requirement.
	RemoteUnknown RemoteRequirement = iota
	// RemoteNotRequired means the query explicitly does not need remote support.
	RemoteNotRequired
	// RemoteRequired means the query requires remote-capable assessments.
	RemoteRequired
)

// Test type names used in the catalog vocabulary. Classification for
// result balancing matches on substrings of these names.
const (
	TestTypeKnowledge   = "Knowledge & Skills"
	TestTypePersonality = "Personality & Behavior"
)

// TestTypeNames maps catalog short codes to full test type names.
var TestTypeNames = map[string]string{
	"A": "Ability & Aptitude",
	"B": "Biodata & Situational Judgement",
	"C": "Competencies",
	"D": "Development & 360",
	"E": "Assessment Exercises",
	"K": "Knowledge & Skills",
	"P": "Personality & Behavior",
	"S": "Simulations",
}

// CatalogItem describes one assessment in the catalog.
// Items are created during offline indexing and are read-only at serve time.
type CatalogItem struct {
	Id              ID
	URL             string // canonical form, unique per item
	Name            string
	Description     string
	Duration        int // minutes, 0 = unknown
	TestTypes       []string
	RemoteSupport   string    // "Yes" or "No"
	AdaptiveSupport string    // "Yes" or "No"
	Ordinal         int       // position in the indexed corpus
	Vector          []float32 // unit-normalized embedding (populated by the indexer)
	InsertedAt      time.Time
	UpdatedAt       time.Time
}

// HasKnowledgeTag reports whether the item carries a knowledge/skill test type.
func (c *CatalogItem) HasKnowledgeTag() bool {
	for _, tt := range c.TestTypes {
		if strings.Contains(strings.ToLower(tt), "knowledge") {
			return true
		}
	}
	return false
}

// HasPersonalityTag reports whether the item carries a personality/behavior test type.
func (c *CatalogItem) HasPersonalityTag() bool {
	for _, tt := range c.TestTypes {
		lower := strings.ToLower(tt)
		if strings.Contains(lower, "personality") || strings.Contains(lower, "behavior") {
			return true
		}
	}
	return false
}

// Candidate is a catalog item under consideration for one query, carrying
// its relevance score. Pipeline stages take candidate lists in and return
// fresh lists out; a Candidate is never shared between stages by pointer.
type Candidate struct {
	Item     CatalogItem
	Score    float64
	LLMScore float64 // relevance-judgment score, 0 when reranking is off
	Boost    float64 // applied boost, kept for debugging
}

// DomainMix is the target proportion between Knowledge & Skills ("K") and
// Personality & Behavior ("P") assessments in the final result.
type DomainMix struct {
	K float64
	P float64
}

// Normalized returns the mix scaled so K+P sums to 1.
// A degenerate mix falls back to the 0.8/0.2 default.
func (m DomainMix) Normalized() DomainMix {
	if m.K < 0 {
		m.K = 0
	}
	if m.P < 0 {
		m.P = 0
	}
	s := m.K + m.P
	if s < 1e-6 {
		return DefaultDomainMix()
	}
	return DomainMix{K: m.K / s, P: m.P / s}
}

// DefaultDomainMix is the mix assumed when extraction yields none.
func DefaultDomainMix() DomainMix {
	return DomainMix{K: 0.8, P: 0.2}
}

// Intent is the structured extraction of a hiring query. It is created once
// per query and not mutated afterwards.
type Intent struct {
	HardSkills           []string
	SoftSkills           []string
	Roles                []string
	Seniority            Seniority
	DurationLimitMinutes int // 0 = no ceiling
	RemoteRequired       RemoteRequirement
	DomainMix            DomainMix
}

// ScoredDoc is a (corpus ordinal, relevance score) pair produced by a scorer.
type ScoredDoc struct {
	Ordinal int
	Score   float64
}
