// Copyright 2026 TalentSift
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "fmt"

// ValidateCatalogItem validates a CatalogItem according to domain rules.
//
// Validation rules:
//   - URL must not be empty
//   - Name must not be empty
//   - Duration must not be negative (0 means unknown)
//
// NOT validated (populated by the indexer):
//   - Vector (can be empty until embedded)
//   - Ordinal (assigned when the corpus is built)
func ValidateCatalogItem(item *CatalogItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidCatalogItem)
	}

	if item.URL == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyURL)
	}

	if item.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyName)
	}

	if item.Duration < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrNegativeDuration)
	}

	return nil
}

// ValidateIntent validates an Intent according to domain rules.
func ValidateIntent(intent *Intent) error {
	if intent == nil {
		return fmt.Errorf("%w: intent is nil", ErrInvalidIntent)
	}

	if err := ValidateSeniority(intent.Seniority); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}

	if err := ValidateRemoteRequirement(intent.RemoteRequired); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, err)
	}

	if intent.DurationLimitMinutes < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, ErrNegativeDuration)
	}

	if intent.DomainMix.K < 0 || intent.DomainMix.P < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidIntent, ErrInvalidDomainMix)
	}

	return nil
}

// ValidateSeniority validates that a Seniority has a value from the enumeration.
func ValidateSeniority(s Seniority) error {
	switch s {
	case SeniorityIntern, SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead, SeniorityUnknown:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidSeniority, string(s))
}

// ValidateRemoteRequirement validates that a RemoteRequirement has a valid value.
func ValidateRemoteRequirement(r RemoteRequirement) error {
	if r != RemoteUnknown && r != RemoteNotRequired && r != RemoteRequired {
		return fmt.Errorf("%w: value %d", ErrInvalidRemoteRequirement, r)
	}
	return nil
}
