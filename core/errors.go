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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCatalogItem indicates a CatalogItem failed validation.
	ErrInvalidCatalogItem = errors.New("invalid catalog item")

	// ErrInvalidIntent indicates an Intent failed validation.
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrEmptyURL indicates the URL field is empty.
	ErrEmptyURL = errors.New("url cannot be empty")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNegativeDuration indicates a negative duration value.
	ErrNegativeDuration = errors.New("duration cannot be negative")

	// ErrInvalidSeniority indicates a seniority value outside the enumeration.
	ErrInvalidSeniority = errors.New("invalid seniority")

	// ErrInvalidRemoteRequirement indicates an invalid RemoteRequirement value.
	ErrInvalidRemoteRequirement = errors.New("invalid remote requirement")

	// ErrInvalidDomainMix indicates a domain mix with negative weights.
	ErrInvalidDomainMix = errors.New("invalid domain mix")
)
