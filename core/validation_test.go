package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem() *CatalogItem {
	return &CatalogItem{
		URL:             "https://www.shl.com/products/product-catalog/view/java-8-new/",
		Name:            "Java 8 (New)",
		Description:     "Knowledge of Java 8 programming",
		Duration:        35,
		TestTypes:       []string{TestTypeKnowledge},
		RemoteSupport:   "Yes",
		AdaptiveSupport: "No",
	}
}

func TestValidateCatalogItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		require.NoError(t, ValidateCatalogItem(validItem()))
	})

	t.Run("nil item", func(t *testing.T) {
		err := ValidateCatalogItem(nil)
		assert.ErrorIs(t, err, ErrInvalidCatalogItem)
	})

	t.Run("empty url", func(t *testing.T) {
		item := validItem()
		item.URL = ""
		err := ValidateCatalogItem(item)
		assert.ErrorIs(t, err, ErrInvalidCatalogItem)
		assert.ErrorIs(t, err, ErrEmptyURL)
	})

	t.Run("empty name", func(t *testing.T) {
		item := validItem()
		item.Name = ""
		err := ValidateCatalogItem(item)
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("negative duration", func(t *testing.T) {
		item := validItem()
		item.Duration = -10
		err := ValidateCatalogItem(item)
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("zero duration is unknown not invalid", func(t *testing.T) {
		item := validItem()
		item.Duration = 0
		require.NoError(t, ValidateCatalogItem(item))
	})
}

func TestValidateIntent(t *testing.T) {
	t.Run("valid intent", func(t *testing.T) {
		intent := &Intent{
			Seniority:            SeniorityMid,
			DurationLimitMinutes: 40,
			RemoteRequired:       RemoteRequired,
			DomainMix:            DomainMix{K: 0.6, P: 0.4},
		}
		require.NoError(t, ValidateIntent(intent))
	})

	t.Run("nil intent", func(t *testing.T) {
		assert.ErrorIs(t, ValidateIntent(nil), ErrInvalidIntent)
	})

	t.Run("invalid seniority", func(t *testing.T) {
		intent := &Intent{Seniority: "principal", DomainMix: DefaultDomainMix()}
		err := ValidateIntent(intent)
		assert.ErrorIs(t, err, ErrInvalidSeniority)
	})

	t.Run("invalid remote requirement", func(t *testing.T) {
		intent := &Intent{Seniority: SeniorityUnknown, RemoteRequired: RemoteRequirement(99), DomainMix: DefaultDomainMix()}
		err := ValidateIntent(intent)
		assert.ErrorIs(t, err, ErrInvalidRemoteRequirement)
	})

	t.Run("negative duration limit", func(t *testing.T) {
		intent := &Intent{Seniority: SeniorityUnknown, DurationLimitMinutes: -5, DomainMix: DefaultDomainMix()}
		err := ValidateIntent(intent)
		assert.ErrorIs(t, err, ErrNegativeDuration)
	})

	t.Run("negative mix weight", func(t *testing.T) {
		intent := &Intent{Seniority: SeniorityUnknown, DomainMix: DomainMix{K: -0.2, P: 0.4}}
		err := ValidateIntent(intent)
		assert.ErrorIs(t, err, ErrInvalidDomainMix)
	})
}

func TestValidateSeniority(t *testing.T) {
	for _, s := range []Seniority{SeniorityIntern, SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead, SeniorityUnknown} {
		assert.NoError(t, ValidateSeniority(s))
	}
	assert.ErrorIs(t, ValidateSeniority("architect"), ErrInvalidSeniority)
	assert.ErrorIs(t, ValidateSeniority(""), ErrInvalidSeniority)
}
