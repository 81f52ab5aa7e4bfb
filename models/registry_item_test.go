package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryItemPolicy(t *testing.T) {
	t.Run("fixed items are all-or-nothing", func(t *testing.T) {
		item := RegistryItem{Type: ItemTypeFixed, PriceMinor: 45000}
		policy := item.Policy()
		assert.False(t, policy.AmountEditable)
		assert.Equal(t, int64(45000), policy.FixedAmountMinor)
		assert.Empty(t, policy.SuggestedMajor)
		assert.False(t, policy.ShowProgress)
	})

	t.Run("cash and charity share quick-picks and progress", func(t *testing.T) {
		for _, typ := range []ItemType{ItemTypeCash, ItemTypeCharity} {
			item := RegistryItem{Type: typ, PriceMinor: 300000}
			policy := item.Policy()
			assert.True(t, policy.AmountEditable, typ)
			assert.Equal(t, []int64{25, 50, 100, 250}, policy.SuggestedMajor, typ)
			assert.True(t, policy.ShowProgress, typ)
		}
	})

	t.Run("partial items suggest larger amounts", func(t *testing.T) {
		item := RegistryItem{Type: ItemTypePartial, PriceMinor: 120000}
		policy := item.Policy()
		assert.True(t, policy.AmountEditable)
		assert.Equal(t, []int64{50, 100, 250, 500}, policy.SuggestedMajor)
		assert.True(t, policy.ShowProgress)
	})

	t.Run("unrecognized types fall back to fixed behavior", func(t *testing.T) {
		item := RegistryItem{Type: ItemType("mystery"), PriceMinor: 9900}
		policy := item.Policy()
		assert.False(t, policy.AmountEditable)
		assert.Equal(t, int64(9900), policy.FixedAmountMinor)
	})
}

func TestRegistryItemContributable(t *testing.T) {
	for _, typ := range []ItemType{ItemTypeFixed, ItemTypeCash, ItemTypePartial, ItemTypeCharity} {
		item := RegistryItem{Type: typ}
		assert.True(t, item.Contributable(), typ)
		item.IsFulfilled = true
		assert.False(t, item.Contributable(), typ)
	}
}
