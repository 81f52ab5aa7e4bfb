package registryview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"registry.link/models"
)

func item(id uint, category string, typ models.ItemType) models.RegistryItem {
	it := models.RegistryItem{Category: category, Type: typ, PriceMinor: 10000}
	it.ID = id
	return it
}

func TestBuildSections(t *testing.T) {
	t.Run("groups by first-seen category order", func(t *testing.T) {
		items := []models.RegistryItem{
			item(1, models.CategoryHome, models.ItemTypeFixed),
			item(2, models.CategoryHoneymoon, models.ItemTypeCash),
			item(3, models.CategoryHome, models.ItemTypeFixed),
			item(4, "workshop", models.ItemTypePartial),
			item(5, models.CategoryHoneymoon, models.ItemTypeCash),
		}
		sections := BuildSections(items)
		require.Len(t, sections, 3)
		assert.Equal(t, models.CategoryHome, sections[0].Category)
		assert.Equal(t, models.CategoryHoneymoon, sections[1].Category)
		assert.Equal(t, "workshop", sections[2].Category)
	})

	t.Run("preserves input order within a category", func(t *testing.T) {
		items := []models.RegistryItem{
			item(7, models.CategoryHome, models.ItemTypeFixed),
			item(3, models.CategoryHome, models.ItemTypeFixed),
			item(9, models.CategoryHome, models.ItemTypeFixed),
		}
		sections := BuildSections(items)
		require.Len(t, sections, 1)
		ids := []uint{}
		for _, v := range sections[0].Items {
			ids = append(ids, v.Item.ID)
		}
		assert.Equal(t, []uint{7, 3, 9}, ids)
	})

	t.Run("empty input yields no sections", func(t *testing.T) {
		assert.Empty(t, BuildSections(nil))
	})
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Honeymoon", CategoryLabel(models.CategoryHoneymoon))
	assert.Equal(t, "For the Home", CategoryLabel(models.CategoryHome))
	// Unknown categories pass through as their own label.
	assert.Equal(t, "Workshop", CategoryLabel("workshop"))
	assert.Equal(t, "Gifts", CategoryLabel(""))
}

func TestBuildItemView(t *testing.T) {
	t.Run("cash item shows progress display", func(t *testing.T) {
		it := models.RegistryItem{Type: models.ItemTypeCash, PriceMinor: 10000, CurrentMinor: 2500}
		view := BuildItemView(it)
		assert.Equal(t, 25, view.Progress)
		assert.Equal(t, "$25.00 of $100.00", view.ProgressDisplay)
		assert.True(t, view.Contributable)
	})

	t.Run("fixed item shows the price only", func(t *testing.T) {
		it := models.RegistryItem{Type: models.ItemTypeFixed, PriceMinor: 45000, CurrentMinor: 45000}
		view := BuildItemView(it)
		assert.Equal(t, "$450.00", view.PriceDisplay)
		assert.Empty(t, view.ProgressDisplay)
		assert.Zero(t, view.Progress)
	})

	t.Run("fulfilled item is not contributable", func(t *testing.T) {
		it := models.RegistryItem{Type: models.ItemTypeCash, PriceMinor: 10000, IsFulfilled: true}
		assert.False(t, BuildItemView(it).Contributable)
	})

	t.Run("zero price never panics", func(t *testing.T) {
		it := models.RegistryItem{Type: models.ItemTypeCharity, PriceMinor: 0, CurrentMinor: 500}
		assert.Equal(t, 0, BuildItemView(it).Progress)
	})
}
