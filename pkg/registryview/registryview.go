// Package registryview builds the view model for a registry's public page:
// items grouped into category sections with display strings and contribution
// rules already resolved, so templates stay logic-free.
package registryview

import (
	"strings"

	"registry.link/models"
	"registry.link/pkg/currency"
)

// ItemView is one rendered item card.
type ItemView struct {
	Item            models.RegistryItem
	Policy          models.ContributionPolicy
	Progress        int    // 0..100
	PriceDisplay    string // "$100.00"
	ProgressDisplay string // "$25.00 of $100.00", empty unless the policy shows progress
	Contributable   bool
}

// Section is one category block on the page.
type Section struct {
	Category string // raw category value
	Label    string // display label
	Items    []ItemView
}

var categoryLabels = map[string]string{
	models.CategoryHoneymoon:  "Honeymoon",
	models.CategoryExperience: "Experiences",
	models.CategoryCharity:    "Charity",
	models.CategoryHome:       "For the Home",
	models.CategoryGeneral:    "Gifts",
}

// CategoryLabel maps known categories to display names; unrecognized values
// pass through as their own label.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	if category == "" {
		return categoryLabels[models.CategoryGeneral]
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// BuildItemView resolves one item's display and interaction rules.
func BuildItemView(item models.RegistryItem) ItemView {
	policy := item.Policy()
	view := ItemView{
		Item:          item,
		Policy:        policy,
		PriceDisplay:  currency.FormatMinor(item.PriceMinor),
		Contributable: item.Contributable(),
	}
	if policy.ShowProgress {
		view.Progress = currency.ProgressPercent(item.CurrentMinor, item.PriceMinor)
		view.ProgressDisplay = currency.FormatMinor(item.CurrentMinor) + " of " + currency.FormatMinor(item.PriceMinor)
	}
	return view
}

// BuildSections groups items into category sections. Section order follows
// the first appearance of each category in the input; within a section the
// input order (the gateway's ascending priority) is preserved.
func BuildSections(items []models.RegistryItem) []Section {
	sections := make([]Section, 0, 4)
	index := make(map[string]int)
	for _, item := range items {
		pos, ok := index[item.Category]
		if !ok {
			pos = len(sections)
			index[item.Category] = pos
			sections = append(sections, Section{
				Category: item.Category,
				Label:    CategoryLabel(item.Category),
			})
		}
		sections[pos].Items = append(sections[pos].Items, BuildItemView(item))
	}
	return sections
}
