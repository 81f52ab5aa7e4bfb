package models

// ItemType decides how an item may be contributed to.
type ItemType string

const (
	ItemTypeFixed   ItemType = "fixed"   // all-or-nothing, amount equals the price
	ItemTypeCash    ItemType = "cash"    // free amount cash fund
	ItemTypePartial ItemType = "partial" // free amount towards a priced target
	ItemTypeCharity ItemType = "charity" // free amount donation
)

// Known item categories. The column is open-ended: unrecognized values are
// kept and rendered as their own section label.
const (
	CategoryHoneymoon  = "honeymoon"
	CategoryExperience = "experience"
	CategoryCharity    = "charity"
	CategoryHome       = "home"
	CategoryGeneral    = "general"
)

// RegistryItem is one desired gift, cash fund or charitable entry. Amounts
// are integers in minor currency units; CurrentMinor is only ever written by
// the contribution pipeline.
type RegistryItem struct {
	BaseModel
	RegistryID   uint     `gorm:"index;not null"`
	Title        string   `gorm:"type:varchar(255);not null"`
	Description  string   `gorm:"type:text"`
	ImageURL     string   `gorm:"type:varchar(500)"`
	ExternalURL  string   `gorm:"type:varchar(500)"`
	Category     string   `gorm:"type:varchar(50);default:'general';index"`
	Type         ItemType `gorm:"type:varchar(20);not null;default:'fixed'"`
	PriceMinor   int64    `gorm:"not null;default:0"`
	CurrentMinor int64    `gorm:"not null;default:0"`
	IsFulfilled  bool     `gorm:"default:false;index"`
	Priority     int      `gorm:"not null;default:0;index"`
}

// ContributionPolicy spells out how the contribution form must behave for
// one item.
type ContributionPolicy struct {
	AmountEditable   bool
	FixedAmountMinor int64   // set when AmountEditable is false
	SuggestedMajor   []int64 // quick-pick amounts in major units
	ShowProgress     bool
}

// Policy derives the contribution rules for the item's type.
func (i *RegistryItem) Policy() ContributionPolicy {
	switch i.Type {
	case ItemTypeCash, ItemTypeCharity:
		return ContributionPolicy{
			AmountEditable: true,
			SuggestedMajor: []int64{25, 50, 100, 250},
			ShowProgress:   true,
		}
	case ItemTypePartial:
		return ContributionPolicy{
			AmountEditable: true,
			SuggestedMajor: []int64{50, 100, 250, 500},
			ShowProgress:   true,
		}
	default: // ItemTypeFixed and anything unrecognized behaves all-or-nothing
		return ContributionPolicy{
			AmountEditable:   false,
			FixedAmountMinor: i.PriceMinor,
		}
	}
}

// Contributable reports whether the item can still receive contributions.
// A fulfilled item is never selectable, whatever its type.
func (i *RegistryItem) Contributable() bool {
	return !i.IsFulfilled
}
