package models

// ContributionStatus tracks a contribution through the payment hand-off.
type ContributionStatus string

const (
	ContributionStatusPending   ContributionStatus = "pending"
	ContributionStatusSucceeded ContributionStatus = "succeeded"
	ContributionStatusFailed    ContributionStatus = "failed"
)

// Contribution is one guest pledge against a registry item. A row is written
// before the payment collaborator is invoked and its status updated from the
// collaborator's result; Reference is the idempotency key handed over.
type Contribution struct {
	BaseModel
	RegistryID       uint               `gorm:"index;not null"`
	RegistryItemID   uint               `gorm:"index;not null"`
	Reference        string             `gorm:"type:varchar(36);uniqueIndex;not null"`
	AmountMinor      int64              `gorm:"not null"`
	ContributorName  string             `gorm:"type:varchar(150);not null"`
	ContributorEmail string             `gorm:"type:varchar(150)"`
	Message          string             `gorm:"type:text"`
	IsPublic         bool               `gorm:"default:true"`
	Status           ContributionStatus `gorm:"type:varchar(20);not null;default:'pending';index"`

	RegistryItem RegistryItem `gorm:"foreignKey:RegistryItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
