package models

import helpers "registry.link/models/helpers"

// Registry is one event's gift registry: the themed public page a guest
// reaches through its slug.
type Registry struct {
	BaseModel
	Slug             string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	OwnerUserID      uint             `gorm:"index;not null"`
	Title            string           `gorm:"type:varchar(255)"`
	Subtitle         string           `gorm:"type:varchar(255)"`
	Description      string           `gorm:"type:text"`
	HeroImageURL     string           `gorm:"type:varchar(500)"`
	Theme            string           `gorm:"type:varchar(50);default:'classic'"`
	CustomPalette    helpers.JSONBMap `gorm:"type:jsonb"` // only read when Theme == ThemeCustom
	IsPublished      bool             `gorm:"default:false;index"`
	GuestbookEnabled bool             `gorm:"default:true"`

	Owner User           `gorm:"foreignKey:OwnerUserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Items []RegistryItem `gorm:"foreignKey:RegistryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// EditableField names a registry text field the owner may edit inline from
// the preview page.
type EditableField string

const (
	FieldTitle       EditableField = "title"
	FieldSubtitle    EditableField = "subtitle"
	FieldDescription EditableField = "description"
)

// EditableFields lists the fields open to inline editing.
func EditableFields() []EditableField {
	return []EditableField{FieldTitle, FieldSubtitle, FieldDescription}
}

// FieldValue returns the current value of an editable field.
func (r *Registry) FieldValue(f EditableField) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldSubtitle:
		return r.Subtitle
	case FieldDescription:
		return r.Description
	}
	return ""
}
