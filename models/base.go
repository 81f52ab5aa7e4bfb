package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey carries the acting user's ID through a context so the
// BaseModel hooks can fill the audit columns.
const ContextUserIDKey contextKey = "user_id"

// ContextWithUserID returns a context carrying the acting user's ID.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// BaseModel is embedded by every persistent model. It provides the primary
// key, timestamps, soft delete and audit columns.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedBy uint           `gorm:"index"`
	UpdatedBy uint
	DeletedBy uint
}

func userIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	if id, ok := ctx.Value(ContextUserIDKey).(uint); ok {
		return id
	}
	return 0
}

// BeforeCreate fills CreatedBy from the context, when present.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if id := userIDFromContext(tx.Statement.Context); id != 0 {
		m.CreatedBy = id
	}
	return nil
}

// BeforeUpdate fills UpdatedBy from the context, when present.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if id := userIDFromContext(tx.Statement.Context); id != 0 {
		m.UpdatedBy = id
	}
	return nil
}
