// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bookmate/backend/internal/domain/entity"
)

// EntryModel represents the ledger_entries table in the database.
type EntryModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	Property        string          `gorm:"type:varchar(255);not null"`
	TypeOfOperation string          `gorm:"type:varchar(255);not null;index"`
	TypeOfPayment   string          `gorm:"type:varchar(255)"`
	Detail          string          `gorm:"type:text"`
	Ref             string          `gorm:"type:varchar(64)"`
	Debit           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Credit          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	Owner *UserModel `gorm:"foreignKey:OwnerID;references:ID"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts an EntryModel to a domain LedgerEntry entity.
func (m *EntryModel) ToEntity() *entity.LedgerEntry {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.LedgerEntry{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Date:            m.Date,
		Property:        m.Property,
		TypeOfOperation: m.TypeOfOperation,
		TypeOfPayment:   m.TypeOfPayment,
		Detail:          m.Detail,
		Ref:             m.Ref,
		Debit:           m.Debit,
		Credit:          m.Credit,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// EntryFromEntity converts a domain LedgerEntry entity to an EntryModel.
func EntryFromEntity(e *entity.LedgerEntry) *EntryModel {
	m := &EntryModel{
		ID:              e.ID,
		OwnerID:         e.OwnerID,
		Date:            e.Date,
		Property:        e.Property,
		TypeOfOperation: e.TypeOfOperation,
		TypeOfPayment:   e.TypeOfPayment,
		Detail:          e.Detail,
		Ref:             e.Ref,
		Debit:           e.Debit,
		Credit:          e.Credit,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	if e.DeletedAt != nil {
		m.DeletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	}
	return m
}
