package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/bookmate/backend/internal/domain/entity"
)

// OptionSetModel represents the option_sets table in the database. Values
// are stored as a native array; the keyword dictionary is serialized JSON
// since its shape is a map of lists.
type OptionSetModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Field     string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Values    pq.StringArray `gorm:"type:text[];not null"`
	Keywords  string         `gorm:"type:text"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the OptionSetModel.
func (OptionSetModel) TableName() string {
	return "option_sets"
}

// ToEntity converts an OptionSetModel to a domain OptionSet entity.
func (m *OptionSetModel) ToEntity() (*entity.OptionSet, error) {
	var keywords map[string][]string
	if m.Keywords != "" {
		if err := json.Unmarshal([]byte(m.Keywords), &keywords); err != nil {
			return nil, err
		}
	}
	return &entity.OptionSet{
		ID:        m.ID,
		Field:     entity.OptionField(m.Field),
		Values:    []string(m.Values),
		Keywords:  keywords,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// OptionSetFromEntity converts a domain OptionSet entity to an OptionSetModel.
func OptionSetFromEntity(s *entity.OptionSet) (*OptionSetModel, error) {
	var keywords string
	if len(s.Keywords) > 0 {
		raw, err := json.Marshal(s.Keywords)
		if err != nil {
			return nil, err
		}
		keywords = string(raw)
	}
	return &OptionSetModel{
		ID:        s.ID,
		Field:     string(s.Field),
		Values:    pq.StringArray(s.Values),
		Keywords:  keywords,
		UpdatedAt: s.UpdatedAt,
	}, nil
}
