package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/init-pkg/sheet-export/domain/workbook"
)

type Wholesaler struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Slug       string    `gorm:"not null;uniqueIndex" json:"slug"`
	BrandColor *string   `json:"brand_color"`
	CreatedAt  time.Time `json:"created_at"`
}

func (w *Wholesaler) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// Template owns the pristine workbook bytes. Workbook is written once on
// create and never updated.
type Template struct {
	ID           string      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string      `gorm:"not null" json:"name"`
	WholesalerID string      `gorm:"type:uuid;not null;index" json:"wholesaler_id"`
	Workbook     []byte      `gorm:"column:workbook;not null" json:"-"`
	Mapping      MappingJSON `gorm:"column:mapping_json;type:jsonb;not null" json:"mapping_json"`
	CreatedAt    time.Time   `json:"created_at"`
}

func (t *Template) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type FieldDefinition struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	Key          string       `gorm:"not null" json:"key"`
	Label        string       `gorm:"not null" json:"label"`
	Scope        string       `gorm:"not null" json:"scope"`
	WholesalerID *string      `gorm:"type:uuid" json:"wholesaler_id"`
	Source       string       `gorm:"not null" json:"source"`
	FieldValues  []FieldValue `gorm:"foreignKey:FieldDefinitionID" json:"field_values"`
	CreatedAt    time.Time    `json:"-"`
}

func (f *FieldDefinition) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// CurrentValue is the stored value, if any.
func (f *FieldDefinition) CurrentValue() (string, bool) {
	if len(f.FieldValues) == 0 {
		return "", false
	}
	return f.FieldValues[0].Value, true
}

type FieldValue struct {
	FieldDefinitionID string    `gorm:"type:uuid;primaryKey" json:"-"`
	Value             string    `gorm:"not null" json:"value"`
	UpdatedAt         time.Time `json:"-"`
}

type Settings struct {
	ID             string  `gorm:"type:uuid;primaryKey" json:"id"`
	BrewwSubdomain *string `json:"breww_subdomain"`
	BrewwApiKey    *string `json:"breww_api_key"`
	CorsProxy      *string `json:"cors_proxy"`
	GeminiApiKey   *string `json:"gemini_api_key"`
}

func (s *Settings) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (Settings) TableName() string {
	return "settings"
}

// MappingJSON stores a workbook.Mapping in a jsonb column.
type MappingJSON workbook.Mapping

func (m MappingJSON) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]string(m))
}

func (m *MappingJSON) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*m = MappingJSON{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("mapping_json: unsupported type %T", src)
	}

	out := map[string]string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("mapping_json: %w", err)
		}
	}
	*m = MappingJSON(out)
	return nil
}

func (m MappingJSON) Mapping() workbook.Mapping {
	return workbook.Mapping(m)
}
