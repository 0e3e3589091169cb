package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ImageList is an ordered sequence of uploaded file references,
// stored as a JSON array in a single column.
type ImageList []string

// Value implements driver.Valuer.
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	payload, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal image list: %w", err)
	}
	return string(payload), nil
}

// Scan implements sql.Scanner.
func (l *ImageList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported image list type %T", src)
	}
	return json.Unmarshal(data, l)
}

// Product represents a menu item. SKU is unique; CategoryID references a
// Category but existence is not validated here.
type Product struct {
	ID           uuid.UUID       `json:"_id" gorm:"type:char(36);primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	SKU          string          `json:"sku" gorm:"uniqueIndex;size:100;not null"`
	CategoryID   string          `json:"category" gorm:"size:64;index"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	CalorieCount uint            `json:"calorie_count" gorm:"not null;default:0"`
	Images       ImageList       `json:"images" gorm:"type:json"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
