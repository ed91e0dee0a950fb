package models

import (
	"errors"
	"fmt"
)

// Company represents an employer
type Company struct {
	ID          string   `json:"id" yaml:"id" gorm:"primaryKey;size:64"`
	Name        string   `json:"name" yaml:"name" gorm:"not null"`
	Logo        string   `json:"logo" yaml:"logo"`
	Description string   `json:"description" yaml:"description" gorm:"type:text"`
	Website     string   `json:"website" yaml:"website"`
	Size        string   `json:"size" yaml:"size"`
	Industry    string   `json:"industry" yaml:"industry" gorm:"index"`
	Location    string   `json:"location" yaml:"location"`
	Founded     int      `json:"founded" yaml:"founded"`
	Benefits    []string `json:"benefits" yaml:"benefits" gorm:"serializer:json"`

	Position int `json:"-" yaml:"-" gorm:"not null;index"`
}

func (c Company) Validate() error {
	if c.ID == "" {
		return errors.New("company id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("company %s: name is required", c.ID)
	}
	if c.Founded < 0 {
		return fmt.Errorf("company %s: invalid founding year %d", c.ID, c.Founded)
	}
	return nil
}
