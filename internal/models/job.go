package models

import (
	"errors"
	"fmt"
	"strings"
)

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

// JobTypes lists every job type in display order
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeRemote,
}

func (t JobType) IsValid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label returns the human readable form, e.g. "full time"
func (t JobType) Label() string {
	return strings.Replace(string(t), "-", " ", 1)
}

// Salary is a yearly salary band
type Salary struct {
	Min      int    `json:"min" yaml:"min" gorm:"not null"`
	Max      int    `json:"max" yaml:"max" gorm:"not null"`
	Currency string `json:"currency" yaml:"currency" gorm:"size:3;not null"`
}

func (s Salary) Validate() error {
	if s.Min < 0 {
		return fmt.Errorf("salary min must not be negative, got %d", s.Min)
	}
	if s.Min > s.Max {
		return fmt.Errorf("salary min %d exceeds max %d", s.Min, s.Max)
	}
	if len(s.Currency) != 3 || strings.ToUpper(s.Currency) != s.Currency {
		return fmt.Errorf("invalid currency code %q", s.Currency)
	}
	return nil
}

// Job represents a job posting.
//
// The company is held by value. Two jobs belong to the same company when
// their Company.ID values are equal; nothing else about the embedded
// company is compared.
type Job struct {
	ID                  string   `json:"id" yaml:"id" gorm:"primaryKey;size:64"`
	Title               string   `json:"title" yaml:"title" gorm:"not null"`
	CompanyID           string   `json:"-" yaml:"company_id" gorm:"size:64;not null;index"`
	Company             Company  `json:"company" yaml:"-" gorm:"foreignKey:CompanyID;references:ID"`
	Location            string   `json:"location" yaml:"location"`
	Type                JobType  `json:"type" yaml:"type" gorm:"size:16;not null;index"`
	Salary              Salary   `json:"salary" yaml:"salary" gorm:"embedded;embeddedPrefix:salary_"`
	Description         string   `json:"description" yaml:"description" gorm:"type:text"`
	Requirements        []string `json:"requirements" yaml:"requirements" gorm:"serializer:json"`
	Benefits            []string `json:"benefits" yaml:"benefits" gorm:"serializer:json"`
	PostedDate          Date     `json:"posted_date" yaml:"posted_date" gorm:"type:varchar(10)"`
	ApplicationDeadline Date     `json:"application_deadline" yaml:"application_deadline" gorm:"type:varchar(10)"`
	Tags                []string `json:"tags" yaml:"tags" gorm:"serializer:json"`

	// Position keeps the snapshot order when jobs are stored in a database
	Position int `json:"-" yaml:"-" gorm:"not null;index"`
}

func (j Job) Validate() error {
	if j.ID == "" {
		return errors.New("job id is required")
	}
	if j.Title == "" {
		return fmt.Errorf("job %s: title is required", j.ID)
	}
	if !j.Type.IsValid() {
		return fmt.Errorf("job %s: unknown job type %q", j.ID, j.Type)
	}
	if err := j.Salary.Validate(); err != nil {
		return fmt.Errorf("job %s: %w", j.ID, err)
	}
	if !j.PostedDate.IsZero() && !j.ApplicationDeadline.IsZero() &&
		j.ApplicationDeadline.Before(j.PostedDate.Time) {
		return fmt.Errorf("job %s: application deadline %s is before posted date %s",
			j.ID, j.ApplicationDeadline, j.PostedDate)
	}
	return nil
}

// BelongsTo reports whether the job is posted by the given company
func (j Job) BelongsTo(companyID string) bool {
	return j.Company.ID == companyID
}

// SalaryRange formats the salary band, e.g. "USD 120,000 - 180,000"
func (j Job) SalaryRange() string {
	return fmt.Sprintf("%s %s - %s", j.Salary.Currency, groupThousands(j.Salary.Min), groupThousands(j.Salary.Max))
}

func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
