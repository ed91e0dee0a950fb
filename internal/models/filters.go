package models

import "fmt"

// JobFilters is the filter state a visitor edits while browsing jobs.
// Every field uses its zero value as "no constraint".
type JobFilters struct {
	Search    string   `json:"search" form:"search"`
	Location  string   `json:"location" form:"location"`
	Type      JobType  `json:"type" form:"type" binding:"omitempty,oneof=full-time part-time contract remote"`
	SalaryMin int      `json:"salary_min" form:"salary_min" binding:"min=0"`
	Tags      []string `json:"tags" form:"tags"`
}

func (f JobFilters) Validate() error {
	if f.SalaryMin < 0 {
		return fmt.Errorf("salary_min must not be negative, got %d", f.SalaryMin)
	}
	if f.Type != "" && !f.Type.IsValid() {
		return fmt.Errorf("unknown job type %q", f.Type)
	}
	return nil
}

// Clone returns a copy that shares no memory with f
func (f JobFilters) Clone() JobFilters {
	out := f
	out.Tags = make([]string, len(f.Tags))
	copy(out.Tags, f.Tags)
	return out
}

// CompanyFilters narrows the company directory
type CompanyFilters struct {
	Search   string `json:"search" form:"search"`
	Industry string `json:"industry" form:"industry"`
}
