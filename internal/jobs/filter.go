// Package jobs holds the query logic of the job board: filtering job
// postings by a JobFilters value and the counts derived from it.
//
// Every function here is pure. Inputs are never modified and results never
// alias the filters passed in.
package jobs

import (
	"strings"

	"jobboard-portal/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher compares strings case-insensitively. A cases.Caser keeps state
// between calls, so a matcher must not be shared across goroutines.
type matcher struct {
	lower cases.Caser
}

func newMatcher() *matcher {
	return &matcher{lower: cases.Lower(language.Und)}
}

func (m *matcher) fold(s string) string {
	return m.lower.String(s)
}

// contains reports whether needle, already folded, occurs in haystack
func (m *matcher) contains(haystack, needle string) bool {
	return strings.Contains(m.fold(haystack), needle)
}

// FilterJobs returns the jobs that satisfy every active predicate of f,
// in their input order. The result is never nil.
func FilterJobs(jobs []models.Job, f models.JobFilters) []models.Job {
	m := newMatcher()
	q := compile(m, f)

	out := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if q.matches(m, job) {
			out = append(out, job)
		}
	}
	return out
}

// Matches reports whether a single job passes f
func Matches(job models.Job, f models.JobFilters) bool {
	m := newMatcher()
	return compile(m, f).matches(m, job)
}

// query is a JobFilters with its text fields folded once up front
type query struct {
	search    string
	location  string
	jobType   models.JobType
	salaryMin int
	tags      []string
}

func compile(m *matcher, f models.JobFilters) query {
	q := query{
		search:    m.fold(f.Search),
		location:  m.fold(f.Location),
		jobType:   f.Type,
		salaryMin: f.SalaryMin,
	}
	if len(f.Tags) > 0 {
		q.tags = make([]string, len(f.Tags))
		for i, tag := range f.Tags {
			q.tags[i] = m.fold(tag)
		}
	}
	return q
}

func (q query) matches(m *matcher, job models.Job) bool {
	if q.search != "" && !q.matchesSearch(m, job) {
		return false
	}

	if q.location != "" && !m.contains(job.Location, q.location) {
		return false
	}

	if q.jobType != "" && job.Type != q.jobType {
		return false
	}

	// zero means no floor, not a literal floor of zero
	if q.salaryMin > 0 && job.Salary.Min < q.salaryMin {
		return false
	}

	if len(q.tags) > 0 && !q.matchesTags(m, job) {
		return false
	}

	return true
}

func (q query) matchesSearch(m *matcher, job models.Job) bool {
	if m.contains(job.Title, q.search) ||
		m.contains(job.Company.Name, q.search) ||
		m.contains(job.Description, q.search) {
		return true
	}
	for _, tag := range job.Tags {
		if m.contains(tag, q.search) {
			return true
		}
	}
	return false
}

// matchesTags is true when any filter tag is a substring of any job tag
func (q query) matchesTags(m *matcher, job models.Job) bool {
	for _, want := range q.tags {
		for _, tag := range job.Tags {
			if m.contains(tag, want) {
				return true
			}
		}
	}
	return false
}

// ActiveFilterCount counts the fields of f that constrain the result.
// Each tag counts on its own.
func ActiveFilterCount(f models.JobFilters) int {
	count := 0
	if f.Search != "" {
		count++
	}
	if f.Location != "" {
		count++
	}
	if f.Type != "" {
		count++
	}
	if f.SalaryMin > 0 {
		count++
	}
	return count + len(f.Tags)
}

// JobCountForCompany counts the jobs posted by companyID
func JobCountForCompany(jobs []models.Job, companyID string) int {
	count := 0
	for _, job := range jobs {
		if job.BelongsTo(companyID) {
			count++
		}
	}
	return count
}

// JobsForCompany returns the jobs posted by companyID in input order.
// An unknown id yields an empty, non-nil slice.
func JobsForCompany(jobs []models.Job, companyID string) []models.Job {
	out := make([]models.Job, 0)
	for _, job := range jobs {
		if job.BelongsTo(companyID) {
			out = append(out, job)
		}
	}
	return out
}
