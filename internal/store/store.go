// Package store holds the read-only snapshot of companies and job postings
// the job board serves.
package store

import (
	"github.com/cockroachdb/errors"

	"jobboard-portal/internal/models"
)

// Store is an immutable, validated snapshot. It is safe for concurrent use
// because nothing mutates it after New returns.
type Store struct {
	companies []models.Company
	jobs      []models.Job

	companyIndex map[string]int
	jobIndex     map[string]int
}

// New validates the records and takes a private copy of them.
//
// Every job must reference a known company by id. The embedded company of
// each job is replaced with the canonical record, so callers may pass jobs
// that only carry Company.ID or CompanyID.
func New(companies []models.Company, jobs []models.Job) (*Store, error) {
	s := &Store{
		companies:    make([]models.Company, 0, len(companies)),
		jobs:         make([]models.Job, 0, len(jobs)),
		companyIndex: make(map[string]int, len(companies)),
		jobIndex:     make(map[string]int, len(jobs)),
	}

	for i, company := range companies {
		if err := company.Validate(); err != nil {
			return nil, errors.Wrapf(err, "company #%d", i)
		}
		if _, dup := s.companyIndex[company.ID]; dup {
			return nil, errors.Newf("duplicate company id %q", company.ID)
		}
		company.Benefits = cloneStrings(company.Benefits)
		company.Position = i
		s.companyIndex[company.ID] = len(s.companies)
		s.companies = append(s.companies, company)
	}

	for i, job := range jobs {
		companyID := job.Company.ID
		if companyID == "" {
			companyID = job.CompanyID
		}
		idx, ok := s.companyIndex[companyID]
		if !ok {
			return nil, errors.Newf("job %q references unknown company %q", job.ID, companyID)
		}
		job.Company = s.companies[idx]
		job.CompanyID = companyID

		if err := job.Validate(); err != nil {
			return nil, errors.Wrapf(err, "job #%d", i)
		}
		if _, dup := s.jobIndex[job.ID]; dup {
			return nil, errors.Newf("duplicate job id %q", job.ID)
		}
		job.Requirements = cloneStrings(job.Requirements)
		job.Benefits = cloneStrings(job.Benefits)
		job.Tags = cloneStrings(job.Tags)
		job.Position = i
		s.jobIndex[job.ID] = len(s.jobs)
		s.jobs = append(s.jobs, job)
	}

	return s, nil
}

// Jobs returns all jobs in snapshot order. The slice is a copy; the
// string slices inside each job are shared and must not be modified.
func (s *Store) Jobs() []models.Job {
	out := make([]models.Job, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// Companies returns all companies in snapshot order
func (s *Store) Companies() []models.Company {
	out := make([]models.Company, len(s.companies))
	copy(out, s.companies)
	return out
}

// JobByID looks up a job. The boolean is false for an unknown id.
func (s *Store) JobByID(id string) (models.Job, bool) {
	idx, ok := s.jobIndex[id]
	if !ok {
		return models.Job{}, false
	}
	return s.jobs[idx], true
}

// CompanyByID looks up a company. The boolean is false for an unknown id.
func (s *Store) CompanyByID(id string) (models.Company, bool) {
	idx, ok := s.companyIndex[id]
	if !ok {
		return models.Company{}, false
	}
	return s.companies[idx], true
}

func (s *Store) JobCount() int {
	return len(s.jobs)
}

func (s *Store) CompanyCount() int {
	return len(s.companies)
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
