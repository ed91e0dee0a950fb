package jobs

import "jobboard-portal/internal/models"

// FilterCompanies keeps companies whose name or description contains the
// search term (case-insensitive) and whose industry equals f.Industry.
// Empty fields match everything.
func FilterCompanies(companies []models.Company, f models.CompanyFilters) []models.Company {
	m := newMatcher()
	search := m.fold(f.Search)

	out := make([]models.Company, 0, len(companies))
	for _, company := range companies {
		if search != "" && !m.contains(company.Name, search) && !m.contains(company.Description, search) {
			continue
		}
		if f.Industry != "" && company.Industry != f.Industry {
			continue
		}
		out = append(out, company)
	}
	return out
}

// Industries lists the distinct industries in first-seen order
func Industries(companies []models.Company) []string {
	seen := make(map[string]struct{}, len(companies))
	out := make([]string, 0)
	for _, company := range companies {
		if _, ok := seen[company.Industry]; ok {
			continue
		}
		seen[company.Industry] = struct{}{}
		out = append(out, company.Industry)
	}
	return out
}

// CompanyJobCounts maps every company id to its number of jobs.
// Companies without jobs are present with a zero count.
func CompanyJobCounts(companies []models.Company, jobs []models.Job) map[string]int {
	counts := make(map[string]int, len(companies))
	for _, company := range companies {
		counts[company.ID] = 0
	}
	for _, job := range jobs {
		if _, ok := counts[job.Company.ID]; ok {
			counts[job.Company.ID]++
		}
	}
	return counts
}
