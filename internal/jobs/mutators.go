package jobs

import "jobboard-portal/internal/models"

// DefaultFilters is the starting filter state of a browsing session,
// optionally seeded with a search term taken from the URL.
func DefaultFilters(search string) models.JobFilters {
	f := ClearFilters()
	f.Search = search
	return f
}

// ClearFilters returns a filter state with nothing active
func ClearFilters() models.JobFilters {
	return models.JobFilters{Tags: []string{}}
}

// AddTag appends tag unless it is empty or already present. Presence is an
// exact, case-sensitive string comparison.
func AddTag(f models.JobFilters, tag string) models.JobFilters {
	out := f.Clone()
	if tag == "" {
		return out
	}
	for _, existing := range f.Tags {
		if existing == tag {
			return out
		}
	}
	out.Tags = append(out.Tags, tag)
	return out
}

// RemoveTag drops every occurrence of tag (exact match)
func RemoveTag(f models.JobFilters, tag string) models.JobFilters {
	out := f
	out.Tags = make([]string, 0, len(f.Tags))
	for _, existing := range f.Tags {
		if existing != tag {
			out.Tags = append(out.Tags, existing)
		}
	}
	return out
}

// ToggleTag removes tag when present and adds it otherwise
func ToggleTag(f models.JobFilters, tag string) models.JobFilters {
	for _, existing := range f.Tags {
		if existing == tag {
			return RemoveTag(f, tag)
		}
	}
	return AddTag(f, tag)
}

// PopularTags are the quick-pick skills offered next to the tag input
var PopularTags = []string{"React", "TypeScript", "Python", "JavaScript", "Node.js", "AWS", "Docker", "SQL"}
