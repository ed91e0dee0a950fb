package store

import "jobboard-portal/internal/models"

// MockCompanies is the built-in sample company directory
func MockCompanies() []models.Company {
	return []models.Company{
		{
			ID:          "1",
			Name:        "TechCorp",
			Logo:        "https://images.unsplash.com/photo-1549924231-f129b911e442?w=100&h=100&fit=crop",
			Description: "Leading technology company specializing in AI and machine learning solutions.",
			Website:     "https://techcorp.com",
			Size:        "500-1000",
			Industry:    "Technology",
			Location:    "San Francisco, CA",
			Founded:     2010,
			Benefits:    []string{"Health Insurance", "Remote Work", "401k", "Stock Options"},
		},
		{
			ID:          "2",
			Name:        "StartupXYZ",
			Logo:        "https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=100&h=100&fit=crop",
			Description: "Fast-growing startup revolutionizing the e-commerce space.",
			Website:     "https://startupxyz.com",
			Size:        "50-100",
			Industry:    "E-commerce",
			Location:    "New York, NY",
			Founded:     2018,
			Benefits:    []string{"Flexible Hours", "Lunch Provided", "Learning Budget"},
		},
		{
			ID:          "3",
			Name:        "DataSolutions",
			Logo:        "https://images.unsplash.com/photo-1551434678-e076c223a692?w=100&h=100&fit=crop",
			Description: "Data analytics company helping businesses make informed decisions.",
			Website:     "https://datasolutions.com",
			Size:        "200-500",
			Industry:    "Data Analytics",
			Location:    "Austin, TX",
			Founded:     2015,
			Benefits:    []string{"Health Insurance", "Unlimited PTO", "Conference Attendance"},
		},
	}
}

// MockJobs is the built-in sample job list. Jobs carry only the company id;
// New resolves the full company record.
func MockJobs() []models.Job {
	return []models.Job{
		{
			ID:                  "1",
			Title:               "Senior Frontend Developer",
			CompanyID:           "1",
			Location:            "San Francisco, CA",
			Type:                models.JobTypeFullTime,
			Salary:              models.Salary{Min: 120000, Max: 180000, Currency: "USD"},
			Description:         "We are looking for a Senior Frontend Developer to join our team and help build amazing user experiences.",
			Requirements:        []string{"5+ years React experience", "TypeScript proficiency", "Modern CSS/SASS", "Testing frameworks"},
			Benefits:            []string{"Health Insurance", "Stock Options", "Flexible Hours", "Remote Work"},
			PostedDate:          models.MustParseDate("2024-01-15"),
			ApplicationDeadline: models.MustParseDate("2024-02-15"),
			Tags:                []string{"React", "TypeScript", "Frontend", "JavaScript"},
		},
		{
			ID:                  "2",
			Title:               "Backend Engineer",
			CompanyID:           "2",
			Location:            "New York, NY",
			Type:                models.JobTypeFullTime,
			Salary:              models.Salary{Min: 100000, Max: 150000, Currency: "USD"},
			Description:         "Join our backend team to build scalable APIs and microservices.",
			Requirements:        []string{"3+ years Python experience", "Database design", "API development", "Docker knowledge"},
			Benefits:            []string{"Health Insurance", "Lunch Provided", "Learning Budget"},
			PostedDate:          models.MustParseDate("2024-01-10"),
			ApplicationDeadline: models.MustParseDate("2024-02-10"),
			Tags:                []string{"Python", "Backend", "API", "Microservices"},
		},
		{
			ID:                  "3",
			Title:               "Data Scientist",
			CompanyID:           "3",
			Location:            "Austin, TX",
			Type:                models.JobTypeFullTime,
			Salary:              models.Salary{Min: 110000, Max: 160000, Currency: "USD"},
			Description:         "Work with large datasets to extract insights and build predictive models.",
			Requirements:        []string{"Python/R proficiency", "Machine Learning", "Statistics", "SQL"},
			Benefits:            []string{"Health Insurance", "Conference Attendance", "401k"},
			PostedDate:          models.MustParseDate("2024-01-12"),
			ApplicationDeadline: models.MustParseDate("2024-02-12"),
			Tags:                []string{"Python", "Machine Learning", "Data Science", "SQL"},
		},
		{
			ID:                  "4",
			Title:               "UX Designer",
			CompanyID:           "1",
			Location:            "Remote",
			Type:                models.JobTypeRemote,
			Salary:              models.Salary{Min: 80000, Max: 120000, Currency: "USD"},
			Description:         "Create intuitive and beautiful user experiences for our products.",
			Requirements:        []string{"3+ years UX experience", "Figma proficiency", "User research", "Prototyping"},
			Benefits:            []string{"Remote Work", "Health Insurance", "Design Tools Budget"},
			PostedDate:          models.MustParseDate("2024-01-08"),
			ApplicationDeadline: models.MustParseDate("2024-02-08"),
			Tags:                []string{"UX", "Design", "Figma", "User Research"},
		},
		{
			ID:                  "5",
			Title:               "DevOps Engineer",
			CompanyID:           "3",
			Location:            "Austin, TX",
			Type:                models.JobTypeContract,
			Salary:              models.Salary{Min: 90000, Max: 140000, Currency: "USD"},
			Description:         "Help us scale our infrastructure and improve deployment processes.",
			Requirements:        []string{"AWS/Azure experience", "Kubernetes", "CI/CD pipelines", "Infrastructure as Code"},
			Benefits:            []string{"Flexible Schedule", "Health Insurance"},
			PostedDate:          models.MustParseDate("2024-01-05"),
			ApplicationDeadline: models.MustParseDate("2024-02-05"),
			Tags:                []string{"DevOps", "AWS", "Kubernetes", "CI/CD"},
		},
	}
}

// Mock builds the sample snapshot. The data is static, so a validation
// failure is a programming error.
func Mock() *Store {
	s, err := New(MockCompanies(), MockJobs())
	if err != nil {
		panic(err)
	}
	return s
}
