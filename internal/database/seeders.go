package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jobboard-portal/internal/models"
	"jobboard-portal/internal/store"
)

// SeedDatabase writes the snapshot into an empty database. It does nothing
// when companies already exist, so it is safe to run on every start.
func SeedDatabase(db *gorm.DB, snapshot *store.Store) error {
	var existing int64
	if err := db.Model(&models.Company{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to count companies: %w", err)
	}
	if existing > 0 {
		log.Println("Companies already present, skipping seed data")
		return nil
	}

	log.Println("Seeding job board data...")

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := seedCompanies(tx, snapshot.Companies()); err != nil {
			return fmt.Errorf("failed to seed companies: %w", err)
		}
		if err := seedJobs(tx, snapshot.Jobs()); err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("Seeded %d companies and %d jobs", snapshot.CompanyCount(), snapshot.JobCount())
	return nil
}

func seedCompanies(tx *gorm.DB, companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}
	return tx.Create(&companies).Error
}

func seedJobs(tx *gorm.DB, jobs []models.Job) error {
	if len(jobs) == 0 {
		return nil
	}
	// companies are already written, do not upsert the embedded copies
	return tx.Omit(clause.Associations).Create(&jobs).Error
}

// LoadSnapshot reads every company and job back into an immutable store,
// in the order they were seeded.
func LoadSnapshot(db *gorm.DB) (*store.Store, error) {
	var companies []models.Company
	if err := db.Order("position ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to load companies: %w", err)
	}

	var jobs []models.Job
	if err := db.Order("position ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	snapshot, err := store.New(companies, jobs)
	if err != nil {
		return nil, fmt.Errorf("invalid data in database: %w", err)
	}
	return snapshot, nil
}
