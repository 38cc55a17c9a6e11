package services

import (
	"errors"
	"strings"

	"compliance-report-api/models"

	"gorm.io/gorm"
)

// ReportService owns the submission write path: load catalog data, validate
// the candidate, persist inside a transaction.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// Create validates and persists a compliance submission. The registered
// years are re-derived inside the insert transaction, and the unique index
// on (proyecto_id, anio) backs the check, so the second of two racing
// writers for the same project and year is rejected rather than stored.
func (s *ReportService) Create(candidate *models.Reporte) (*models.Reporte, error) {
	var proyecto models.Proyecto
	if err := s.db.First(&proyecto, candidate.ProyectoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ValidationError{
				Code:    ErrCodeProjectMetaNotFound,
				Message: "Meta for the project not found",
			}
		}
		return nil, err
	}

	var validated *models.Reporte
	err := s.db.Transaction(func(tx *gorm.DB) error {
		registered, err := registeredYears(tx, candidate.ProyectoID)
		if err != nil {
			return err
		}

		validated, err = ValidateSubmission(candidate, &proyecto, registered)
		if err != nil {
			return err
		}

		if err := tx.Create(validated).Error; err != nil {
			if isDuplicateKey(err) {
				return &ValidationError{
					Code:    ErrCodeInvalidOrDuplicateYear,
					Message: "A report for this project and year was just registered",
				}
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	go NotifySubmission(validated, &proyecto)

	return validated, nil
}

func registeredYears(db *gorm.DB, proyectoID int) ([]int, error) {
	var years []int
	err := db.Model(&models.Reporte{}).
		Where("proyecto_id = ?", proyectoID).
		Distinct().
		Pluck("anio", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

// isDuplicateKey detects a unique-index violation from the MySQL driver.
// GORM only translates these when TranslateError is on, so the error text
// is checked as well.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "Duplicate entry")
}
