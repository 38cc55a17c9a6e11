package services

import (
	"math"
	"strings"

	"compliance-report-api/models"
)

// Fiscal year window accepted for submissions. Fixed business rule, not
// configuration.
const (
	MinReportYear = 2015
	MaxReportYear = 2025
)

// Validation error codes surfaced to clients as 4xx responses.
const (
	ErrCodeMissingRequiredField   = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidOrDuplicateYear = "INVALID_OR_DUPLICATE_YEAR"
	ErrCodeMissingJustification   = "MISSING_JUSTIFICATION"
	ErrCodeMissingDocumentLink    = "MISSING_DOCUMENT_LINK"
	ErrCodeProjectMetaNotFound    = "PROJECT_META_NOT_FOUND"
)

// ValidationError is a rejected submission. Message is safe to show to the
// caller; Code lets clients branch without parsing text.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// documentLinkRules is the declarative flag-to-link requirement table for
// the three planning-document categories. Evaluated uniformly server-side,
// independent of whatever the form showed or hid.
var documentLinkRules = []struct {
	document string
	flagged  func(r *models.Reporte) bool
	link     func(r *models.Reporte) **string
}{
	{"POA", func(r *models.Reporte) bool { return r.Poa }, func(r *models.Reporte) **string { return &r.PoaLink }},
	{"PEI", func(r *models.Reporte) bool { return r.Pei }, func(r *models.Reporte) **string { return &r.PeiLink }},
	{"POM", func(r *models.Reporte) bool { return r.Pom }, func(r *models.Reporte) **string { return &r.PomLink }},
}

// AvailableYears returns the configured year range minus the years already
// registered for the project, in descending order. An empty result means
// every year is taken and submission must be blocked.
func AvailableYears(registered []int) []int {
	taken := make(map[int]bool, len(registered))
	for _, y := range registered {
		taken[y] = true
	}

	years := make([]int, 0, MaxReportYear-MinReportYear+1)
	for y := MaxReportYear; y >= MinReportYear; y-- {
		if !taken[y] {
			years = append(years, y)
		}
	}
	return years
}

// ComputePercentage derives the realized-actions percentage from the
// compliance count and the project target, rounded to 2 decimal places.
// A non-positive meta yields 0 rather than a division error.
func ComputePercentage(cumplimiento, meta float64) float64 {
	if meta <= 0 {
		return 0
	}
	return math.Round(cumplimiento/meta*10000) / 100
}

// ValidateSubmission checks a candidate report against the project catalog
// data and the years already registered for it. Checks run in order and the
// first failure wins. On success it returns a copy of the candidate with
// the derived percentage populated and unset document links normalized to
// null, ready to persist.
func ValidateSubmission(candidate *models.Reporte, proyecto *models.Proyecto, registered []int) (*models.Reporte, error) {
	if candidate.ProyectoID == 0 || proyecto == nil {
		return nil, &ValidationError{
			Code:    ErrCodeMissingRequiredField,
			Message: "A project must be selected",
		}
	}

	if !yearAvailable(candidate.Anio, registered) {
		return nil, &ValidationError{
			Code:    ErrCodeInvalidOrDuplicateYear,
			Message: "The selected year is outside the valid range or already has a report for this project",
		}
	}

	if strings.TrimSpace(candidate.Aclaraciones) == "" {
		return nil, &ValidationError{
			Code:    ErrCodeMissingRequiredField,
			Message: "Aclaraciones is required",
		}
	}

	if candidate.Cumplimiento == 0 && (candidate.Justificacion == nil || strings.TrimSpace(*candidate.Justificacion) == "") {
		return nil, &ValidationError{
			Code:    ErrCodeMissingJustification,
			Message: "Justification is required when compliance is 0",
		}
	}

	validated := *candidate
	for _, rule := range documentLinkRules {
		link := rule.link(&validated)
		if rule.flagged(&validated) {
			if *link == nil || strings.TrimSpace(**link) == "" {
				return nil, &ValidationError{
					Code:    ErrCodeMissingDocumentLink,
					Message: "A document link is required for " + rule.document,
				}
			}
		} else {
			// Flag off forces the link to null no matter what the client sent.
			*link = nil
		}
	}

	if validated.Justificacion != nil && strings.TrimSpace(*validated.Justificacion) == "" {
		validated.Justificacion = nil
	}

	validated.PorcentajeAccionesRealizadas = ComputePercentage(validated.Cumplimiento, proyecto.Meta)
	return &validated, nil
}

// yearAvailable reports whether anio is inside the configured range and not
// yet registered. Membership in AvailableYears enforces both at once.
func yearAvailable(anio int, registered []int) bool {
	for _, y := range AvailableYears(registered) {
		if y == anio {
			return true
		}
	}
	return false
}
