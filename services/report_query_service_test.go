package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"gorm.io/gorm"
)

var listAllPattern = regexp.MustCompile(`(?s)SELECT.*FROM reportes r.*JOIN proyectos p ON r\.proyecto_id = p\.id.*JOIN instituciones i ON p\.institucion_id = i\.id`)

var reportRowColumns = []string{
	"id", "institucion", "proyecto", "cod", "medida", "eje", "meta",
	"anio", "cumplimiento", "porcentaje_acciones_realizadas",
	"poa", "pei", "pom", "poa_link", "pei_link", "pom_link",
	"finiquito_link", "aclaraciones", "justificacion", "created_at",
}

func reportRowValues(id, anio int64, created time.Time) []driver.Value {
	return []driver.Value{
		id, "Ministerio A", "Proyecto X", "PX-01", "M1", "E1", float64(50),
		anio, float64(25), float64(50),
		true, false, false, "https://docs.example.org/poa.pdf", nil, nil,
		nil, "Avance conforme al plan", nil, created,
	}
}

func TestRegisteredYears(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: yearsQueryPattern,
			args:    []driver.Value{int64(7)},
			columns: []string{"anio"},
			rows:    [][]driver.Value{{int64(2021)}, {int64(2020)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	years, err := NewReportQueryService(db).RegisteredYears(7)
	if err != nil {
		t.Fatalf("RegisteredYears returned error: %v", err)
	}
	if len(years) != 2 || years[0] != 2021 || years[1] != 2020 {
		t.Fatalf("unexpected years: %v", years)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAllOrdersMostRecentFirst(t *testing.T) {
	newer := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(listAllPattern.String() + `.*ORDER BY r\.created_at DESC`),
			args:    []driver.Value{},
			columns: reportRowColumns,
			rows: [][]driver.Value{
				reportRowValues(2, 2025, newer),
				reportRowValues(1, 2024, older),
			},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	rows, err := NewReportQueryService(db).ListAll(nil)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != 2 || rows[1].ID != 1 {
		t.Fatalf("expected most recent first, got ids %d, %d", rows[0].ID, rows[1].ID)
	}

	first := rows[0]
	if first.Institucion != "Ministerio A" || first.Proyecto != "Proyecto X" || first.Cod != "PX-01" {
		t.Fatalf("unexpected denormalized fields: %+v", first)
	}
	if !first.Poa || first.Pei || first.Pom {
		t.Fatalf("unexpected document flags: %+v", first)
	}
	if first.PoaLink == nil || *first.PoaLink != "https://docs.example.org/poa.pdf" {
		t.Fatalf("unexpected PoaLink: %v", first.PoaLink)
	}
	if first.PeiLink != nil || first.Justificacion != nil {
		t.Fatalf("expected nullable fields nil, got %+v", first)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListAllFiltersByProject(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(listAllPattern.String() + `.*WHERE r\.proyecto_id = \?.*ORDER BY r\.created_at DESC`),
			args:    []driver.Value{int64(7)},
			columns: reportRowColumns,
			rows:    [][]driver.Value{reportRowValues(1, 2024, created)},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	id := 7
	rows, err := NewReportQueryService(db).ListAll(&id)
	if err != nil {
		t.Fatalf("ListAll returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Anio != 2024 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetReturnsNotFoundForMissingReport(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(listAllPattern.String() + `.*WHERE r\.id = \?`),
			args:    []driver.Value{int64(99)},
			columns: reportRowColumns,
			rows:    [][]driver.Value{},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	_, err := NewReportQueryService(db).Get(99)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
