package models

import "time"

// Reporte represents one yearly compliance submission for a project.
//
// The composite unique index on (proyecto_id, anio) backs the one-report-
// per-project-per-year invariant; the application-level year check alone
// leaves a window where two racing submissions both pass it.
type Reporte struct {
	ID                           int       `gorm:"primaryKey;column:id" json:"id"`
	ProyectoID                   int       `gorm:"column:proyecto_id;uniqueIndex:idx_reportes_proyecto_anio" json:"proyectoId"`
	Anio                         int       `gorm:"column:anio;uniqueIndex:idx_reportes_proyecto_anio" json:"anio"`
	Cumplimiento                 float64   `gorm:"column:cumplimiento" json:"cumplimiento"`
	PorcentajeAccionesRealizadas float64   `gorm:"column:porcentaje_acciones_realizadas" json:"porcentaje_acciones_realizadas"`
	Poa                          bool      `gorm:"column:poa" json:"poa"`
	Pei                          bool      `gorm:"column:pei" json:"pei"`
	Pom                          bool      `gorm:"column:pom" json:"pom"`
	PoaLink                      *string   `gorm:"column:poa_link" json:"poaLink"`
	PeiLink                      *string   `gorm:"column:pei_link" json:"peiLink"`
	PomLink                      *string   `gorm:"column:pom_link" json:"pomLink"`
	FiniquitoLink                *string   `gorm:"column:finiquito_link" json:"finiquitoLink"`
	Aclaraciones                 string    `gorm:"column:aclaraciones" json:"aclaraciones"`
	Justificacion                *string   `gorm:"column:justificacion" json:"justificacion"`
	CreatedAt                    time.Time `gorm:"column:created_at" json:"createdAt"`

	Proyecto Proyecto `gorm:"foreignKey:ProyectoID;references:ID" json:"proyecto,omitempty"`
}

// TableName overrides the table name for Reporte
func (Reporte) TableName() string {
	return "reportes"
}
