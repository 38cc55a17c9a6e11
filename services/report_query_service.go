package services

import (
	"time"

	"gorm.io/gorm"
)

// ReportRow is the denormalized view of one report joined with its project
// and institution, as consumed by the admin table and the PDF export.
type ReportRow struct {
	ID                           int       `gorm:"column:id" json:"id"`
	Institucion                  string    `gorm:"column:institucion" json:"institucion"`
	Proyecto                     string    `gorm:"column:proyecto" json:"proyecto"`
	Cod                          string    `gorm:"column:cod" json:"cod"`
	Medida                       string    `gorm:"column:medida" json:"medida"`
	Eje                          string    `gorm:"column:eje" json:"eje"`
	Meta                         float64   `gorm:"column:meta" json:"meta"`
	Anio                         int       `gorm:"column:anio" json:"anio"`
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
}

// ReportQueryService is the read path over reports: registered years per
// project and the denormalized listing.
type ReportQueryService struct {
	db *gorm.DB
}

func NewReportQueryService(db *gorm.DB) *ReportQueryService {
	return &ReportQueryService{db: db}
}

const reportJoinSelect = `
        SELECT
            r.id,
            i.nombre AS institucion,
            p.nombre AS proyecto,
            p.cod,
            p.medida,
            p.eje,
            p.meta,
            r.anio,
            r.cumplimiento,
            r.porcentaje_acciones_realizadas,
            r.poa,
            r.pei,
            r.pom,
            r.poa_link,
            r.pei_link,
            r.pom_link,
            r.finiquito_link,
            r.aclaraciones,
            r.justificacion,
            r.created_at
        FROM reportes r
        JOIN proyectos p ON r.proyecto_id = p.id
        JOIN instituciones i ON p.institucion_id = i.id`

// RegisteredYears returns the distinct years already stored for a project.
func (s *ReportQueryService) RegisteredYears(proyectoID int) ([]int, error) {
	return registeredYears(s.db, proyectoID)
}

// ListAll returns the denormalized report rows, most recent first. A nil
// filter lists everything; expected volumes are low enough that a full scan
// is acceptable, so there is no pagination.
func (s *ReportQueryService) ListAll(proyectoID *int) ([]ReportRow, error) {
	query := reportJoinSelect
	var args []interface{}

	if proyectoID != nil {
		query += " WHERE r.proyecto_id = ?"
		args = append(args, *proyectoID)
	}
	query += " ORDER BY r.created_at DESC"

	rows := []ReportRow{}
	if err := s.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single denormalized row, used to feed the PDF export.
func (s *ReportQueryService) Get(reportID int) (*ReportRow, error) {
	var row ReportRow
	res := s.db.Raw(reportJoinSelect+" WHERE r.id = ?", reportID).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}
