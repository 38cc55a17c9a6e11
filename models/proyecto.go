package models

// Proyecto represents the proyectos catalog table. Meta is the numeric
// compliance target used as the denominator when deriving the realized
// percentage; it must be positive for the computation to be meaningful.
type Proyecto struct {
	ID            int     `gorm:"primaryKey;column:id" json:"id"`
	InstitucionID int     `gorm:"column:institucion_id" json:"institucionId"`
	Nombre        string  `gorm:"column:nombre" json:"nombre"`
	Cod           string  `gorm:"column:cod" json:"cod"`
	Medida        string  `gorm:"column:medida" json:"medida"`
	Eje           string  `gorm:"column:eje" json:"eje"`
	Meta          float64 `gorm:"column:meta" json:"meta"`

	Institucion Institucion `gorm:"foreignKey:InstitucionID;references:ID" json:"institucion,omitempty"`
}

// TableName overrides the table name for Proyecto
func (Proyecto) TableName() string {
	return "proyectos"
}
