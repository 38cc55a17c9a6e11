package models

// Institucion represents the instituciones catalog table.
// Rows are managed outside this application; the API only reads them.
type Institucion struct {
	ID     int    `gorm:"primaryKey;column:id" json:"id"`
	Nombre string `gorm:"column:nombre" json:"nombre"`
}

// TableName overrides the table name for Institucion
func (Institucion) TableName() string {
	return "instituciones"
}
