package models

// Company is a tenant. Its ID doubles as the name of the tenant store file.
type Company struct {
	BaseModel
	Name     string `json:"name" gorm:"not null"`
	Domain   string `json:"domain" gorm:"uniqueIndex;not null"`
	IsGlobal bool   `json:"is_global" gorm:"not null;default:false"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
