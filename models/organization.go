package models

// Organization vaka yayınlayan kurumu temsil eder.
// Kurum silindiğinde vakalar silinmez; cases.organization_id NULL'a çekilir.
type Organization struct {
	BaseModel
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	LogoURL     string `gorm:"type:varchar(500)" json:"logo_url"`
	Description string `gorm:"type:text" json:"description"`
}
