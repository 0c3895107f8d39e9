package models

// Case etiketlenmiş bir vaka dokümanıdır. Her kayıt diskte saklanan tek bir
// dosyaya bağlıdır; dosyanın ömrü kaydın ömrüne eşittir.
type Case struct {
	BaseModel
	Name           string `gorm:"type:varchar(255);not null" json:"name"`
	Description    string `gorm:"type:text" json:"description"`
	FilePath       string `gorm:"type:varchar(500);not null" json:"file_path"`
	FileType       string `gorm:"type:varchar(10);not null" json:"file_type"`
	OrganizationID *uint  `gorm:"index" json:"organization_id"`
	DownloadCount  int64  `gorm:"not null;default:0" json:"download_count"`

	// GORM İlişkileri
	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Tags         []Tag         `gorm:"many2many:case_tags;constraint:OnDelete:CASCADE;" json:"-"`
}
