package models

// Admin yönetim panelinde oturum açabilen tek rollü kullanıcıdır.
// İlk açılışta tablo boşsa bir varsayılan admin seed edilir.
type Admin struct {
	BaseModel
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// Varsayılan admin bilgileri. Deploy sonrası şifre mutlaka değiştirilmelidir.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)
