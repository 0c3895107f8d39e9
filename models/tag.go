package models

// Tag vakaları sınıflandıran etikettir. İsim global olarak benzersizdir;
// var olan bir isimle oluşturma isteği mevcut kaydın kimliğine çözülür.
type Tag struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
