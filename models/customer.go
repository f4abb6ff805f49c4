package models

type Customer struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255)" json:"email"`
	CPF   string `gorm:"type:varchar(11);uniqueIndex;not null;column:cpf" json:"cpf"`
}
