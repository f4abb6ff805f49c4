package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/mappers"
	"github.com/lanchonete-app/backend/models"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Save(customer *domain.Customer) (*domain.Customer, error) {
	row := mappers.CustomerToRow(customer)
	if err := r.DB.Save(row).Error; err != nil {
		return nil, err
	}
	return mappers.CustomerToDomain(row), nil
}

func (r *CustomerRepository) FindByID(id uint) (*domain.Customer, error) {
	var row models.Customer
	err := r.DB.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.CustomerToDomain(&row), nil
}

func (r *CustomerRepository) FindByCPF(cpf string) (*domain.Customer, error) {
	var row models.Customer
	err := r.DB.Where("cpf = ?", cpf).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.CustomerToDomain(&row), nil
}

func (r *CustomerRepository) ExistsByCPF(cpf string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Customer{}).Where("cpf = ?", cpf).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) FindAll() ([]*domain.Customer, error) {
	var rows []models.Customer
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, mappers.CustomerToDomain(&rows[i]))
	}
	return customers, nil
}
