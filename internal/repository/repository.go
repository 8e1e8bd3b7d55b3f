package repository

import "gorm.io/gorm"

type Repository struct {
	DB        *gorm.DB
	Customers CustomerRepo
	Orders    OrderRepo
	Contacts  ContactRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		DB:        db,
		Customers: NewCustomerRepo(db),
		Orders:    NewOrderRepo(db),
		Contacts:  NewContactRepo(db),
	}
}
