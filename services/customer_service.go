package services

import (
	"errors"

	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type CustomerService struct {
	Repo repositories.Repository
}

func NewCustomerService(repo repositories.Repository) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	return s.Repo.ListCustomers()
}

// Create inserts customer; customer.ID is filled on success.
func (s *CustomerService) Create(customer *models.Customer) error {
	return duplicateCustomer(s.Repo.CreateCustomer(customer))
}

// Update overwrites the customer with customer.ID. Missing ids are a silent no-op.
func (s *CustomerService) Update(customer *models.Customer) error {
	_, err := s.Repo.UpdateCustomer(customer)
	return duplicateCustomer(err)
}

// Delete refuses while any reservation still references the customer.
func (s *CustomerService) Delete(id uint) error {
	return s.Repo.Transaction(func(tx repositories.Repository) error {
		if _, err := tx.FindCustomer(id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		n, err := tx.CountReservationsByCustomer(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrCustomerHasReservations
		}
		return tx.DeleteCustomer(id)
	})
}

func duplicateCustomer(err error) error {
	dup := repositories.IsDuplicate(err)
	if dup == nil {
		return err
	}
	switch dup.Field {
	case "email":
		return ErrDuplicateEmail
	case "celular":
		return ErrDuplicatePhone
	}
	return err
}
