package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type CreateContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Position  string `json:"position"`
}

type CreateContactUseCase struct {
	Repo         entity.ContactRepositoryInterface
	EmailService EmailService
}

func NewCreateContactUseCase(repo entity.ContactRepositoryInterface, emailService EmailService) *CreateContactUseCase {
	return &CreateContactUseCase{
		Repo:         repo,
		EmailService: emailService,
	}
}

func (uc *CreateContactUseCase) Execute(ctx context.Context, input CreateContactInput) (*entity.Contact, error) {
	if errs := ValidateCreateContactInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "First name and email are required",
		}
	}

	contact := entity.NewContact(
		input.FirstName,
		input.LastName,
		input.Email,
		input.Phone,
		input.Company,
		input.Position,
	)

	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "Failed to create contact",
		}
	}

	go func() {
		if uc.EmailService != nil {
			if err := uc.EmailService.SendWelcome(contact.Email, contact.FirstName); err != nil {
				log.Printf("welcome email to %s failed: %v", contact.Email, err)
			}
		}
	}()

	return contact, nil
}
