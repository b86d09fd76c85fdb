// internal/domain/company/service.go
package company

import (
	"errors"
	"fmt"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage/jsonstore"
)

// ErrNotFound is returned when the user has no company profile.
var ErrNotFound = errors.New("company not found")

// Service handles company profile business logic
type Service struct {
	companies *jsonstore.TypedCollection[Company]
}

// NewService creates a new company service
func NewService(store *jsonstore.Store) *Service {
	return &Service{
		companies: jsonstore.Collection[Company](store, "company"),
	}
}

// GetByUser retrieves the company profile owned by a user
func (s *Service) GetByUser(userID int) (*Company, error) {
	c, ok, err := s.companies.Find(func(c Company) bool { return c.UserID == userID })
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve company: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

// UpdateByUser merges the payload onto the user's company profile. The
// owning user id can never be reassigned through an update.
func (s *Service) UpdateByUser(userID int, req *UpdateCompanyRequest) (*Company, error) {
	var updated Company

	err := s.companies.Update(func(items []Company) ([]Company, error) {
		for i := range items {
			if items[i].UserID == userID {
				items[i] = merge(items[i], req)
				items[i].UserID = userID
				updated = items[i]
				return items, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	return &updated, nil
}

func merge(c Company, req *UpdateCompanyRequest) Company {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&c.Name, req.Name)
	setString(&c.Address, req.Address)
	setString(&c.Phone, req.Phone)
	setString(&c.Email, req.Email)
	setString(&c.Description, req.Description)
	setString(&c.LogoURL, req.LogoURL)
	setString(&c.LogoBase64, req.LogoBase64)
	setString(&c.CompanyName, req.CompanyName)
	setString(&c.ManagerName, req.ManagerName)
	setString(&c.DPI, req.DPI)
	setString(&c.NIT, req.NIT)
	setString(&c.TradeName, req.TradeName)
	setString(&c.LegalName, req.LegalName)
	setString(&c.BusinessActivity, req.BusinessActivity)
	setString(&c.WhatsApp, req.WhatsApp)
	setString(&c.Facebook, req.Facebook)
	setString(&c.YouTube, req.YouTube)
	setString(&c.Instagram, req.Instagram)
	setString(&c.X, req.X)
	setString(&c.TikTok, req.TikTok)
	setString(&c.Bank, req.Bank)
	setString(&c.AccountType, req.AccountType)
	setString(&c.AccountNumber, req.AccountNumber)

	return c
}
