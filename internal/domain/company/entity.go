// internal/domain/company/entity.go
package company

// Company is a supplier's public profile, keyed by the owning user.
type Company struct {
	ID          int    `json:"id"`
	UserID      int    `json:"userId"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	LogoBase64  string `json:"logoBase64,omitempty"`

	// Registration and legal identity
	CompanyName      string `json:"companyName"`
	ManagerName      string `json:"managerName"`
	DPI              string `json:"dpi"`
	NIT              string `json:"nit"`
	TradeName        string `json:"tradeName"`
	LegalName        string `json:"legalName"`
	BusinessActivity string `json:"businessActivity,omitempty"`

	// Contact and social channels
	WhatsApp  string `json:"whatsapp"`
	Facebook  string `json:"facebook,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	X         string `json:"x,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`

	// Payout details
	Bank          string `json:"bank"`
	AccountType   string `json:"accountType"`
	AccountNumber string `json:"accountNumber"`
}

// GetID implements jsonstore.Identifiable.
func (c Company) GetID() int { return c.ID }

// UpdateCompanyRequest is a partial company update; only present fields are
// merged onto the stored profile.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Description *string `json:"description"`
	LogoURL     *string `json:"logoUrl"`
	LogoBase64  *string `json:"logoBase64"`

	CompanyName      *string `json:"companyName"`
	ManagerName      *string `json:"managerName"`
	DPI              *string `json:"dpi"`
	NIT              *string `json:"nit"`
	TradeName        *string `json:"tradeName"`
	LegalName        *string `json:"legalName"`
	BusinessActivity *string `json:"businessActivity"`

	WhatsApp  *string `json:"whatsapp"`
	Facebook  *string `json:"facebook"`
	YouTube   *string `json:"youtube"`
	Instagram *string `json:"instagram"`
	X         *string `json:"x"`
	TikTok    *string `json:"tiktok"`

	Bank          *string `json:"bank"`
	AccountType   *string `json:"accountType"`
	AccountNumber *string `json:"accountNumber"`
}
