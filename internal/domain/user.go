package domain

// UserProfile is the single local profile used to stamp new cart items.
// Required tags are hints for the account form; partial profiles are stored as-is.
type UserProfile struct {
	FullName         string `json:"full_name" validate:"required"`
	StageName        string `json:"stage_name,omitempty"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Instagram        string `json:"instagram" validate:"required"`
	EmergencyContact string `json:"emergency_contact" validate:"required"`
}

// Settings holds the bank-transfer and contact details shown at checkout.
type Settings struct {
	WANumber    string `json:"wa_number"`
	BankName    string `json:"bank_name"`
	AccountName string `json:"account_name"`
	AccountNo   string `json:"account_no"`
	QRURL       string `json:"qr_url,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		WANumber:    "+601111086559",
		BankName:    "HONG LEONG BANK",
		AccountName: "THE HOOD FAM ACADEMY",
		AccountNo:   "06300122008",
	}
}
