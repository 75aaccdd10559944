package dto

// AddBankRequest defines a bank account to add to settings.
type AddBankRequest struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountName   string `json:"accountName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	IFSC          string `json:"ifsc" binding:"required,len=11"`
	Branch        string `json:"branch"`
	UPIID         string `json:"upiId"`
	IsDefault     bool   `json:"isDefault"`
}
