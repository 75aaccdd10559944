package domain

// BankAccount is a receiving account printed on invoices.
type BankAccount struct {
	ID            string `json:"id"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	IFSC          string `json:"ifsc"`
	Branch        string `json:"branch,omitempty"`
	UPIID         string `json:"upiId,omitempty"`
	IsDefault     bool   `json:"isDefault"`
}

// BankAccounts is the settings bank list. Every method returns a new slice in
// which, if non-empty, exactly one account is the default.
type BankAccounts []BankAccount

// Add appends acc. A new default demotes the previous one; the first account
// always becomes default.
func (b BankAccounts) Add(acc BankAccount) BankAccounts {
	out := make(BankAccounts, 0, len(b)+1)
	for _, existing := range b {
		if acc.IsDefault {
			existing.IsDefault = false
		}
		out = append(out, existing)
	}
	out = append(out, acc)
	return out.normalize()
}

// Remove drops the account with id. When it was the default the first
// remaining account takes over.
func (b BankAccounts) Remove(id string) (BankAccounts, bool) {
	out := make(BankAccounts, 0, len(b))
	found := false
	for _, existing := range b {
		if existing.ID == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	return out.normalize(), found
}

// SetDefault makes id the only default account.
func (b BankAccounts) SetDefault(id string) (BankAccounts, bool) {
	out := make(BankAccounts, len(b))
	found := false
	for i, existing := range b {
		existing.IsDefault = existing.ID == id
		found = found || existing.IsDefault
		out[i] = existing
	}
	if !found {
		return b.normalize(), false
	}
	return out, true
}

// Default returns the default account.
func (b BankAccounts) Default() (BankAccount, bool) {
	for _, acc := range b {
		if acc.IsDefault {
			return acc, true
		}
	}
	return BankAccount{}, false
}

// Find returns the account with id.
func (b BankAccounts) Find(id string) (BankAccount, bool) {
	for _, acc := range b {
		if acc.ID == id {
			return acc, true
		}
	}
	return BankAccount{}, false
}

func (b BankAccounts) normalize() BankAccounts {
	out := make(BankAccounts, len(b))
	copy(out, b)
	if len(out) == 0 {
		return out
	}
	seen := false
	for i := range out {
		if out[i].IsDefault {
			if seen {
				out[i].IsDefault = false
			}
			seen = true
		}
	}
	if !seen {
		out[0].IsDefault = true
	}
	return out
}
