package domain_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/SscSPs/sheetbill/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countDefaults(banks domain.BankAccounts) int {
	n := 0
	for _, b := range banks {
		if b.IsDefault {
			n++
		}
	}
	return n
}

func TestBankAccounts_FirstBecomesDefault(t *testing.T) {
	banks := domain.BankAccounts{}.Add(domain.BankAccount{ID: "a"})
	def, ok := banks.Default()
	require.True(t, ok)
	assert.Equal(t, "a", def.ID)
}

func TestBankAccounts_AddDefaultDemotesPrevious(t *testing.T) {
	banks := domain.BankAccounts{}.
		Add(domain.BankAccount{ID: "a"}).
		Add(domain.BankAccount{ID: "b", IsDefault: true})

	def, _ := banks.Default()
	assert.Equal(t, "b", def.ID)
	assert.Equal(t, 1, countDefaults(banks))
}

func TestBankAccounts_RemoveDefaultPromotesFirst(t *testing.T) {
	banks := domain.BankAccounts{}.
		Add(domain.BankAccount{ID: "a"}).
		Add(domain.BankAccount{ID: "b"}).
		Add(domain.BankAccount{ID: "c"})

	banks, found := banks.Remove("a")
	require.True(t, found)
	def, _ := banks.Default()
	assert.Equal(t, "b", def.ID)

	_, found = banks.Remove("missing")
	assert.False(t, found)
}

func TestBankAccounts_SetDefault(t *testing.T) {
	banks := domain.BankAccounts{}.Add(domain.BankAccount{ID: "a"}).Add(domain.BankAccount{ID: "b"})

	banks, ok := banks.SetDefault("b")
	require.True(t, ok)
	def, _ := banks.Default()
	assert.Equal(t, "b", def.ID)

	_, ok = banks.SetDefault("zzz")
	assert.False(t, ok)
}

func TestBankAccounts_RandomSequencesKeepOneDefault(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		var banks domain.BankAccounts
		next := 0
		for step := 0; step < 25; step++ {
			switch op := rng.Intn(3); {
			case op == 0 || len(banks) == 0:
				banks = banks.Add(domain.BankAccount{ID: fmt.Sprintf("b%d", next), IsDefault: rng.Intn(2) == 0})
				next++
			case op == 1:
				banks, _ = banks.Remove(banks[rng.Intn(len(banks))].ID)
			default:
				banks, _ = banks.SetDefault(banks[rng.Intn(len(banks))].ID)
			}
			if len(banks) == 0 {
				assert.Equal(t, 0, countDefaults(banks))
				continue
			}
			require.Equal(t, 1, countDefaults(banks), "run %d step %d", run, step)
		}
	}
}
