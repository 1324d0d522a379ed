package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewSale_Validate(t *testing.T) {
	valid := NewSale{
		TalentID:  "TAL001",
		AccountID: "ACC001",
		SaleDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		GMV:       100,
	}

	tests := []struct {
		name     string
		mutate   func(s *NewSale)
		expected error
	}{
		{
			name:     "Venda válida",
			mutate:   func(s *NewSale) {},
			expected: nil,
		},
		{
			name:     "Talento obrigatório",
			mutate:   func(s *NewSale) { s.TalentID = "" },
			expected: ErrTalentRequired,
		},
		{
			name:     "Conta obrigatória",
			mutate:   func(s *NewSale) { s.AccountID = "" },
			expected: ErrAccountRequired,
		},
		{
			name:     "Data obrigatória",
			mutate:   func(s *NewSale) { s.SaleDate = time.Time{} },
			expected: ErrDateRequired,
		},
		{
			name:     "GMV negativo rejeitado",
			mutate:   func(s *NewSale) { s.GMV = -1 },
			expected: ErrNegativeMetric,
		},
		{
			name:     "Cliques negativos rejeitados",
			mutate:   func(s *NewSale) { s.ProductClicks = -1 },
			expected: ErrNegativeMetric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := valid
			tt.mutate(&sale)
			assert.Equal(t, tt.expected, sale.Validate())
		})
	}
}

func TestNewProductPost_Validate(t *testing.T) {
	valid := NewProductPost{
		ProductID: "PROD001",
		StoreID:   "STO001",
		VideoURL:  "https://video.example/1",
		AccountID: "ACC001",
		TalentID:  "TAL001",
	}

	assert.NoError(t, valid.Validate())

	missingVideo := valid
	missingVideo.VideoURL = ""
	assert.Equal(t, ErrVideoURLRequired, missingVideo.Validate())

	missingProduct := valid
	missingProduct.ProductID = ""
	assert.Equal(t, ErrProductRequired, missingProduct.Validate())
}

func TestNewProductSale_Validate(t *testing.T) {
	valid := NewProductSale{
		StoreID:   "STO001",
		ProductID: "PROD001",
		Quantity:  1,
		Date:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	assert.NoError(t, valid.Validate())

	zeroQuantity := valid
	zeroQuantity.Quantity = 0
	assert.Equal(t, ErrInvalidQuantity, zeroQuantity.Validate())

	missingDate := valid
	missingDate.Date = time.Time{}
	assert.Equal(t, ErrDateRequired, missingDate.Validate())
}

func TestNewContentCount_Validate(t *testing.T) {
	valid := NewContentCount{TalentID: "TAL001", StoreID: "STO001", Count: 3}

	assert.NoError(t, valid.Validate())

	zeroCount := valid
	zeroCount.Count = 0
	assert.Equal(t, ErrInvalidCount, zeroCount.Validate())
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrNameRequired))
	assert.True(t, IsValidationError(ErrInvalidQuantity))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
