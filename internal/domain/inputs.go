package domain

import (
	"errors"
	"time"
)

// Erros de validação detectados antes de qualquer chamada ao store
var (
	ErrNameRequired     = errors.New("nome é obrigatório")
	ErrStoreRequired    = errors.New("loja é obrigatória")
	ErrProductRequired  = errors.New("produto é obrigatório")
	ErrTalentRequired   = errors.New("talento é obrigatório")
	ErrAccountRequired  = errors.New("conta é obrigatória")
	ErrVideoURLRequired = errors.New("url do vídeo é obrigatória")
	ErrDateRequired     = errors.New("data é obrigatória")
	ErrInvalidQuantity  = errors.New("quantidade deve ser maior que zero")
	ErrInvalidCount     = errors.New("contagem deve ser maior que zero")
	ErrNegativeMetric   = errors.New("métricas de venda não podem ser negativas")
)

// NewProduct é o payload de criação/atualização de produto
type NewProduct struct {
	Name    string `json:"name"`
	StoreID string `json:"storeId"`
	Link    string `json:"link"`
}

func (p NewProduct) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.StoreID == "" {
		return ErrStoreRequired
	}
	return nil
}

// NewSale é o payload de criação/atualização de venda
type NewSale struct {
	TalentID            string    `json:"talentId"`
	AccountID           string    `json:"accountId"`
	SaleDate            time.Time `json:"saleDate"`
	GMV                 float64   `json:"gmv"`
	EstimatedCommission float64   `json:"estimatedCommission"`
	ProductViews        int       `json:"productViews"`
	ProductClicks       int       `json:"productClicks"`
}

func (s NewSale) Validate() error {
	if s.TalentID == "" {
		return ErrTalentRequired
	}
	if s.AccountID == "" {
		return ErrAccountRequired
	}
	if s.SaleDate.IsZero() {
		return ErrDateRequired
	}
	if s.GMV < 0 || s.EstimatedCommission < 0 || s.ProductViews < 0 || s.ProductClicks < 0 {
		return ErrNegativeMetric
	}
	return nil
}

// NewProductPost é o payload de criação/atualização de postagem.
// O horário da postagem é atribuído pelo servidor na criação.
type NewProductPost struct {
	ProductID string `json:"productId"`
	StoreID   string `json:"storeId"`
	VideoURL  string `json:"videoUrl"`
	AccountID string `json:"accountId"`
	TalentID  string `json:"talentId"`
}

func (p NewProductPost) Validate() error {
	if p.ProductID == "" {
		return ErrProductRequired
	}
	if p.StoreID == "" {
		return ErrStoreRequired
	}
	if p.VideoURL == "" {
		return ErrVideoURLRequired
	}
	if p.AccountID == "" {
		return ErrAccountRequired
	}
	if p.TalentID == "" {
		return ErrTalentRequired
	}
	return nil
}

// NewProductSale é o payload de criação/atualização de venda de produto
type NewProductSale struct {
	StoreID   string    `json:"storeId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
}

func (s NewProductSale) Validate() error {
	if s.StoreID == "" {
		return ErrStoreRequired
	}
	if s.ProductID == "" {
		return ErrProductRequired
	}
	if s.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if s.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// NewContentCount é o payload de criação/atualização de registro de volume
// de conteúdo. O horário do registro é atribuído pelo servidor na criação.
type NewContentCount struct {
	TalentID string `json:"talentId"`
	StoreID  string `json:"storeId"`
	Count    int    `json:"count"`
}

func (c NewContentCount) Validate() error {
	if c.TalentID == "" {
		return ErrTalentRequired
	}
	if c.StoreID == "" {
		return ErrStoreRequired
	}
	if c.Count <= 0 {
		return ErrInvalidCount
	}
	return nil
}

// IsValidationError indica se o erro é de validação de entrada
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrStoreRequired) ||
		errors.Is(err, ErrProductRequired) ||
		errors.Is(err, ErrTalentRequired) ||
		errors.Is(err, ErrAccountRequired) ||
		errors.Is(err, ErrVideoURLRequired) ||
		errors.Is(err, ErrDateRequired) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidCount) ||
		errors.Is(err, ErrNegativeMetric)
}
