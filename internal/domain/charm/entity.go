package charm

import (
	"strings"
	"time"

	"charmforge/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptySku            = errs.New("charm sku must not be empty")
	ErrEmptyName           = errs.New("charm name must not be empty")
	ErrNegativePrice       = errs.New("charm price cannot be negative")
	ErrInvalidDimensions   = errs.New("charm dimensions must be positive")
	ErrNegativeStock       = errs.New("charm stock cannot be negative")
	ErrInvalidMaxPerDesign = errs.New("charm max per bracelet must be at least 1")
)

// Charm is a placeable decorative unit. Stock is read and checked by the
// design core but only ever decremented by checkout.
type Charm struct {
	id             uuid.UUID
	sku            string
	name           string
	priceCents     int64
	widthMm        float64
	heightMm       float64
	maxPerBracelet int32
	stock          int32
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewCharm(id uuid.UUID, sku, name string, priceCents int64, widthMm, heightMm float64, maxPerBracelet, stock int32, isActive bool, now time.Time) (*Charm, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrEmptySku
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if widthMm <= 0 || heightMm <= 0 {
		return nil, ErrInvalidDimensions
	}
	if maxPerBracelet < 1 {
		return nil, ErrInvalidMaxPerDesign
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Charm{
		id:             id,
		sku:            sku,
		name:           name,
		priceCents:     priceCents,
		widthMm:        widthMm,
		heightMm:       heightMm,
		maxPerBracelet: maxPerBracelet,
		stock:          stock,
		isActive:       isActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(id uuid.UUID, sku, name string, priceCents int64, widthMm, heightMm float64, maxPerBracelet, stock int32, isActive bool, createdAt, updatedAt time.Time) *Charm {
	return &Charm{
		id:             id,
		sku:            sku,
		name:           name,
		priceCents:     priceCents,
		widthMm:        widthMm,
		heightMm:       heightMm,
		maxPerBracelet: maxPerBracelet,
		stock:          stock,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (c *Charm) ID() uuid.UUID         { return c.id }
func (c *Charm) Sku() string           { return c.sku }
func (c *Charm) Name() string          { return c.name }
func (c *Charm) PriceCents() int64     { return c.priceCents }
func (c *Charm) WidthMm() float64      { return c.widthMm }
func (c *Charm) HeightMm() float64     { return c.heightMm }
func (c *Charm) MaxPerBracelet() int32 { return c.maxPerBracelet }
func (c *Charm) Stock() int32          { return c.stock }
func (c *Charm) IsActive() bool        { return c.isActive }
func (c *Charm) CreatedAt() time.Time  { return c.createdAt }
func (c *Charm) UpdatedAt() time.Time  { return c.updatedAt }
