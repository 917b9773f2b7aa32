package bracelet

import (
	"strings"
	"time"

	"charmforge/internal/pkg/errs"
	"charmforge/internal/pkg/svgpath"

	"github.com/google/uuid"
)

var (
	ErrEmptySlug       = errs.New("bracelet slug must not be empty")
	ErrEmptyName       = errs.New("bracelet name must not be empty")
	ErrInvalidLength   = errs.New("bracelet physical length must be positive")
	ErrNegativePrice   = errs.New("bracelet base price cannot be negative")
	ErrInvalidPathData = errs.New("bracelet path data is not parseable")
	ErrDegeneratePath  = errs.New("bracelet path has zero length")
)

// Bracelet is the physical carrier charms are placed on. The catalog owns its
// lifecycle; the design core only ever reads it.
type Bracelet struct {
	id             uuid.UUID
	slug           string
	name           string
	pathD          string
	path           *svgpath.Path
	lengthMm       int32
	basePriceCents int64
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBracelet validates catalog input and parses the path geometry once, so
// broken path data is rejected at authoring time instead of at render time.
func NewBracelet(id uuid.UUID, slug, name, pathD string, lengthMm int32, basePriceCents int64, isActive bool, now time.Time) (*Bracelet, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrEmptySlug
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if lengthMm <= 0 {
		return nil, ErrInvalidLength
	}
	if basePriceCents < 0 {
		return nil, ErrNegativePrice
	}

	path, err := svgpath.Parse(pathD)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPathData)
	}
	if path.Length() == 0 {
		return nil, ErrDegeneratePath
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Bracelet{
		id:             id,
		slug:           slug,
		name:           name,
		pathD:          pathD,
		path:           path,
		lengthMm:       lengthMm,
		basePriceCents: basePriceCents,
		isActive:       isActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(id uuid.UUID, slug, name, pathD string, lengthMm int32, basePriceCents int64, isActive bool, createdAt, updatedAt time.Time) (*Bracelet, error) {
	path, err := svgpath.Parse(pathD)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPathData)
	}
	return &Bracelet{
		id:             id,
		slug:           slug,
		name:           name,
		pathD:          pathD,
		path:           path,
		lengthMm:       lengthMm,
		basePriceCents: basePriceCents,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (b *Bracelet) ID() uuid.UUID         { return b.id }
func (b *Bracelet) Slug() string          { return b.slug }
func (b *Bracelet) Name() string          { return b.name }
func (b *Bracelet) PathD() string         { return b.pathD }
func (b *Bracelet) Path() *svgpath.Path   { return b.path }
func (b *Bracelet) LengthMm() int32       { return b.lengthMm }
func (b *Bracelet) BasePriceCents() int64 { return b.basePriceCents }
func (b *Bracelet) IsActive() bool        { return b.isActive }
func (b *Bracelet) CreatedAt() time.Time  { return b.createdAt }
func (b *Bracelet) UpdatedAt() time.Time  { return b.updatedAt }
