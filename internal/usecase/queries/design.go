package queries

import (
	"context"
	"sort"

	"charmforge/internal/infra"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/pkg/svgpath"

	"github.com/google/uuid"
)

var ErrCorruptGeometry = errs.New("bracelet geometry is corrupt")

type DesignReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DesignView, error)
}

type DesignQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*DesignView, error)
	// Preview resolves the stored logical placements to path-unit positions
	// and angles, using the same arc-length function the editor assumes.
	Preview(ctx context.Context, id uuid.UUID) (*DesignPreview, error)
}

type designQueriesImpl struct {
	store DesignReadStore
}

func NewDesignQueries(store DesignReadStore) DesignQueries {
	return &designQueriesImpl{store: store}
}

func (q *designQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*DesignView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDesignNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *designQueriesImpl) Preview(ctx context.Context, id uuid.UUID) (*DesignPreview, error) {
	view, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := svgpath.Parse(view.BraceletPathD)
	if err != nil {
		// Corrupt catalog data, not a client mistake.
		return nil, errs.Mark(err, ErrCorruptGeometry)
	}

	viewBoxPx := path.Length()
	ratio, err := svgpath.PxPerMm(viewBoxPx, float64(view.BraceletLengthMm))
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptGeometry)
	}

	previews := make([]PlacementPreview, len(view.Placements))
	for i, p := range view.Placements {
		point := path.PointAt(p.T)
		normal := path.Normal(p.T)
		offsetPx := p.OffsetMm * ratio

		previews[i] = PlacementPreview{
			CharmID:  p.CharmID,
			X:        point.X + normal.X*offsetPx,
			Y:        point.Y + normal.Y*offsetPx,
			AngleDeg: path.TangentAngle(p.T) + p.RotationDeg,
			ZIndex:   p.ZIndex,
			Quantity: p.Quantity,
		}
	}

	// Stacking order: zIndex ascending, insertion order breaks ties.
	sort.SliceStable(previews, func(i, j int) bool {
		return previews[i].ZIndex < previews[j].ZIndex
	})

	return &DesignPreview{
		DesignID:   view.ID,
		ViewBoxPx:  viewBoxPx,
		PxPerMm:    ratio,
		Placements: previews,
	}, nil
}
