//go:build unit

package queries_test

import (
	"context"
	"testing"

	"charmforge/internal/infra"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/queries"
	queriesmock "charmforge/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDesignQueries(t *testing.T) (queries.DesignQueries, *queriesmock.MockDesignReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockDesignReadStore(ctrl)
	return queries.NewDesignQueries(store), store
}

func storedDesign(pathD string, lengthMm int32, placements ...queries.PlacementView) *queries.DesignView {
	return &queries.DesignView{
		ID:               uuid.New(),
		BraceletPathD:    pathD,
		BraceletLengthMm: lengthMm,
		Placements:       placements,
	}
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("stored view is returned unchanged", func(t *testing.T) {
		q, store := newDesignQueries(t)
		view := storedDesign("M 0 0 L 180 0", 180)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		got, err := q.GetByID(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing design maps to the not-found sentinel", func(t *testing.T) {
		q, store := newDesignQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("design not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, id)

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("placements resolve along a straight path", func(t *testing.T) {
		q, store := newDesignQueries(t)
		charmID := uuid.New()
		view := storedDesign("M 0 0 L 180 0", 180, queries.PlacementView{
			CharmID:     charmID,
			T:           0.5,
			OffsetMm:    10,
			RotationDeg: 15,
			Quantity:    2,
		})
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		preview, err := q.Preview(ctx, view.ID)

		require.NoError(t, err)
		assert.Equal(t, view.ID, preview.DesignID)
		assert.InDelta(t, 180, preview.ViewBoxPx, 1e-9)
		assert.InDelta(t, 1, preview.PxPerMm, 1e-9)

		require.Len(t, preview.Placements, 1)
		p := preview.Placements[0]
		assert.Equal(t, charmID, p.CharmID)
		// halfway along the segment, pushed 10 units along the normal (0,1)
		assert.InDelta(t, 90, p.X, 1e-9)
		assert.InDelta(t, 10, p.Y, 1e-9)
		// tangent of a horizontal segment is 0, so only the rotation remains
		assert.InDelta(t, 15, p.AngleDeg, 1e-9)
		assert.Equal(t, int32(2), p.Quantity)
	})

	t.Run("offset scales when viewBox and physical length differ", func(t *testing.T) {
		q, store := newDesignQueries(t)
		view := storedDesign("M 0 0 L 360 0", 180, queries.PlacementView{
			CharmID:  uuid.New(),
			T:        0.25,
			OffsetMm: 10,
			Quantity: 1,
		})
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		preview, err := q.Preview(ctx, view.ID)

		require.NoError(t, err)
		assert.InDelta(t, 2, preview.PxPerMm, 1e-9)
		require.Len(t, preview.Placements, 1)
		assert.InDelta(t, 90, preview.Placements[0].X, 1e-9)
		assert.InDelta(t, 20, preview.Placements[0].Y, 1e-9, "10mm offset is 20 path units at 2 px/mm")
	})

	t.Run("stacking order sorts by zIndex and keeps insertion order for ties", func(t *testing.T) {
		q, store := newDesignQueries(t)
		first, second, third := uuid.New(), uuid.New(), uuid.New()
		view := storedDesign("M 0 0 L 180 0", 180,
			queries.PlacementView{CharmID: first, T: 0.1, ZIndex: 2, Quantity: 1},
			queries.PlacementView{CharmID: second, T: 0.2, ZIndex: 0, Quantity: 1},
			queries.PlacementView{CharmID: third, T: 0.3, ZIndex: 2, Quantity: 1},
		)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		preview, err := q.Preview(ctx, view.ID)

		require.NoError(t, err)
		require.Len(t, preview.Placements, 3)
		assert.Equal(t, second, preview.Placements[0].CharmID)
		assert.Equal(t, first, preview.Placements[1].CharmID)
		assert.Equal(t, third, preview.Placements[2].CharmID)
	})

	t.Run("corrupt path data is reported as corrupt geometry", func(t *testing.T) {
		q, store := newDesignQueries(t)
		view := storedDesign("M 0 0 Q banana", 180)
		store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err := q.Preview(ctx, view.ID)

		assert.ErrorIs(t, err, queries.ErrCorruptGeometry)
	})

	t.Run("missing design surfaces the not-found sentinel", func(t *testing.T) {
		q, store := newDesignQueries(t)
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("design not found", nil, infra.KindNotFound))

		_, err := q.Preview(ctx, id)

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
	})
}
