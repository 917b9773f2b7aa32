//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"charmforge/internal/infra"
	"charmforge/internal/infra/db"
	"charmforge/internal/pkg/clock"
	"charmforge/internal/pkg/errs"
	"charmforge/internal/usecase/commands"
	"charmforge/tests/common/builder"
	commandsmock "charmforge/tests/mock/commands"
	queriesmock "charmforge/tests/mock/queries"
	sharedmock "charmforge/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type designCommandMocks struct {
	braceletRepo  *commandsmock.MockBraceletRepository
	charmRepo     *commandsmock.MockCharmRepository
	designRepo    *commandsmock.MockDesignRepository
	designQueries *queriesmock.MockDesignQueries
	txm           *sharedmock.MockTxManager
}

func newDesignCommands(t *testing.T) (commands.DesignCommands, designCommandMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := designCommandMocks{
		braceletRepo:  commandsmock.NewMockBraceletRepository(ctrl),
		charmRepo:     commandsmock.NewMockCharmRepository(ctrl),
		designRepo:    commandsmock.NewMockDesignRepository(ctrl),
		designQueries: queriesmock.NewMockDesignQueries(ctrl),
		txm:           sharedmock.NewMockTxManager(ctrl),
	}
	fixed := clock.NewFixedClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	uc := commands.NewDesignCommands(m.braceletRepo, m.charmRepo, m.designRepo, m.designQueries, m.txm, fixed)
	return uc, m
}

func passthroughTx(m *sharedmock.MockTxManager) {
	m.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		},
	)
}

func TestCreateDesign(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission is persisted and read back", func(t *testing.T) {
		uc, m := newDesignCommands(t)

		charmSnap := builder.NewCharmBuilder().BuildSnapshot()
		braceletSnap := builder.NewBraceletBuilder().BuildSnapshot()
		req := builder.NewDesignBuilder().
			WithPlacements().
			AddPlacement(charmSnap.ID, 0.25, 2).
			BuildDTO()

		designID := uuid.New()
		view := builder.NewDesignBuilder().BuildReadModel()
		view.ID = designID

		m.braceletRepo.EXPECT().FindBySlug(ctx, req.BraceletSlug).Return(braceletSnap, nil)
		m.charmRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{charmSnap.ID}).Return([]*commands.CharmSnapshot{charmSnap}, nil)
		passthroughTx(m.txm)
		m.designRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).Return(designID, nil)
		m.designQueries.EXPECT().GetByID(ctx, designID).Return(view, nil)

		got, err := uc.CreateDesign(ctx, req, nil)
		require.NoError(t, err)
		assert.Equal(t, designID, got.ID)
	})

	t.Run("unknown bracelet slug", func(t *testing.T) {
		uc, m := newDesignCommands(t)
		req := builder.NewDesignBuilder().WithBraceletSlug("missing").BuildDTO()

		m.braceletRepo.EXPECT().FindBySlug(ctx, "missing").
			Return(nil, infra.WrapRepoErr("bracelet not found", nil, infra.KindNotFound))

		_, err := uc.CreateDesign(ctx, req, nil)
		assert.ErrorIs(t, err, errs.ErrBraceletNotFound)
	})

	t.Run("inactive bracelet", func(t *testing.T) {
		uc, m := newDesignCommands(t)
		req := builder.NewDesignBuilder().BuildDTO()
		snap := builder.NewBraceletBuilder().AsInactive().BuildSnapshot()

		m.braceletRepo.EXPECT().FindBySlug(ctx, req.BraceletSlug).Return(snap, nil)

		_, err := uc.CreateDesign(ctx, req, nil)
		assert.ErrorIs(t, err, errs.ErrBraceletInactive)
	})

	t.Run("all violations are returned and nothing is persisted", func(t *testing.T) {
		uc, m := newDesignCommands(t)

		// One placement with two field-bound violations, one exhausting
		// stock, one referencing a charm the catalog does not know.
		lowStock := builder.NewCharmBuilder().WithStock(1).BuildSnapshot()
		unknownID := uuid.New()
		req := builder.NewDesignBuilder().
			WithPlacements().
			AddPlacement(lowStock.ID, 1.5, 0).
			AddPlacement(lowStock.ID, 0.5, 2).
			AddPlacement(unknownID, 0.3, 1).
			BuildDTO()

		braceletSnap := builder.NewBraceletBuilder().BuildSnapshot()
		m.braceletRepo.EXPECT().FindBySlug(ctx, req.BraceletSlug).Return(braceletSnap, nil)
		m.charmRepo.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*commands.CharmSnapshot{lowStock}, nil)

		_, err := uc.CreateDesign(ctx, req, nil)
		require.Error(t, err)

		var verrs commands.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 4)

		assert.Equal(t, 0, verrs[0].Placement)
		assert.Equal(t, "t", verrs[0].Field)
		assert.Equal(t, commands.KindBounds, verrs[0].Kind)
		assert.Equal(t, 0, verrs[1].Placement)
		assert.Equal(t, "quantity", verrs[1].Field)
		assert.True(t, verrs.HasKind(commands.KindStock))
		assert.True(t, verrs.HasKind(commands.KindUnknownCharm))
	})

	t.Run("empty placement list is a design-level violation", func(t *testing.T) {
		uc, m := newDesignCommands(t)
		req := builder.NewDesignBuilder().WithPlacements().BuildDTO()

		braceletSnap := builder.NewBraceletBuilder().BuildSnapshot()
		m.braceletRepo.EXPECT().FindBySlug(ctx, req.BraceletSlug).Return(braceletSnap, nil)

		_, err := uc.CreateDesign(ctx, req, nil)

		var verrs commands.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 1)
		assert.Equal(t, -1, verrs[0].Placement)
		assert.Equal(t, "placements", verrs[0].Field)
	})

	t.Run("owner id is attached to the stored design", func(t *testing.T) {
		uc, m := newDesignCommands(t)

		charmSnap := builder.NewCharmBuilder().BuildSnapshot()
		braceletSnap := builder.NewBraceletBuilder().BuildSnapshot()
		userID := uuid.New()
		req := builder.NewDesignBuilder().
			WithPlacements().
			AddPlacement(charmSnap.ID, 0.5, 1).
			BuildDTO()

		designID := uuid.New()
		m.braceletRepo.EXPECT().FindBySlug(ctx, req.BraceletSlug).Return(braceletSnap, nil)
		m.charmRepo.EXPECT().FindByIDs(ctx, gomock.Any()).Return([]*commands.CharmSnapshot{charmSnap}, nil)
		passthroughTx(m.txm)
		m.designRepo.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ db.DBTX, d interface{ UserID() *uuid.UUID }) (uuid.UUID, error) {
				require.NotNil(t, d.UserID())
				assert.Equal(t, userID, *d.UserID())
				return designID, nil
			},
		)
		m.designQueries.EXPECT().GetByID(ctx, designID).Return(builder.NewDesignBuilder().BuildReadModel(), nil)

		_, err := uc.CreateDesign(ctx, req, &userID)
		require.NoError(t, err)
	})
}
