package queries

import (
	"context"

	"charmforge/internal/infra"
	"charmforge/internal/pkg/errs"
)

type CatalogReadStore interface {
	ListBracelets(ctx context.Context, activeOnly bool) ([]*BraceletView, error)
	FindBraceletBySlug(ctx context.Context, slug string) (*BraceletView, error)
	ListCharms(ctx context.Context, activeOnly bool) ([]*CharmView, error)
}

type CatalogQueries interface {
	ListBracelets(ctx context.Context, includeInactive bool) ([]*BraceletView, error)
	GetBraceletBySlug(ctx context.Context, slug string) (*BraceletView, error)
	ListCharms(ctx context.Context, includeInactive bool) ([]*CharmView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListBracelets(ctx context.Context, includeInactive bool) ([]*BraceletView, error) {
	return q.store.ListBracelets(ctx, !includeInactive)
}

func (q *catalogQueriesImpl) GetBraceletBySlug(ctx context.Context, slug string) (*BraceletView, error) {
	view, err := q.store.FindBraceletBySlug(ctx, slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBraceletNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListCharms(ctx context.Context, includeInactive bool) ([]*CharmView, error) {
	return q.store.ListCharms(ctx, !includeInactive)
}
