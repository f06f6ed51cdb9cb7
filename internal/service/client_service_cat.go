// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/kittygram-client/internal/adapter"
	"github.com/MKhiriev/kittygram-client/internal/app"
	"github.com/MKhiriev/kittygram-client/internal/logger"
	"github.com/MKhiriev/kittygram-client/models"
)

// ViewerSource resolves the display name of the signed-in user.
type ViewerSource interface {
	Username(ctx context.Context) string
}

type clientCatService struct {
	adapter adapter.CatalogAdapter
	viewer  ViewerSource
	logger  *logger.Logger
}

func NewClientCatService(catalog adapter.CatalogAdapter, viewer ViewerSource, log *logger.Logger) ClientCatService {
	if log == nil {
		log = logger.Nop()
	}
	return &clientCatService{adapter: catalog, viewer: viewer, logger: log}
}

func (s *clientCatService) ListCatalog(ctx context.Context, page int) models.CatalogPage {
	if page < 1 {
		page = 1
	}

	resp, err := s.adapter.List(ctx, page)
	if err != nil {
		s.logger.Warn().Err(err).Int("page", page).Msg("catalog unavailable, showing placeholder data")
		return models.CatalogPage{
			Items:   placeholderCats(),
			Cursor:  models.PageCursor{CurrentPage: page},
			Offline: true,
			Notice:  app.MsgOfflineCatalog,
		}
	}

	items := resp.Results
	if items == nil {
		items = []models.Cat{}
	}

	return models.CatalogPage{
		Items: items,
		Cursor: models.PageCursor{
			CurrentPage: page,
			HasNext:     resp.HasNext(),
			HasPrevious: resp.HasPrevious(),
		},
	}
}

func (s *clientCatService) Get(ctx context.Context, id int64) (models.Cat, error) {
	if id <= 0 {
		return models.Cat{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	cat, err := s.adapter.Get(ctx, id)
	if err != nil {
		return models.Cat{}, mapAdapterError(OpGet, err)
	}
	return cat, nil
}

func (s *clientCatService) Detail(ctx context.Context, id int64) (models.CatDetail, error) {
	var (
		cat    models.Cat
		viewer string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cat, err = s.Get(gctx, id)
		return err
	})
	if s.viewer != nil {
		g.Go(func() error {
			viewer = s.viewer.Username(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.CatDetail{}, err
	}
	return models.CatDetail{Cat: cat, Viewer: viewer}, nil
}

func (s *clientCatService) Create(ctx context.Context, payload models.CatPayload) (models.Cat, error) {
	cat, err := s.adapter.Create(ctx, payload)
	if err != nil {
		return models.Cat{}, mapAdapterError(OpCreate, err)
	}

	s.logger.Info().Int64("cat_id", cat.ID).Msg("cat created")
	return cat, nil
}

func (s *clientCatService) Update(ctx context.Context, id int64, payload models.CatPayload) (models.Cat, error) {
	if id <= 0 {
		return models.Cat{}, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	cat, err := s.adapter.Update(ctx, id, models.PatchFromPayload(payload))
	if err != nil {
		return models.Cat{}, mapAdapterError(OpUpdate, err)
	}

	s.logger.Info().Int64("cat_id", id).Msg("cat updated")
	return cat, nil
}

func (s *clientCatService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	if err := s.adapter.Delete(ctx, id); err != nil {
		return mapAdapterError(OpDelete, err)
	}

	s.logger.Info().Int64("cat_id", id).Msg("cat deleted")
	return nil
}
