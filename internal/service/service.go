// Package service ties the dataset loader, the chart generator and the
// render store together.
package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Zachdehooge/temperature-heatmap/internal/fetcher"
	"github.com/Zachdehooge/temperature-heatmap/internal/generator"
	"github.com/Zachdehooge/temperature-heatmap/internal/store"
)

// Source provides the dataset.
type Source interface {
	FetchDataset(ctx context.Context) (*fetcher.Dataset, error)
}

// Service renders the heat map from a Source and keeps the latest result.
type Service struct {
	source  Source
	store   *store.MemoryStore
	refresh int
	now     func() time.Time
}

// NewService creates a Service. pageRefresh, when positive, is the reload
// interval in seconds embedded in rendered pages.
func NewService(source Source, st *store.MemoryStore, pageRefresh int) *Service {
	return &Service{
		source:  source,
		store:   st,
		refresh: pageRefresh,
		now:     time.Now,
	}
}

// Store returns the render store.
func (s *Service) Store() *store.MemoryStore {
	return s.store
}

// Render fetches the dataset and renders the page and the SVG.
func (s *Service) Render(ctx context.Context) (store.Render, error) {
	ds, err := s.source.FetchDataset(ctx)
	if err != nil {
		return store.Render{}, fmt.Errorf("failed to load dataset: %w", err)
	}

	chart := generator.BuildChart(ds)

	var svgBuf bytes.Buffer
	if err := chart.WriteSVG(&svgBuf); err != nil {
		return store.Render{}, fmt.Errorf("failed to render SVG: %w", err)
	}
	var pageBuf bytes.Buffer
	if err := generator.RenderChartPage(&pageBuf, chart, s.refresh); err != nil {
		return store.Render{}, fmt.Errorf("failed to render page: %w", err)
	}

	return store.Render{
		Dataset:    ds,
		Chart:      chart,
		Page:       pageBuf.Bytes(),
		SVG:        svgBuf.Bytes(),
		RenderedAt: s.now().UTC(),
	}, nil
}

// Refresh renders and saves the result. On failure the previous render is
// kept and the failure is recorded and logged.
func (s *Service) Refresh(ctx context.Context) error {
	r, err := s.Render(ctx)
	if err != nil {
		s.store.RecordFailure(s.now().UTC(), err)
		slog.Error("refresh failed; keeping last good render", "err", err)
		return err
	}
	s.store.Save(r)
	slog.Info("heat map rendered", "cells", len(r.Chart.Cells), "bytes", len(r.Page))
	return nil
}

// FramePage renders the empty-frame page served before the first successful render.
func (s *Service) FramePage() ([]byte, error) {
	var buf bytes.Buffer
	if err := generator.RenderFramePage(&buf, s.refresh); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
