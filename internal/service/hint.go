package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/repository"
)

// HintService resolves country data for hints, preferring the cache.
type HintService interface {
	Lookup(ctx context.Context, name string) (*entity.CountryInfo, error)
}

type countryClient interface {
	Lookup(ctx context.Context, name string) (*entity.CountryInfo, error)
}

type countryInfoCache interface {
	Set(ctx context.Context, name string, info *entity.CountryInfo) error
	Get(ctx context.Context, name string) (*entity.CountryInfo, error)
}

type hintService struct {
	logger *slog.Logger

	client countryClient
	cache  countryInfoCache
}

func NewHintService(logger *slog.Logger, client countryClient, cache countryInfoCache) HintService {
	return &hintService{
		logger: logger,
		client: client,
		cache:  cache,
	}
}

func (that *hintService) Lookup(ctx context.Context, name string) (*entity.CountryInfo, error) {
	log := that.logger.With("method", "Lookup", "country", name)

	info, err := that.cache.Get(ctx, name)
	if err == nil {
		return info, nil
	}

	// a broken cache must not block hints
	if !errors.Is(err, repository.ErrCountryInfoNotCached) {
		log.Warn("failed to read country info cache", "error", err)
	}

	info, err = that.client.Lookup(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up country: %w", err)
	}

	if err = that.cache.Set(ctx, name, info); err != nil {
		log.Warn("failed to cache country info", "error", err)
	}

	return info, nil
}
