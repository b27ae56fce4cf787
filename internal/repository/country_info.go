package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

var ErrCountryInfoNotCached = errors.New("country info not cached")

// CountryInfoCache keeps looked-up country data for a limited time.
type CountryInfoCache interface {
	Set(ctx context.Context, name string, info *entity.CountryInfo) error
	Get(ctx context.Context, name string) (*entity.CountryInfo, error)
}

type dbCountryInfo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCountryInfoCache(client *redis.Client, ttl time.Duration) CountryInfoCache {
	return &dbCountryInfo{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbCountryInfo) Set(ctx context.Context, name string, info *entity.CountryInfo) error {
	return setJSON(ctx, that.client, countryInfoKey(name), info, that.ttl)
}

func (that *dbCountryInfo) Get(ctx context.Context, name string) (*entity.CountryInfo, error) {
	return getJSON[entity.CountryInfo](ctx, that.client, countryInfoKey(name), ErrCountryInfoNotCached)
}

func countryInfoKey(name string) string {
	return "country:" + strings.ToLower(name)
}
