package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

var ErrPlayerNotFound = fmt.Errorf("player %w", apperror.ErrNotFound)

type PlayerRepository interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type dbPlayer struct {
	client *redis.Client
}

func NewPlayerRepository(client *redis.Client) PlayerRepository {
	return &dbPlayer{
		client: client,
	}
}

func (that *dbPlayer) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	return setJSON(ctx, that.client, playerKey(player.ID), player, 0)
}

func (that *dbPlayer) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	return getJSON[entity.Player](ctx, that.client, playerKey(id), ErrPlayerNotFound)
}

func playerKey(id string) string {
	return "player:" + id
}
