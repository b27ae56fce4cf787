package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

var ErrQuizNotFound = fmt.Errorf("quiz %w", apperror.ErrNotFound)

type QuizRepository interface {
	CreateOrUpdate(ctx context.Context, quiz *entity.Quiz) error
	GetByID(ctx context.Context, id string) (*entity.Quiz, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbQuiz struct {
	client *redis.Client
}

func NewQuizRepository(client *redis.Client) QuizRepository {
	return &dbQuiz{
		client: client,
	}
}

func (that *dbQuiz) CreateOrUpdate(ctx context.Context, quiz *entity.Quiz) error {
	return setJSON(ctx, that.client, quizKey(quiz.ID), quiz, 0)
}

func (that *dbQuiz) GetByID(ctx context.Context, id string) (*entity.Quiz, error) {
	return getJSON[entity.Quiz](ctx, that.client, quizKey(id), ErrQuizNotFound)
}

func (that *dbQuiz) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, quizKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete quiz by id: %w", err)
	}

	if deleted == 0 {
		return ErrQuizNotFound
	}

	return nil
}

func quizKey(id string) string {
	return "quiz:" + id
}
