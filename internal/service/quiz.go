package service

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/pkg"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, player *entity.Player) (*entity.Quiz, error)
	GetQuizByID(ctx context.Context, id string) (*entity.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *entity.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
}

type quizRepo interface {
	CreateOrUpdate(ctx context.Context, quiz *entity.Quiz) error
	GetByID(ctx context.Context, id string) (*entity.Quiz, error)
	DeleteByID(ctx context.Context, id string) error
}

type quizService struct {
	quizRepo quizRepo
	catalog  *entity.Catalog
}

func NewQuizService(quizRepo quizRepo, catalog *entity.Catalog) QuizService {
	return &quizService{
		quizRepo: quizRepo,
		catalog:  catalog,
	}
}

// CreateQuiz stores an idle quiz over the whole catalog and binds it to the player.
func (that *quizService) CreateQuiz(ctx context.Context, player *entity.Player) (*entity.Quiz, error) {
	quiz := entity.NewQuiz(pkg.GenerateQuizID(), player.ID, that.catalog.Names())

	if err := that.quizRepo.CreateOrUpdate(ctx, quiz); err != nil {
		return nil, fmt.Errorf("failed to create quiz in storage: %w", err)
	}

	player.QuizID = quiz.ID

	return quiz, nil
}

func (that *quizService) GetQuizByID(ctx context.Context, id string) (*entity.Quiz, error) {
	quiz, err := that.quizRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve quiz from storage: %w", err)
	}

	return quiz, nil
}

func (that *quizService) UpdateQuiz(ctx context.Context, quiz *entity.Quiz) error {
	if err := that.quizRepo.CreateOrUpdate(ctx, quiz); err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}

	return nil
}

func (that *quizService) DeleteQuiz(ctx context.Context, id string) error {
	if err := that.quizRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	return nil
}
