package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/quiz"
)

type QuizUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartQuiz(ctx context.Context, playerID string) (*ActionResult, error)
	GetQuiz(ctx context.Context, playerID string) (*ActionResult, error)

	SubmitGuess(ctx context.Context, playerID, guess string) (*ActionResult, error)
	RevealHint(ctx context.Context, playerID string, kind entity.HintKind) (*ActionResult, error)
	GiveUp(ctx context.Context, playerID string) (*ActionResult, error)
	AlignNorth(ctx context.Context, playerID string) (*ActionResult, error)
	Pick(ctx context.Context, playerID, mesh string) (*PickResult, error)
}

// ActionResult is what a quiz action reports back to the client.
type ActionResult struct {
	Quiz       *entity.Snapshot   `json:"quiz"`
	Outcome    quiz.Outcome       `json:"outcome,omitempty"`
	Resolution *entity.Resolution `json:"resolution,omitempty"`
	Hint       *Hint              `json:"hint,omitempty"`
}

type Hint struct {
	Kind  entity.HintKind `json:"kind"`
	Value string          `json:"value"`
}

// PickResult reports the visual state of a picked mesh. The country name is only set for resolved meshes.
type PickResult struct {
	Mesh        string `json:"mesh"`
	VisualState string `json:"visual_state"`
	Country     string `json:"country,omitempty"`
}

type playerService interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
	UpdatePlayer(ctx context.Context, player *entity.Player) error
}

type quizService interface {
	CreateQuiz(ctx context.Context, player *entity.Player) (*entity.Quiz, error)
	GetQuizByID(ctx context.Context, id string) (*entity.Quiz, error)
	UpdateQuiz(ctx context.Context, quiz *entity.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error
}

type hintService interface {
	Lookup(ctx context.Context, name string) (*entity.CountryInfo, error)
}

// lockStripes bounds the lock table; players hashing to one stripe share it.
const lockStripes = 256

type quizUseCase struct {
	logger *slog.Logger

	playerService playerService
	quizService   quizService
	hintService   hintService

	catalog *entity.Catalog
	random  quiz.RandomSource

	locks [lockStripes]sync.Mutex
}

func NewQuizUseCase(
	logger *slog.Logger,
	playerService playerService,
	quizService quizService,
	hintService hintService,
	catalog *entity.Catalog,
	random quiz.RandomSource,
) QuizUseCase {
	return &quizUseCase{
		logger:        logger,
		playerService: playerService,
		quizService:   quizService,
		hintService:   hintService,
		catalog:       catalog,
		random:        random,
	}
}

func (that *quizUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	player, err := that.playerService.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("could not get or create player: %w", err)
	}

	return player, nil
}

// StartQuiz draws the first target. A finished quiz is dropped and replaced by a fresh one;
// a quiz with an active round is returned as is.
func (that *quizUseCase) StartQuiz(ctx context.Context, playerID string) (*ActionResult, error) {
	log := that.logger.With("method", "StartQuiz", "playerID", playerID)

	unlock, err := that.lockPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	current, err := that.currentQuiz(ctx, player)
	if err != nil {
		return nil, err
	}

	if current != nil && current.IsRoundActive() {
		return that.result(current, quiz.Result{}), nil
	}

	if current != nil && current.IsComplete() {
		if err = that.quizService.DeleteQuiz(ctx, current.ID); err != nil {
			log.Error("failed to delete finished quiz", "quizID", current.ID, "error", err)
		}
		current = nil
	}

	if current == nil {
		if current, err = that.quizService.CreateQuiz(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to create quiz: %w", err)
		}

		if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to update player: %w", err)
		}
	}

	controller := quiz.NewController(current, that.catalog, that.random)
	if err = controller.StartNextRound(); err != nil && !errors.Is(err, apperror.ErrGameComplete) {
		return nil, fmt.Errorf("failed to start round: %w", err)
	}

	if err = that.quizService.UpdateQuiz(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	log.Info("quiz started", "quizID", current.ID, "remaining", len(current.Pool))

	return that.result(current, quiz.Result{}), nil
}

func (that *quizUseCase) GetQuiz(ctx context.Context, playerID string) (*ActionResult, error) {
	current, err := that.playerQuiz(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return that.result(current, quiz.Result{}), nil
}

func (that *quizUseCase) SubmitGuess(ctx context.Context, playerID, guess string) (*ActionResult, error) {
	return that.apply(ctx, playerID, func(controller *quiz.Controller) (quiz.Result, error) {
		return controller.SubmitGuess(guess)
	})
}

func (that *quizUseCase) GiveUp(ctx context.Context, playerID string) (*ActionResult, error) {
	return that.apply(ctx, playerID, (*quiz.Controller).GiveUp)
}

func (that *quizUseCase) AlignNorth(ctx context.Context, playerID string) (*ActionResult, error) {
	return that.apply(ctx, playerID, (*quiz.Controller).AlignNorth)
}

// RevealHint charges the hint only after the country data has been fetched.
// A failed lookup leaves the round untouched and returns apperror.ErrLookupFailed with the current snapshot.
func (that *quizUseCase) RevealHint(ctx context.Context, playerID string, kind entity.HintKind) (*ActionResult, error) {
	log := that.logger.With("method", "RevealHint", "playerID", playerID, "kind", kind)

	if _, err := kind.Cost(); err != nil {
		return nil, err
	}

	unlock, err := that.lockPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := that.playerQuiz(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err = current.ConfirmRoundActive(); err != nil {
		return that.result(current, quiz.Result{}), err
	}

	if current.Round.HintRevealed(kind) {
		res := that.result(current, quiz.Result{Outcome: quiz.OutcomeContinue})
		res.Hint = &Hint{Kind: kind, Value: current.Round.Hints[kind]}
		return res, nil
	}

	info, err := that.hintService.Lookup(ctx, current.Round.Target)
	if err != nil {
		log.Warn("hint lookup failed", "error", err)
		if !errors.Is(err, apperror.ErrLookupFailed) {
			err = fmt.Errorf("%w: %w", apperror.ErrLookupFailed, err)
		}

		return that.result(current, quiz.Result{}), err
	}

	value := info.HintValue(kind)

	controller := quiz.NewController(current, that.catalog, that.random)
	outcome, err := controller.RevealHint(kind, value)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal hint: %w", err)
	}

	if err = that.quizService.UpdateQuiz(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	res := that.result(current, outcome)
	res.Hint = &Hint{Kind: kind, Value: value}

	return res, nil
}

func (that *quizUseCase) Pick(ctx context.Context, playerID, mesh string) (*PickResult, error) {
	country, ok := that.catalog.ByMesh(mesh)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownMesh, mesh)
	}

	current, err := that.playerQuiz(ctx, playerID)
	if err != nil {
		return nil, err
	}

	pick := &PickResult{
		Mesh:        mesh,
		VisualState: current.Snapshot(that.catalog).VisualStates[mesh],
	}

	if pick.VisualState == entity.VisualCorrect || pick.VisualState == entity.VisualIncorrect {
		pick.Country = country.Name
	}

	return pick, nil
}

// apply runs one controller operation against the player's quiz and saves it.
func (that *quizUseCase) apply(
	ctx context.Context,
	playerID string,
	action func(controller *quiz.Controller) (quiz.Result, error),
) (*ActionResult, error) {
	log := that.logger.With("method", "apply", "playerID", playerID)

	unlock, err := that.lockPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := that.playerQuiz(ctx, playerID)
	if err != nil {
		return nil, err
	}

	controller := quiz.NewController(current, that.catalog, that.random)

	outcome, err := action(controller)
	if err != nil {
		return that.result(current, quiz.Result{}), err
	}

	if err = that.quizService.UpdateQuiz(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save quiz: %w", err)
	}

	if outcome.Complete {
		log.Info("quiz complete", "quizID", current.ID, "score", current.Score)
	}

	return that.result(current, outcome), nil
}

func (that *quizUseCase) playerQuiz(ctx context.Context, playerID string) (*entity.Quiz, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	current, err := that.currentQuiz(ctx, player)
	if err != nil {
		return nil, err
	}

	if current == nil {
		return nil, fmt.Errorf("%w: player %s has no quiz", apperror.ErrNotFound, playerID)
	}

	return current, nil
}

func (that *quizUseCase) currentQuiz(ctx context.Context, player *entity.Player) (*entity.Quiz, error) {
	if player.QuizID == "" {
		return nil, nil
	}

	current, err := that.quizService.GetQuizByID(ctx, player.QuizID)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return current, nil
}

func (that *quizUseCase) result(current *entity.Quiz, outcome quiz.Result) *ActionResult {
	return &ActionResult{
		Quiz:       current.Snapshot(that.catalog),
		Outcome:    outcome.Outcome,
		Resolution: outcome.Resolution,
	}
}

// lockPlayer serializes actions of one existing player so concurrent connections
// do not overwrite each other. Unknown players are rejected before any lock is taken.
func (that *quizUseCase) lockPlayer(ctx context.Context, playerID string) (func(), error) {
	if _, err := that.playerService.GetPlayerByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	mu := &that.locks[lockStripe(playerID)]
	mu.Lock()

	return mu.Unlock, nil
}

func lockStripe(playerID string) uint32 {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(playerID))

	return hash.Sum32() % lockStripes
}
