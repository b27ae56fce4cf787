package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/quiz"
	"github.com/rocketscienceinc/geoquiz-backend/internal/repository"
	mockedUseCase "github.com/rocketscienceinc/geoquiz-backend/mocks/usecase"
)

var errRedisDown = errors.New("redis down")

type firstPick struct{}

func (firstPick) Intn(int) int { return 0 }

// memoryPlayers and memoryQuizzes keep the use case tests free of redis.
type memoryPlayers struct {
	players map[string]entity.Player
}

func (that *memoryPlayers) GetOrCreatePlayer(_ context.Context, id string) (*entity.Player, error) {
	if player, ok := that.players[id]; ok {
		return &player, nil
	}

	player := entity.Player{ID: id}
	that.players[id] = player

	return &player, nil
}

func (that *memoryPlayers) GetPlayerByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}

	return &player, nil
}

func (that *memoryPlayers) UpdatePlayer(_ context.Context, player *entity.Player) error {
	that.players[player.ID] = *player
	return nil
}

type memoryQuizzes struct {
	catalog *entity.Catalog
	quizzes map[string]*entity.Quiz
	saves   int
	nextID  int
}

func (that *memoryQuizzes) CreateQuiz(_ context.Context, player *entity.Player) (*entity.Quiz, error) {
	that.nextID++
	id := "quiz-" + string(rune('0'+that.nextID))

	created := entity.NewQuiz(id, player.ID, that.catalog.Names())
	that.quizzes[id] = created
	player.QuizID = id

	return clone(created), nil
}

func (that *memoryQuizzes) GetQuizByID(_ context.Context, id string) (*entity.Quiz, error) {
	stored, ok := that.quizzes[id]
	if !ok {
		return nil, repository.ErrQuizNotFound
	}

	return clone(stored), nil
}

func (that *memoryQuizzes) UpdateQuiz(_ context.Context, updated *entity.Quiz) error {
	that.saves++
	that.quizzes[updated.ID] = clone(updated)
	return nil
}

func (that *memoryQuizzes) DeleteQuiz(_ context.Context, id string) error {
	delete(that.quizzes, id)
	return nil
}

func clone(src *entity.Quiz) *entity.Quiz {
	dst := *src
	dst.Pool = append([]string(nil), src.Pool...)
	dst.Resolutions = append([]entity.Resolution(nil), src.Resolutions...)
	if src.Round.Hints != nil {
		dst.Round.Hints = make(map[entity.HintKind]string, len(src.Round.Hints))
		for kind, value := range src.Round.Hints {
			dst.Round.Hints[kind] = value
		}
	}

	return &dst
}

type fixture struct {
	useCase QuizUseCase
	players *memoryPlayers
	quizzes *memoryQuizzes
	hints   *mockedUseCase.MockhintService
}

func newFixture(t *testing.T, countries ...entity.Country) *fixture {
	t.Helper()

	if len(countries) == 0 {
		countries = entity.DefaultCatalog[:2]
	}

	catalog, err := entity.NewCatalog(countries)
	require.NoError(t, err)

	f := &fixture{
		players: &memoryPlayers{players: map[string]entity.Player{}},
		quizzes: &memoryQuizzes{catalog: catalog, quizzes: map[string]*entity.Quiz{}},
		hints:   mockedUseCase.NewMockhintService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.useCase = NewQuizUseCase(logger, f.players, f.quizzes, f.hints, catalog, firstPick{})

	return f
}

func (that *fixture) startedQuiz(t *testing.T, playerID string) *ActionResult {
	t.Helper()

	_, err := that.useCase.GetOrCreatePlayer(context.Background(), playerID)
	require.NoError(t, err)

	res, err := that.useCase.StartQuiz(context.Background(), playerID)
	require.NoError(t, err)

	return res
}

func TestQuizUseCase_StartQuiz(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a quiz and draws the first target", func(t *testing.T) {
		// Given: a registered player without a quiz
		f := newFixture(t)

		// When: the quiz starts
		res := f.startedQuiz(t, "p1")

		// Then: Canada's mesh is highlighted and its name is not exposed
		assert.Equal(t, entity.StatusRoundActive, res.Quiz.Status)
		assert.Equal(t, "Plane752_Material003_0", res.Quiz.TargetMesh)
		assert.Equal(t, entity.PointsPerRound, res.Quiz.RemainingPoints)
		assert.Equal(t, 1, res.Quiz.RemainingCountries)
		assert.Nil(t, res.Resolution)

		player := f.players.players["p1"]
		assert.Equal(t, res.Quiz.ID, player.QuizID)
	})

	t.Run("Keeps an active quiz", func(t *testing.T) {
		f := newFixture(t)
		first := f.startedQuiz(t, "p1")

		second, err := f.useCase.StartQuiz(ctx, "p1")

		require.NoError(t, err)
		assert.Equal(t, first.Quiz.ID, second.Quiz.ID)
		assert.Equal(t, first.Quiz.RemainingCountries, second.Quiz.RemainingCountries)
	})

	t.Run("Replaces a complete quiz", func(t *testing.T) {
		// Given: a player who finished a one-country quiz
		f := newFixture(t, entity.DefaultCatalog[0])
		first := f.startedQuiz(t, "p1")
		res, err := f.useCase.GiveUp(ctx, "p1")
		require.NoError(t, err)
		require.Equal(t, entity.StatusComplete, res.Quiz.Status)

		// When: a new quiz is requested
		second, err := f.useCase.StartQuiz(ctx, "p1")

		// Then: a fresh quiz replaces the finished one
		require.NoError(t, err)
		assert.NotEqual(t, first.Quiz.ID, second.Quiz.ID)
		assert.Equal(t, entity.StatusRoundActive, second.Quiz.Status)
		assert.NotContains(t, f.quizzes.quizzes, first.Quiz.ID)
	})

	t.Run("Fails for an unknown player", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.StartQuiz(ctx, "ghost")

		require.ErrorIs(t, err, repository.ErrPlayerNotFound)
	})
}

func TestQuizUseCase_SubmitGuess(t *testing.T) {
	ctx := context.Background()

	t.Run("Correct guess is persisted and advances", func(t *testing.T) {
		// Given: pool {Canada, USA} with Canada drawn
		f := newFixture(t)
		f.startedQuiz(t, "p1")

		// When: the player answers correctly
		res, err := f.useCase.SubmitGuess(ctx, "p1", "canada")

		// Then: the result names the resolved country and USA becomes the target
		require.NoError(t, err)
		assert.Equal(t, quiz.OutcomeCorrect, res.Outcome)
		require.NotNil(t, res.Resolution)
		assert.Equal(t, "Canada", res.Resolution.Country)
		assert.Equal(t, 10, res.Quiz.Score)
		assert.Equal(t, "Plane750_Material003_0", res.Quiz.TargetMesh)
		assert.Equal(t, entity.VisualCorrect, res.Quiz.VisualStates["Plane752_Material003_0"])

		stored := f.quizzes.quizzes[res.Quiz.ID]
		assert.Equal(t, "USA", stored.Round.Target)
		assert.Equal(t, 1, stored.Correct)
	})

	t.Run("Empty guess is not saved", func(t *testing.T) {
		f := newFixture(t)
		f.startedQuiz(t, "p1")
		saves := f.quizzes.saves

		res, err := f.useCase.SubmitGuess(ctx, "p1", "  ")

		require.ErrorIs(t, err, apperror.ErrEmptyGuess)
		require.NotNil(t, res)
		assert.Equal(t, entity.PointsPerRound, res.Quiz.RemainingPoints)
		assert.Equal(t, saves, f.quizzes.saves)
	})

	t.Run("Fails without a quiz", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.useCase.GetOrCreatePlayer(ctx, "p1")
		require.NoError(t, err)

		_, err = f.useCase.SubmitGuess(ctx, "p1", "Canada")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestQuizUseCase_RevealHint(t *testing.T) {
	ctx := context.Background()
	canada := &entity.CountryInfo{Name: "Canada", Population: 38005238, Area: 9984670, Capital: []string{"Ottawa"}}

	t.Run("Charges after a successful lookup", func(t *testing.T) {
		// Given: an active round on Canada
		f := newFixture(t)
		f.startedQuiz(t, "p1")
		f.hints.EXPECT().
			Lookup(mock.Anything, "Canada").
			Return(canada, nil).
			Once()

		// When: the capital is revealed
		res, err := f.useCase.RevealHint(ctx, "p1", entity.HintCapital)

		// Then: the value is returned and three points are spent
		require.NoError(t, err)
		require.NotNil(t, res.Hint)
		assert.Equal(t, "Ottawa", res.Hint.Value)
		assert.Equal(t, 7, res.Quiz.RemainingPoints)
		assert.Equal(t, "Ottawa", res.Quiz.Hints[entity.HintCapital])
	})

	t.Run("Repeated reveal is free and skips the lookup", func(t *testing.T) {
		f := newFixture(t)
		f.startedQuiz(t, "p1")
		f.hints.EXPECT().
			Lookup(mock.Anything, "Canada").
			Return(canada, nil).
			Once()

		_, err := f.useCase.RevealHint(ctx, "p1", entity.HintPopulation)
		require.NoError(t, err)

		res, err := f.useCase.RevealHint(ctx, "p1", entity.HintPopulation)

		require.NoError(t, err)
		assert.Equal(t, "38005238", res.Hint.Value)
		assert.Equal(t, 9, res.Quiz.RemainingPoints)
		f.hints.AssertNumberOfCalls(t, "Lookup", 1)
	})

	t.Run("Failed lookup costs nothing", func(t *testing.T) {
		// Given: an API that is down
		f := newFixture(t)
		f.startedQuiz(t, "p1")
		f.hints.EXPECT().
			Lookup(mock.Anything, "Canada").
			Return(nil, apperror.ErrLookupFailed).
			Once()
		saves := f.quizzes.saves

		// When: a hint is requested
		res, err := f.useCase.RevealHint(ctx, "p1", entity.HintArea)

		// Then: the error is reported with an unchanged snapshot
		require.ErrorIs(t, err, apperror.ErrLookupFailed)
		require.NotNil(t, res)
		assert.Nil(t, res.Hint)
		assert.Equal(t, entity.PointsPerRound, res.Quiz.RemainingPoints)
		assert.Equal(t, saves, f.quizzes.saves)

		stored := f.quizzes.quizzes[res.Quiz.ID]
		assert.False(t, stored.Round.HintRevealed(entity.HintArea))
	})

	t.Run("Unknown kind is rejected before any lookup", func(t *testing.T) {
		f := newFixture(t)
		f.startedQuiz(t, "p1")

		_, err := f.useCase.RevealHint(ctx, "p1", entity.HintKind("anthem"))

		require.ErrorIs(t, err, apperror.ErrUnknownHint)
		f.hints.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
	})
}

func TestQuizUseCase_AlignNorthAndGiveUp(t *testing.T) {
	ctx := context.Background()

	// Given: an active round
	f := newFixture(t)
	f.startedQuiz(t, "p1")

	// When: north is aligned
	res, err := f.useCase.AlignNorth(ctx, "p1")

	// Then: one point is spent
	require.NoError(t, err)
	assert.Equal(t, quiz.OutcomeContinue, res.Outcome)
	assert.Equal(t, 9, res.Quiz.RemainingPoints)

	// When: the player gives up
	res, err = f.useCase.GiveUp(ctx, "p1")

	// Then: Canada counts as incorrect and USA is next
	require.NoError(t, err)
	assert.Equal(t, quiz.OutcomeIncorrect, res.Outcome)
	assert.Equal(t, 1, res.Quiz.Incorrect)
	assert.Equal(t, entity.VisualIncorrect, res.Quiz.VisualStates["Plane752_Material003_0"])
	assert.Equal(t, entity.PointsPerRound, res.Quiz.RemainingPoints)
}

func TestQuizUseCase_Pick(t *testing.T) {
	ctx := context.Background()

	t.Run("Reveals the name of resolved meshes only", func(t *testing.T) {
		// Given: Canada resolved and USA active
		f := newFixture(t)
		f.startedQuiz(t, "p1")
		_, err := f.useCase.SubmitGuess(ctx, "p1", "Canada")
		require.NoError(t, err)

		// When: both meshes are picked
		resolved, err := f.useCase.Pick(ctx, "p1", "Plane752_Material003_0")
		require.NoError(t, err)
		active, err := f.useCase.Pick(ctx, "p1", "Plane750_Material003_0")
		require.NoError(t, err)

		// Then: only the resolved one is named
		assert.Equal(t, &PickResult{Mesh: "Plane752_Material003_0", VisualState: entity.VisualCorrect, Country: "Canada"}, resolved)
		assert.Equal(t, &PickResult{Mesh: "Plane750_Material003_0", VisualState: entity.VisualHighlighted}, active)
	})

	t.Run("Unknown mesh is reported", func(t *testing.T) {
		f := newFixture(t)
		f.startedQuiz(t, "p1")

		_, err := f.useCase.Pick(ctx, "p1", "Plane1_Material003_0")

		require.ErrorIs(t, err, apperror.ErrUnknownMesh)
	})
}

type failingQuizzes struct {
	memoryQuizzes
}

func (that *failingQuizzes) UpdateQuiz(context.Context, *entity.Quiz) error {
	return errRedisDown
}

func TestQuizUseCase_SaveFailure(t *testing.T) {
	// Given: storage that rejects writes
	catalog, err := entity.NewCatalog(entity.DefaultCatalog)
	require.NoError(t, err)

	players := &memoryPlayers{players: map[string]entity.Player{"p1": {ID: "p1"}}}
	quizzes := &failingQuizzes{memoryQuizzes{catalog: catalog, quizzes: map[string]*entity.Quiz{}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	useCase := NewQuizUseCase(logger, players, quizzes, mockedUseCase.NewMockhintService(t), catalog, firstPick{})

	// When: a quiz is started
	res, err := useCase.StartQuiz(context.Background(), "p1")

	// Then: the storage error surfaces
	require.ErrorIs(t, err, errRedisDown)
	assert.Nil(t, res)
}

func TestQuizUseCase_UnknownPlayersTakeNoLock(t *testing.T) {
	ctx := context.Background()

	// Given: a use case whose players are all unknown
	f := newFixture(t)
	useCase, ok := f.useCase.(*quizUseCase)
	require.True(t, ok)

	// When: thousands of fresh ids send actions
	for i := range 10000 {
		playerID := fmt.Sprintf("stranger-%d", i)

		_, err := useCase.SubmitGuess(ctx, playerID, "Canada")
		require.ErrorIs(t, err, apperror.ErrNotFound)

		_, err = useCase.RevealHint(ctx, playerID, entity.HintArea)
		require.ErrorIs(t, err, apperror.ErrNotFound)
	}

	// Then: the lock table keeps its fixed size and no stripe is left held
	assert.Len(t, useCase.locks[:], lockStripes)
	for i := range useCase.locks {
		require.True(t, useCase.locks[i].TryLock(), "stripe %d is still held", i)
		useCase.locks[i].Unlock()
	}
	assert.Empty(t, f.quizzes.quizzes)
	f.hints.AssertNotCalled(t, "Lookup", mock.Anything, mock.Anything)
}

func TestQuizUseCase_LookupErrorIsWrappedOnce(t *testing.T) {
	ctx := context.Background()

	// Given: a lookup that already reports the lookup failure
	f := newFixture(t)
	f.startedQuiz(t, "p1")
	f.hints.EXPECT().
		Lookup(mock.Anything, "Canada").
		Return(nil, fmt.Errorf("%w: status 500", apperror.ErrLookupFailed)).
		Once()

	// When: a hint is requested
	_, err := f.useCase.RevealHint(ctx, "p1", entity.HintPopulation)

	// Then: the sentinel appears once in the message
	require.ErrorIs(t, err, apperror.ErrLookupFailed)
	assert.Equal(t, 1, strings.Count(err.Error(), apperror.ErrLookupFailed.Error()))
}

func TestQuizUseCase_LookupErrorGetsSentinel(t *testing.T) {
	ctx := context.Background()

	// Given: a lookup failing with a plain transport error
	f := newFixture(t)
	f.startedQuiz(t, "p1")
	f.hints.EXPECT().
		Lookup(mock.Anything, "Canada").
		Return(nil, errRedisDown).
		Once()

	// When: a hint is requested
	_, err := f.useCase.RevealHint(ctx, "p1", entity.HintPopulation)

	// Then: both the sentinel and the cause are in the chain
	require.ErrorIs(t, err, apperror.ErrLookupFailed)
	require.ErrorIs(t, err, errRedisDown)
}
