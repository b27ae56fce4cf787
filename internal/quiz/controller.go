package quiz

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
)

type Outcome string

const (
	// OutcomeContinue - the round goes on with the same target.
	OutcomeContinue  Outcome = "continue"
	OutcomeCorrect   Outcome = "correct"
	OutcomeIncorrect Outcome = "incorrect"
)

// Result describes what an action did to the round.
type Result struct {
	Outcome    Outcome
	Resolution *entity.Resolution
	Complete   bool
}

// RandomSource picks the index of the next target.
type RandomSource interface {
	Intn(n int) int
}

type sharedRandom struct{}

func (sharedRandom) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // not security sensitive
}

// SharedRandom draws from the process-wide source, safe for concurrent controllers.
func SharedRandom() RandomSource {
	return sharedRandom{}
}

// Controller applies round rules to a single quiz.
type Controller struct {
	quiz    *entity.Quiz
	catalog *entity.Catalog
	random  RandomSource
}

func NewController(quiz *entity.Quiz, catalog *entity.Catalog, random RandomSource) *Controller {
	return &Controller{
		quiz:    quiz,
		catalog: catalog,
		random:  random,
	}
}

func (that *Controller) Quiz() *entity.Quiz {
	return that.quiz
}

// StartNextRound draws the next target without replacement.
// It returns apperror.ErrGameComplete once the pool is empty.
func (that *Controller) StartNextRound() error {
	that.quiz.Round = entity.Round{}

	if len(that.quiz.Pool) == 0 {
		that.quiz.Status = entity.StatusComplete
		return apperror.ErrGameComplete
	}

	idx := that.random.Intn(len(that.quiz.Pool))
	target := that.quiz.Pool[idx]
	that.quiz.Pool = slices.Delete(that.quiz.Pool, idx, idx+1)

	that.quiz.Status = entity.StatusRoundActive
	that.quiz.Round = entity.Round{
		Target:          target,
		RemainingPoints: entity.PointsPerRound,
	}

	return nil
}

// SubmitGuess compares the trimmed guess with the target name, ignoring case.
// A blank guess returns apperror.ErrEmptyGuess and changes nothing.
func (that *Controller) SubmitGuess(text string) (Result, error) {
	if err := that.quiz.ConfirmRoundActive(); err != nil {
		return Result{}, err
	}

	guess := strings.TrimSpace(text)
	if guess == "" {
		return Result{}, apperror.ErrEmptyGuess
	}

	if strings.EqualFold(guess, strings.TrimSpace(that.quiz.Round.Target)) {
		return that.resolve(true), nil
	}

	return that.charge(1), nil
}

// RevealHint charges the hint cost once per kind per round and stores the revealed value.
// Repeated reveals of the same kind are free.
func (that *Controller) RevealHint(kind entity.HintKind, value string) (Result, error) {
	cost, err := kind.Cost()
	if err != nil {
		return Result{}, err
	}

	if err = that.quiz.ConfirmRoundActive(); err != nil {
		return Result{}, err
	}

	if that.quiz.Round.HintRevealed(kind) {
		return Result{Outcome: OutcomeContinue}, nil
	}

	if that.quiz.Round.Hints == nil {
		that.quiz.Round.Hints = make(map[entity.HintKind]string)
	}
	that.quiz.Round.Hints[kind] = value

	return that.charge(cost), nil
}

func (that *Controller) GiveUp() (Result, error) {
	if err := that.quiz.ConfirmRoundActive(); err != nil {
		return Result{}, err
	}

	return that.resolve(false), nil
}

// AlignNorth stops the globe rotation for the price of a wrong guess.
func (that *Controller) AlignNorth() (Result, error) {
	if err := that.quiz.ConfirmRoundActive(); err != nil {
		return Result{}, err
	}

	return that.charge(1), nil
}

func (that *Controller) charge(cost int) Result {
	that.quiz.Round.RemainingPoints -= cost

	if that.quiz.Round.RemainingPoints <= 0 {
		that.quiz.Round.RemainingPoints = 0
		return that.resolve(false)
	}

	return Result{Outcome: OutcomeContinue}
}

func (that *Controller) resolve(correct bool) Result {
	target := that.quiz.Round.Target

	resolution := entity.Resolution{
		Country: target,
		Correct: correct,
	}
	if country, ok := that.catalog.ByName(target); ok {
		resolution.Mesh = country.Mesh
	}

	outcome := OutcomeIncorrect
	if correct {
		outcome = OutcomeCorrect
		that.quiz.Correct++
		that.quiz.Score += that.quiz.Round.RemainingPoints
	} else {
		that.quiz.Incorrect++
	}

	that.quiz.Resolutions = append(that.quiz.Resolutions, resolution)

	// the only error here is the terminal one, reported through Complete
	complete := that.StartNextRound() != nil

	return Result{
		Outcome:    outcome,
		Resolution: &resolution,
		Complete:   complete,
	}
}
