package entity

import (
	"fmt"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
)

const (
	StatusIdle        = "idle"
	StatusRoundActive = "round_active"
	StatusComplete    = "complete"
)

// PointsPerRound is the budget every round starts with.
const PointsPerRound = 10

type HintKind string

const (
	HintPopulation HintKind = "population"
	HintArea       HintKind = "area"
	HintCapital    HintKind = "capital"
)

var hintCosts = map[HintKind]int{
	HintPopulation: 1,
	HintArea:       1,
	HintCapital:    3,
}

// Cost returns the point cost of the hint kind.
func (that HintKind) Cost() (int, error) {
	cost, ok := hintCosts[that]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownHint, string(that))
	}

	return cost, nil
}

// Visual states the scene applies to a mesh.
const (
	VisualHidden      = "hidden"
	VisualHighlighted = "highlighted"
	VisualCorrect     = "correct"
	VisualIncorrect   = "incorrect"
)

type Round struct {
	Target          string              `json:"target,omitempty"`
	RemainingPoints int                 `json:"remaining_points"`
	Hints           map[HintKind]string `json:"hints,omitempty"`
}

// HintRevealed reports whether the hint kind was already charged this round.
func (that *Round) HintRevealed(kind HintKind) bool {
	_, ok := that.Hints[kind]
	return ok
}

type Resolution struct {
	Country string `json:"country"`
	Mesh    string `json:"mesh"`
	Correct bool   `json:"correct"`
}

// Quiz is the persisted aggregate of one player's game.
type Quiz struct {
	ID          string       `json:"id"`
	PlayerID    string       `json:"player_id"`
	Status      string       `json:"status"`
	Pool        []string     `json:"pool"`
	Round       Round        `json:"round"`
	Correct     int          `json:"correct"`
	Incorrect   int          `json:"incorrect"`
	Score       int          `json:"score"`
	Resolutions []Resolution `json:"resolutions,omitempty"`
}

func NewQuiz(id, playerID string, countries []string) *Quiz {
	pool := make([]string, len(countries))
	copy(pool, countries)

	return &Quiz{
		ID:       id,
		PlayerID: playerID,
		Status:   StatusIdle,
		Pool:     pool,
	}
}

func (that *Quiz) IsIdle() bool {
	return that.Status == StatusIdle
}

func (that *Quiz) IsRoundActive() bool {
	return that.Status == StatusRoundActive
}

func (that *Quiz) IsComplete() bool {
	return that.Status == StatusComplete
}

func (that *Quiz) ConfirmRoundActive() error {
	switch that.Status {
	case StatusRoundActive:
		return nil
	case StatusComplete:
		return apperror.ErrGameComplete
	case StatusIdle:
		return apperror.ErrRoundNotActive
	default:
		return fmt.Errorf("%w: unknown status %q", apperror.ErrRoundNotActive, that.Status)
	}
}

// LastResolution returns the most recently resolved target, if any.
func (that *Quiz) LastResolution() *Resolution {
	if len(that.Resolutions) == 0 {
		return nil
	}

	last := that.Resolutions[len(that.Resolutions)-1]
	return &last
}

// Snapshot is what the presentation side sees. It never carries the name of the active target.
type Snapshot struct {
	ID                 string              `json:"id"`
	Status             string              `json:"status"`
	TargetMesh         string              `json:"target_mesh,omitempty"`
	RemainingPoints    int                 `json:"remaining_points"`
	Correct            int                 `json:"correct"`
	Incorrect          int                 `json:"incorrect"`
	Score              int                 `json:"score"`
	RemainingCountries int                 `json:"remaining_countries"`
	Hints              map[HintKind]string `json:"hints,omitempty"`
	LastResolution     *Resolution         `json:"last_resolution,omitempty"`
	VisualStates       map[string]string   `json:"visual_states"`
}

// Snapshot builds the presentation view using the catalog for mesh names.
func (that *Quiz) Snapshot(catalog *Catalog) *Snapshot {
	snapshot := &Snapshot{
		ID:                 that.ID,
		Status:             that.Status,
		RemainingPoints:    that.Round.RemainingPoints,
		Correct:            that.Correct,
		Incorrect:          that.Incorrect,
		Score:              that.Score,
		RemainingCountries: len(that.Pool),
		LastResolution:     that.LastResolution(),
		VisualStates:       make(map[string]string),
	}

	if len(that.Round.Hints) > 0 {
		snapshot.Hints = make(map[HintKind]string, len(that.Round.Hints))
		for kind, value := range that.Round.Hints {
			snapshot.Hints[kind] = value
		}
	}

	for _, name := range that.Pool {
		if country, ok := catalog.ByName(name); ok {
			snapshot.VisualStates[country.Mesh] = VisualHidden
		}
	}

	for _, resolution := range that.Resolutions {
		if resolution.Correct {
			snapshot.VisualStates[resolution.Mesh] = VisualCorrect
		} else {
			snapshot.VisualStates[resolution.Mesh] = VisualIncorrect
		}
	}

	if that.IsRoundActive() {
		if country, ok := catalog.ByName(that.Round.Target); ok {
			snapshot.TargetMesh = country.Mesh
			snapshot.VisualStates[country.Mesh] = VisualHighlighted
		}
	}

	return snapshot
}
