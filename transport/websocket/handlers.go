package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
)

const errInternal = "internal error"

// clientErrors are reported to the client as is, anything else is masked.
var clientErrors = []error{
	apperror.ErrGameComplete,
	apperror.ErrRoundNotActive,
	apperror.ErrEmptyGuess,
	apperror.ErrUnknownHint,
	apperror.ErrUnknownMesh,
	apperror.ErrLookupFailed,
	apperror.ErrNotFound,
}

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, "malformed payload")
	}

	playerID := sessionFromContext(ctx)
	if payloadReq.Player != nil && payloadReq.Player.ID != "" {
		playerID = payloadReq.Player.ID
	}

	player, err := that.quizUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to get or create player", "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := Payload{Player: player}

	if player.QuizID != "" {
		result, quizErr := that.quizUseCase.GetQuiz(ctx, player.ID)
		switch {
		case quizErr == nil:
			payloadResp.Quiz = result.Quiz
		case errors.Is(quizErr, apperror.ErrNotFound):
		default:
			log.Error("failed to get quiz", "quizID", player.QuizID, "error", quizErr)
		}
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

func (that *Server) handleNewQuiz(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, _ *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.StartQuiz(ctx, playerID)
	})
}

func (that *Server) handleQuizState(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, _ *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.GetQuiz(ctx, playerID)
	})
}

func (that *Server) handleGuess(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, payload *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.SubmitGuess(ctx, playerID, payload.Guess)
	})
}

func (that *Server) handleHint(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, payload *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.RevealHint(ctx, playerID, payload.Kind)
	})
}

func (that *Server) handleGiveUp(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, _ *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.GiveUp(ctx, playerID)
	})
}

func (that *Server) handleAlignNorth(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	return that.handleAction(ctx, msg, bufrw, func(playerID string, _ *Payload) (*usecase.ActionResult, error) {
		return that.quizUseCase.AlignNorth(ctx, playerID)
	})
}

func (that *Server) handlePick(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handlePick")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, "malformed payload")
	}

	playerID := requestPlayerID(ctx, payloadReq)

	pick, err := that.quizUseCase.Pick(ctx, playerID, payloadReq.Mesh)
	if err != nil {
		log.Warn("failed to pick mesh", "playerID", playerID, "mesh", payloadReq.Mesh, "error", err)
		return that.sendErrorResponse(bufrw, msg.Action, clientErrorMessage(err))
	}

	return that.sendMessage(bufrw, msg.Action, Payload{Pick: pick})
}

// handleAction decodes the request, runs the quiz action and reports the result.
// A rejected action still carries the current quiz snapshot when there is one.
func (that *Server) handleAction(
	ctx context.Context,
	msg *Message,
	bufrw *bufio.ReadWriter,
	action func(playerID string, payload *Payload) (*usecase.ActionResult, error),
) error {
	log := that.logger.With("method", "handleAction", "action", msg.Action)

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.sendErrorResponse(bufrw, msg.Action, "malformed payload")
	}

	playerID := requestPlayerID(ctx, payloadReq)
	log = log.With("playerID", playerID)

	result, err := action(playerID, payloadReq)
	if err != nil {
		log.Warn("quiz action rejected", "error", err)

		payloadResp := Payload{Error: clientErrorMessage(err)}
		if result != nil {
			payloadResp.Quiz = result.Quiz
		}

		return that.sendMessage(bufrw, msg.Action, payloadResp)
	}

	payloadResp := Payload{
		Quiz:       result.Quiz,
		Outcome:    result.Outcome,
		Resolution: result.Resolution,
		Hint:       result.Hint,
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}

// requestPlayerID prefers the player named in the payload over the session cookie.
func requestPlayerID(ctx context.Context, payload *Payload) string {
	if payload.Player != nil && payload.Player.ID != "" {
		return payload.Player.ID
	}

	return sessionFromContext(ctx)
}

func clientErrorMessage(err error) string {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return errInternal
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, errorMsg string) error {
	payload := Payload{Error: errorMsg}
	if err := that.sendMessage(bufrw, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}
