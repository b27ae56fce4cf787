package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/geoquiz-backend/internal/apperror"
	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/quiz"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
	mockedWebsocket "github.com/rocketscienceinc/geoquiz-backend/mocks/websocket"
)

// roundTrip feeds one client message through the server and decodes the reply.
func roundTrip(t *testing.T, ctx context.Context, server *Server, action string, payload any) (Message, Payload) {
	t.Helper()

	rawPayload, err := json.Marshal(payload)
	require.NoError(t, err)

	request, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	require.NoError(t, err)

	input := append(clientFrame(opCodeText, true, request), clientFrame(opCodeClose, true, nil)...)
	bufrw, output := newTestConn(input)

	require.NoError(t, server.handleMessages(ctx, bufrw))

	reply, err := readFrame(bytes.NewReader(output.Bytes()))
	require.NoError(t, err)

	var message Message
	require.NoError(t, json.Unmarshal(reply.payload, &message))

	var payloadResp Payload
	require.NoError(t, json.Unmarshal(message.Payload, &payloadResp))

	return message, payloadResp
}

func activeSnapshot() *entity.Snapshot {
	return &entity.Snapshot{
		ID:              "quiz-1",
		Status:          entity.StatusRoundActive,
		TargetMesh:      "Plane752_Material003_0",
		RemainingPoints: entity.PointsPerRound,
	}
}

func TestHandleConnect(t *testing.T) {
	t.Run("uses session id when payload has no player", func(t *testing.T) {
		// Given
		useCase := mockedWebsocket.NewMockquizUseCase(t)
		useCase.EXPECT().
			GetOrCreatePlayer(mock.Anything, "session-1").
			Return(&entity.Player{ID: "session-1"}, nil)
		ctx := withSession(context.Background(), "session-1")

		// When
		message, payload := roundTrip(t, ctx, newTestServer(useCase), "connect", Payload{})

		// Then
		assert.Equal(t, "connect", message.Action)
		require.NotNil(t, payload.Player)
		assert.Equal(t, "session-1", payload.Player.ID)
		assert.Nil(t, payload.Quiz)
	})

	t.Run("attaches the running quiz", func(t *testing.T) {
		// Given
		useCase := mockedWebsocket.NewMockquizUseCase(t)
		useCase.EXPECT().
			GetOrCreatePlayer(mock.Anything, "p1").
			Return(&entity.Player{ID: "p1", QuizID: "quiz-1"}, nil)
		useCase.EXPECT().
			GetQuiz(mock.Anything, "p1").
			Return(&usecase.ActionResult{Quiz: activeSnapshot()}, nil)

		// When
		_, payload := roundTrip(t, context.Background(), newTestServer(useCase), "connect", Payload{Player: &entity.Player{ID: "p1"}})

		// Then
		require.NotNil(t, payload.Quiz)
		assert.Equal(t, "Plane752_Material003_0", payload.Quiz.TargetMesh)
	})
}

func TestHandleGuess(t *testing.T) {
	t.Run("reports the outcome", func(t *testing.T) {
		// Given
		useCase := mockedWebsocket.NewMockquizUseCase(t)
		resolution := &entity.Resolution{Country: "Canada", Mesh: "Plane752_Material003_0", Correct: true}
		useCase.EXPECT().
			SubmitGuess(mock.Anything, "p1", "canada").
			Return(&usecase.ActionResult{
			Quiz:       activeSnapshot(),
			Outcome:    quiz.OutcomeCorrect,
			Resolution: resolution,
		}, nil)

		// When
		message, payload := roundTrip(t, context.Background(), newTestServer(useCase), "quiz:guess", Payload{
			Player: &entity.Player{ID: "p1"},
			Guess:  "canada",
		})

		// Then
		assert.Equal(t, "quiz:guess", message.Action)
		assert.Equal(t, quiz.OutcomeCorrect, payload.Outcome)
		assert.Equal(t, resolution, payload.Resolution)
		assert.Empty(t, payload.Error)
	})

	t.Run("rejected guess keeps the snapshot", func(t *testing.T) {
		// Given
		useCase := mockedWebsocket.NewMockquizUseCase(t)
		useCase.EXPECT().
			SubmitGuess(mock.Anything, "p1", " ").
			Return(&usecase.ActionResult{Quiz: activeSnapshot()}, apperror.ErrEmptyGuess)

		// When
		_, payload := roundTrip(t, context.Background(), newTestServer(useCase), "quiz:guess", Payload{
			Player: &entity.Player{ID: "p1"},
			Guess:  " ",
		})

		// Then
		assert.Equal(t, apperror.ErrEmptyGuess.Error(), payload.Error)
		require.NotNil(t, payload.Quiz)
		assert.Equal(t, entity.PointsPerRound, payload.Quiz.RemainingPoints)
	})
}

func TestHandleHint_MasksInternalErrors(t *testing.T) {
	// Given
	useCase := mockedWebsocket.NewMockquizUseCase(t)
	useCase.EXPECT().
		RevealHint(mock.Anything, "p1", entity.HintCapital).
		Return(nil, errors.New("redis: connection refused"))

	// When
	_, payload := roundTrip(t, context.Background(), newTestServer(useCase), "quiz:hint", Payload{
		Player: &entity.Player{ID: "p1"},
		Kind:   entity.HintCapital,
	})

	// Then
	assert.Equal(t, errInternal, payload.Error)
	assert.Nil(t, payload.Quiz)
}

func TestHandlePick(t *testing.T) {
	// Given
	useCase := mockedWebsocket.NewMockquizUseCase(t)
	useCase.EXPECT().
		Pick(mock.Anything, "p1", "Plane550_Material003_0").
		Return(&usecase.PickResult{
		Mesh:        "Plane550_Material003_0",
		VisualState: entity.VisualCorrect,
		Country:     "France",
	}, nil)

	// When
	_, payload := roundTrip(t, context.Background(), newTestServer(useCase), "quiz:pick", Payload{
		Player: &entity.Player{ID: "p1"},
		Mesh:   "Plane550_Material003_0",
	})

	// Then
	require.NotNil(t, payload.Pick)
	assert.Equal(t, "France", payload.Pick.Country)
}

func TestHandleMessages_UnknownAction(t *testing.T) {
	// Given
	server := newTestServer(mockedWebsocket.NewMockquizUseCase(t))

	// When
	message, payload := roundTrip(t, context.Background(), server, "game:turn", Payload{})

	// Then
	assert.Equal(t, "game:turn", message.Action)
	assert.Equal(t, "unknown action", payload.Error)
}
