package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rocketscienceinc/geoquiz-backend/internal/entity"
	"github.com/rocketscienceinc/geoquiz-backend/internal/pkg"
	"github.com/rocketscienceinc/geoquiz-backend/internal/usecase"
)

const (
	sessionCookieName = "user_session"
	actionError       = "error"
)

type quizUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	StartQuiz(ctx context.Context, playerID string) (*usecase.ActionResult, error)
	GetQuiz(ctx context.Context, playerID string) (*usecase.ActionResult, error)

	SubmitGuess(ctx context.Context, playerID, guess string) (*usecase.ActionResult, error)
	RevealHint(ctx context.Context, playerID string, kind entity.HintKind) (*usecase.ActionResult, error)
	GiveUp(ctx context.Context, playerID string) (*usecase.ActionResult, error)
	AlignNorth(ctx context.Context, playerID string) (*usecase.ActionResult, error)
	Pick(ctx context.Context, playerID, mesh string) (*usecase.PickResult, error)
}

type handlerFunc func(ctx context.Context, message *Message, bufrw *bufio.ReadWriter) error

type Server struct {
	logger      *slog.Logger
	quizUseCase quizUseCase

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, quizUseCase quizUseCase) *Server {
	server := &Server{
		logger:      logger,
		quizUseCase: quizUseCase,

		handlers: make(map[string]handlerFunc),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["quiz:new"] = server.handleNewQuiz
	server.handlers["quiz:state"] = server.handleQuizState
	server.handlers["quiz:guess"] = server.handleGuess
	server.handlers["quiz:hint"] = server.handleHint
	server.handlers["quiz:give_up"] = server.handleGiveUp
	server.handlers["quiz:align_north"] = server.handleAlignNorth
	server.handlers["quiz:pick"] = server.handlePick

	return server
}

// Start - starts WebSocket server. It stops when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if !strings.EqualFold(req.Header.Get("Upgrade"), "websocket") {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	if key == "" {
		http.Error(writer, "missing Sec-WebSocket-Key", http.StatusBadRequest)
		return
	}

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking")
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	sessionID, cookie := sessionFromRequest(req)

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	if err = writeHandshake(bufrw.Writer, pkg.GenerateAcceptKey(key), cookie); err != nil {
		log.Error("failed to write handshake", "error", err)
		return
	}

	log.Info("WebSocket connection established", "session", sessionID)

	if err = that.handleMessages(withSession(ctx, sessionID), bufrw); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

func writeHandshake(writer *bufio.Writer, acceptKey string, cookie *http.Cookie) error {
	var response strings.Builder

	response.WriteString("HTTP/1.1 101 Switching Protocols\r\n")
	response.WriteString("Upgrade: websocket\r\n")
	response.WriteString("Connection: Upgrade\r\n")
	response.WriteString("Sec-WebSocket-Accept: " + acceptKey + "\r\n")
	if cookie != nil {
		response.WriteString("Set-Cookie: " + cookie.String() + "\r\n")
	}
	response.WriteString("\r\n")

	if _, err := writer.WriteString(response.String()); err != nil {
		return fmt.Errorf("failed to write handshake: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush handshake: %w", err)
	}

	return nil
}

// handleMessages - processes messages from the client until it goes away.
func (that *Server) handleMessages(ctx context.Context, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMessages")

	for {
		if ctx.Err() != nil {
			return nil
		}

		reqBody, err := that.readRequest(bufrw)
		if errors.Is(err, errConnectionClosed) || errors.Is(err, io.EOF) {
			log.Info("client disconnected")
			return nil
		}

		if err != nil {
			return err
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			if err = that.sendErrorResponse(bufrw, actionError, "malformed message"); err != nil {
				return err
			}
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			if err = that.sendErrorResponse(bufrw, message.Action, "unknown action"); err != nil {
				return err
			}
			continue
		}

		if err = handler(ctx, &message, bufrw); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

type sessionKey struct{}

func withSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

func sessionFromContext(ctx context.Context) string {
	sessionID, _ := ctx.Value(sessionKey{}).(string)
	return sessionID
}

// sessionFromRequest returns the session id of the client and a cookie to set when it had none.
func sessionFromRequest(req *http.Request) (string, *http.Cookie) {
	if cookie, err := req.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookieName,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}

	return cookie.Value, cookie
}
