package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	commandNewGame = "n"
	commandQuit    = "q"
)

var errInputClosed = errors.New("input closed")

type gameUseCase interface {
	StartGame(ctx context.Context, name1, name2 string) (entity.GameState, error)
	RestartGame(ctx context.Context, id, name1, name2 string) (entity.GameState, error)
	MakeTurn(ctx context.Context, id string, cell int) (entity.MoveResult, error)
	GetGame(ctx context.Context, id string) (entity.GameState, error)
	EndGame(ctx context.Context, id string) error
}

// Server plays one game at a time over a line based terminal.
type Server struct {
	logger  *slog.Logger
	game    gameUseCase
	players config.Players

	in  *bufio.Scanner
	out io.Writer

	handlers map[string]func(ctx context.Context, state entity.GameState) (entity.GameState, error)
}

func New(logger *slog.Logger, game gameUseCase, players config.Players, in io.Reader, out io.Writer) *Server {
	server := &Server{
		logger:  logger.With("component", "console"),
		game:    game,
		players: players,
		in:      bufio.NewScanner(in),
		out:     out,

		handlers: make(map[string]func(context.Context, entity.GameState) (entity.GameState, error)),
	}

	server.handlers[commandNewGame] = server.handleNewGame

	return server
}

// Start runs the game loop until the input ends, the player quits or ctx is canceled.
func (that *Server) Start(ctx context.Context) error {
	name1, name2, err := that.askNames()
	if errors.Is(err, errInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}

	state, err := that.game.StartGame(ctx, name1, name2)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	defer func() {
		if endErr := that.game.EndGame(context.WithoutCancel(ctx), state.ID); endErr != nil {
			that.logger.Error("failed to end game", "gameID", state.ID, "error", endErr)
		}
	}()

	that.render(state)

	for {
		if err = ctx.Err(); err != nil {
			return nil
		}

		that.prompt(state)

		line, ok := that.readLine()
		if !ok {
			return that.in.Err()
		}

		if line == commandQuit {
			that.printf("Bye!\n")
			return nil
		}

		state, err = that.handleLine(ctx, state, line)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (that *Server) handleLine(ctx context.Context, state entity.GameState, line string) (entity.GameState, error) {
	if handler, ok := that.handlers[line]; ok {
		return handler(ctx, state)
	}

	square, err := strconv.Atoi(line)
	if err != nil {
		that.printf("Type a square number 1-9, %s for a new game or %s to quit.\n", commandNewGame, commandQuit)
		return state, nil
	}

	return that.handleMove(ctx, state, square-1)
}

func (that *Server) handleMove(ctx context.Context, state entity.GameState, cell int) (entity.GameState, error) {
	result, err := that.game.MakeTurn(ctx, state.ID, cell)
	if err != nil {
		msg, ok := messageFor(err)
		if !ok {
			return state, fmt.Errorf("failed to make turn: %w", err)
		}

		that.printf("%s\n", msg)
		return state, nil
	}

	updated, err := that.game.GetGame(ctx, state.ID)
	if err != nil {
		return state, fmt.Errorf("failed to get game: %w", err)
	}

	that.render(updated)

	if result.Outcome.IsFinal() {
		that.printf("%s\n", outcomeMessage(updated))
		that.printf("Type %s for a new game or %s to quit.\n", commandNewGame, commandQuit)
	}

	return updated, nil
}

func (that *Server) handleNewGame(ctx context.Context, state entity.GameState) (entity.GameState, error) {
	name1, name2, err := that.askNames()
	if err != nil {
		return state, err
	}

	restarted, err := that.game.RestartGame(ctx, state.ID, name1, name2)
	if err != nil {
		return state, fmt.Errorf("failed to restart game: %w", err)
	}

	that.render(restarted)

	return restarted, nil
}

// askNames prompts for both names unless the config skips the prompt.
func (that *Server) askNames() (string, string, error) {
	if that.players.SkipNamePrompt {
		return that.players.Player1Name, that.players.Player2Name, nil
	}

	name1, err := that.askName(entity.DefaultPlayer1Name, that.players.Player1Name)
	if err != nil {
		return "", "", err
	}

	name2, err := that.askName(entity.DefaultPlayer2Name, that.players.Player2Name)
	if err != nil {
		return "", "", err
	}

	return name1, name2, nil
}

func (that *Server) askName(label, fallback string) (string, error) {
	if fallback != "" {
		that.printf("%s name [%s]: ", label, fallback)
	} else {
		that.printf("%s name: ", label)
	}

	name, ok := that.readLine()
	if !ok {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read name: %w", err)
		}
		return "", errInputClosed
	}

	if name == "" {
		return fallback, nil
	}

	return name, nil
}

func (that *Server) prompt(state entity.GameState) {
	if state.CurrentPlayer == nil {
		that.printf("> ")
		return
	}

	that.printf("%s (%s), choose a square: ", state.CurrentPlayer.Name, state.CurrentPlayer.Symbol)
}

func (that *Server) render(state entity.GameState) {
	that.printf("%s", renderBoard(state.Board))
}

func (that *Server) readLine() (string, bool) {
	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *Server) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
