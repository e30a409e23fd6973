package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager drives any number of games. Calls on the same game are serialized,
// calls on different games run independently.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
		locks:    make(map[string]*sync.Mutex),
	}
}

// StartGame creates a new game with a fresh ID and starts it.
func (that *GameManager) StartGame(ctx context.Context, name1, name2 string) (entity.GameState, error) {
	game := entity.NewGame(uuid.NewString())
	game.Start(name1, name2)

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return entity.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}

	that.locksMu.Lock()
	that.locks[game.ID] = &sync.Mutex{}
	that.locksMu.Unlock()

	state := game.State()
	that.logger.Info("game started", "gameID", game.ID,
		"player1", state.Players[0].Name, "player2", state.Players[1].Name)

	return state, nil
}

// RestartGame discards the state of an existing game and starts it again.
func (that *GameManager) RestartGame(ctx context.Context, id, name1, name2 string) (entity.GameState, error) {
	unlock, err := that.lock(id)
	if err != nil {
		return entity.GameState{}, err
	}
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.GameState{}, err
	}

	game.Start(name1, name2)

	if err = that.updateGame(ctx, game); err != nil {
		return entity.GameState{}, err
	}

	that.logger.Info("game restarted", "gameID", id)

	return game.State(), nil
}

func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (entity.MoveResult, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	unlock, err := that.lock(id)
	if err != nil {
		return entity.MoveResult{}, err
	}
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.MoveResult{}, err
	}

	result, err := game.SubmitMove(cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return entity.MoveResult{}, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return entity.MoveResult{}, err
	}

	log.Debug("move accepted", "symbol", result.Symbol, "turn", result.Turn)

	switch {
	case result.Outcome.IsWin():
		log.Info("game finished", "winner", result.Outcome.Winner)
	case result.Outcome.IsTie():
		log.Info("game finished", "winner", "tie")
	}

	return result, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (entity.GameState, error) {
	unlock, err := that.lock(id)
	if err != nil {
		return entity.GameState{}, err
	}
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.GameState{}, err
	}

	return game.State(), nil
}

func (that *GameManager) GetBoard(ctx context.Context, id string) ([entity.BoardSize]entity.Cell, error) {
	state, err := that.GetGame(ctx, id)
	if err != nil {
		return [entity.BoardSize]entity.Cell{}, err
	}

	return state.Board, nil
}

func (that *GameManager) GetOutcome(ctx context.Context, id string) (entity.Outcome, error) {
	state, err := that.GetGame(ctx, id)
	if err != nil {
		return entity.Outcome{}, err
	}

	return state.Outcome, nil
}

// EndGame abandons the game and forgets it.
func (that *GameManager) EndGame(ctx context.Context, id string) error {
	unlock, err := that.lock(id)
	if err != nil {
		return err
	}
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return err
	}

	game.End()

	if err = that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.locksMu.Lock()
	delete(that.locks, id)
	that.locksMu.Unlock()

	that.logger.Info("game ended", "gameID", id)

	return nil
}

// lock takes the per-game mutex. Only games created by StartGame have one.
func (that *GameManager) lock(id string) (func(), error) {
	that.locksMu.Lock()
	mu, ok := that.locks[id]
	that.locksMu.Unlock()

	if !ok {
		return nil, fmt.Errorf("failed to get game: %w", apperror.ErrGameNotFound)
	}

	mu.Lock()

	return mu.Unlock, nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
