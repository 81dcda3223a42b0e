package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/board"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/entity"
	"github.com/rocketscienceinc/connectfour/internal/pkg"
)

type boardRepo interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

// BoardManager - drives stored boards one move at a time. Turn order is
// inferred from the board itself, nothing else is tracked.
type BoardManager struct {
	logger    *slog.Logger
	boardRepo boardRepo
}

func NewBoardManager(logger *slog.Logger, boardRepo boardRepo) *BoardManager {
	return &BoardManager{
		logger:    logger,
		boardRepo: boardRepo,
	}
}

func (that *BoardManager) CreateBoard(ctx context.Context, width, height, streak int) (*entity.Snapshot, error) {
	settings := config.Board{Width: width, Height: height, Streak: streak}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	snapshot := entity.NewSnapshot(pkg.GenerateBoardID(), board.New(width, height, streak))

	if err := that.boardRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	that.logger.Debug("board created", "board_id", snapshot.ID, "width", width, "height", height, "streak", streak)

	return snapshot, nil
}

func (that *BoardManager) GetBoard(ctx context.Context, id string) (*board.Board, error) {
	snapshot, err := that.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if err = snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("failed to restore board %s: %w", id, err)
	}

	return snapshot.Board(), nil
}

// DropPiece - drops the next player's piece into column and stores the result.
func (that *BoardManager) DropPiece(ctx context.Context, id string, column int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "DropPiece", "board_id", id)

	snapshot, err := that.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if err = snapshot.Validate(); err != nil {
		log.Error("stored board is malformed", "error", err)
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	b := snapshot.Board()
	if b.IsWinner(board.Player1) && b.IsWinner(board.Player2) {
		log.Warn("both players have a winning run, stored board is invalid")
	}

	if state := b.GameOver(); state.IsOver() {
		return snapshot, fmt.Errorf("%w: %s", apperror.ErrGameFinished, state)
	}

	player := b.NextPlayer()

	placed, err := b.AddPiece(column, player)
	if err != nil {
		return nil, fmt.Errorf("failed to add piece: %w", err)
	}

	if !placed {
		return snapshot, fmt.Errorf("%w: column %d", apperror.ErrColumnFull, column)
	}

	snapshot.Update(b)

	if err = that.boardRepo.CreateOrUpdate(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to update board: %w", err)
	}

	log.Debug("piece dropped", "player", int(player), "column", column, "state", snapshot.State.String())

	return snapshot, nil
}

func (that *BoardManager) DeleteBoard(ctx context.Context, id string) error {
	if err := that.boardRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}
