package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/connectfour/internal/board"
	"github.com/rocketscienceinc/connectfour/internal/config"
	"github.com/rocketscienceinc/connectfour/internal/repository"
	"github.com/rocketscienceinc/connectfour/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour/internal/usecase"
)

const notice = "You implement the gameplay yourself! :)"

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	boardRepo := repository.NewBoardRepository(redisStorage.Connection)
	manager := usecase.NewBoardManager(logger, boardRepo)

	return seedBoard(ctx, log, manager, conf.Board, os.Stdout)
}

// seedBoard - stores an empty board of the configured size and prints it
// together with the notice that the game loop belongs to the caller.
func seedBoard(ctx context.Context, log *slog.Logger, manager *usecase.BoardManager, settings config.Board, out io.Writer) error {
	snapshot, err := manager.CreateBoard(ctx, settings.Width, settings.Height, settings.Streak)
	if err != nil {
		return fmt.Errorf("failed to seed board: %w", err)
	}

	b := snapshot.Board()

	var rendered strings.Builder
	if err = b.Display(&rendered, board.StyleSymbolic); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	log.Info("board ready",
		"board_id", snapshot.ID,
		"next_player", int(b.NextPlayer()),
		"state", b.GameOver().String(),
	)

	if _, err = fmt.Fprintf(out, "%s%s\n", rendered.String(), notice); err != nil {
		return fmt.Errorf("failed to write notice: %w", err)
	}

	return nil
}
