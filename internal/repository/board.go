package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const boardKeyPrefix = "board:"

type BoardRepository interface {
	CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbBoard struct {
	client *redis.Client
}

func NewBoardRepository(client *redis.Client) BoardRepository {
	return &dbBoard{
		client: client,
	}
}

func (that *dbBoard) CreateOrUpdate(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	err = that.client.Set(ctx, boardKeyPrefix+snapshot.ID, snapshotJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set board: %w", err)
	}

	return nil
}

func (that *dbBoard) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, boardKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrBoardNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get board by id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	return &snapshot, nil
}

func (that *dbBoard) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, boardKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to delete board by id: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrBoardNotFound
	}

	return nil
}
