package project

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/balanceforge/balance-api/internal/entities/balance"
	"github.com/balanceforge/balance-api/internal/errors"
	redisclient "github.com/balanceforge/balance-api/internal/redis"
)

const (
	projectKeyPrefix = "project:"
	projectIndexKey  = "project:ids"

	// Upper bound on how many projects a List fetches
	listFetchLimit = 1000

	// Error messages
	errProjectNil     = "project cannot be nil"
	errProjectIDEmpty = "project ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed project repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func projectKey(id string) string {
	return projectKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Project == nil {
		return nil, errors.InvalidArgument(errProjectNil)
	}
	if input.Project.ID == "" {
		return nil, errors.InvalidArgument(errProjectIDEmpty)
	}

	key := projectKey(input.Project.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("project with ID %s already exists", input.Project.ID)
	}

	data, err := json.Marshal(input.Project)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal project")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, projectIndexKey, input.Project.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create project")
	}

	return &CreateOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errProjectIDEmpty)
	}

	result, err := r.client.Get(ctx, projectKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("project with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get project")
	}

	var proj balance.Project
	if err := json.Unmarshal([]byte(result), &proj); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal project")
	}

	return &GetOutput{Project: &proj}, nil
}

// Update replaces the whole project document. The document is watched
// while the stored version is compared against the version the caller
// read; any concurrent write aborts the transaction.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Project == nil {
		return nil, errors.InvalidArgument(errProjectNil)
	}
	if input.Project.ID == "" {
		return nil, errors.InvalidArgument(errProjectIDEmpty)
	}

	key := projectKey(input.Project.ID)
	newVersion := input.Project.Version + 1

	updated := *input.Project
	updated.Version = newVersion

	data, err := json.Marshal(&updated)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal project")
	}

	txErr := r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("project with ID %s not found", input.Project.ID)
			}
			return errors.Wrapf(err, "failed to get project")
		}

		var stored balance.Project
		if err := json.Unmarshal([]byte(current), &stored); err != nil {
			return errors.Wrapf(err, "failed to unmarshal project")
		}

		if stored.Version != input.Project.Version {
			return errors.Abortedf("project %s was modified concurrently (version %d, expected %d)",
				input.Project.ID, stored.Version, input.Project.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}, key)

	if txErr != nil {
		if txErr == redis.TxFailedErr {
			return nil, errors.Abortedf("project %s was modified concurrently", input.Project.ID)
		}
		var coded *errors.Error
		if errors.As(txErr, &coded) {
			return nil, coded
		}
		return nil, errors.Wrapf(txErr, "failed to update project")
	}

	return &UpdateOutput{NewVersion: newVersion}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, projectIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list project IDs")
	}

	if len(ids) > listFetchLimit {
		ids = ids[:listFetchLimit]
	}

	if len(ids) == 0 {
		return &ListOutput{Projects: []*balance.Project{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = projectKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch projects")
	}

	projects := make([]*balance.Project, 0, len(values))
	for _, value := range values {
		// Dangling index entries come back nil; skip them
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var proj balance.Project
		if err := json.Unmarshal([]byte(raw), &proj); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal project")
		}
		projects = append(projects, &proj)
	}

	return &ListOutput{Projects: projects}, nil
}
