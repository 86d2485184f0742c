package project_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/balanceforge/balance-api/internal/entities/balance"
	"github.com/balanceforge/balance-api/internal/errors"
	redisclient "github.com/balanceforge/balance-api/internal/redis"
	"github.com/balanceforge/balance-api/internal/repositories/project"
	"github.com/balanceforge/balance-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	client  redisclient.Client
	cleanup func()
	repo    project.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.cleanup = testutils.CreateTestRedisClient(s.T())
	s.repo = project.NewRedisRepository(s.client)
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newTestProject(id string) *balance.Project {
	return &balance.Project{
		ID:          id,
		Name:        "Test Project",
		Description: "balancing sandbox",
		Attributes:  balance.DefaultAttributes(),
		StatDefinitions: []balance.StatDefinition{
			{
				Name:      "health",
				BaseValue: 100,
				Modifiers: []balance.AttributeModifier{
					{Attribute: "constitution", Multiplier: 5.0},
				},
				PerLevelBonus: 10.0,
			},
		},
		Characters:      []balance.Character{},
		Enemies:         []balance.Enemy{},
		FeaturesEnabled: balance.DefaultFeatures(),
		CreatedAt:       time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
		Version:         1,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	proj := s.newTestProject("proj_1")

	_, err := s.repo.Create(s.ctx, project.CreateInput{Project: proj})
	s.Require().NoError(err)

	getOutput, err := s.repo.Get(s.ctx, project.GetInput{ID: "proj_1"})
	s.Require().NoError(err)
	s.Equal(proj, getOutput.Project)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	s.Run("nil project", func() {
		output, err := s.repo.Create(s.ctx, project.CreateInput{Project: nil})
		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty ID", func() {
		output, err := s.repo.Create(s.ctx, project.CreateInput{Project: &balance.Project{}})
		s.Error(err)
		s.Nil(output)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	proj := s.newTestProject("proj_1")

	_, err := s.repo.Create(s.ctx, project.CreateInput{Project: proj})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, project.CreateInput{Project: proj})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	output, err := s.repo.Get(s.ctx, project.GetInput{ID: "missing"})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "missing")
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	proj := s.newTestProject("proj_1")

	_, err := s.repo.Create(s.ctx, project.CreateInput{Project: proj})
	s.Require().NoError(err)

	proj.Name = "Renamed Project"
	updateOutput, err := s.repo.Update(s.ctx, project.UpdateInput{Project: proj})
	s.Require().NoError(err)
	s.Equal(int64(2), updateOutput.NewVersion)

	getOutput, err := s.repo.Get(s.ctx, project.GetInput{ID: "proj_1"})
	s.Require().NoError(err)
	s.Equal("Renamed Project", getOutput.Project.Name)
	s.Equal(int64(2), getOutput.Project.Version)
}

func (s *RedisRepositoryTestSuite) TestUpdateVersionConflict() {
	proj := s.newTestProject("proj_1")

	_, err := s.repo.Create(s.ctx, project.CreateInput{Project: proj})
	s.Require().NoError(err)

	// First writer moves the document to version 2.
	first := *proj
	first.Name = "First Writer"
	_, err = s.repo.Update(s.ctx, project.UpdateInput{Project: &first})
	s.Require().NoError(err)

	// Second writer still holds version 1 and must lose.
	stale := *proj
	stale.Name = "Second Writer"
	output, err := s.repo.Update(s.ctx, project.UpdateInput{Project: &stale})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsAborted(err))

	getOutput, err := s.repo.Get(s.ctx, project.GetInput{ID: "proj_1"})
	s.Require().NoError(err)
	s.Equal("First Writer", getOutput.Project.Name)
}

func (s *RedisRepositoryTestSuite) TestUpdateNotFound() {
	proj := s.newTestProject("missing")

	output, err := s.repo.Update(s.ctx, project.UpdateInput{Project: proj})
	s.Error(err)
	s.Nil(output)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestList() {
	s.Run("empty", func() {
		output, err := s.repo.List(s.ctx, project.ListInput{})
		s.Require().NoError(err)
		s.Empty(output.Projects)
	})

	s.Run("returns all projects", func() {
		_, err := s.repo.Create(s.ctx, project.CreateInput{Project: s.newTestProject("proj_1")})
		s.Require().NoError(err)
		_, err = s.repo.Create(s.ctx, project.CreateInput{Project: s.newTestProject("proj_2")})
		s.Require().NoError(err)

		output, err := s.repo.List(s.ctx, project.ListInput{})
		s.Require().NoError(err)
		s.Len(output.Projects, 2)

		ids := map[string]bool{}
		for _, proj := range output.Projects {
			ids[proj.ID] = true
		}
		s.True(ids["proj_1"])
		s.True(ids["proj_2"])
	})

	s.Run("skips dangling index entries", func() {
		err := s.client.SAdd(s.ctx, "project:ids", "ghost").Err()
		s.Require().NoError(err)

		output, err := s.repo.List(s.ctx, project.ListInput{})
		s.Require().NoError(err)
		for _, proj := range output.Projects {
			s.NotEqual("ghost", proj.ID)
		}
	})
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
