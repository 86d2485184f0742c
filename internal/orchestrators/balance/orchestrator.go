// Package balance implements the orchestrator for game-balance projects:
// project lifecycle, embedded characters and enemies, stat definitions,
// and the character-versus-enemy comparison.
package balance

//go:generate mockgen -destination=mock/mock_service.go -package=balancemock github.com/balanceforge/balance-api/internal/orchestrators/balance Service

import (
	"context"
	"log/slog"

	balanceentities "github.com/balanceforge/balance-api/internal/entities/balance"
	"github.com/balanceforge/balance-api/internal/engine"
	"github.com/balanceforge/balance-api/internal/errors"
	"github.com/balanceforge/balance-api/internal/pkg/clock"
	"github.com/balanceforge/balance-api/internal/pkg/idgen"
	"github.com/balanceforge/balance-api/internal/repositories/project"
)

// Service defines the interface for balance project operations
type Service interface {
	CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error)
	ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error)
	GetProject(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error)

	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	UpdateCharacterLevel(ctx context.Context, input *UpdateCharacterLevelInput) (*UpdateCharacterLevelOutput, error)

	CreateEnemy(ctx context.Context, input *CreateEnemyInput) (*CreateEnemyOutput, error)
	UpdateEnemyLevel(ctx context.Context, input *UpdateEnemyLevelInput) (*UpdateEnemyLevelOutput, error)

	AddStatDefinition(ctx context.Context, input *AddStatDefinitionInput) (*AddStatDefinitionOutput, error)
	UpdateStatDefinition(ctx context.Context, input *UpdateStatDefinitionInput) (*UpdateStatDefinitionOutput, error)
	ListStatDefinitions(ctx context.Context, input *ListStatDefinitionsInput) (*ListStatDefinitionsOutput, error)

	CompareBalance(ctx context.Context, input *CompareBalanceInput) (*CompareBalanceOutput, error)
}

// Config holds the dependencies for the balance orchestrator
type Config struct {
	ProjectRepo project.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProjectRepo == nil {
		vb.RequiredField("ProjectRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	projectRepo project.Repository
	idGen       idgen.Generator
	clock       clock.Clock
}

// NewOrchestrator creates a new balance orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		projectRepo: cfg.ProjectRepo,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
	}, nil
}

// defaultStatDefinitions returns the stat definitions every new project
// is seeded with.
func defaultStatDefinitions() []balanceentities.StatDefinition {
	return []balanceentities.StatDefinition{
		{
			Name:      "health",
			BaseValue: 100,
			Modifiers: []balanceentities.AttributeModifier{
				{Attribute: "constitution", Multiplier: 5.0},
			},
			PerLevelBonus: 10.0,
		},
		{
			Name:      "mana",
			BaseValue: 50,
			Modifiers: []balanceentities.AttributeModifier{
				{Attribute: "intelligence", Multiplier: 3.0},
			},
			PerLevelBonus: 5.0,
		},
		{
			Name:      "power",
			BaseValue: 20,
			Modifiers: []balanceentities.AttributeModifier{
				{Attribute: "strength", Multiplier: 2.0},
			},
			PerLevelBonus: 2.0,
		},
		{
			Name:      "initiative",
			BaseValue: 10,
			Modifiers: []balanceentities.AttributeModifier{
				{Attribute: "dexterity", Multiplier: 1.5},
			},
			PerLevelBonus: 1.0,
		},
	}
}

// mutateProject loads a project, applies mutate, and writes the document
// back. A write that loses the optimistic version race is retried once
// against a fresh read; mutate must therefore be safe to run twice.
func (o *orchestrator) mutateProject(ctx context.Context, projectID string, mutate func(*balanceentities.Project) error) (*balanceentities.Project, error) {
	var lastErr error

	for attempt := 0; attempt < 2; attempt++ {
		getOutput, err := o.projectRepo.Get(ctx, project.GetInput{ID: projectID})
		if err != nil {
			return nil, err
		}

		proj := getOutput.Project
		if err := mutate(proj); err != nil {
			return nil, err
		}

		_, err = o.projectRepo.Update(ctx, project.UpdateInput{Project: proj})
		if err == nil {
			return proj, nil
		}
		if !errors.IsAborted(err) {
			return nil, err
		}

		lastErr = err
		slog.Warn("project update conflicted, retrying",
			"project_id", projectID,
		)
	}

	return nil, lastErr
}

func (o *orchestrator) CreateProject(ctx context.Context, input *CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("project name is required")
	}

	proj := &balanceentities.Project{
		ID:              o.idGen.Generate(),
		Name:            input.Name,
		Description:     input.Description,
		Attributes:      balanceentities.DefaultAttributes(),
		StatDefinitions: defaultStatDefinitions(),
		Characters:      []balanceentities.Character{},
		Enemies:         []balanceentities.Enemy{},
		FeaturesEnabled: balanceentities.DefaultFeatures(),
		CreatedAt:       o.clock.Now().UTC(),
		Version:         1,
	}

	if _, err := o.projectRepo.Create(ctx, project.CreateInput{Project: proj}); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	slog.Info("project created",
		"project_id", proj.ID,
		"name", proj.Name,
	)

	return &CreateProjectOutput{Project: proj}, nil
}

func (o *orchestrator) ListProjects(ctx context.Context, input *ListProjectsInput) (*ListProjectsOutput, error) {
	listOutput, err := o.projectRepo.List(ctx, project.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return &ListProjectsOutput{Projects: listOutput.Projects}, nil
}

func (o *orchestrator) GetProject(ctx context.Context, input *GetProjectInput) (*GetProjectOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}

	getOutput, err := o.projectRepo.Get(ctx, project.GetInput{ID: input.ProjectID})
	if err != nil {
		return nil, err
	}

	return &GetProjectOutput{Project: getOutput.Project}, nil
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("character name is required")
	}

	var created *balanceentities.Character

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		char := balanceentities.Character{
			ID:             o.idGen.Generate(),
			Name:           input.Name,
			Level:          engine.ClampLevel(input.Level),
			BaseAttributes: copyStats(input.BaseAttributes),
			CharacterClass: input.CharacterClass,
		}
		char.CalculatedStats = engine.CharacterStats(char.BaseAttributes, char.Level, proj.StatDefinitions)

		proj.Characters = append(proj.Characters, char)
		created = &proj.Characters[len(proj.Characters)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("character created",
		"project_id", input.ProjectID,
		"character_id", created.ID,
		"level", created.Level,
	)

	return &CreateCharacterOutput{Character: created}, nil
}

func (o *orchestrator) UpdateCharacterLevel(ctx context.Context, input *UpdateCharacterLevelInput) (*UpdateCharacterLevelOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	var newLevel int

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		char := proj.FindCharacter(input.CharacterID)
		if char == nil {
			return errors.NotFoundf("character with ID %s not found", input.CharacterID)
		}

		char.Level = engine.ClampLevel(input.Level)
		char.CalculatedStats = engine.CharacterStats(char.BaseAttributes, char.Level, proj.StatDefinitions)
		newLevel = char.Level
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("character level updated",
		"project_id", input.ProjectID,
		"character_id", input.CharacterID,
		"level", newLevel,
	)

	return &UpdateCharacterLevelOutput{Level: newLevel}, nil
}

func (o *orchestrator) CreateEnemy(ctx context.Context, input *CreateEnemyInput) (*CreateEnemyOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("enemy name is required")
	}

	var created *balanceentities.Enemy

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		enemy := balanceentities.Enemy{
			ID:        o.idGen.Generate(),
			Name:      input.Name,
			EnemyType: input.EnemyType,
			Level:     engine.ClampLevel(input.Level),
			BaseStats: copyStats(input.BaseStats),
			// At creation the calculated stats are the base stats
			// verbatim; the level multiplier only applies on level
			// updates.
			CalculatedStats: copyStats(input.BaseStats),
		}

		proj.Enemies = append(proj.Enemies, enemy)
		created = &proj.Enemies[len(proj.Enemies)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("enemy created",
		"project_id", input.ProjectID,
		"enemy_id", created.ID,
		"enemy_type", created.EnemyType,
	)

	return &CreateEnemyOutput{Enemy: created}, nil
}

func (o *orchestrator) UpdateEnemyLevel(ctx context.Context, input *UpdateEnemyLevelInput) (*UpdateEnemyLevelOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	var newLevel int

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		enemy := proj.FindEnemy(input.EnemyID)
		if enemy == nil {
			return errors.NotFoundf("enemy with ID %s not found", input.EnemyID)
		}

		enemy.Level = engine.ClampLevel(input.Level)
		enemy.CalculatedStats = engine.EnemyStats(enemy.BaseStats, enemy.Level)
		newLevel = enemy.Level
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("enemy level updated",
		"project_id", input.ProjectID,
		"enemy_id", input.EnemyID,
		"level", newLevel,
	)

	return &UpdateEnemyLevelOutput{Level: newLevel}, nil
}

func (o *orchestrator) AddStatDefinition(ctx context.Context, input *AddStatDefinitionInput) (*AddStatDefinitionOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.Definition.Name == "" {
		return nil, errors.InvalidArgument("stat definition name is required")
	}

	var added *balanceentities.StatDefinition

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		// Names are not enforced unique; a duplicate append shadows
		// nothing until an update targets the name.
		proj.StatDefinitions = append(proj.StatDefinitions, input.Definition)
		added = &proj.StatDefinitions[len(proj.StatDefinitions)-1]

		recalculateCharacters(proj)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("stat definition added",
		"project_id", input.ProjectID,
		"name", added.Name,
	)

	return &AddStatDefinitionOutput{Definition: added}, nil
}

func (o *orchestrator) UpdateStatDefinition(ctx context.Context, input *UpdateStatDefinitionInput) (*UpdateStatDefinitionOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("stat definition name is required")
	}

	_, err := o.mutateProject(ctx, input.ProjectID, func(proj *balanceentities.Project) error {
		idx := proj.FindStatDefinition(input.Name)
		if idx < 0 {
			return errors.NotFoundf("stat definition %s not found", input.Name)
		}

		proj.StatDefinitions[idx] = input.Definition

		recalculateCharacters(proj)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("stat definition updated",
		"project_id", input.ProjectID,
		"name", input.Name,
	)

	return &UpdateStatDefinitionOutput{}, nil
}

func (o *orchestrator) ListStatDefinitions(ctx context.Context, input *ListStatDefinitionsInput) (*ListStatDefinitionsOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}

	getOutput, err := o.projectRepo.Get(ctx, project.GetInput{ID: input.ProjectID})
	if err != nil {
		return nil, err
	}

	return &ListStatDefinitionsOutput{Definitions: getOutput.Project.StatDefinitions}, nil
}

func (o *orchestrator) CompareBalance(ctx context.Context, input *CompareBalanceInput) (*CompareBalanceOutput, error) {
	if input.ProjectID == "" {
		return nil, errors.InvalidArgument("project ID is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.EnemyID == "" {
		return nil, errors.InvalidArgument("enemy ID is required")
	}

	getOutput, err := o.projectRepo.Get(ctx, project.GetInput{ID: input.ProjectID})
	if err != nil {
		return nil, err
	}

	proj := getOutput.Project
	char := proj.FindCharacter(input.CharacterID)
	enemy := proj.FindEnemy(input.EnemyID)
	if char == nil || enemy == nil {
		return nil, errors.NotFound("character or enemy not found")
	}

	return &CompareBalanceOutput{
		Character: char,
		Enemy:     enemy,
		Comparison: &Comparison{
			CharacterLevel: char.Level,
			EnemyLevel:     enemy.Level,
			CharacterStats: char.CalculatedStats,
			EnemyStats:     enemy.CalculatedStats,
		},
	}, nil
}

// recalculateCharacters refreshes every character's calculated stats
// against the project's current stat definitions. Any edit to the
// definitions invalidates all cached stats in the project.
func recalculateCharacters(proj *balanceentities.Project) {
	for i := range proj.Characters {
		char := &proj.Characters[i]
		char.CalculatedStats = engine.CharacterStats(char.BaseAttributes, char.Level, proj.StatDefinitions)
	}
}

func copyStats(src map[string]float64) map[string]float64 {
	dst := make(map[string]float64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
