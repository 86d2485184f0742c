package balance

import (
	balanceentities "github.com/balanceforge/balance-api/internal/entities/balance"
)

// CreateProjectInput defines the request for creating a project
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateProjectOutput defines the response for creating a project
type CreateProjectOutput struct {
	Project *balanceentities.Project
}

// ListProjectsInput defines the request for listing projects
type ListProjectsInput struct{}

// ListProjectsOutput defines the response for listing projects
type ListProjectsOutput struct {
	Projects []*balanceentities.Project
}

// GetProjectInput defines the request for retrieving a project
type GetProjectInput struct {
	ProjectID string
}

// GetProjectOutput defines the response for retrieving a project
type GetProjectOutput struct {
	Project *balanceentities.Project
}

// CreateCharacterInput defines the request for adding a character to a project
type CreateCharacterInput struct {
	ProjectID      string
	Name           string
	Level          int
	BaseAttributes map[string]float64
	CharacterClass string
}

// CreateCharacterOutput defines the response for adding a character
type CreateCharacterOutput struct {
	Character *balanceentities.Character
}

// UpdateCharacterLevelInput defines the request for changing a character's level
type UpdateCharacterLevelInput struct {
	ProjectID   string
	CharacterID string
	Level       int
}

// UpdateCharacterLevelOutput defines the response for changing a character's level
type UpdateCharacterLevelOutput struct {
	// Level is the level as stored, after clamping
	Level int
}

// CreateEnemyInput defines the request for adding an enemy to a project
type CreateEnemyInput struct {
	ProjectID string
	Name      string
	EnemyType string
	Level     int
	BaseStats map[string]float64
}

// CreateEnemyOutput defines the response for adding an enemy
type CreateEnemyOutput struct {
	Enemy *balanceentities.Enemy
}

// UpdateEnemyLevelInput defines the request for changing an enemy's level
type UpdateEnemyLevelInput struct {
	ProjectID string
	EnemyID   string
	Level     int
}

// UpdateEnemyLevelOutput defines the response for changing an enemy's level
type UpdateEnemyLevelOutput struct {
	Level int
}

// AddStatDefinitionInput defines the request for appending a stat definition
type AddStatDefinitionInput struct {
	ProjectID  string
	Definition balanceentities.StatDefinition
}

// AddStatDefinitionOutput defines the response for appending a stat definition
type AddStatDefinitionOutput struct {
	Definition *balanceentities.StatDefinition
}

// UpdateStatDefinitionInput defines the request for replacing a stat definition
type UpdateStatDefinitionInput struct {
	ProjectID  string
	Name       string
	Definition balanceentities.StatDefinition
}

// UpdateStatDefinitionOutput defines the response for replacing a stat definition
type UpdateStatDefinitionOutput struct{}

// ListStatDefinitionsInput defines the request for listing a project's stat definitions
type ListStatDefinitionsInput struct {
	ProjectID string
}

// ListStatDefinitionsOutput defines the response for listing stat definitions
type ListStatDefinitionsOutput struct {
	Definitions []balanceentities.StatDefinition
}

// Comparison pairs a character's and an enemy's current levels and stats
type Comparison struct {
	CharacterLevel int                `json:"character_level"`
	EnemyLevel     int                `json:"enemy_level"`
	CharacterStats map[string]float64 `json:"character_stats"`
	EnemyStats     map[string]float64 `json:"enemy_stats"`
}

// CompareBalanceInput defines the request for comparing a character against an enemy
type CompareBalanceInput struct {
	ProjectID   string
	CharacterID string
	EnemyID     string
}

// CompareBalanceOutput defines the response for a balance comparison
type CompareBalanceOutput struct {
	Character  *balanceentities.Character
	Enemy      *balanceentities.Enemy
	Comparison *Comparison
}
