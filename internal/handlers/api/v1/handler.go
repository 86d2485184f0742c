// Package v1 exposes the balance service as a JSON REST API.
package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	balanceentities "github.com/balanceforge/balance-api/internal/entities/balance"
	"github.com/balanceforge/balance-api/internal/errors"
	"github.com/balanceforge/balance-api/internal/orchestrators/balance"
)

// HandlerConfig holds the dependencies for the API handler
type HandlerConfig struct {
	BalanceService balance.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BalanceService == nil {
		vb.RequiredField("BalanceService")
	}

	return vb.Build()
}

// Handler serves the balance API routes
type Handler struct {
	service balance.Service
}

// NewHandler creates a new API handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		service: cfg.BalanceService,
	}, nil
}

// RegisterRoutes mounts all API routes on the given router group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.createProject)
	rg.GET("/projects", h.listProjects)
	rg.GET("/projects/:id", h.getProject)

	rg.POST("/projects/:id/characters", h.createCharacter)
	rg.PUT("/projects/:id/characters/:characterId/level", h.updateCharacterLevel)

	rg.POST("/projects/:id/enemies", h.createEnemy)
	rg.PUT("/projects/:id/enemies/:enemyId/level", h.updateEnemyLevel)

	rg.POST("/projects/:id/stats", h.addStatDefinition)
	rg.PUT("/projects/:id/stats/:name", h.updateStatDefinition)
	rg.GET("/projects/:id/stats", h.listStatDefinitions)

	rg.GET("/projects/:id/balance/:characterId/:enemyId", h.compareBalance)
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type modifierRequest struct {
	Attribute  string   `json:"attribute" binding:"required"`
	Multiplier *float64 `json:"multiplier"`
	BaseBonus  float64  `json:"base_bonus"`
}

type statDefinitionRequest struct {
	Name          string            `json:"name" binding:"required"`
	BaseValue     float64           `json:"base_value"`
	Modifiers     []modifierRequest `json:"modifiers"`
	PerLevelBonus float64           `json:"per_level_bonus"`
}

type createCharacterRequest struct {
	Name           string             `json:"name" binding:"required"`
	Level          int                `json:"level"`
	BaseAttributes map[string]float64 `json:"base_attributes" binding:"required"`
	CharacterClass string             `json:"character_class"`
}

type createEnemyRequest struct {
	Name      string             `json:"name" binding:"required"`
	EnemyType string             `json:"enemy_type" binding:"required"`
	Level     int                `json:"level"`
	BaseStats map[string]float64 `json:"base_stats" binding:"required"`
}

type balanceResponse struct {
	Character  *balanceentities.Character `json:"character"`
	Enemy      *balanceentities.Enemy     `json:"enemy"`
	Comparison *balance.Comparison        `json:"comparison"`
}

// toStatDefinition converts a request body into the entity, applying the
// multiplier default of 1.0 when the field was omitted.
func (r *statDefinitionRequest) toStatDefinition() balanceentities.StatDefinition {
	modifiers := make([]balanceentities.AttributeModifier, len(r.Modifiers))
	for i, mod := range r.Modifiers {
		multiplier := 1.0
		if mod.Multiplier != nil {
			multiplier = *mod.Multiplier
		}
		modifiers[i] = balanceentities.AttributeModifier{
			Attribute:  mod.Attribute,
			Multiplier: multiplier,
			BaseBonus:  mod.BaseBonus,
		}
	}

	return balanceentities.StatDefinition{
		Name:          r.Name,
		BaseValue:     r.BaseValue,
		Modifiers:     modifiers,
		PerLevelBonus: r.PerLevelBonus,
	}
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	output, err := h.service.CreateProject(c.Request.Context(), &balance.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Project)
}

func (h *Handler) listProjects(c *gin.Context) {
	output, err := h.service.ListProjects(c.Request.Context(), &balance.ListProjectsInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Projects)
}

func (h *Handler) getProject(c *gin.Context) {
	output, err := h.service.GetProject(c.Request.Context(), &balance.GetProjectInput{
		ProjectID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Project)
}

func (h *Handler) createCharacter(c *gin.Context) {
	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	output, err := h.service.CreateCharacter(c.Request.Context(), &balance.CreateCharacterInput{
		ProjectID:      c.Param("id"),
		Name:           req.Name,
		Level:          req.Level,
		BaseAttributes: req.BaseAttributes,
		CharacterClass: req.CharacterClass,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Character)
}

func (h *Handler) updateCharacterLevel(c *gin.Context) {
	level, err := levelQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	output, err := h.service.UpdateCharacterLevel(c.Request.Context(), &balance.UpdateCharacterLevelInput{
		ProjectID:   c.Param("id"),
		CharacterID: c.Param("characterId"),
		Level:       level,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Character level updated",
		"level":   output.Level,
	})
}

func (h *Handler) createEnemy(c *gin.Context) {
	var req createEnemyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	output, err := h.service.CreateEnemy(c.Request.Context(), &balance.CreateEnemyInput{
		ProjectID: c.Param("id"),
		Name:      req.Name,
		EnemyType: req.EnemyType,
		Level:     req.Level,
		BaseStats: req.BaseStats,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Enemy)
}

func (h *Handler) updateEnemyLevel(c *gin.Context) {
	level, err := levelQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	output, err := h.service.UpdateEnemyLevel(c.Request.Context(), &balance.UpdateEnemyLevelInput{
		ProjectID: c.Param("id"),
		EnemyID:   c.Param("enemyId"),
		Level:     level,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Enemy level updated",
		"level":   output.Level,
	})
}

func (h *Handler) addStatDefinition(c *gin.Context) {
	var req statDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	output, err := h.service.AddStatDefinition(c.Request.Context(), &balance.AddStatDefinitionInput{
		ProjectID:  c.Param("id"),
		Definition: req.toStatDefinition(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Definition)
}

func (h *Handler) updateStatDefinition(c *gin.Context) {
	var req statDefinitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	_, err := h.service.UpdateStatDefinition(c.Request.Context(), &balance.UpdateStatDefinitionInput{
		ProjectID:  c.Param("id"),
		Name:       c.Param("name"),
		Definition: req.toStatDefinition(),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stat definition updated successfully",
	})
}

func (h *Handler) listStatDefinitions(c *gin.Context) {
	output, err := h.service.ListStatDefinitions(c.Request.Context(), &balance.ListStatDefinitionsInput{
		ProjectID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, output.Definitions)
}

func (h *Handler) compareBalance(c *gin.Context) {
	output, err := h.service.CompareBalance(c.Request.Context(), &balance.CompareBalanceInput{
		ProjectID:   c.Param("id"),
		CharacterID: c.Param("characterId"),
		EnemyID:     c.Param("enemyId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{
		Character:  output.Character,
		Enemy:      output.Enemy,
		Comparison: output.Comparison,
	})
}

// levelQuery parses the required "level" query parameter. Clamping to the
// minimum of 1 happens in the orchestrator, not here.
func levelQuery(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("level")
	if !ok {
		return 0, errors.InvalidArgument("level query parameter is required")
	}

	level, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidArgumentf("level must be an integer: %q", raw)
	}

	return level, nil
}

func respondError(c *gin.Context, err error) {
	c.JSON(errors.GetCode(err).HTTPStatus(), gin.H{
		"detail": errors.GetMessage(err),
	})
}

func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"detail": err.Error(),
	})
}
