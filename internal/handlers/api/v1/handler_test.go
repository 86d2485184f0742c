package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	balanceentities "github.com/balanceforge/balance-api/internal/entities/balance"
	"github.com/balanceforge/balance-api/internal/errors"
	v1 "github.com/balanceforge/balance-api/internal/handlers/api/v1"
	"github.com/balanceforge/balance-api/internal/orchestrators/balance"
	balancemock "github.com/balanceforge/balance-api/internal/orchestrators/balance/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *balancemock.MockService
	router      *gin.Engine
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.mockService = balancemock.NewMockService(s.ctrl)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		BalanceService: s.mockService,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router.Group("/api"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

func (s *HandlerTestSuite) decode(recorder *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestCreateProject() {
	s.mockService.EXPECT().
		CreateProject(gomock.Any(), &balance.CreateProjectInput{
			Name:        "My Game",
			Description: "test",
		}).
		Return(&balance.CreateProjectOutput{
			Project: &balanceentities.Project{ID: "proj_1", Name: "My Game"},
		}, nil)

	recorder := s.request(http.MethodPost, "/api/projects", gin.H{
		"name":        "My Game",
		"description": "test",
	})

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	s.Equal("proj_1", body["id"])
	s.Equal("My Game", body["name"])
}

func (s *HandlerTestSuite) TestCreateProjectMissingName() {
	recorder := s.request(http.MethodPost, "/api/projects", gin.H{
		"description": "no name",
	})

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(s.decode(recorder), "detail")
}

func (s *HandlerTestSuite) TestGetProjectNotFound() {
	s.mockService.EXPECT().
		GetProject(gomock.Any(), &balance.GetProjectInput{ProjectID: "missing"}).
		Return(nil, errors.NotFoundf("project with ID %s not found", "missing"))

	recorder := s.request(http.MethodGet, "/api/projects/missing", nil)

	s.Equal(http.StatusNotFound, recorder.Code)
	body := s.decode(recorder)
	s.Contains(body["detail"], "missing")
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	attrs := map[string]float64{"strength": 15, "constitution": 14}

	s.mockService.EXPECT().
		CreateCharacter(gomock.Any(), &balance.CreateCharacterInput{
			ProjectID:      "proj_1",
			Name:           "Hero",
			Level:          1,
			BaseAttributes: attrs,
			CharacterClass: "warrior",
		}).
		Return(&balance.CreateCharacterOutput{
			Character: &balanceentities.Character{
				ID:              "char_1",
				Name:            "Hero",
				Level:           1,
				BaseAttributes:  attrs,
				CalculatedStats: map[string]float64{"health": 170},
				CharacterClass:  "warrior",
			},
		}, nil)

	recorder := s.request(http.MethodPost, "/api/projects/proj_1/characters", gin.H{
		"name":            "Hero",
		"level":           1,
		"base_attributes": attrs,
		"character_class": "warrior",
	})

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	s.Equal("char_1", body["id"])

	stats, ok := body["calculated_stats"].(map[string]any)
	s.Require().True(ok)
	s.Equal(170.0, stats["health"])
}

func (s *HandlerTestSuite) TestUpdateCharacterLevel() {
	s.mockService.EXPECT().
		UpdateCharacterLevel(gomock.Any(), &balance.UpdateCharacterLevelInput{
			ProjectID:   "proj_1",
			CharacterID: "char_1",
			Level:       5,
		}).
		Return(&balance.UpdateCharacterLevelOutput{Level: 5}, nil)

	recorder := s.request(http.MethodPut, "/api/projects/proj_1/characters/char_1/level?level=5", nil)

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	s.Equal("Character level updated", body["message"])
	s.Equal(5.0, body["level"])
}

func (s *HandlerTestSuite) TestUpdateCharacterLevelMissingQuery() {
	recorder := s.request(http.MethodPut, "/api/projects/proj_1/characters/char_1/level", nil)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Contains(s.decode(recorder)["detail"], "level")
}

func (s *HandlerTestSuite) TestUpdateCharacterLevelConflict() {
	s.mockService.EXPECT().
		UpdateCharacterLevel(gomock.Any(), gomock.Any()).
		Return(nil, errors.Aborted("project proj_1 was modified concurrently"))

	recorder := s.request(http.MethodPut, "/api/projects/proj_1/characters/char_1/level?level=5", nil)

	s.Equal(http.StatusConflict, recorder.Code)
}

func (s *HandlerTestSuite) TestCreateEnemy() {
	baseStats := map[string]float64{"health": 80, "power": 25}

	s.mockService.EXPECT().
		CreateEnemy(gomock.Any(), &balance.CreateEnemyInput{
			ProjectID: "proj_1",
			Name:      "Goblin",
			EnemyType: "humanoid",
			Level:     1,
			BaseStats: baseStats,
		}).
		Return(&balance.CreateEnemyOutput{
			Enemy: &balanceentities.Enemy{
				ID:              "enemy_1",
				Name:            "Goblin",
				EnemyType:       "humanoid",
				Level:           1,
				BaseStats:       baseStats,
				CalculatedStats: baseStats,
			},
		}, nil)

	recorder := s.request(http.MethodPost, "/api/projects/proj_1/enemies", gin.H{
		"name":       "Goblin",
		"enemy_type": "humanoid",
		"level":      1,
		"base_stats": baseStats,
	})

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("enemy_1", s.decode(recorder)["id"])
}

func (s *HandlerTestSuite) TestUpdateEnemyLevel() {
	s.mockService.EXPECT().
		UpdateEnemyLevel(gomock.Any(), &balance.UpdateEnemyLevelInput{
			ProjectID: "proj_1",
			EnemyID:   "enemy_1",
			Level:     3,
		}).
		Return(&balance.UpdateEnemyLevelOutput{Level: 3}, nil)

	recorder := s.request(http.MethodPut, "/api/projects/proj_1/enemies/enemy_1/level?level=3", nil)

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)
	s.Equal("Enemy level updated", body["message"])
	s.Equal(3.0, body["level"])
}

func (s *HandlerTestSuite) TestAddStatDefinitionDefaultsMultiplier() {
	s.mockService.EXPECT().
		AddStatDefinition(gomock.Any(), &balance.AddStatDefinitionInput{
			ProjectID: "proj_1",
			Definition: balanceentities.StatDefinition{
				Name:      "defense",
				BaseValue: 5,
				Modifiers: []balanceentities.AttributeModifier{
					// Multiplier omitted in the request defaults to 1.0
					{Attribute: "constitution", Multiplier: 1.0},
				},
				PerLevelBonus: 1.0,
			},
		}).
		Return(&balance.AddStatDefinitionOutput{
			Definition: &balanceentities.StatDefinition{Name: "defense"},
		}, nil)

	recorder := s.request(http.MethodPost, "/api/projects/proj_1/stats", gin.H{
		"name":       "defense",
		"base_value": 5,
		"modifiers": []gin.H{
			{"attribute": "constitution"},
		},
		"per_level_bonus": 1.0,
	})

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("defense", s.decode(recorder)["name"])
}

func (s *HandlerTestSuite) TestUpdateStatDefinition() {
	s.mockService.EXPECT().
		UpdateStatDefinition(gomock.Any(), gomock.Any()).
		Return(&balance.UpdateStatDefinitionOutput{}, nil)

	recorder := s.request(http.MethodPut, "/api/projects/proj_1/stats/health", gin.H{
		"name":       "health",
		"base_value": 200,
	})

	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("Stat definition updated successfully", s.decode(recorder)["message"])
}

func (s *HandlerTestSuite) TestUpdateStatDefinitionNotFound() {
	s.mockService.EXPECT().
		UpdateStatDefinition(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("stat definition %s not found", "luck"))

	recorder := s.request(http.MethodPut, "/api/projects/proj_1/stats/luck", gin.H{
		"name": "luck",
	})

	s.Equal(http.StatusNotFound, recorder.Code)
}

func (s *HandlerTestSuite) TestListStatDefinitions() {
	s.mockService.EXPECT().
		ListStatDefinitions(gomock.Any(), &balance.ListStatDefinitionsInput{ProjectID: "proj_1"}).
		Return(&balance.ListStatDefinitionsOutput{
			Definitions: []balanceentities.StatDefinition{
				{Name: "health", BaseValue: 100},
				{Name: "mana", BaseValue: 50},
			},
		}, nil)

	recorder := s.request(http.MethodGet, "/api/projects/proj_1/stats", nil)

	s.Equal(http.StatusOK, recorder.Code)

	var defs []map[string]any
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &defs))
	s.Len(defs, 2)
	s.Equal("health", defs[0]["name"])
}

func (s *HandlerTestSuite) TestCompareBalance() {
	s.mockService.EXPECT().
		CompareBalance(gomock.Any(), &balance.CompareBalanceInput{
			ProjectID:   "proj_1",
			CharacterID: "char_1",
			EnemyID:     "enemy_1",
		}).
		Return(&balance.CompareBalanceOutput{
			Character: &balanceentities.Character{ID: "char_1", Level: 5},
			Enemy:     &balanceentities.Enemy{ID: "enemy_1", Level: 3},
			Comparison: &balance.Comparison{
				CharacterLevel: 5,
				EnemyLevel:     3,
				CharacterStats: map[string]float64{"health": 210},
				EnemyStats:     map[string]float64{"health": 96},
			},
		}, nil)

	recorder := s.request(http.MethodGet, "/api/projects/proj_1/balance/char_1/enemy_1", nil)

	s.Equal(http.StatusOK, recorder.Code)
	body := s.decode(recorder)

	comparison, ok := body["comparison"].(map[string]any)
	s.Require().True(ok)
	s.Equal(5.0, comparison["character_level"])
	s.Equal(3.0, comparison["enemy_level"])
}

func (s *HandlerTestSuite) TestCompareBalanceNotFound() {
	s.mockService.EXPECT().
		CompareBalance(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("character or enemy not found"))

	recorder := s.request(http.MethodGet, "/api/projects/proj_1/balance/char_1/missing", nil)

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal("character or enemy not found", s.decode(recorder)["detail"])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestNewHandlerValidatesConfig(t *testing.T) {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	if err == nil {
		t.Fatal("expected error for empty config")
	}
}
