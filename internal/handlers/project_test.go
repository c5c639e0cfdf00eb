package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskmanager/internal/constants"
	"taskmanager/internal/database"
	"taskmanager/internal/models"
	"taskmanager/internal/repository"
	"taskmanager/internal/services"
	"taskmanager/internal/session"
)

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	codec   *session.Codec
	handler *ProjectHandler
	router  *gin.Engine
}

// SetupTest runs before each test
func (suite *ProjectHandlerTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
	)
	suite.Require().NoError(err)

	database.SetDB(suite.db)

	suite.codec, err = session.NewCodec("test-secret")
	suite.Require().NoError(err)
	sessions := session.NewManager(suite.codec, false)

	projectRepo := repository.NewProjectRepository(suite.db)
	projectService := services.NewProjectService(projectRepo)
	suite.handler = NewProjectHandler(projectService, sessions)

	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.GET("/api/projects", suite.handler.List)
	suite.router.POST("/api/projects", suite.handler.Create)
	suite.router.PUT("/api/projects", suite.handler.Update)
	suite.router.DELETE("/api/projects", suite.handler.Delete)
}

// TearDownTest runs after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ProjectHandlerTestSuite) createTestUser(username string) *models.User {
	user := &models.User{
		Fullname:     "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	suite.db.Create(user)
	return user
}

func (suite *ProjectHandlerTestSuite) createTestProject(name, createdBy string) *models.Project {
	project := &models.Project{
		Name:        name,
		Description: "Test Description",
		CreatedBy:   createdBy,
	}
	suite.db.Create(project)
	return project
}

func (suite *ProjectHandlerTestSuite) sessionCookie(userID string) *http.Cookie {
	token, err := suite.codec.Encode(session.Payload{
		UserID:    userID,
		ExpiresAt: time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	suite.Require().NoError(err)
	return &http.Cookie{Name: constants.SessionCookieName, Value: token}
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	user := suite.createTestUser("alice")

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		jsonBody(suite.T(), map[string]string{
			"name":        "Website Redesign",
			"description": "Refresh the marketing site",
		}))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(suite.sessionCookie(user.ID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var response struct {
		Project struct {
			ID        string `json:"id"`
			Name      string `json:"name"`
			CreatedBy string `json:"created_by"`
		} `json:"project"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.NotEmpty(response.Project.ID)
	suite.Equal("Website Redesign", response.Project.Name)
	suite.Equal(user.ID, response.Project.CreatedBy)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectWithoutSession() {
	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		jsonBody(suite.T(), map[string]string{
			"name":        "Website Redesign",
			"description": "Refresh the marketing site",
		}))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCreateProjectMissingFields() {
	user := suite.createTestUser("alice")

	req := httptest.NewRequest(http.MethodPost, "/api/projects",
		jsonBody(suite.T(), map[string]string{"name": "No description"}))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(suite.sessionCookie(user.ID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "description")
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	user := suite.createTestUser("alice")
	suite.createTestProject("First", user.ID)
	suite.createTestProject("Second", user.ID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Projects []struct {
			Name string `json:"name"`
		} `json:"projects"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Len(response.Projects, 2)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProject() {
	user := suite.createTestUser("alice")
	project := suite.createTestProject("Old Name", user.ID)

	req := httptest.NewRequest(http.MethodPut, "/api/projects",
		jsonBody(suite.T(), map[string]string{
			"id":   project.ID,
			"name": "New Name",
		}))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var updated models.Project
	suite.Require().NoError(suite.db.Where("id = ?", project.ID).First(&updated).Error)
	suite.Equal("New Name", updated.Name)
	suite.Equal("Test Description", updated.Description)
}

func (suite *ProjectHandlerTestSuite) TestUpdateProjectMissingID() {
	req := httptest.NewRequest(http.MethodPut, "/api/projects",
		jsonBody(suite.T(), map[string]string{"name": "New Name"}))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Project ID is required")
}

func (suite *ProjectHandlerTestSuite) TestUpdateProjectNotFound() {
	req := httptest.NewRequest(http.MethodPut, "/api/projects",
		jsonBody(suite.T(), map[string]string{
			"id":   "missing-project",
			"name": "New Name",
		}))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProjectCascadesTasks() {
	user := suite.createTestUser("alice")
	project := suite.createTestProject("Doomed", user.ID)

	task := &models.Task{
		Name:        "Task in doomed project",
		Description: "Goes away with the project",
		Status:      models.TaskStatusInProgress,
		ProjectID:   project.ID,
		DueAt:       time.Now().Add(24 * time.Hour),
	}
	suite.Require().NoError(suite.db.Create(task).Error)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects?id="+project.ID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var projectCount, taskCount int64
	suite.db.Model(&models.Project{}).Count(&projectCount)
	suite.db.Model(&models.Task{}).Count(&taskCount)
	suite.Zero(projectCount)
	suite.Zero(taskCount)
}

func (suite *ProjectHandlerTestSuite) TestDeleteProjectMissingID() {
	req := httptest.NewRequest(http.MethodDelete, "/api/projects", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Project ID is required")
}

func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
