package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"flexopted/config"
	"flexopted/database"
	"flexopted/middleware"
	"flexopted/models"
	courseRoutes "flexopted/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// apiResponse mirrors the JsonResponse envelope
type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
		UploadDir: t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

// createUser inserts a user and returns it together with a valid token
func createUser(t *testing.T, db *gorm.DB, slug string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:     slug,
		Email:    slug + "@example.com",
		Password: string(hashed),
		Role:     "student",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func courseURL(id uint, suffix string) string {
	return fmt.Sprintf("/api/courses/%d%s", id, suffix)
}

// createCourse inserts a course directly
func createCourse(t *testing.T, db *gorm.DB, title string, links []string) models.Course {
	t.Helper()

	course := models.Course{Title: title, Description: "desc", Instructor: "Jane Doe"}
	require.NoError(t, course.SetVideoLinks(links))
	require.NoError(t, db.Create(&course).Error)
	return course
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

// uploadFile posts a multipart body with a "video" form file
func uploadFile(t *testing.T, app *fiber.App, path, token, filename string, content []byte) (*http.Response, apiResponse) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("video", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiResponse
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}
