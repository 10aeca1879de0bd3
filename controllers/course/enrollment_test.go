package courseController_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"flexopted/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollInCourse(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "enroll-once")
	course := createCourse(t, db, "Enrollable", nil)

	resp, envelope := doRequest(t, app, http.MethodPost, courseURL(course.ID, "/enroll"), token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, json.Unmarshal(envelope.Data, &enrollment))
	assert.Equal(t, user.ID, enrollment.UserID)
	assert.Equal(t, user.Name, enrollment.Name, "name is copied from the token identity")
	assert.Equal(t, user.Email, enrollment.Email, "email is copied from the token identity")
}

func TestEnrollTwice(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "enroll-twice")
	course := createCourse(t, db, "Single Seat", nil)

	resp, _ := doRequest(t, app, http.MethodPost, courseURL(course.ID, "/enroll"), token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := doRequest(t, app, http.MethodPost, courseURL(course.ID, "/enroll"), token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Already enrolled", envelope.Message)

	var count int64
	db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.EqualValues(t, 1, count, "exactly one enrollment row must persist")
}

func TestEnroll_RequiresAuth(t *testing.T) {
	app, db := setupApp(t)
	course := createCourse(t, db, "No Token", nil)

	resp, _ := doRequest(t, app, http.MethodPost, courseURL(course.ID, "/enroll"), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
