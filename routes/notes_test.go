package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ntreal/notes/database"
	"ntreal/notes/middleware"
	"ntreal/notes/models"
	"ntreal/notes/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var (
	testNoteID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	testUserID = uuid.MustParse("90a12345-f12a-98c4-a456-513432930000")
)

type MockNoteService struct{}

func (m *MockNoteService) testNote() models.Note {
	return models.Note{
		ID:       testNoteID,
		UserID:   testUserID,
		Content:  "Test note",
		EditDate: time.Date(2015, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func (m *MockNoteService) CreateNote(db *database.Database, userID uuid.UUID, content string) (models.Note, error) {
	note := m.testNote()
	note.UserID = userID
	if content != "" {
		note.Content = content
	} else {
		note.Content = models.DefaultContent
	}
	return note, nil
}

func (m *MockNoteService) GetOwnedNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error) {
	if id == testNoteID.String() && userID == testUserID {
		return m.testNote(), nil
	}
	return models.Note{}, services.ErrNoteNotFound
}

func (m *MockNoteService) SaveNote(db *database.Database, id string, userID uuid.UUID, content string) (models.Note, error) {
	note, err := m.GetOwnedNote(db, id, userID)
	if err != nil {
		return models.Note{}, err
	}
	note.Content = content
	return note, nil
}

func (m *MockNoteService) MoveNote(db *database.Database, id string, userID uuid.UUID) (models.Note, error) {
	note, err := m.GetOwnedNote(db, id, userID)
	if err != nil {
		return models.Note{}, err
	}
	note.InHistory = !note.InHistory
	return note, nil
}

func (m *MockNoteService) DeleteNote(db *database.Database, id string, userID uuid.UUID) error {
	_, err := m.GetOwnedNote(db, id, userID)
	return err
}

func (m *MockNoteService) ListNotes(db *database.Database, userID uuid.UUID, inHistory bool) ([]models.Note, error) {
	if userID == testUserID && !inHistory {
		return []models.Note{m.testNote()}, nil
	}
	return []models.Note{}, nil
}

func (m *MockNoteService) ClearHistory(db *database.Database, userID uuid.UUID) error {
	return nil
}

func setupNotesRouter(userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")

	group := router.Group("/", func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("email", "temporary1@ntreal.com")
	})
	RegisterNoteRoutes(group, &database.Database{}, &MockNoteService{})
	return router
}

func postForm(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func TestIndex(t *testing.T) {
	t.Run("With Notes", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Test note")
	})

	t.Run("Without Notes", func(t *testing.T) {
		router := setupNotesRouter(uuid.New())
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No notes are available.")
	})
}

func TestHistory(t *testing.T) {
	router := setupNotesRouter(testUserID)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/history/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No notes are available.")
}

func TestNew(t *testing.T) {
	router := setupNotesRouter(testUserID)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/new/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/add/")
}

func TestAdd(t *testing.T) {
	router := setupNotesRouter(testUserID)

	t.Run("With Content", func(t *testing.T) {
		w := postForm(router, "/add/", "content=Test+note")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Missing Content", func(t *testing.T) {
		w := postForm(router, "/add/", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestEdit(t *testing.T) {
	t.Run("Own Note", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/notes/"+testNoteID.String()+"/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Test note")
	})

	t.Run("Foreign Note Redirects", func(t *testing.T) {
		router := setupNotesRouter(uuid.New())
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/notes/"+testNoteID.String()+"/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Wrong Note ID Redirects", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/notes/0/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestSave(t *testing.T) {
	t.Run("Own Note", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := postForm(router, "/notes/"+testNoteID.String()+"/save/", "content=Edited+note")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Foreign Note", func(t *testing.T) {
		router := setupNotesRouter(uuid.New())
		w := postForm(router, "/notes/"+testNoteID.String()+"/save/", "content=Edited+note")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Wrong Note ID", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := postForm(router, "/notes/0/save/", "content=Edited+note")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMove(t *testing.T) {
	t.Run("Own Note", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := postForm(router, "/notes/"+testNoteID.String()+"/move/", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Foreign Note", func(t *testing.T) {
		router := setupNotesRouter(uuid.New())
		w := postForm(router, "/notes/"+testNoteID.String()+"/move/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Own Note", func(t *testing.T) {
		router := setupNotesRouter(testUserID)
		w := postForm(router, "/notes/"+testNoteID.String()+"/delete/", "")
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("Foreign Note", func(t *testing.T) {
		router := setupNotesRouter(uuid.New())
		w := postForm(router, "/notes/"+testNoteID.String()+"/delete/", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestClearHistory(t *testing.T) {
	router := setupNotesRouter(testUserID)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/history/clear/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/history/", w.Header().Get("Location"))
}

func TestNotesRequireAuthentication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob("../templates/*.html")

	// No identity in the context, as for a request that never passed the
	// auth middleware.
	group := router.Group("/")
	RegisterNoteRoutes(group, &database.Database{}, &MockNoteService{})

	for _, path := range []string{"/", "/history/", "/new/", "/history/clear/"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, middleware.LoginURL, w.Header().Get("Location"), path)
	}
}
