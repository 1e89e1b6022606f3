package routes

import (
	"errors"
	"net/http"

	"ntreal/notes/database"
	"ntreal/notes/middleware"
	"ntreal/notes/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RegisterNoteRoutes(group *gin.RouterGroup, db *database.Database, noteService services.NoteServiceInterface) {
	group.GET("/", func(c *gin.Context) { Index(c, db, noteService) })
	group.GET("/history/", func(c *gin.Context) { History(c, db, noteService) })
	group.GET("/history/clear/", func(c *gin.Context) { ClearHistory(c, db, noteService) })
	group.GET("/new/", func(c *gin.Context) { New(c) })
	group.POST("/add/", func(c *gin.Context) { Add(c, db, noteService) })

	// gin's router cannot mix an :id parameter with static siblings, so the
	// per-note endpoints live under /notes/.
	group.GET("/notes/:id/", func(c *gin.Context) { Edit(c, db, noteService) })
	group.POST("/notes/:id/save/", func(c *gin.Context) { Save(c, db, noteService) })
	group.POST("/notes/:id/move/", func(c *gin.Context) { Move(c, db, noteService) })
	group.POST("/notes/:id/delete/", func(c *gin.Context) { Delete(c, db, noteService) })
}

// currentUserID reads the caller identity placed in the context by the auth
// middleware. A handler reached without it sends the browser to login.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDInterface, exists := c.Get("userID")
	if !exists {
		c.Redirect(http.StatusFound, middleware.LoginURL)
		c.Abort()
		return uuid.Nil, false
	}

	userID, ok := userIDInterface.(uuid.UUID)
	if !ok {
		c.Redirect(http.StatusFound, middleware.LoginURL)
		c.Abort()
		return uuid.Nil, false
	}
	return userID, true
}

func Index(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := noteService.ListNotes(db, userID, false)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Notes", "Error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Notes",
		"Notes": notes,
		"Email": c.GetString("email"),
	})
}

func History(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	notes, err := noteService.ListNotes(db, userID, true)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "History", "Error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "history.html", gin.H{
		"Title": "History",
		"Notes": notes,
		"Email": c.GetString("email"),
	})
}

func New(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	c.HTML(http.StatusOK, "new.html", gin.H{"Title": "New note"})
}

func Add(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// A missing content field is not an error; it is stored as the default
	// body, same as an empty one.
	content := c.PostForm("content")

	if _, err := noteService.CreateNote(db, userID, content); err != nil {
		c.HTML(http.StatusInternalServerError, "new.html", gin.H{
			"Title": "New note",
			"Error": "Can't add new note.",
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Edit renders the edit form. Unlike save/move/delete, an unknown or foreign
// id sends the browser back to the index instead of a 404; the original
// system behaved this way and bookmarked stale edit links land somewhere
// useful.
func Edit(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	note, err := noteService.GetOwnedNote(db, c.Param("id"), userID)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "edit.html", gin.H{
		"Title": "Edit note",
		"Note":  note,
	})
}

func Save(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	content := c.PostForm("content")

	if _, err := noteService.SaveNote(db, c.Param("id"), userID, content); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Edit note", "Error": "Can't save note."})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Move(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if _, err := noteService.MoveNote(db, c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Notes", "Error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func Delete(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := noteService.DeleteNote(db, c.Param("id"), userID); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			notFound(c)
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Notes", "Error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func ClearHistory(c *gin.Context, db *database.Database, noteService services.NoteServiceInterface) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := noteService.ClearHistory(db, userID); err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "History", "Error": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, "/history/")
}

func notFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": "Not found"})
}
