package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/pkg/memcache"
	"wander/pkg/utils"
)

// Notes live for one planning session only.
const noteTTL = 24 * time.Hour

type NotesController struct {
	store memcache.NoteStore
}

func NewNotesController(store memcache.NoteStore) *NotesController {
	return &NotesController{store: store}
}

// SaveNoteHandler godoc
// @Summary Save session notes
// @Description Store freeform notes for a planning session; notes expire with the session
// @Tags Notes
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body request_models.NoteRequest true "Note text"
// @Success 200 {object} utils.APIResponse
// @Router /notes/{sessionId} [put]
func (n *NotesController) SaveNoteHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	var req request_models.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	n.store.Put(sessionID, req.Text, noteTTL)
	utils.RespondSuccess(c, gin.H{"session_id": sessionID}, "Note saved")
}

// GetNoteHandler godoc
// @Summary Fetch session notes
// @Tags Notes
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /notes/{sessionId} [get]
func (n *NotesController) GetNoteHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	text, ok := n.store.Get(sessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrNoteNotFound)
		return
	}

	utils.RespondSuccess(c, gin.H{"session_id": sessionID, "text": text}, "Note fetched")
}
