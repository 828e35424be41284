package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	historyRepo "stayfinder/database/repository/history"
	"stayfinder/models"
	"stayfinder/utils"
)

// HistoryHandler exposes the history store over HTTP.
type HistoryHandler struct {
	Repo historyRepo.HistoryRepository
}

// NewHistoryHandler returns a handler over the given repository.
func NewHistoryHandler(repo historyRepo.HistoryRepository) *HistoryHandler {
	return &HistoryHandler{Repo: repo}
}

type historyEntryView struct {
	models.HistoryEntry
	Hotels []models.ShownHotel `json:"hotels"`
}

// GetHistoryHandler lists a conversation's history, oldest first.
// ?scope=recent limits the listing to the five most recent flows.
func (h *HistoryHandler) GetHistoryHandler(c *gin.Context) {
	chatID := c.Param("chatID")
	ctx := c.Request.Context()

	var entries []models.HistoryEntry
	var err error
	if c.Query("scope") == "recent" {
		entries, err = h.Repo.ListRecent(ctx, chatID, 5)
	} else {
		entries, err = h.Repo.ListAll(ctx, chatID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load history", err.Error())
		return
	}

	views := make([]historyEntryView, 0, len(entries))
	for _, entry := range entries {
		hotels, err := h.Repo.HotelsByEntry(ctx, entry.ID)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to load history", err.Error())
			return
		}
		views = append(views, historyEntryView{HistoryEntry: entry, Hotels: hotels})
	}
	c.JSON(http.StatusOK, gin.H{"entries": views})
}

// ClearHistoryHandler deletes a conversation's history unconditionally.
func (h *HistoryHandler) ClearHistoryHandler(c *gin.Context) {
	chatID := c.Param("chatID")
	if err := h.Repo.Clear(c.Request.Context(), chatID); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}
