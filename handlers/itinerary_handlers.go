package handlers

import (
	"net/http"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// OpenItineraryDraft starts an editing session for a trek's itinerary
func OpenItineraryDraft(c *gin.Context) {
	draft, err := handlerServices.ItineraryService.OpenDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, draft)
}

func GetItineraryDraft(c *gin.Context) {
	draft, err := handlerServices.ItineraryService.GetDraft(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}

// ApplyItineraryEdits runs a batch of editor operations against a draft
func ApplyItineraryEdits(c *gin.Context) {
	var request models.ApplyEditsRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	draft, err := handlerServices.ItineraryService.ApplyEdits(c.Request.Context(), c.Param("draftId"), request.Edits)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}

// SubmitItineraryDraft saves the draft's days to the trek
func SubmitItineraryDraft(c *gin.Context) {
	draft, err := handlerServices.ItineraryService.Submit(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}

func DiscardItineraryDraft(c *gin.Context) {
	if err := handlerServices.ItineraryService.Discard(c.Request.Context(), c.Param("draftId")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
