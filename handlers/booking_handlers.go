package handlers

import (
	"context"

	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// StartBooking opens a join wizard for a trek
func StartBooking(c *gin.Context) {
	var request models.StartBookingRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	draft, err := handlerServices.BookingService.Start(c.Request.Context(), request.TrekID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, draft)
}

func GetBookingDraft(c *gin.Context) {
	draft, err := handlerServices.BookingService.Get(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}

// UpdateBookingForm applies the fields present in the body to the wizard form
func UpdateBookingForm(c *gin.Context) {
	var patch models.BookingFormPatch

	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	draft, err := handlerServices.BookingService.UpdateForm(c.Request.Context(), c.Param("draftId"), patch)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}

func NextBookingStep(c *gin.Context) {
	moveBookingWizard(c, handlerServices.BookingService.Next)
}

func PreviousBookingStep(c *gin.Context) {
	moveBookingWizard(c, handlerServices.BookingService.Back)
}

// SubmitBooking completes the wizard and records the booking
func SubmitBooking(c *gin.Context) {
	booking, err := handlerServices.BookingService.Submit(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, booking)
}

func GetBooking(c *gin.Context) {
	booking, err := handlerServices.BookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, booking)
}

func moveBookingWizard(c *gin.Context, move func(ctx context.Context, draftID string) (*models.BookingDraft, error)) {
	draft, err := move(c.Request.Context(), c.Param("draftId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, draft)
}
