package handlers

import (
	"fmt"
	"net/http"

	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// GetTrekQuote prices a trek for the groupSize query parameter
func GetTrekQuote(c *gin.Context) {
	groupSize, err := queryInt(c, "groupSize")
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	quote, err := handlerServices.QuoteService.QuoteForTrek(c.Request.Context(), c.Param("id"), groupSize)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, quote)
}

// GetTrekQuoteTable prices a trek for every group size in from..to
func GetTrekQuoteTable(c *gin.Context) {
	from, to, err := groupSizeBounds(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	table, err := handlerServices.QuoteService.QuoteTable(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, table)
}

// CalculateQuote prices an ad hoc cost sheet
func CalculateQuote(c *gin.Context) {
	var request models.CalculateQuoteRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	quote, err := handlerServices.QuoteService.Calculate(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, quote)
}

// ExportTrekQuotes exports a trek's quote table and itinerary to Excel format
func ExportTrekQuotes(c *gin.Context) {
	from, to, err := groupSizeBounds(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	excelFile, filename, err := handlerServices.ExcelService.ExportTrekQuotes(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	defer excelFile.Close()

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Status(http.StatusOK)

	if err := excelFile.Write(c.Writer); err != nil {
		logger.WithFields(logger.Fields{"trek_id": c.Param("id"), "error": err}).Error("Failed to write Excel file")
	}
}

func groupSizeBounds(c *gin.Context) (int, int, error) {
	from, err := queryInt(c, "from")
	if err != nil {
		return 0, 0, err
	}
	to, err := queryInt(c, "to")
	if err != nil {
		return 0, 0, err
	}
	return from, to, nil
}
