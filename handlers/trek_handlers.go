package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListRegions returns every region
func ListRegions(c *gin.Context) {
	regions, err := handlerServices.TrekService.ListRegions(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, regions)
}

// GetRegion returns one region
func GetRegion(c *gin.Context) {
	region, err := handlerServices.TrekService.GetRegion(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, region)
}

// ListTreks returns trek templates, optionally for one region
func ListTreks(c *gin.Context) {
	treks, err := handlerServices.TrekService.ListTreks(c.Request.Context(), c.Query("regionId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, treks)
}

// GetTrek returns one trek template
func GetTrek(c *gin.Context) {
	trek, err := handlerServices.TrekService.GetTrek(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, trek)
}

// ListGuides returns verified guides, optionally for one region
func ListGuides(c *gin.Context) {
	guides, err := handlerServices.TrekService.ListVerifiedGuides(c.Request.Context(), c.Query("regionId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, guides)
}

// CreateTrekTemplate handles the multipart template form
func CreateTrekTemplate(c *gin.Context) {
	data := c.PostForm("data")
	if data == "" {
		utils.HandleError(c, utils.NewBadRequestError("data field is required"))
		return
	}

	media, err := saveTemplateMedia(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	trek, err := handlerServices.TrekService.CreateTemplate(c.Request.Context(), []byte(data), media)
	if err != nil {
		discardMedia(media)
		utils.HandleError(c, err)
		return
	}

	logger.WithFields(logger.Fields{"trek_id": trek.ID, "region_id": trek.RegionID}).Info("Trek template created")
	utils.HandleCreated(c, trek)
}

// UpdateTrekTemplate applies a partial template form
func UpdateTrekTemplate(c *gin.Context) {
	media, err := saveTemplateMedia(c)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	trek, err := handlerServices.TrekService.UpdateTemplate(c.Request.Context(), c.Param("id"), []byte(c.PostForm("data")), media)
	if err != nil {
		discardMedia(media)
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, trek)
}

// saveTemplateMedia stores the optional coverImage and gallery files of the form
func saveTemplateMedia(c *gin.Context) (models.TemplateMedia, error) {
	var cover *multipart.FileHeader
	var gallery []*multipart.FileHeader

	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return models.TemplateMedia{}, utils.NewBadRequestError("Request must be multipart/form-data")
		}
		return models.TemplateMedia{}, utils.NewBadRequestError("Invalid multipart form")
	}
	if files := form.File["coverImage"]; len(files) > 0 {
		cover = files[0]
	}
	gallery = form.File["gallery"]

	if cover == nil && len(gallery) == 0 {
		return models.TemplateMedia{}, nil
	}
	return handlerServices.MediaService.SaveTemplateMedia(cover, gallery)
}

func discardMedia(media models.TemplateMedia) {
	handlerServices.MediaService.Remove(append([]string{media.CoverImage, media.CoverThumbnail}, media.Gallery...)...)
}
