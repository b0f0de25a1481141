package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/albertkemp/home-cooking/pkg/resp"
	"github.com/albertkemp/home-cooking/services"
)

type UploadController struct {
	Uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{Uploads: uploads}
}

const maxUploadBytes = 10 << 20 // 10MB

// POST /upload — multipart: file, type (meal|profile), optional foodItemId
func (uc *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "no file provided")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		resp.BadRequest(c, "file too large")
		return
	}

	kind := c.PostForm("type")
	if kind == "" {
		resp.BadRequest(c, "no type provided")
		return
	}

	var foodItemID *uint
	if v := c.PostForm("foodItemId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			resp.BadRequest(c, "invalid foodItemId")
			return
		}
		id := uint(n)
		foodItemID = &id
	}

	f, err := fileHeader.Open()
	if err != nil {
		resp.Error(c, err)
		return
	}
	defer f.Close()

	img, err := uc.Uploads.Upload(principal(c), kind, fileHeader.Filename, f, foodItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, img)
}
