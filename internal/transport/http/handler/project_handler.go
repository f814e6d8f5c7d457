package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func NewProjectHandler(svc *service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: svc, log: log}
}

type projectForm struct {
	ProjectName string   `form:"projectName"`
	Category    string   `form:"category"`
	ProjectURL  string   `form:"projectUrl"`
	Stack       []string `form:"stack"`
	Tags        []string `form:"tagList"`
}

func (f *projectForm) toInput() service.ProjectInput {
	return service.ProjectInput{
		ProjectName: f.ProjectName,
		Category:    f.Category,
		ProjectURL:  f.ProjectURL,
		Stack:       f.Stack,
		Tags:        f.Tags,
	}
}

// imageFile returns the optional multipart file, distinguishing "absent"
// from a broken form.
func imageFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.BadRequest("invalid multipart form: " + err.Error())
	}
	return fh, nil
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": projects})
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.log, apperr.BadRequest("Incomplete project data"))
		return
	}
	file, err := imageFile(c, "image")
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), form.toInput(), file)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": p})
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var form projectForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, h.log, apperr.BadRequest("Incomplete project data"))
		return
	}
	file, err := imageFile(c, "image")
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), form.toInput(), file)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "project": p})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}

// UploadPDF serves the standalone upload endpoint; the file lands under
// /public/pdf (or /public/images for images) without touching any project.
func (h *ProjectHandler) UploadPDF(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, h.log, apperr.BadRequest("no file uploaded"))
		return
	}
	url, err := h.svc.StoreFile(c.Request.Context(), fh)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "upload successful", "file": url})
}
