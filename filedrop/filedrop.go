package filedrop

import (
	"errors"
	"log"
	"net/http"

	"pawmart/filemgr"
	"pawmart/utils"

	"github.com/julienschmidt/httprouter"
)

// Uploader serves product photo uploads for the admin panel.
type Uploader struct {
	Dir     string
	BaseURL string
}

func NewUploader(dir, baseURL string) *Uploader {
	return &Uploader{Dir: dir, BaseURL: baseURL}
}

// Upload stores the multipart "product" file and returns the public
// image URL. The numeric success flag is what the storefront client
// checks.
func (u *Uploader) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(filemgr.MaxImageSize); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": 0, "message": "Unable to parse form"})
		return
	}

	file, header, err := r.FormFile("product")
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": 0, "message": "No file uploaded"})
		return
	}
	defer file.Close()

	name, err := filemgr.SaveProductImage(file, header, u.Dir)
	if err != nil {
		log.Println("Upload save error:", err)
		status := http.StatusInternalServerError
		if errors.Is(err, filemgr.ErrInvalidExtension) || errors.Is(err, filemgr.ErrInvalidMIME) || errors.Is(err, filemgr.ErrFileTooLarge) {
			status = http.StatusBadRequest
		}
		utils.RespondWithJSON(w, status, utils.M{"success": 0, "message": err.Error()})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":   1,
		"image_url": u.BaseURL + "/images/" + name,
	})
}
