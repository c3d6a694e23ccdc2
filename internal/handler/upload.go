package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxUploadFiles caps how many photos one multipart request may carry.
const maxUploadFiles = 100

// UploadHandler stores photos under Dir.  Stored names are a fresh uuid
// plus the original extension, so concurrent uploads cannot collide the
// way timestamp naming would.
type UploadHandler struct {
	Dir    string
	Client *http.Client // used by ByLink; defaults in NewUploadHandler
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{
		Dir:    dir,
		Client: &http.Client{Timeout: 15 * time.Second},
	}
}

type uploadByLinkReq struct {
	Link string `json:"link"`
}

// ByLink handles POST /upload-by-link: downloads the image at the given
// URL into the upload directory and returns the stored filename.
func (h *UploadHandler) ByLink(c echo.Context) error {
	var req uploadByLinkReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Link) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "link required"})
	}
	link := strings.TrimSpace(req.Link)
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid link"})
	}

	resp, err := h.Client.Get(link)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "download failed"})
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": fmt.Sprintf("download failed: status %d", resp.StatusCode)})
	}

	ext := path.Ext(u.Path)
	if ext == "" {
		ext = ".jpeg"
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(h.Dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
	}
	defer dst.Close()
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
	}
	return c.JSON(http.StatusOK, name)
}

// Multipart handles POST /upload: stores up to maxUploadFiles files from
// the "photos" field and returns the list of stored filenames, in order.
func (h *UploadHandler) Multipart(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "multipart form required"})
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no photos provided"})
	}
	if len(files) > maxUploadFiles {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("at most %d photos per upload", maxUploadFiles)})
	}

	stored := make([]string, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
		}
		name := uuid.NewString() + filepath.Ext(fh.Filename)
		dst, err := os.Create(filepath.Join(h.Dir, name))
		if err != nil {
			src.Close()
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
		}
		stored = append(stored, name)
	}
	return c.JSON(http.StatusOK, stored)
}
