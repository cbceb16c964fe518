package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaveUpload stores a multipart file under dir with a collision-free name and
// returns the public URL path. Spaces in the original name are flattened.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	base := strings.ReplaceAll(filepath.Base(file.Filename), " ", "_")
	name := fmt.Sprintf("%s-%s", uuid.NewString(), base)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// UploadKind classifies a hero background upload by MIME type.
func UploadKind(file *multipart.FileHeader) string {
	if strings.HasPrefix(file.Header.Get("Content-Type"), "video") {
		return "video"
	}
	return "image"
}
