package upload

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// allowed image extensions; anything else is stored without an extension.
var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// SavePicture stores an uploaded image under dir and returns the stored
// filename, which is what gets persisted as the picture path and served
// back from /assets. A nil file is fine (the picture is optional).
func SavePicture(c *fiber.Ctx, file *multipart.FileHeader, dir string) (string, error) {
	if file == nil {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := uuid.New().String() + SafeExt(file.Filename)
	if err := c.SaveFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// SafeExt extracts a lowercased image extension from a client-supplied
// filename. The name itself is never trusted, only its extension.
func SafeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if imageExts[ext] {
		return ext
	}
	return ""
}
