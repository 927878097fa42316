package applications

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

type documentSlot struct {
	field string
	label string
}

var requiredDocuments = []documentSlot{
	{"id_copy", "ID Copy"},
	{"payslip", "Payslip"},
	{"bank_statement", "Bank Statement"},
}

func randomToken(n int) string {
	const hexDigits = "0123456789abcdef"
	token := make([]byte, n)
	for i := range token {
		token[i] = hexDigits[rand.Intn(len(hexDigits))]
	}
	return string(token)
}

// storedFilename builds the on-disk name for an uploaded document: unix
// timestamp, a random token so same-second uploads cannot collide, then
// the original name with everything outside [A-Za-z0-9.] replaced.
func storedFilename(original string) string {
	safe := unsafeFilenameChars.ReplaceAllString(filepath.Base(original), "_")
	return fmt.Sprintf("%d_%s_%s", time.Now().Unix(), randomToken(8), safe)
}

func validateDocument(file *multipart.FileHeader, label string) string {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return label + " must be PDF, JPG, or PNG"
	}
	if file.Size > maxUploadBytes {
		return label + " is too large (max 5MB)"
	}
	return ""
}

// processUploads validates and stores the three required documents plus
// the optional additional one. Failures for required slots are accumulated
// across all slots and returned together; the optional slot is best-effort
// and its failures are dropped.
func processUploads(c *gin.Context, dir string) (map[string]string, []string) {
	stored := make(map[string]string)
	var uploadErrors []string

	for _, slot := range requiredDocuments {
		file, err := c.FormFile(slot.field)
		if err != nil {
			uploadErrors = append(uploadErrors, slot.label+" is required")
			continue
		}
		if msg := validateDocument(file, slot.label); msg != "" {
			uploadErrors = append(uploadErrors, msg)
			continue
		}
		target := filepath.Join(dir, storedFilename(file.Filename))
		if err := c.SaveUploadedFile(file, target); err != nil {
			uploadErrors = append(uploadErrors, "Failed to upload "+slot.label)
			continue
		}
		stored[slot.field] = target
	}

	if file, err := c.FormFile("additional_docs"); err == nil {
		if msg := validateDocument(file, "Additional Documents"); msg == "" {
			target := filepath.Join(dir, storedFilename(file.Filename))
			if err := c.SaveUploadedFile(file, target); err == nil {
				stored["additional_docs"] = target
			}
		}
	}

	return stored, uploadErrors
}
