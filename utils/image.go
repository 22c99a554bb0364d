// utils/image.go
package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveProfileImage decodes a base64 payload (with or without a data-URL
// header) and writes it to folder/<staffID>.jpg. Re-uploads overwrite the
// previous file, one image per staff member.
func SaveProfileImage(b64, folder, staffID string) (string, error) {
	if i := strings.Index(b64, ","); i >= 0 {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s.jpg", staffID)
	path := filepath.Join(folder, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// LoadProfileImageBase64 reads the stored image back as a base64 string.
// Missing file is not an error, the caller gets "".
func LoadProfileImageBase64(folder, staffID string) (string, error) {
	path := filepath.Join(folder, fmt.Sprintf("%s.jpg", staffID))
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
