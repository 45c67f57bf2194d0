// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads the access token used for private dataset
// listings. The token lives in a plain-text file under .secrets/ or in
// the HF_TOKEN environment variable; public datasets need neither.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const tokenFile = "huggingface-token"

// Token returns the dataset access token, preferring dir/huggingface-token
// over the HF_TOKEN environment variable. A missing file or directory is
// not an error; Token returns the empty string.
func Token(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, tokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return strings.TrimSpace(os.Getenv("HF_TOKEN")), nil
		}
		return "", fmt.Errorf("reading token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return strings.TrimSpace(os.Getenv("HF_TOKEN")), nil
	}
	return token, nil
}
