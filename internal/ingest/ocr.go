package ingest

import (
	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements OCREngine using the tesseract bindings.
// A fresh client is created per recognition and closed on all paths, so a
// failed recognition never leaks the underlying worker.
type TesseractEngine struct{}

// Recognize runs tesseract over the image at path and returns the text.
func (TesseractEngine) Recognize(path string) (string, error) {
	client := gosseract.NewClient()
	defer func() {
		_ = client.Close()
	}()

	if err := client.SetLanguage("eng"); err != nil {
		return "", err
	}
	if err := client.SetImage(path); err != nil {
		return "", err
	}
	return client.Text()
}
