package adapter

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

type formFile struct {
	param    string
	fileName string
	data     []byte
}

type formField struct {
	name  string
	value string
}

// multipartBody encodes files and fields into a complete multipart payload.
// resty rebuilds file parts from their readers on every retry attempt and a
// reader drains after the first one, so upload bodies are sent as bytes.
func multipartBody(files []formFile, fields []formField) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.param, f.fileName)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", f.param, err)
		}
		if _, err = part.Write(f.data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", f.param, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
