package utils

import (
	"encoding/base64"
	"io"
	"mime/multipart"
)

// Image is the transport form of a stored blob:
// {"data": <base64>, "contentType": <mime>}. A record without a blob
// serializes the whole field as null.
type Image struct {
	Data        string `json:"data"`
	ContentType string `json:"contentType"`
}

func EncodeImage(data []byte, contentType string) *Image {
	if len(data) == 0 {
		return nil
	}
	return &Image{
		Data:        base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
}

// ReadUpload drains a multipart file into memory and returns the bytes
// together with the declared content type.
func ReadUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}
