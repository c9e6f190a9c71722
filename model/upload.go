package model

import "io"

type UploadRequest struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
