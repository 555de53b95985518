package models

import (
	"net/http"
	"time"
)

// ResponseVersion is the envelope version of successful responses.
const ResponseVersion = 2

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Data        any    `json:"data,omitempty"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixMilli()
}

func NewResponse(code int, data any, text string) ResponseModel {
	return ResponseModel{
		Code:        code,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        text,
		Version:     ResponseVersion,
	}
}

func NewOKResponse(data any) ResponseModel {
	return NewResponse(http.StatusOK, data, "OK")
}

// NewEntryResponse wraps a single entity with the references it mentions.
func NewEntryResponse(entry any, references ReferencesModel) ResponseModel {
	return NewOKResponse(map[string]any{
		"entry":      entry,
		"references": references,
	})
}

// NewListResponse wraps a list with the references its items mention.
func NewListResponse(list any, references ReferencesModel) ResponseModel {
	return NewOKResponse(map[string]any{
		"list":          list,
		"references":    references,
		"limitExceeded": false,
	})
}
