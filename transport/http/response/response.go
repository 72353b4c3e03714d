package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"starlight/shared/constant"
	"starlight/shared/failure"
	"starlight/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Page is a slice of a longer list with its position in it.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
	// Fields holds one message per invalid input field.
	Fields map[string]string `json:"fields,omitempty"`
	// Status is the visitor-facing text that goes with the failure.
	Status *string `json:"status,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithPage sends one page of a list together with its paging metadata.
func WithPage[T any](writer http.ResponseWriter, code int, items []T, meta PageMeta) {
	if items == nil {
		items = []T{}
	}

	response(writer, code, Page[T]{Data: items, Meta: meta})
}

// WithRaw sends payload as the whole response body, without the data envelope.
func WithRaw(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	response(writer, failure.GetCode(err), errorPayload(err))
}

// WithErrorStatus is WithError plus the status text shown to the visitor.
func WithErrorStatus(writer http.ResponseWriter, err error, status string) {
	payload := errorPayload(err)
	if status != constant.Empty {
		payload.Status = &status
	}

	response(writer, failure.GetCode(err), payload)
}

func errorPayload(err error) Error {
	errMsg := err.Error()

	payload := Error{Error: &errMsg}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		payload.Fields = fail.Fields
	}

	return payload
}

// WithHTML sends a rendered page or fragment.
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	write(writer, code, constant.ContentTypeHTML, body)
}

// WithSVG sends an SVG image.
func WithSVG(writer http.ResponseWriter, code int, body []byte) {
	write(writer, code, constant.ContentTypeSVG, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	write(writer, code, constant.ContentTypeJSON, response)
}

func write(writer http.ResponseWriter, code int, contentType string, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
