package response

import (
	"encoding/json"
	"net/http"

	"biletado/shared/constant"
	"biletado/shared/failure"
	"biletado/shared/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// Errors is the error wire shape: every violation the request triggered,
// plus a trace id for correlating with the collector.
type Errors struct {
	Errors []*failure.Failure `json:"errors"`
	Trace  string             `json:"trace"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, jsonPayload)
}

// WithNoContent sends an empty response.
func WithNoContent(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNoContent)
}

// WithError sends the failures carried by err, with the status derived from
// the error kind.
func WithError(writer http.ResponseWriter, request *http.Request, err error) {
	WithErrorCode(writer, request, failure.GetStatus(err), err)
}

// WithErrorCode sends the failures carried by err under an explicit status.
func WithErrorCode(writer http.ResponseWriter, request *http.Request, code int, err error) {
	response(writer, code, Errors{
		Errors: failure.GetFailures(err),
		Trace:  traceID(request),
	})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// traceID prefers the active span's trace id; without a recording span it
// falls back to a fresh uuid so the wire field is never empty.
func traceID(request *http.Request) string {
	if request != nil {
		spanContext := trace.SpanContextFromContext(request.Context())
		if spanContext.HasTraceID() {
			return spanContext.TraceID().String()
		}
	}

	return uuid.NewString()
}

func response(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
