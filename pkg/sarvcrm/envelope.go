package sarvcrm

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// unknownErrorMessage stands in when an error response carries no message.
const unknownErrorMessage = "Unknown error"

// emptyPayload is returned for successful responses without a data field.
var emptyPayload = json.RawMessage(`{}`)

// DecodeEnvelope classifies a response by status range and either unwraps
// the data payload or returns the matching error kind:
//
//	200-299  the data field of the decoded envelope ({} when absent)
//	300-399  *RedirectionError with the envelope message
//	400-499  *APIError with the envelope message, body decoded best effort
//	other    *TransportError carrying the status, body never decoded
//
// It performs no I/O, so status handling stays testable apart from the
// transport.
func DecodeEnvelope(statusCode int, body []byte) (json.RawMessage, error) {
	switch {
	case statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices:
		var envelope Envelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("decoding response envelope: %w", err)
		}

		if envelope.Data == nil {
			return emptyPayload, nil
		}

		return envelope.Data, nil

	case statusCode >= http.StatusMultipleChoices && statusCode < http.StatusBadRequest:
		return nil, &RedirectionError{
			StatusCode: statusCode,
			Message:    envelopeMessage(body),
		}

	case statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError:
		return nil, &APIError{
			StatusCode: statusCode,
			Message:    envelopeMessage(body),
		}

	default:
		return nil, &TransportError{StatusCode: statusCode}
	}
}

// envelopeMessage extracts the message field from an error body, falling
// back to a fixed text when the body is missing, malformed, or silent.
func envelopeMessage(body []byte) string {
	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Message == "" {
		return unknownErrorMessage
	}

	return envelope.Message
}
