package service

import (
	"context"
	"fmt"
	"net/http"

	"pushcampaign/internal/domain/entity"
)

// PushSender delivers one encrypted message to one push endpoint.
type PushSender interface {
	// Send delivers payload to target. A rejection by the push service is reported as *DeliveryError.
	Send(ctx context.Context, target entity.PushTarget, payload []byte) error
}

// DeliveryError is a classified rejection reported by the push service.
type DeliveryError struct {
	StatusCode int
	Message    string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// EndpointGone reports whether the push service signalled the endpoint is permanently unreachable.
func (e *DeliveryError) EndpointGone() bool {
	switch e.StatusCode {
	case http.StatusGone, http.StatusNotFound, http.StatusUnauthorized:
		return true
	default:
		return false
	}
}
