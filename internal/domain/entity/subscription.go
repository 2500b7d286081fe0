// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscription is a browser push endpoint registered for a store.
type PushSubscription struct {
	ID        uuid.UUID `json:"id"`                   // The Global Unique Identifier (GUID) for the subscription.
	StoreID   string    `json:"store_id"`             // The store this endpoint receives campaigns from.
	Endpoint  string    `json:"endpoint"`             // Push service URL issued by the browser.
	P256dh    string    `json:"p256dh"`               // Client public key used to encrypt payloads.
	Auth      string    `json:"auth"`                 // Client authentication secret.
	UserAgent *string   `json:"user_agent,omitempty"` // Optional browser user agent at registration time.
	IsActive  bool      `json:"is_active"`            // False once the push service reported the endpoint gone.
	LastSeen  time.Time `json:"last_seen"`            // Timestamp of the latest registration.
	CreatedAt time.Time `json:"created_at"`           // Timestamp of when the subscription was created.
	UpdatedAt time.Time `json:"updated_at"`           // Timestamp of the last modification.
}

// Target returns the addressing information the push sender needs.
func (s *PushSubscription) Target() PushTarget {
	return PushTarget{
		Endpoint: s.Endpoint,
		P256dh:   s.P256dh,
		Auth:     s.Auth,
	}
}

// PushTarget carries the endpoint and keys required to deliver one message.
type PushTarget struct {
	Endpoint string
	P256dh   string
	Auth     string
}
