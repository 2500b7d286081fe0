package validator

import (
	"testing"

	domainerrors "pushcampaign/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	StoreID    string `json:"store_id" validate:"required"`
	Title      string `json:"title" validate:"required"`
	CampaignID string `json:"campaign_id,omitempty" validate:"omitempty,uuid"`
	Limit      int    `json:"limit" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  sampleRequest{StoreID: "store-1", Title: "Hola"},
		},
		{
			name:    "missing fields use json names",
			req:     sampleRequest{},
			wantErr: "Missing required fields: store_id, title",
		},
		{
			name:    "invalid fields",
			req:     sampleRequest{StoreID: "store-1", Title: "Hola", CampaignID: "nope", Limit: -1},
			wantErr: "Invalid fields: campaign_id, limit",
		},
		{
			name:    "missing and invalid",
			req:     sampleRequest{Title: "Hola", CampaignID: "nope"},
			wantErr: "Missing required fields: store_id; Invalid fields: campaign_id",
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}
