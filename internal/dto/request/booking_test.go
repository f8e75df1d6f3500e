package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateBookingRequest_decode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want UpdateBookingRequest
	}{
		{
			name: "absent fields stay unset",
			body: `{"event":"Fest"}`,
			want: UpdateBookingRequest{Event: Some("Fest")},
		},
		{
			name: "null is set but not valid",
			body: `{"name":null}`,
			want: UpdateBookingRequest{Name: Null()},
		},
		{
			name: "non-string is set but not valid",
			body: `{"email":42,"event":{"a":1},"ticketType":["VIP"]}`,
			want: UpdateBookingRequest{Email: Null(), Event: Null(), TicketType: Null()},
		},
		{
			name: "empty string is valid",
			body: `{"name":""}`,
			want: UpdateBookingRequest{Name: Some("")},
		},
		{
			name: "immutable and unknown keys are dropped",
			body: `{"_id":"x","createdAt":"2024-01-01T00:00:00Z","seat":"A1"}`,
			want: UpdateBookingRequest{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got UpdateBookingRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
