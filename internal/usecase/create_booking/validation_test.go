package create_booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathiyaayyanar14/merchantcare-schedule-sync/internal/domain"
)

func TestParseGuestEmails(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "valid list with spaces",
			raw:  " a@x.com , b@y.com ",
			want: []string{"a@x.com", "b@y.com"},
		},
		{
			name: "empty string",
			raw:  "",
			want: []string{},
		},
		{
			name: "empty elements dropped",
			raw:  "a@x.com,,  ,b@y.com",
			want: []string{"a@x.com", "b@y.com"},
		},
		{
			name:    "one invalid rejects all",
			raw:     "a@x.com, bad, b@y.com",
			wantErr: true,
		},
		{
			name:    "missing tld",
			raw:     "a@x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGuestEmails(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidGuestEmails)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGuestEmails_ErrorListsEveryInvalid(t *testing.T) {
	_, err := parseGuestEmails("ok@x.com, first, second@, third")
	require.ErrorIs(t, err, ErrInvalidGuestEmails)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second@")
	assert.Contains(t, err.Error(), "third")
}

func TestParseGuestEmails_TooMany(t *testing.T) {
	parts := make([]string, domain.MaxGuestEmails+1)
	for i := range parts {
		parts[i] = "guest" + strings.Repeat("x", i+1) + "@example.com"
	}

	_, err := parseGuestEmails(strings.Join(parts, ","))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNormalizeTicketID(t *testing.T) {
	assert.Equal(t, "10234", normalizeTicketID("TICK-10234"))
	assert.Equal(t, "10234", normalizeTicketID("10234"))
	assert.Equal(t, "", normalizeTicketID("no-digits"))
}

func TestValidateRequest(t *testing.T) {
	longDescription := strings.Repeat("d", domain.MaxDescriptionLength+1)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Request) {}},
		{name: "missing slot id", mutate: func(r *Request) { r.TimeSlotID = "  " }, wantErr: true},
		{name: "missing brand name", mutate: func(r *Request) { r.BrandName = "" }, wantErr: true},
		{
			name:    "brand name too long",
			mutate:  func(r *Request) { r.BrandName = strings.Repeat("b", domain.MaxBrandNameLength+1) },
			wantErr: true,
		},
		{
			name:    "description too long",
			mutate:  func(r *Request) { r.Description = &longDescription },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
