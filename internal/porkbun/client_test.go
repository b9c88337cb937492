package porkbun

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = Credentials{APIKey: "pk_test", SecretAPIKey: "sk_test"}

func TestNewClient(t *testing.T) {
	t.Run("explicit base URL", func(t *testing.T) {
		client := NewClient("http://localhost:9999", testCreds)
		assert.Equal(t, "http://localhost:9999", client.baseURL)
		assert.Equal(t, testCreds, client.creds)
		assert.NotNil(t, client.httpClient)
	})

	t.Run("empty base URL selects production", func(t *testing.T) {
		client := NewClient("", testCreds)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})
}

func TestListDomains(t *testing.T) {
	tests := []struct {
		name        string
		wantErr     bool
		errMsg      string
		wantDomains []string
		serverFunc  func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name:        "successful list preserves provider order",
			wantDomains: []string{"zebra.org", "apple.com"},
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/domain/listAll", r.URL.Path)

				var payload map[string]any
				err := json.NewDecoder(r.Body).Decode(&payload)
				require.NoError(t, err)
				assert.Equal(t, "pk_test", payload["apikey"])
				assert.Equal(t, "sk_test", payload["secretapikey"])

				w.Write([]byte(`{"status":"SUCCESS","domains":[
					{"domain":"zebra.org","status":"ACTIVE","tld":"org","createDate":"2021-01-01","expireDate":"2027-01-01"},
					{"domain":"apple.com","status":"ACTIVE","tld":"com","createDate":"2020-06-15","expireDate":"2026-06-15"}]}`))
			},
		},
		{
			name:    "in-band error on HTTP 200",
			wantErr: true,
			errMsg:  "API error: Invalid API key. (002)",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ERROR","message":"Invalid API key. (002)"}`))
			},
		},
		{
			name:    "non-2xx status",
			wantErr: true,
			errMsg:  "API request failed with status 503",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
				w.Write([]byte(`{"status":"SUCCESS"}`))
			},
		},
		{
			name:    "unparseable body",
			wantErr: true,
			errMsg:  "failed to decode API response",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html>gateway error</html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverFunc))
			defer server.Close()

			client := NewClient(server.URL, testCreds)
			domains, err := client.ListDomains()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			var got []string
			for _, d := range domains {
				got = append(got, d.Domain)
			}
			assert.Equal(t, tt.wantDomains, got)
		})
	}
}

func TestListRecords(t *testing.T) {
	tests := []struct {
		name        string
		domain      string
		wantErr     bool
		errMsg      string
		wantRecords int
		serverFunc  func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name:        "successful list",
			domain:      "example.com",
			wantRecords: 2,
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/dns/retrieve/example.com", r.URL.Path)

				w.Write([]byte(`{"status":"SUCCESS","records":[
					{"id":"106926659","name":"www.example.com","type":"A","content":"1.2.3.4","ttl":"600"},
					{"id":"106926660","name":"example.com","type":"MX","content":"mail.example.com","ttl":"600","prio":"10"}]}`))
			},
		},
		{
			name:   "empty zone",
			domain: "example.com",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"SUCCESS","records":[]}`))
			},
		},
		{
			name:    "empty domain name",
			domain:  "",
			wantErr: true,
			errMsg:  "domain name cannot be empty",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("should not make request with empty domain")
			},
		},
		{
			name:    "provider error",
			domain:  "example.com",
			wantErr: true,
			errMsg:  "API error: Domain is not opted in to API access.",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ERROR","message":"Domain is not opted in to API access."}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverFunc))
			defer server.Close()

			client := NewClient(server.URL, testCreds)
			records, err := client.ListRecords(tt.domain)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				assert.Len(t, records, tt.wantRecords)
			}
		})
	}
}

func TestCreateRecord(t *testing.T) {
	tests := []struct {
		name       string
		fields     RecordFields
		wantErr    bool
		errMsg     string
		wantID     string
		serverFunc func(w http.ResponseWriter, r *http.Request)
	}{
		{
			name:   "body is exactly credentials plus record fields",
			fields: RecordFields{Name: "www", Type: "A", Content: "1.2.3.4", TTL: 1200},
			wantID: "106926659",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "POST", r.Method)
				assert.Equal(t, "/dns/create/example.com", r.URL.Path)

				var payload map[string]any
				err := json.NewDecoder(r.Body).Decode(&payload)
				require.NoError(t, err)
				assert.Equal(t, map[string]any{
					"apikey":       "pk_test",
					"secretapikey": "sk_test",
					"name":         "www",
					"type":         "A",
					"content":      "1.2.3.4",
					"ttl":          "1200",
				}, payload)

				w.Write([]byte(`{"status":"SUCCESS","id":106926659}`))
			},
		},
		{
			name:   "omitted TTL defaults to 600",
			fields: RecordFields{Type: "TXT", Content: "v=spf1 mx ~all"},
			wantID: "42",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				var payload map[string]any
				err := json.NewDecoder(r.Body).Decode(&payload)
				require.NoError(t, err)
				assert.Equal(t, "600", payload["ttl"])
				assert.Equal(t, "v=spf1 mx ~all", payload["content"])
				assert.NotContains(t, payload, "name")
				assert.NotContains(t, payload, "prio")

				w.Write([]byte(`{"status":"SUCCESS","id":"42"}`))
			},
		},
		{
			name:   "MX with priority",
			fields: RecordFields{Type: "MX", Content: "mail.example.com", Prio: "10"},
			wantID: "7",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				var payload map[string]any
				err := json.NewDecoder(r.Body).Decode(&payload)
				require.NoError(t, err)
				assert.Equal(t, "10", payload["prio"])

				w.Write([]byte(`{"status":"SUCCESS","id":7}`))
			},
		},
		{
			name:    "TTL below floor rejected before any call",
			fields:  RecordFields{Type: "A", Content: "1.2.3.4", TTL: 599},
			wantErr: true,
			errMsg:  "below the provider minimum",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("should not make request with invalid TTL")
			},
		},
		{
			name:    "MX without priority rejected",
			fields:  RecordFields{Type: "MX", Content: "mail.example.com"},
			wantErr: true,
			errMsg:  "MX records require a priority",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("should not make request without priority")
			},
		},
		{
			name:    "unknown record type rejected",
			fields:  RecordFields{Type: "SPF", Content: "v=spf1"},
			wantErr: true,
			errMsg:  `unsupported record type "SPF"`,
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("should not make request with unknown type")
			},
		},
		{
			name:    "provider rejects create",
			fields:  RecordFields{Type: "A", Content: "1.2.3.4"},
			wantErr: true,
			errMsg:  "API error: We were unable to create the DNS record.",
			serverFunc: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"ERROR","message":"We were unable to create the DNS record."}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverFunc))
			defer server.Close()

			client := NewClient(server.URL, testCreds)
			id, err := client.CreateRecord("example.com", tt.fields)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestEditRecord(t *testing.T) {
	t.Run("unset fields omitted from payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/dns/edit/example.com/106926659", r.URL.Path)

			var payload map[string]any
			err := json.NewDecoder(r.Body).Decode(&payload)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{
				"apikey":       "pk_test",
				"secretapikey": "sk_test",
				"type":         "A",
				"content":      "5.6.7.8",
			}, payload)

			w.Write([]byte(`{"status":"SUCCESS"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, testCreds)
		err := client.EditRecord("example.com", "106926659", RecordFields{Type: "A", Content: "5.6.7.8"})
		require.NoError(t, err)
	})

	t.Run("missing id", func(t *testing.T) {
		client := NewClient("http://localhost:1", testCreds)
		err := client.EditRecord("example.com", "", RecordFields{Type: "A", Content: "5.6.7.8"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record id are required")
	})

	t.Run("validation failure", func(t *testing.T) {
		client := NewClient("http://localhost:1", testCreds)
		err := client.EditRecord("example.com", "1", RecordFields{Type: "SRV", Content: "0 5 5060 sip.example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SRV records require a priority")
	})
}

func TestDeleteRecord(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/dns/delete/example.com/106926659", r.URL.Path)

			var payload map[string]any
			err := json.NewDecoder(r.Body).Decode(&payload)
			require.NoError(t, err)
			assert.Equal(t, "pk_test", payload["apikey"])

			w.Write([]byte(`{"status":"SUCCESS"}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, testCreds)
		require.NoError(t, client.DeleteRecord("example.com", "106926659"))
	})

	t.Run("missing id", func(t *testing.T) {
		client := NewClient("http://localhost:1", testCreds)
		err := client.DeleteRecord("example.com", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "record id are required")
	})
}

func TestRecordFieldsValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  RecordFields
		wantErr string
	}{
		{name: "plain A record", fields: RecordFields{Type: "A", Content: "1.2.3.4"}},
		{name: "TTL at floor", fields: RecordFields{Type: "A", Content: "1.2.3.4", TTL: 600}},
		{name: "SRV with priority", fields: RecordFields{Type: "SRV", Content: "0 5 5060 sip.example.com", Prio: "0"}},
		{name: "missing content", fields: RecordFields{Type: "A"}, wantErr: "type and content are required"},
		{name: "lowercase type", fields: RecordFields{Type: "a", Content: "1.2.3.4"}, wantErr: "unsupported record type"},
		{name: "TTL just below floor", fields: RecordFields{Type: "A", Content: "1.2.3.4", TTL: 599}, wantErr: "below the provider minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "example.com", FullName("example.com", ""))
	assert.Equal(t, "www.example.com", FullName("example.com", "www"))
}
