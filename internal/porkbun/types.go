package porkbun

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinTTL is the lowest TTL the provider accepts, in seconds.
	MinTTL = 600
	// DefaultTTL is used when a create call does not specify a TTL.
	DefaultTTL = 600
)

// RecordTypes are the DNS record types accepted by the API.
var RecordTypes = []string{
	"A", "AAAA", "CNAME", "MX", "TXT", "NS", "SRV", "TLSA", "CAA", "HTTPS", "SVCB", "SSHFP",
}

// ValidType reports whether t is a supported record type.
func ValidType(t string) bool {
	for _, rt := range RecordTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Credentials is the API key pair sent in the body of every request.
type Credentials struct {
	APIKey       string `json:"apikey"`
	SecretAPIKey string `json:"secretapikey"`
}

// Domain is one registered domain as returned by the domain listing endpoint.
type Domain struct {
	Domain     string `json:"domain"`
	Status     string `json:"status"`
	TLD        string `json:"tld"`
	CreateDate string `json:"createDate"`
	ExpireDate string `json:"expireDate"`
}

// Record is a single DNS record. The API serializes ttl and prio as strings.
type Record struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl"`
	Prio    string `json:"prio,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// RecordFields are the caller-supplied fields of a create or edit call.
// A zero TTL means unset; an empty Prio means unset.
type RecordFields struct {
	Name    string
	Type    string
	Content string
	TTL     int
	Prio    string
}

// Validate checks the field combination before any network call is made.
func (f RecordFields) Validate() error {
	if f.Type == "" || f.Content == "" {
		return fmt.Errorf("record type and content are required")
	}
	if !ValidType(f.Type) {
		return fmt.Errorf("unsupported record type %q (supported: %s)", f.Type, strings.Join(RecordTypes, ", "))
	}
	if f.TTL != 0 && f.TTL < MinTTL {
		return fmt.Errorf("ttl %d is below the provider minimum of %d seconds", f.TTL, MinTTL)
	}
	if (f.Type == "MX" || f.Type == "SRV") && f.Prio == "" {
		return fmt.Errorf("%s records require a priority", f.Type)
	}
	return nil
}

// recordPayload is the wire shape of a create or edit request body,
// with the credentials flattened alongside the record fields.
type recordPayload struct {
	Credentials
	Name    string `json:"name,omitempty"`
	Type    string `json:"type"`
	Content string `json:"content"`
	TTL     string `json:"ttl,omitempty"`
	Prio    string `json:"prio,omitempty"`
}

func (f RecordFields) payload(creds Credentials, fillDefaults bool) recordPayload {
	p := recordPayload{
		Credentials: creds,
		Name:        f.Name,
		Type:        f.Type,
		Content:     f.Content,
		Prio:        f.Prio,
	}
	switch {
	case f.TTL != 0:
		p.TTL = strconv.Itoa(f.TTL)
	case fillDefaults:
		p.TTL = strconv.Itoa(DefaultTTL)
	}
	return p
}

// FullName returns the fully qualified record name for a subdomain,
// or the bare domain when the subdomain is empty (a root record).
func FullName(domain, name string) string {
	if name == "" {
		return domain
	}
	return name + "." + domain
}
