package porkbun

import "fmt"

// DeleteResult is the outcome of one delete attempt made by DeleteMatching.
type DeleteResult struct {
	ID   string
	Name string
	Err  error
}

// DeleteMatching deletes every record whose name and type exactly match
// the given subdomain (empty for root) and record type. It lists the
// domain's records first, filters client-side, then issues one delete
// call per match, continuing past individual failures so that partial
// success is reported rather than aborted. The returned slice holds one
// entry per matched record, in provider order. No matches is not an
// error: the result is empty and no delete calls are made.
func (c *Client) DeleteMatching(domain, name, recordType string) ([]DeleteResult, error) {
	if recordType == "" {
		return nil, fmt.Errorf("record type is required")
	}
	records, err := c.ListRecords(domain)
	if err != nil {
		return nil, err
	}

	fqdn := FullName(domain, name)
	var results []DeleteResult
	for _, r := range records {
		if r.Type != recordType {
			continue
		}
		// The API returns fully qualified names; accept the raw flag
		// value too for callers who pass the FQDN themselves.
		if r.Name != fqdn && (name == "" || r.Name != name) {
			continue
		}
		results = append(results, DeleteResult{
			ID:   r.ID,
			Name: r.Name,
			Err:  c.DeleteRecord(domain, r.ID),
		})
	}
	return results, nil
}
