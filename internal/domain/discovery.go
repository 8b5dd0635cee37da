package domain

import "encoding/json"

// DiscoveryResult is the status returned to the provider after a change
// notification.
type DiscoveryResult struct {
	Status         Status             `json:"status"`
	Type           string             `json:"type,omitempty"`
	FileName       string             `json:"file_name,omitempty"`
	Processed      bool               `json:"processed,omitempty"`
	Classification json.RawMessage    `json:"classification,omitempty"`
	Error          string             `json:"error,omitempty"`
	Files          []*DiscoveryResult `json:"files,omitempty"` // watermark mode only
}

// Notification carries the change notification headers sent by the
// file-storage provider.
type Notification struct {
	ResourceState string
	ResourceID    string
	ResourceURI   string
}
