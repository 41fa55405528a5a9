package models

// RemoteStatusConnected is reported for every configured remote. No
// connectivity probe backs it.
const RemoteStatusConnected = "Connected"

// ProviderUnknown is the provider label used when a remote's backend type
// cannot be determined.
const ProviderUnknown = "Unknown"

// Remote is a configured rclone backend, addressed by Name in every other
// operation.
type Remote struct {
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// RemoteConfigRequest carries the fields of a remote create call. The
// config endpoints accept it but do not act on it.
type RemoteConfigRequest struct {
	Name     string            `json:"name"`
	Provider string            `json:"provider"`
	Params   map[string]string `json:"params,omitempty"`
}
