package dto

// ConfigRemotaRequest sets the remote mirror connection. Both fields empty
// (or DELETE on the same route) clears it and reverts to local-only mode.
type ConfigRemotaRequest struct {
	EndpointURL string `json:"endpointUrl" validate:"omitempty,url"`
	AccessKey   string `json:"accessKey"`
}

type SyncStatusResponse struct {
	Stato string `json:"stato"` // connected | error | none
}
