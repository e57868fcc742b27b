package model

// ConfigRemota holds the optional remote mirror connection. Both fields
// non-empty means sync is enabled; anything else is local-only mode.
type ConfigRemota struct {
	EndpointURL string `json:"endpointUrl"`
	AccessKey   string `json:"accessKey"`
}

func (c ConfigRemota) Attiva() bool {
	return c.EndpointURL != "" && c.AccessKey != ""
}
