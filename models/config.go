package models

// Config is the on-disk configuration file layout.
type Config struct {
	ArcGIS struct {
		AdminURL    string `json:"admin_url" yaml:"admin_url"`
		TokenURL    string `json:"token_url,omitempty" yaml:"token_url,omitempty"`
		PortalURL   string `json:"portal_url,omitempty" yaml:"portal_url,omitempty"`
		Username    string `json:"username,omitempty" yaml:"username,omitempty"`
		Password    string `json:"password,omitempty" yaml:"password,omitempty"`
		AuthType    string `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
		VerifyCerts *bool  `json:"verify_certs,omitempty" yaml:"verify_certs,omitempty"`
		Timeout     string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	} `json:"arcgis" yaml:"arcgis"`
	AWS struct {
		Region  string `json:"region,omitempty" yaml:"region,omitempty"`
		Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`
	} `json:"aws,omitempty" yaml:"aws,omitempty"`
}
