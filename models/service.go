package models

import "strings"

// Service types exposed by the ArcGIS Server admin API.
const (
	MapServer      = "MapServer"
	ImageServer    = "ImageServer"
	FeatureServer  = "FeatureServer"
	GPServer       = "GPServer"
	GeocodeServer  = "GeocodeServer"
	GeometryServer = "GeometryServer"
)

// DefaultServiceType is used when a ServiceRef carries no type.
const DefaultServiceType = MapServer

// ServiceRef identifies a service by name, optional folder and type.
type ServiceRef struct {
	Name   string `json:"serviceName" yaml:"serviceName"`
	Folder string `json:"folderName,omitempty" yaml:"folderName,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ServiceType returns the ref's type, falling back to DefaultServiceType.
func (r ServiceRef) ServiceType() string {
	if r.Type == "" {
		return DefaultServiceType
	}
	return r.Type
}

// Path renders "[folder/]name.type" relative to the services root.
func (r ServiceRef) Path() string {
	var b strings.Builder
	if r.Folder != "" {
		b.WriteString(r.Folder)
		b.WriteString("/")
	}
	b.WriteString(r.Name)
	b.WriteString(".")
	b.WriteString(r.ServiceType())
	return b.String()
}

func (r ServiceRef) String() string {
	return r.Path()
}
