package api

import (
	"context"
	"net/http"

	"github.com/BerryBytes/agsctl/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AdminClient is the surface the CLI depends on.
type AdminClient interface {
	Token(ctx context.Context) (string, error)
	Get(ctx context.Context, url string, params map[string]string) (map[string]any, error)
	Post(ctx context.Context, url string, params map[string]string) (map[string]any, error)

	GetServiceParams(ctx context.Context, ref models.ServiceRef) (map[string]any, error)
	EditService(ctx context.Context, ref models.ServiceRef, service any) (map[string]any, error)
	DeleteService(ctx context.Context, ref models.ServiceRef) (map[string]any, error)
	ServiceExists(ctx context.Context, ref models.ServiceRef) (bool, error)
	CreateService(ctx context.Context, folder string, service any) (map[string]any, error)
	StartService(ctx context.Context, ref models.ServiceRef) (map[string]any, error)
	StopService(ctx context.Context, ref models.ServiceRef) (map[string]any, error)
	ServiceStatus(ctx context.Context, ref models.ServiceRef) (map[string]any, error)
	ListServices(ctx context.Context, folder string) (map[string]any, error)
	CreateFolder(ctx context.Context, folder, description string) (map[string]any, error)
}

var _ AdminClient = (*Client)(nil)
