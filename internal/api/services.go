package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/BerryBytes/agsctl/models"
)

// ServicesURL returns {admin}/services[/folder]. The folder is escaped as a
// single path segment.
func (c *Client) ServicesURL(folder string) string {
	if folder == "" {
		return c.AdminURL + "/services"
	}
	return c.AdminURL + "/services/" + url.PathEscape(folder)
}

// ServiceURL returns {admin}/services/[folder/]name.type[/action] with the
// folder and service segments escaped.
func (c *Client) ServiceURL(ref models.ServiceRef, action string) string {
	u := c.ServicesURL(ref.Folder) + "/" + url.PathEscape(ref.Name+"."+ref.ServiceType())
	if action != "" {
		u += "/" + action
	}
	return u
}

func (c *Client) GetServiceParams(ctx context.Context, ref models.ServiceRef) (map[string]any, error) {
	return c.Get(ctx, c.ServiceURL(ref, ""), nil)
}

// EditService replaces the service definition with service, sent as a JSON string.
func (c *Client) EditService(ctx context.Context, ref models.ServiceRef, service any) (map[string]any, error) {
	encoded, err := encodeService(service)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, c.ServiceURL(ref, "edit"), map[string]string{"service": encoded})
}

func (c *Client) DeleteService(ctx context.Context, ref models.ServiceRef) (map[string]any, error) {
	return c.Post(ctx, c.ServiceURL(ref, "delete"), nil)
}

func (c *Client) StartService(ctx context.Context, ref models.ServiceRef) (map[string]any, error) {
	return c.Post(ctx, c.ServiceURL(ref, "start"), nil)
}

func (c *Client) StopService(ctx context.Context, ref models.ServiceRef) (map[string]any, error) {
	return c.Post(ctx, c.ServiceURL(ref, "stop"), nil)
}

func (c *Client) ServiceStatus(ctx context.Context, ref models.ServiceRef) (map[string]any, error) {
	return c.Get(ctx, c.ServiceURL(ref, "status"), nil)
}

// ServiceExists asks {admin}/services/exists about ref.
func (c *Client) ServiceExists(ctx context.Context, ref models.ServiceRef) (bool, error) {
	resp, err := c.Post(ctx, c.ServicesURL("exists"), map[string]string{
		"folderName":  ref.Folder,
		"serviceName": ref.Name,
		"type":        ref.ServiceType(),
	})
	if err != nil {
		return false, err
	}
	exists, _ := resp["exists"].(bool)
	return exists, nil
}

func (c *Client) CreateService(ctx context.Context, folder string, service any) (map[string]any, error) {
	encoded, err := encodeService(service)
	if err != nil {
		return nil, err
	}
	return c.Post(ctx, c.ServicesURL(folder)+"/createService", map[string]string{"service": encoded})
}

func (c *Client) ListServices(ctx context.Context, folder string) (map[string]any, error) {
	return c.Get(ctx, c.ServicesURL(folder), nil)
}

func (c *Client) CreateFolder(ctx context.Context, folder, description string) (map[string]any, error) {
	return c.Post(ctx, c.ServicesURL("createFolder"), map[string]string{
		"folderName":  folder,
		"description": description,
	})
}

func encodeService(service any) (string, error) {
	switch s := service.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case json.RawMessage:
		return string(s), nil
	}
	b, err := json.Marshal(service)
	if err != nil {
		return "", fmt.Errorf("failed to encode service definition: %w", err)
	}
	return string(b), nil
}
