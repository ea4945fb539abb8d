// Package api is a client for the ArcGIS Server administrative REST API.
//
// Every request carries f=json and, under the default token strategy, the
// session token obtained from the generateToken endpoint on first use.
// Service endpoints follow the template
//
//	{admin}/services/[{folder}/]{name}.{type}[/{action}]
//
// Failures are returned as-is: there is no retry or backoff.
package api
