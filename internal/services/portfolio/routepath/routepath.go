// Package routepath owns the public URL surface of the portfolio service.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Home         = "/"
	Projects     = "/projects"
	ProjectsTree = "/projects/"
	Certificates = "/certificates"
	About        = "/about"
	Resume       = "/resume"
	Contact      = "/contact"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
)

// Query parameters.
const (
	CategoryParam    = "category"
	CertificateParam = "cert"
)

// Project returns the detail path for slug.
func Project(slug string) string {
	return ProjectsTree + url.PathEscape(strings.TrimSpace(slug))
}

// ProjectsInCategory returns the projects path filtered by category.
func ProjectsInCategory(category string) string {
	if category == "" || category == "All" {
		return Projects
	}
	return Projects + "?" + url.Values{CategoryParam: {category}}.Encode()
}

// Certificate returns the certificates path with the detail dialog open.
func Certificate(id string) string {
	return Certificates + "?" + url.Values{CertificateParam: {id}}.Encode()
}

// Static returns the URL of an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(name, "/")
}
