// Package openapi embeds the OpenAPI document of the REST API.
package openapi

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the raw OpenAPI v3 document
//
//go:embed bangazon.yaml
var Document []byte

// Operation is a documented method and path, e.g. GET /orders/{id}
type Operation struct {
	Method string
	Path   string
}

type document struct {
	Paths map[string]map[string]yaml.Node `yaml:"paths"`
}

var httpMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true, "patch": true, "head": true, "options": true,
}

// Operations parses Document and lists every documented operation
func Operations() (map[Operation]bool, error) {
	var doc document
	if err := yaml.Unmarshal(Document, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}

	operations := make(map[Operation]bool)
	for path, item := range doc.Paths {
		for key := range item {
			if httpMethods[key] {
				operations[Operation{Method: strings.ToUpper(key), Path: path}] = true
			}
		}
	}
	return operations, nil
}
