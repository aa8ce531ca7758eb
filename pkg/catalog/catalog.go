// Package catalog loads and models the product catalog: the read-only
// document mapping image identifiers to their registry, repo path, name and
// tag. The catalog is loaded once per reconciliation and handed to the
// resolver as plain data; nothing in this package talks to the cluster.
package catalog

import (
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/yaml"
)

// DefaultKey is the ConfigMap data key holding the catalog document.
const DefaultKey = "catalog.yaml"

// Entry describes one image in the product catalog.
type Entry struct {
	// Registry is the registry the image is published to. May be empty
	// when a configuration layer is expected to supply it.
	Registry string `json:"registry,omitempty"`

	// RepoPath is the default path segment between registry and name.
	RepoPath string `json:"repoPath,omitempty"`

	// Name is the image name.
	Name string `json:"name"`

	// Tag is the image tag.
	Tag string `json:"tag"`
}

// Catalog maps image identifiers to their entries.
type Catalog map[string]Entry

// document is the on-disk shape of the catalog.
type document struct {
	Images map[string]Entry `json:"images"`
}

// Parse decodes a catalog document. Entries must carry a name and a tag;
// registry and repoPath are optional.
func Parse(data []byte) (Catalog, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse product catalog: %w", err)
	}
	if len(doc.Images) == 0 {
		return nil, fmt.Errorf("product catalog defines no images")
	}

	// Deterministic validation order for stable error messages.
	ids := make([]string, 0, len(doc.Images))
	for id := range doc.Images {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := doc.Images[id]
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %q is missing a name", id)
		}
		if entry.Tag == "" {
			return nil, fmt.Errorf("catalog entry %q is missing a tag", id)
		}
	}

	return doc.Images, nil
}

// FromConfigMap extracts and parses the catalog document from a ConfigMap.
// An empty key selects DefaultKey.
func FromConfigMap(cm *corev1.ConfigMap, key string) (Catalog, error) {
	if key == "" {
		key = DefaultKey
	}
	data, ok := cm.Data[key]
	if !ok {
		return nil, fmt.Errorf("ConfigMap %s/%s has no %q key", cm.Namespace, cm.Name, key)
	}
	return Parse([]byte(data))
}

// Lookup returns the entry for the given image identifier.
func (c Catalog) Lookup(id string) (Entry, bool) {
	entry, ok := c[id]
	return entry, ok
}
