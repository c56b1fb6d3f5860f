package storagekey

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// RequestFile is the YAML document form of a batch of requests:
//
//	requests:
//	  - namespace: ModuleAbc
//	    item: Map2
//	    params:
//	      - hasher: twox64_concat
//	        type: u32
//	        value: "1"
type RequestFile struct {
	Requests []Request `yaml:"requests"`
}

// LoadRequestsYAML decodes a RequestFile, rejecting unknown fields.
func LoadRequestsYAML(r io.Reader) ([]Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f RequestFile
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("storagekey: decoding request file: %w", err)
	}
	return f.Requests, nil
}

// ParseRequestsYAML is LoadRequestsYAML over a byte slice.
func ParseRequestsYAML(data []byte) ([]Request, error) {
	return LoadRequestsYAML(bytes.NewReader(data))
}
