package scene

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding scene")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(s); err != nil {
		return errors.Wrap(err, "encoding scene")
	}
	return encoder.Close()
}
