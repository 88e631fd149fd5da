package singleton

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SerialSafe can be encoded, but decoding never yields a second instance.
type SerialSafe struct{ identity }

var serialSafeInstance = &SerialSafe{newIdentity()}

// SerialSafeInstance returns the canonical instance.
func SerialSafeInstance() *SerialSafe { return serialSafeInstance }

type serialSafeSnapshot struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Encode serializes s as YAML.
func (s *SerialSafe) Encode() ([]byte, error) {
	return yaml.Marshal(serialSafeSnapshot{ID: s.id, CreatedAt: s.createdAt})
}

// DecodeSerialSafe validates a payload produced by Encode and returns the
// canonical instance. The identity stored in the payload is discarded.
func DecodeSerialSafe(data []byte) (*SerialSafe, error) {
	var snap serialSafeSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode serial singleton: %w", err)
	}
	if _, err := uuid.Parse(snap.ID); err != nil {
		return nil, fmt.Errorf("decode serial singleton: invalid id: %w", err)
	}
	return serialSafeInstance, nil
}
