package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/lifeassist/goals/internal/core/domain"
	"github.com/lifeassist/goals/internal/core/ports"
)

const (
	sealedPrefix = "sealed:v1:"
	keySalt      = "lifeassist/session/v1"
	nonceSize    = 24
)

var errUnsealable = errors.New("sealed value cannot be opened")

// SealedStore encrypts selected fields before they reach the inner store.
// By default only the password is sealed.
type SealedStore struct {
	inner  ports.SessionStore
	key    [32]byte
	sealed map[string]struct{}
	log    zerolog.Logger
}

var _ ports.SessionStore = (*SealedStore)(nil)

// NewSealedStore derives the sealing key from secret with scrypt.
func NewSealedStore(inner ports.SessionStore, secret string, log zerolog.Logger, fields ...string) (*SealedStore, error) {
	if secret == "" {
		return nil, fmt.Errorf("session: sealing secret is empty")
	}
	raw, err := scrypt.Key([]byte(secret), []byte(keySalt), 1<<15, 8, 1, 32)
	if err != nil {
		return nil, fmt.Errorf("session: derive key: %w", err)
	}
	if len(fields) == 0 {
		fields = []string{domain.FieldPassword}
	}

	s := &SealedStore{inner: inner, sealed: make(map[string]struct{}, len(fields)), log: log}
	copy(s.key[:], raw)
	for _, f := range fields {
		s.sealed[f] = struct{}{}
	}
	return s, nil
}

func (s *SealedStore) Get(field string) (string, bool) {
	v, ok := s.inner.Get(field)
	if !ok || !s.isSealed(field) || v == "" {
		return v, ok
	}
	plain, err := s.open(v)
	if err != nil {
		s.log.Warn().Err(err).Str("field", field).Msg("discarding unreadable sealed session value")
		return "", false
	}
	return plain, true
}

func (s *SealedStore) Set(fields map[string]string) error {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if s.isSealed(k) && v != "" {
			box, err := s.seal(v)
			if err != nil {
				return err
			}
			v = box
		}
		out[k] = v
	}
	return s.inner.Set(out)
}

func (s *SealedStore) Clear() error { return s.inner.Clear() }

func (s *SealedStore) isSealed(field string) bool {
	_, ok := s.sealed[field]
	return ok
}

func (s *SealedStore) seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("session: nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(plain), &nonce, &s.key)
	return sealedPrefix + base64.RawStdEncoding.EncodeToString(box), nil
}

func (s *SealedStore) open(value string) (string, error) {
	encoded, ok := strings.CutPrefix(value, sealedPrefix)
	if !ok {
		return "", errUnsealable
	}
	box, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(box) < nonceSize {
		return "", errUnsealable
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", errUnsealable
	}
	return string(plain), nil
}
