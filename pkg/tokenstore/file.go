package tokenstore

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

var ErrSealedToken = errors.New("tokenstore: can't open sealed token")

const nonceLen = 24

// File persists the token in a single file. With a non-empty secret the
// token is sealed with NaCl secretbox before it touches the disk.
type File struct {
	path   string
	key    *[32]byte
	sealed bool
}

func NewFile(path, secret string) *File {
	f := &File{path: path}
	if secret != "" {
		k := sha256.Sum256([]byte(secret))
		f.key = &k
		f.sealed = true
	}
	return f
}

// DefaultPath is <user config dir>/folio/token.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "folio", Key)
}

func (f *File) Load(context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore/file: can't read %s, %w", f.path, err)
	}
	content := strings.TrimSpace(string(raw))
	if content == "" || !f.sealed {
		return content, nil
	}
	return f.open(content)
}

func (f *File) Save(_ context.Context, token string) error {
	content := token
	if f.sealed {
		sealed, err := f.seal(token)
		if err != nil {
			return err
		}
		content = sealed
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore/file: can't create dir, %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".token-*")
	if err != nil {
		return fmt.Errorf("tokenstore/file: can't create temp file, %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("tokenstore/file: can't write token, %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tokenstore/file: can't close temp file, %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("tokenstore/file: can't replace %s, %w", f.path, err)
	}
	return nil
}

func (f *File) Delete(context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("tokenstore/file: can't remove %s, %w", f.path, err)
	}
	return nil
}

func (f *File) seal(token string) (string, error) {
	var nonce [nonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("tokenstore/file: can't read nonce, %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(token), &nonce, f.key)
	return base64.StdEncoding.EncodeToString(box), nil
}

func (f *File) open(content string) (string, error) {
	box, err := base64.StdEncoding.DecodeString(content)
	if err != nil || len(box) < nonceLen+secretbox.Overhead {
		return "", ErrSealedToken
	}
	var nonce [nonceLen]byte
	copy(nonce[:], box[:nonceLen])
	plain, ok := secretbox.Open(nil, box[nonceLen:], &nonce, f.key)
	if !ok {
		return "", ErrSealedToken
	}
	return string(plain), nil
}
