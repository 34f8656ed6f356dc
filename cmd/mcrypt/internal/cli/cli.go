package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/saylorsolutions/matrixcrypt/pkg/cryptor"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	EncryptedExt = ".mcr"
	decryptedExt = ".out"
)

var (
	ErrNoPassword = errors.New("no password available")
)

// Mode selects the direction of a Processor operation.
type Mode int

const (
	Encrypt Mode = iota
	Decrypt
)

func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a sub-command name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "encrypt", "enc":
		return Encrypt, nil
	case "decrypt", "dec":
		return Decrypt, nil
	default:
		return 0, fmt.Errorf("unknown command '%s'", name)
	}
}

// Processor applies a Cryptor to streams and files.
// It holds no per-call state, so Files may process inputs concurrently.
type Processor struct {
	Cryptor  *cryptor.Cryptor
	Password string
	// Text reads and writes URL-safe base64 tokens instead of raw bytes.
	Text   bool
	OutDir string
	Log    log.FieldLogger
}

func (p *Processor) transform(mode Mode, data []byte) ([]byte, error) {
	switch {
	case mode == Encrypt && p.Text:
		token, err := p.Cryptor.EncryptText(string(data), p.Password)
		if err != nil {
			return nil, err
		}
		return []byte(token + "\n"), nil
	case mode == Encrypt:
		return p.Cryptor.Encrypt(data, p.Password)
	case p.Text:
		plain, err := p.Cryptor.DecryptText(strings.TrimSpace(string(data)), p.Password)
		if err != nil {
			return nil, err
		}
		return []byte(plain), nil
	default:
		return p.Cryptor.Decrypt(data, p.Password)
	}
}

// Stream reads all of in, and writes the transformed result to out.
func (p *Processor) Stream(mode Mode, in io.Reader, out io.Writer) error {
	if !p.Text {
		return p.rawStream(mode, in, out)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	result, err := p.transform(mode, data)
	if err != nil {
		return fmt.Errorf("failed to %s input: %w", mode, err)
	}
	_, err = out.Write(result)
	return err
}

func (p *Processor) rawStream(mode Mode, in io.Reader, out io.Writer) error {
	if mode == Decrypt {
		_, err := io.Copy(out, cryptor.NewReader(in, p.Cryptor, p.Password))
		if err != nil {
			return fmt.Errorf("failed to %s input: %w", mode, err)
		}
		return nil
	}
	w := cryptor.NewWriter(out, p.Cryptor, p.Password)
	if _, err := io.Copy(w, in); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to %s input: %w", mode, err)
	}
	return nil
}

// OutputPath determines where the result for input is written.
// Encrypted files get EncryptedExt appended, decrypted files have it removed, or get ".out" added if it's missing.
func OutputPath(mode Mode, input, outDir string) string {
	dir, name := filepath.Split(input)
	if outDir != "" {
		dir = outDir
	}
	switch {
	case mode == Encrypt:
		name += EncryptedExt
	case strings.HasSuffix(name, EncryptedExt) && len(name) > len(EncryptedExt):
		name = strings.TrimSuffix(name, EncryptedExt)
	default:
		name += decryptedExt
	}
	return filepath.Join(dir, name)
}

// Files transforms each file, writing results according to OutputPath.
// Files are processed concurrently, and the first failure cancels anything not yet started.
func (p *Processor) Files(ctx context.Context, mode Mode, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return p.file(mode, file)
		})
	}
	return g.Wait()
}

func (p *Processor) file(mode Mode, input string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	result, err := p.transform(mode, data)
	if err != nil {
		return fmt.Errorf("failed to %s '%s': %w", mode, input, err)
	}
	target := OutputPath(mode, input, p.OutDir)
	if err := os.WriteFile(target, result, 0600); err != nil {
		return err
	}
	p.logger().WithFields(log.Fields{
		"input":  input,
		"output": target,
		"bytes":  len(result),
	}).Debugf("%sed file", mode)
	return nil
}

func (p *Processor) logger() log.FieldLogger {
	if p.Log == nil {
		l := log.New()
		l.Out = io.Discard
		return l
	}
	return p.Log
}

// ResolvePassword picks the first available password from the flag value, the named environment variable, or the prompt.
// The prompt is skipped if it's nil.
func ResolvePassword(flagValue, envName string, prompt func() ([]byte, error)) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envName != "" {
		if val, ok := os.LookupEnv(envName); ok && val != "" {
			return val, nil
		}
	}
	if prompt == nil {
		return "", ErrNoPassword
	}
	pass, err := prompt()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	pass = bytes.TrimRight(pass, "\r\n")
	if len(pass) == 0 {
		return "", ErrNoPassword
	}
	return string(pass), nil
}
