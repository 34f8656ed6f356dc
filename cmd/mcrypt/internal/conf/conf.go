package conf

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/saylorsolutions/matrixcrypt/pkg/cryptor"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultPasswordEnv = "MCRYPT_PASSWORD"
	DefaultLogLevel    = "info"
)

// Conf is an optional profile for mcrypt, so matching settings can be shared between both sides of an exchange.
// Command line flags take precedence over values loaded from a file.
type Conf struct {
	// Matrix is the block size, which must match between encryption and decryption.
	Matrix int `yaml:"matrix"`
	// PasswordEnv names the environment variable holding the password.
	PasswordEnv string `yaml:"password_env"`
	// Text reads and writes tokens as URL-safe base64.
	Text     bool   `yaml:"text"`
	OutDir   string `yaml:"out_dir"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a Conf with every default applied.
func Default() *Conf {
	c := new(Conf)
	c.setDefaults()
	return c
}

// LoadFromFile reads a YAML profile, applying defaults for anything left unset.
func LoadFromFile(path string) (*Conf, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Conf
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Conf) setDefaults() {
	if c.Matrix == 0 {
		c.Matrix = cryptor.DefaultMatrixSize
	}
	if c.PasswordEnv == "" {
		c.PasswordEnv = DefaultPasswordEnv
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// SetMatrix overrides the matrix size, unless size is not positive.
func (c *Conf) SetMatrix(size int) {
	if size > 0 {
		c.Matrix = size
	}
}

// Validate checks values that defaults can't fix.
func (c *Conf) Validate() error {
	if c.Matrix <= 0 {
		return fmt.Errorf("matrix must be positive, got %d", c.Matrix)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	return nil
}

// Cryptor builds a Cryptor from the configured matrix size.
func (c *Conf) Cryptor() (*cryptor.Cryptor, error) {
	return cryptor.New(cryptor.MatrixSize(c.Matrix))
}
