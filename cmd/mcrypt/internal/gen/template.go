package gen

import (
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"unicode"

	"github.com/saylorsolutions/matrixcrypt/pkg/cryptor"
)

const (
	randomPasswordLen = 24
)

var (
	//go:embed embed.go.tmpl
	tmplText     string
	tmplTemplate = template.Must(template.New("template").Parse(tmplText))
)

type Params struct {
	Package        string
	Exposed        bool
	FileMethodName string
	Password       string
	MatrixSize     int
	DataString     string

	token          []byte
	fileData       []byte
	outDir         string
	targetFileName string
}

// FuncName is the name of the generated decrypt function.
func (p *Params) FuncName() string {
	if p.Exposed {
		return "Decrypt" + p.FileMethodName
	}
	return "decrypt" + p.FileMethodName
}

// ParamOpt operates on Params in a standard and predictable way, and is used in GenerateFile.
// If any ParamOpt returns an error, then file generation ceases and the error is returned.
type ParamOpt = func(params *Params) error

// ExposeFunctions indicates that generated functions should be exposed.
func ExposeFunctions(val ...bool) ParamOpt {
	return func(params *Params) error {
		if len(val) > 0 {
			params.Exposed = val[0]
			return nil
		}
		params.Exposed = true
		return nil
	}
}

// UsePassword sets a password to be used instead of generating one randomly.
func UsePassword(password string) ParamOpt {
	return func(params *Params) error {
		if len(password) == 0 {
			return errors.New("cannot use an empty password")
		}
		params.Password = password
		return nil
	}
}

// RandomPassword generates a random password from the OS entropy pool.
func RandomPassword() ParamOpt {
	return randomPassword
}

// MatrixSize sets the matrix size used to encrypt the embedded payload.
func MatrixSize(size int) ParamOpt {
	return func(params *Params) error {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", cryptor.ErrInvalidMatrixSize, size)
		}
		params.MatrixSize = size
		return nil
	}
}

// PackageName specifies the package name of the generated file.
// This is useful for cases where the expected package name doesn't match the name of the containing directory.
func PackageName(name string) ParamOpt {
	name = strings.TrimSpace(name)
	return func(params *Params) error {
		if len(name) == 0 {
			return nil
		}
		params.Package = name
		return nil
	}
}

// OutputDir writes the generated file to dir instead of the current directory.
func OutputDir(dir string) ParamOpt {
	return func(params *Params) error {
		params.outDir = dir
		return nil
	}
}

// GenerateFile will generate a file embedding the encrypted contents of the input file, and returns the path of the generated file.
// Various generation options may be passed as zero or more ParamOpt.
func GenerateFile(input string, opts ...ParamOpt) (string, error) {
	params, err := prepare(input, opts...)
	if err != nil {
		return "", err
	}

	target := filepath.Join(params.outDir, params.targetFileName+".go")
	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if err := render(out, params); err != nil {
		return "", fmt.Errorf("failed to write '%s': %w", target, err)
	}
	return target, nil
}

// render executes the template to out and closes it, reporting a failed close the same as a failed write.
func render(out io.WriteCloser, params *Params) (err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return tmplTemplate.Execute(out, params)
}

func prepare(input string, opts ...ParamOpt) (*Params, error) {
	params := &Params{
		MatrixSize: cryptor.DefaultMatrixSize,
	}
	if err := populateContextData(params); err != nil {
		return nil, err
	}
	if err := populateFileData(params, input); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(params); err != nil {
			return nil, err
		}
	}

	if len(params.Password) == 0 {
		if err := randomPassword(params); err != nil {
			return nil, err
		}
	}
	if err := encryptData(params); err != nil {
		return nil, err
	}
	return params, nil
}

func populateContextData(params *Params) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	params.Package = filepath.Base(cwd)
	return nil
}

var (
	fileCleansePattern = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

func populateFileData(params *Params, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return err
	}
	params.fileData = data
	_, fname := filepath.Split(file)
	params.FileMethodName = fileCleansePattern.ReplaceAllString(unicap(fname), "_")
	params.targetFileName = fileCleansePattern.ReplaceAllString(fname, "_")
	return nil
}

func randomPassword(params *Params) error {
	buf := make([]byte, randomPasswordLen)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("failed to generate password: %w", err)
	}
	params.Password = hex.EncodeToString(buf)
	return nil
}

func encryptData(params *Params) error {
	c, err := cryptor.New(cryptor.MatrixSize(params.MatrixSize))
	if err != nil {
		return err
	}
	token, err := c.Encrypt(params.fileData, params.Password)
	if err != nil {
		return err
	}
	params.token = token
	params.DataString = fmt.Sprintf("%#v", token)
	return nil
}

func unicap(s string) string {
	runes := []rune(s)
	switch len(runes) {
	case 0:
		return ""
	case 1:
		return string(unicode.ToUpper(runes[0]))
	default:
		return string(append([]rune{unicode.ToUpper(runes[0])}, runes[1:]...))
	}
}
