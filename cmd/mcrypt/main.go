package main

import (
	"context"
	"fmt"
	"os"

	"github.com/saylorsolutions/matrixcrypt/cmd/internal"
	"github.com/saylorsolutions/matrixcrypt/cmd/mcrypt/internal/cli"
	"github.com/saylorsolutions/matrixcrypt/cmd/mcrypt/internal/conf"
	"github.com/saylorsolutions/matrixcrypt/cmd/mcrypt/internal/gen"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

var version = "dev"

const usageHeader = `
mcrypt obfuscates files and text with a password, using the matrix shuffle and mix token format.

USAGE:
    mcrypt encrypt [FLAGS] [FILE...]
    mcrypt decrypt [FLAGS] [FILE...]
    mcrypt embed   [FLAGS] FILE
    mcrypt version

When no FILE is given, encrypt and decrypt read stdin and write to stdout.
Encrypted files are written next to the input with a .mcr extension, unless --out-dir is set.
embed generates a Go file containing the encrypted input and a function to decrypt it, in the same way as go:generate friendly tools.

The password is taken from --password, then the environment variable named by --password-env (default MCRYPT_PASSWORD), then an interactive prompt.

FLAGS:
%s
SECURITY:
    This is not encryption in any vetted sense, it's reversible obfuscation without authentication.
The matrix size is not stored in the token, so both sides must use the same value.
`

type options struct {
	help        bool
	verbose     bool
	text        bool
	exposed     bool
	matrix      int
	password    string
	passwordEnv string
	configFile  string
	outDir      string
	pkg         string
}

func main() {
	var opts options
	flags := flag.NewFlagSet("mcrypt", flag.ContinueOnError)
	flags.BoolVarP(&opts.help, "help", "h", false, "Prints this usage information.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enables debug logging.")
	flags.BoolVarP(&opts.text, "text", "t", false, "Reads and writes tokens as URL-safe base64 text. Payloads must be valid UTF-8 to decrypt in this mode.")
	flags.BoolVarP(&opts.exposed, "exposed", "E", false, "Make the generated decrypt function exposed (embed only).")
	flags.IntVarP(&opts.matrix, "matrix", "m", 0, "Matrix size to use, must match between encryption and decryption. Defaults to 32.")
	flags.StringVarP(&opts.password, "password", "p", "", "Password to use. Prefer --password-env to keep it out of shell history.")
	flags.StringVar(&opts.passwordEnv, "password-env", "", "Environment variable to read the password from.")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML profile with default settings.")
	flags.StringVarP(&opts.outDir, "out-dir", "o", "", "Directory to write output files to.")
	flags.StringVar(&opts.pkg, "package", "", "Package name of the generated file (embed only). Defaults to the current directory name.")
	flags.Usage = func() {
		fmt.Printf(usageHeader, flags.FlagUsages())
	}
	if len(os.Args) < 2 {
		flags.Usage()
		return
	}
	command := os.Args[1]
	if err := flags.Parse(os.Args[2:]); err != nil {
		flags.Usage()
		internal.Fatal("Error parsing flags: %v", err)
	}
	if opts.help || command == "help" || command == "-h" || command == "--help" {
		flags.Usage()
		return
	}
	if command == "version" {
		internal.Echo("mcrypt %s", version)
		return
	}

	cfg := conf.Default()
	if opts.configFile != "" {
		var err error
		cfg, err = conf.LoadFromFile(opts.configFile)
		if err != nil {
			internal.Fatal("Failed to load config: %v", err)
		}
	}
	applyFlags(cfg, flags, opts)
	if err := cfg.Validate(); err != nil {
		internal.Fatal("Invalid configuration: %v", err)
	}
	logger, err := internal.NewLogger(cfg.LogLevel, opts.verbose)
	if err != nil {
		internal.Fatal("%v", err)
	}
	logger.Debugf("Using matrix size %d", cfg.Matrix)

	if command == "embed" {
		// embed generates a random password rather than prompting.
		password, _ := cli.ResolvePassword(opts.password, cfg.PasswordEnv, nil)
		if flags.NArg() != 1 {
			internal.Fatal("embed requires exactly one FILE argument")
		}
		genOpts := []gen.ParamOpt{
			gen.MatrixSize(cfg.Matrix),
			gen.ExposeFunctions(opts.exposed),
			gen.PackageName(opts.pkg),
			gen.OutputDir(cfg.OutDir),
		}
		if password != "" {
			genOpts = append(genOpts, gen.UsePassword(password))
		} else {
			genOpts = append(genOpts, gen.RandomPassword())
		}
		target, err := gen.GenerateFile(flags.Arg(0), genOpts...)
		if err != nil {
			internal.Fatal("Failed to generate file: %v", err)
		}
		logger.Debugf("Generated %s", target)
		return
	}

	mode, err := cli.ParseMode(command)
	if err != nil {
		flags.Usage()
		internal.Fatal("%v", err)
	}
	password, err := cli.ResolvePassword(opts.password, cfg.PasswordEnv, promptPassword)
	if err != nil {
		internal.Fatal("Unable to get password: %v", err)
	}
	c, err := cfg.Cryptor()
	if err != nil {
		internal.Fatal("%v", err)
	}
	proc := &cli.Processor{
		Cryptor:  c,
		Password: password,
		Text:     cfg.Text,
		OutDir:   cfg.OutDir,
		Log:      logger,
	}
	if flags.NArg() == 0 {
		if err := proc.Stream(mode, os.Stdin, os.Stdout); err != nil {
			internal.Fatal("%v", err)
		}
		return
	}
	if err := proc.Files(context.Background(), mode, flags.Args()); err != nil {
		internal.Fatal("%v", err)
	}
}

// applyFlags overrides config values with any flags that were explicitly set.
func applyFlags(cfg *conf.Conf, flags *flag.FlagSet, opts options) {
	if flags.Changed("matrix") {
		cfg.SetMatrix(opts.matrix)
	}
	if flags.Changed("password-env") {
		cfg.PasswordEnv = opts.passwordEnv
	}
	if flags.Changed("text") {
		cfg.Text = opts.text
	}
	if flags.Changed("out-dir") {
		cfg.OutDir = opts.outDir
	}
}

func promptPassword() ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	_, _ = fmt.Fprint(os.Stderr, "Password: ")
	defer func() {
		_, _ = fmt.Fprintln(os.Stderr)
	}()
	return term.ReadPassword(fd)
}
