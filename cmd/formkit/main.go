// Command formkit validates a JSON document against a form definition and
// prints either the formatted submission payload or the field errors.
//
//	formkit -def signup.yaml -data input.json [-env .env]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/formdef"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formkit", flag.ContinueOnError)
	fs.SetOutput(stderr)
	defPath := fs.String("def", "", "path to the form definition (YAML or JSON)")
	dataPath := fs.String("data", "-", "path to the JSON input, - for stdin")
	envFile := fs.String("env", "", "optional .env file with FORMKIT_* settings")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *defPath == "" {
		fmt.Fprintln(stderr, "formkit: -def is required")
		fs.Usage()
		return exitUsage
	}

	// Used until the configured logger exists.
	log := logger.New(logger.WithOutput(stderr), logger.WithFormat(logger.FormatText))

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := formkit.LoadConfig(envFiles...)
	if err != nil {
		log.Error("load config", logger.Error(err))
		return exitUsage
	}
	configured, err := formkit.NewLogger(cfg, stderr)
	if err != nil {
		log.Error("init logger", logger.Error(err))
		return exitUsage
	}
	log = configured

	svc, err := formkit.NewFromConfig(cfg, formkit.WithLogger(log))
	if err != nil {
		log.Error("init service", logger.Error(err))
		return exitUsage
	}

	def, err := formdef.LoadFile(*defPath)
	if err != nil {
		log.Error("load definition", logger.Error(err))
		return exitUsage
	}
	data, err := readData(*dataPath, stdin)
	if err != nil {
		log.Error("read data", logger.Error(err))
		return exitUsage
	}

	f := def.Build(svc)
	svc.PatchFormValues(f, data, def.MappedKeys()...)
	def.MatchFields(svc, f)

	payload, err := svc.Submit(f, def.FormatList())
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	switch {
	case validator.IsValidationError(err):
		_ = enc.Encode(map[string]any{"errors": formkit.FieldErrorMap(f)})
		return exitInvalid
	case err != nil:
		log.Error("format payload", logger.Error(err), slog.String("form", def.Name))
		return exitInvalid
	}
	if err := enc.Encode(payload); err != nil {
		log.Error("write payload", logger.Error(err))
		return exitInvalid
	}
	return exitOK
}
func readData(path string, stdin io.Reader) (map[string]any, error) {
	var r io.Reader = stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	}

	var data map[string]any
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return data, nil
}
