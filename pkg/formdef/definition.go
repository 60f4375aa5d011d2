package formdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Definition is a parsed form definition.
type Definition struct {
	Name      string     `yaml:"name"`
	FieldDefs []FieldDef `yaml:"fields"`

	validators map[string][]validator.Validator
}

// FieldDef describes one field of a definition.
type FieldDef struct {
	Name        string              `yaml:"name"`
	Value       any                 `yaml:"value"`
	Default     any                 `yaml:"default"`
	Validations []Rule              `yaml:"validations"`
	Format      string              `yaml:"format"`
	DateFormat  string              `yaml:"date_format"`
	MappedKey   string              `yaml:"mapped_key"`
	Match       string              `yaml:"match"`
	Options     *form.UpdateOptions `yaml:"options"`
}

// Rule names a registered validation rule and its optional argument.
type Rule struct {
	Rule  string `yaml:"rule"`
	Value any    `yaml:"value"`
}

var formatTypes = map[string]formkit.FormatType{
	string(formkit.FormatString):  formkit.FormatString,
	string(formkit.FormatNumber):  formkit.FormatNumber,
	string(formkit.FormatFloat):   formkit.FormatFloat,
	string(formkit.FormatBoolean): formkit.FormatBoolean,
	string(formkit.FormatDate):    formkit.FormatDate,
	string(formkit.FormatRemove):  formkit.FormatRemove,
	string(formkit.FormatAdd):     formkit.FormatAdd,
}

type loadConfig struct {
	registry *Registry
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithRegistry resolves rules through r instead of DefaultRegistry.
func WithRegistry(r *Registry) LoadOption {
	return func(c *loadConfig) {
		if r != nil {
			c.registry = r
		}
	}
}

// Load parses a YAML or JSON definition from r, checks it and resolves
// every validation rule. Unknown keys are rejected.
func Load(r io.Reader, opts ...LoadOption) (*Definition, error) {
	cfg := loadConfig{registry: DefaultRegistry()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if err := def.compile(cfg.registry); err != nil {
		return nil, err
	}
	return &def, nil
}

// LoadFile reads the definition stored at path.
func LoadFile(path string, opts ...LoadOption) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	def, err := Load(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func (d *Definition) compile(registry *Registry) error {
	var errs []error
	seen := make(map[string]struct{}, len(d.FieldDefs))
	d.validators = make(map[string][]validator.Validator, len(d.FieldDefs))

	for i, f := range d.FieldDefs {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("%w: field #%d has no name", ErrInvalidDefinition, i+1))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate field %q", ErrInvalidDefinition, name))
			continue
		}
		seen[name] = struct{}{}
		d.FieldDefs[i].Name = name

		if f.Format != "" {
			if _, ok := formatTypes[f.Format]; !ok {
				errs = append(errs, fmt.Errorf("%w: field %q: unknown format %q", ErrInvalidDefinition, name, f.Format))
			}
		}
		for _, rule := range f.Validations {
			v, err := registry.Build(rule)
			if err != nil {
				errs = append(errs, fmt.Errorf("field %q: %w", name, err))
				continue
			}
			d.validators[name] = append(d.validators[name], v)
		}
	}
	for _, f := range d.FieldDefs {
		if f.Match == "" {
			continue
		}
		if _, ok := seen[f.Match]; !ok || f.Match == f.Name {
			errs = append(errs, fmt.Errorf("%w: field %q: match target %q", ErrInvalidDefinition, f.Name, f.Match))
		}
	}
	return errors.Join(errs...)
}

// Fields returns one descriptor per field, carrying its initial value,
// default, validators, options and format settings.
func (d *Definition) Fields() []formkit.Field {
	out := make([]formkit.Field, 0, len(d.FieldDefs))
	for _, f := range d.FieldDefs {
		out = append(out, formkit.Field{
			Name:         f.Name,
			Validations:  d.validators[f.Name],
			DefaultValue: f.Default,
			Value:        f.Value,
			Options:      f.Options,
			FormatType:   formatTypes[f.Format],
			DateFormat:   f.DateFormat,
			MappedKey:    f.MappedKey,
		})
	}
	return out
}

// FormatList returns the descriptors of fields that declare a format, in
// definition order, ready for Service.FormatPayload.
func (d *Definition) FormatList() []formkit.Field {
	var out []formkit.Field
	for _, f := range d.Fields() {
		if f.FormatType != "" {
			out = append(out, f)
		}
	}
	return out
}

// MappedKeys returns the descriptors of fields that declare a mapped source
// key, ready for Service.PatchFormValues.
func (d *Definition) MappedKeys() []formkit.Field {
	var out []formkit.Field
	for _, f := range d.Fields() {
		if f.MappedKey != "" {
			out = append(out, f)
		}
	}
	return out
}

// MatchFields runs svc.MatchFields for every field that declares a match
// target, flagging the field with mustMatch when it differs from the target.
// Call it after the form values are patched.
func (d *Definition) MatchFields(svc *formkit.Service, f form.Form) {
	for _, field := range d.FieldDefs {
		if field.Match != "" {
			svc.MatchFields(f, field.Match, field.Name)
		}
	}
}

// Build initialises a form from the definition with svc.
func (d *Definition) Build(svc *formkit.Service, opts ...form.GroupOption) *form.Group {
	if d.Name != "" {
		opts = append([]form.GroupOption{form.WithID(d.Name)}, opts...)
	}
	return svc.InitializeForm(d.Fields(), opts...)
}
