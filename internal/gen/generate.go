package gen

import (
	"fmt"
	"os"
	"path"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/koskimas/deepmatch/internal/config"
	"github.com/koskimas/deepmatch/internal/match"
)

const (
	pkgDeepmatch = "github.com/koskimas/deepmatch"
	pkgTime      = "time"

	idFuncPattern = "Pattern"
	idFuncKind    = "Kind"
	idVarPrefix   = "Expected"
)

// Fixture is a decoded expected document together with the name of the case
// it belongs to.
type Fixture struct {
	Name  string
	Value any
}

// GenerateCode writes the expected fixtures as Go variables into the package
// configured in `cfg.Package.Path`.
func GenerateCode(cfg config.Config, workingDir string, fixtures []Fixture) error {
	f, err := generateFile(path.Base(cfg.Package.Path), fixtures)
	if err != nil {
		return err
	}

	return writeFixturesToFile(f, cfg, workingDir)
}

func generateFile(pkgName string, fixtures []Fixture) (*jen.File, error) {
	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by deepmatch gen. DO NOT EDIT.")

	names := make(map[string]string, len(fixtures))

	for _, fx := range fixtures {
		name := getVarName(fx.Name)

		if prev, ok := names[name]; ok {
			return nil, fmt.Errorf(`cases "%s" and "%s" both generate variable "%s"`, prev, fx.Name, name)
		}

		names[name] = fx.Name

		value, err := genValue(fx.Value, match.Path{})
		if err != nil {
			return nil, fmt.Errorf(`in case "%s": %w`, fx.Name, err)
		}

		f.Commentf("%s is the expected value of case %q.", name, fx.Name)
		f.Var().Id(name).Op("=").Add(value)
		f.Empty()
	}

	return f, nil
}

func genValue(v any, p match.Path) (jen.Code, error) {
	switch v := v.(type) {
	case nil:
		return jen.Nil(), nil
	case bool, int, int64, float64, string:
		return jen.Lit(v), nil
	case time.Time:
		return genTime(v), nil
	case *regexp.Regexp:
		return jen.Qual(pkgDeepmatch, idFuncPattern).Call(jen.Lit(v.String())), nil
	case match.TypeClass:
		return genKind(v.Type, p)
	case map[string]any:
		return genMap(v, p)
	case []any:
		return genSlice(v, p)
	}

	return nil, fmt.Errorf(`unsupported value of type %T at '%s'`, v, p)
}

func genTime(t time.Time) jen.Code {
	return jen.Qual(pkgTime, "Unix").Call(
		jen.Lit(int(t.Unix())),
		jen.Lit(t.Nanosecond()),
	).Dot("UTC").Call()
}

func genKind(t reflect.Type, p match.Path) (jen.Code, error) {
	typ, err := genType(t)
	if err != nil {
		return nil, fmt.Errorf(`at '%s': %w`, p, err)
	}

	return jen.Qual(pkgDeepmatch, idFuncKind).Types(typ).Call(), nil
}

func genType(t reflect.Type) (jen.Code, error) {
	if t == nil {
		return nil, fmt.Errorf(`missing kind type`)
	}

	if t.Name() != "" {
		if t.PkgPath() != "" {
			return jen.Qual(t.PkgPath(), t.Name()), nil
		}

		return jen.Id(t.Name()), nil
	}

	switch t.Kind() {
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return jen.Id("any"), nil
		}
	case reflect.Map:
		key, err := genType(t.Key())
		if err != nil {
			return nil, err
		}

		elem, err := genType(t.Elem())
		if err != nil {
			return nil, err
		}

		return jen.Map(key).Add(elem), nil
	case reflect.Slice:
		elem, err := genType(t.Elem())
		if err != nil {
			return nil, err
		}

		return jen.Index().Add(elem), nil
	}

	return nil, fmt.Errorf(`unsupported kind type %s`, t)
}

func genMap(m map[string]any, p match.Path) (jen.Code, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	items := jen.Dict{}

	for _, k := range keys {
		value, err := genValue(m[k], p.Append(match.Key(k)))
		if err != nil {
			return nil, err
		}

		items[jen.Lit(k)] = value
	}

	return jen.Map(jen.String()).Id("any").Values(items), nil
}

func genSlice(s []any, p match.Path) (jen.Code, error) {
	items := make([]jen.Code, 0, len(s))

	for i, e := range s {
		value, err := genValue(e, p.Append(match.Index(i)))
		if err != nil {
			return nil, err
		}

		items = append(items, value)
	}

	return jen.Index().Id("any").Values(items...), nil
}

func writeFixturesToFile(f *jen.File, cfg config.Config, workingDir string) error {
	filePath := path.Join(workingDir, cfg.Package.Path) + ".go"

	if err := os.MkdirAll(path.Dir(filePath), 0700); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(f.GoString()), 0600)
}

// getVarName turns a case name like `person-with_pets` into `ExpectedPersonWithPets`.
func getVarName(caseName string) string {
	parts := strings.FieldsFunc(caseName, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	name := idVarPrefix
	for _, p := range parts {
		name += firstUpper(p)
	}

	return name
}

func firstUpper(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
