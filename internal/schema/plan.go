package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dgallion1/edgarparse/internal/value"
)

type fieldKind int

const (
	kindString fieldKind = iota
	kindBool
	kindInt
	kindFloat
	kindValue
	kindValueFootnote
	kindRecord
	kindRecords
	kindIntList
)

type source int

const (
	fromChild source = iota
	fromAttr
	fromText
	fromFootnoteRef
)

type field struct {
	index     int
	tag       string
	container string // for kindRecords with "container>item"
	required  bool
	source    source
	kind      fieldKind
	elem      reflect.Type // record type for kindRecord/kindRecords
}

var (
	planCache sync.Map // reflect.Type -> []field

	typeString        = reflect.TypeOf("")
	typeBool          = reflect.TypeOf(false)
	typeInt64         = reflect.TypeOf(int64(0))
	typeFloat64       = reflect.TypeOf(float64(0))
	typeValue         = reflect.TypeOf(value.Value{})
	typeValueFootnote = reflect.TypeOf(ValueFootnote{})
)

// planFor returns the cached field table of a record type. Tag mistakes are
// programming errors and panic on first use.
func planFor(t reflect.Type) []field {
	if p, ok := planCache.Load(t); ok {
		return p.([]field)
	}
	p, err := buildPlan(t)
	if err != nil {
		panic(err)
	}
	actual, _ := planCache.LoadOrStore(t, p)
	return actual.([]field)
}

func buildPlan(t reflect.Type) ([]field, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("edgar")
		if !ok || tag == "-" {
			continue
		}
		f, err := parseField(i, sf, tag)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t.Name(), sf.Name, err)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func parseField(index int, sf reflect.StructField, tag string) (field, error) {
	parts := strings.Split(tag, ",")
	f := field{index: index, tag: parts[0]}
	for _, opt := range parts[1:] {
		switch opt {
		case "required":
			f.required = true
		case "attr":
			f.source = fromAttr
		case "text":
			f.source = fromText
		case "footnote":
			f.source = fromFootnoteRef
		default:
			return f, fmt.Errorf("unknown option %q", opt)
		}
	}
	if container, item, ok := strings.Cut(f.tag, ">"); ok {
		f.container, f.tag = container, item
	}
	if f.tag == "" && f.source != fromText {
		return f, fmt.Errorf("empty tag")
	}

	t := sf.Type
	switch t.Kind() {
	case reflect.Pointer:
		switch e := t.Elem(); e {
		case typeString:
			f.kind = kindString
		case typeBool:
			f.kind = kindBool
		case typeInt64:
			f.kind = kindInt
		case typeFloat64:
			f.kind = kindFloat
		case typeValue:
			f.kind = kindValue
		case typeValueFootnote:
			f.kind = kindValueFootnote
		default:
			if e.Kind() != reflect.Struct {
				return f, fmt.Errorf("unsupported type %s", t)
			}
			f.kind, f.elem = kindRecord, e
		}
	case reflect.Slice:
		switch e := t.Elem(); {
		case e == typeInt64:
			f.kind = kindIntList
		case e.Kind() == reflect.Struct:
			f.kind, f.elem = kindRecords, e
		default:
			return f, fmt.Errorf("unsupported slice type %s", t)
		}
		if f.required {
			return f, fmt.Errorf("collections cannot be required")
		}
	default:
		return f, fmt.Errorf("field must be a pointer or slice, got %s", t)
	}

	if f.source == fromFootnoteRef && f.kind != kindString {
		return f, fmt.Errorf("footnote option needs *string")
	}
	if f.container != "" && f.kind != kindRecords {
		return f, fmt.Errorf("container path only applies to record slices")
	}
	return f, nil
}
