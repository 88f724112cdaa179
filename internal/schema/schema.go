// Package schema implements the generic payload-to-record decoder shared by
// all typed Alpha Vantage responses. Record types declare their wire schema
// as `av` struct tags (external key plus options) and a single reflective
// routine performs lookup, sentinel normalization, and type coercion.
//
// Tag format:
//
//	Field T `av:"ExternalKey"`                  optional field
//	Field T `av:"ExternalKey,required"`         decode fails when absent
//	Field T `av:"ExternalKey,percent"`          "-3.25%" → -3.25
//	Field T `av:"ExternalKey,required,compact"` "20240115T093000" → time.Time
//
// Supported field types: string, *string, bool, *float64, *int64, time.Time
// (compact only), nested structs, and slices of string or struct. Decoding is
// pure: the same payload and target type always yield the same record or the
// same error.
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// sentinelNone is the literal string Alpha Vantage uses for absent values.
const sentinelNone = "None"

// DecodeError describes why a payload could not be mapped onto a record.
type DecodeError struct {
	Record string // record type name, e.g. "CompanyOverview"
	Path   string // external field path, e.g. "feed[2].time_published"
	Raw    any    // offending raw value as decoded from JSON
	Reason string // missing / wrong type / unparsable detail
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: field %q: %s (raw value: %v)", e.Record, e.Path, e.Reason, e.Raw)
}

// Decode maps a decoded JSON object onto dst, which must be a pointer to a
// struct carrying `av` tags. Fields without an `av` tag are ignored.
func Decode(payload map[string]any, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("schema: decode target must be a non-nil struct pointer, got %T", dst)
	}
	d := decoder{record: v.Elem().Type().Name()}
	return d.decodeStruct(payload, v.Elem(), "")
}

type decoder struct {
	record string
}

func (d decoder) fail(path string, raw any, reason string) error {
	return &DecodeError{Record: d.record, Path: path, Raw: raw, Reason: reason}
}

type fieldSpec struct {
	key      string
	required bool
	percent  bool
	compact  bool
}

func parseTag(tag string) (fieldSpec, bool) {
	if tag == "" || tag == "-" {
		return fieldSpec{}, false
	}
	parts := strings.Split(tag, ",")
	spec := fieldSpec{key: parts[0]}
	for _, opt := range parts[1:] {
		switch opt {
		case "required":
			spec.required = true
		case "percent":
			spec.percent = true
		case "compact":
			spec.compact = true
		}
	}
	return spec, true
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func (d decoder) decodeStruct(payload map[string]any, sv reflect.Value, prefix string) error {
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		spec, ok := parseTag(st.Field(i).Tag.Get("av"))
		if !ok {
			continue
		}
		path := joinPath(prefix, spec.key)

		raw, present := payload[spec.key]
		// Central sentinel pass: the literal string "None" means null,
		// whatever the field type.
		if s, isStr := raw.(string); isStr && s == sentinelNone {
			raw = nil
		}
		if !present || raw == nil {
			if spec.required {
				return d.fail(path, raw, "missing required field")
			}
			continue
		}
		if err := d.setField(raw, sv.Field(i), spec, path); err != nil {
			return err
		}
	}
	return nil
}

func (d decoder) setField(raw any, fv reflect.Value, spec fieldSpec, path string) error {
	if spec.percent {
		return d.setPercent(raw, fv, path)
	}
	if spec.compact {
		return d.setCompactTime(raw, fv, path)
	}

	ft := fv.Type()
	switch {
	case ft.Kind() == reflect.String:
		s, ok := raw.(string)
		if !ok {
			return d.fail(path, raw, fmt.Sprintf("expected string, got %T", raw))
		}
		fv.SetString(s)
		return nil

	case ft.Kind() == reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return d.fail(path, raw, fmt.Sprintf("expected boolean, got %T", raw))
		}
		fv.SetBool(b)
		return nil

	case ft == reflect.PointerTo(reflect.TypeOf("")):
		s, ok := raw.(string)
		if !ok {
			return d.fail(path, raw, fmt.Sprintf("expected string, got %T", raw))
		}
		fv.Set(reflect.ValueOf(&s))
		return nil

	case ft == reflect.PointerTo(reflect.TypeOf(float64(0))):
		f, err := toFloat(raw)
		if err != nil {
			return d.fail(path, raw, err.Error())
		}
		fv.Set(reflect.ValueOf(&f))
		return nil

	case ft == reflect.PointerTo(reflect.TypeOf(int64(0))):
		n, err := toInt(raw)
		if err != nil {
			return d.fail(path, raw, err.Error())
		}
		fv.Set(reflect.ValueOf(&n))
		return nil

	case ft.Kind() == reflect.Struct && ft != reflect.TypeOf(time.Time{}):
		sub, ok := raw.(map[string]any)
		if !ok {
			return d.fail(path, raw, fmt.Sprintf("expected object, got %T", raw))
		}
		return d.decodeStruct(sub, fv, path)

	case ft.Kind() == reflect.Slice:
		return d.setSlice(raw, fv, path)
	}
	return fmt.Errorf("schema: unsupported field type %s at %s.%s", ft, d.record, path)
}

func (d decoder) setPercent(raw any, fv reflect.Value, path string) error {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := ParsePercent(v)
		if err != nil {
			return d.fail(path, raw, err.Error())
		}
		f = parsed
	default:
		return d.fail(path, raw, fmt.Sprintf("expected percentage string, got %T", raw))
	}
	if fv.Kind() == reflect.Pointer {
		fv.Set(reflect.ValueOf(&f))
	} else {
		fv.SetFloat(f)
	}
	return nil
}

func (d decoder) setCompactTime(raw any, fv reflect.Value, path string) error {
	s, ok := raw.(string)
	if !ok {
		return d.fail(path, raw, fmt.Sprintf("expected timestamp string, got %T", raw))
	}
	t, err := ParseCompactTime(s)
	if err != nil {
		return d.fail(path, raw, err.Error())
	}
	fv.Set(reflect.ValueOf(t))
	return nil
}

func (d decoder) setSlice(raw any, fv reflect.Value, path string) error {
	items, ok := raw.([]any)
	if !ok {
		return d.fail(path, raw, fmt.Sprintf("expected array, got %T", raw))
	}
	et := fv.Type().Elem()
	out := reflect.MakeSlice(fv.Type(), len(items), len(items))

	for i, item := range items {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		switch et.Kind() {
		case reflect.String:
			s, ok := item.(string)
			if !ok {
				return d.fail(elemPath, item, fmt.Sprintf("expected string, got %T", item))
			}
			out.Index(i).SetString(s)
		case reflect.Struct:
			sub, ok := item.(map[string]any)
			if !ok {
				return d.fail(elemPath, item, fmt.Sprintf("expected object, got %T", item))
			}
			if err := d.decodeStruct(sub, out.Index(i), elemPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("schema: unsupported slice element type %s at %s.%s", et, d.record, path)
		}
	}
	fv.Set(out)
	return nil
}
