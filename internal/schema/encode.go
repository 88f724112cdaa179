package schema

import (
	"reflect"
	"strconv"
	"time"
)

// Encode renders a record back into its canonical Alpha Vantage wire shape:
// external keys, numbers as strings, nil optionals as the "None" sentinel,
// percentages with a trailing percent sign, and compact timestamps. Decoding
// the result reproduces the original record field for field.
func Encode(src any) map[string]any {
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	return encodeStruct(v)
}

func encodeStruct(sv reflect.Value) map[string]any {
	out := make(map[string]any)
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		spec, ok := parseTag(st.Field(i).Tag.Get("av"))
		if !ok {
			continue
		}
		out[spec.key] = encodeField(sv.Field(i), spec)
	}
	return out
}

func encodeField(fv reflect.Value, spec fieldSpec) any {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return sentinelNone
		}
		fv = fv.Elem()
	}

	switch {
	case spec.percent:
		return formatFloat(fv.Float()) + "%"
	case spec.compact:
		return fv.Interface().(time.Time).Format(CompactTimeLayout)
	}

	switch fv.Kind() {
	case reflect.String:
		return fv.String()
	case reflect.Bool:
		return fv.Bool()
	case reflect.Float64:
		return formatFloat(fv.Float())
	case reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10)
	case reflect.Struct:
		return encodeStruct(fv)
	case reflect.Slice:
		items := make([]any, fv.Len())
		for i := 0; i < fv.Len(); i++ {
			ev := fv.Index(i)
			if ev.Kind() == reflect.Struct {
				items[i] = encodeStruct(ev)
			} else {
				items[i] = ev.Interface()
			}
		}
		return items
	}
	return fv.Interface()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
