package gotemplate

import (
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-listgen/pkg/render"
)

func registerBuiltinFilters() {
	for name, fn := range map[string]pongo2.FilterFunction{
		"trim":      filterTrim,
		"ellipsize": filterEllipsize,
	} {
		if !pongo2.FilterExists(name) {
			_ = pongo2.RegisterFilter(name, fn)
		}
	}
}

func adaptFilter(name string, fn func(input any, param any) (any, error)) pongo2.FilterFunction {
	return func(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		var arg any
		if param != nil {
			arg = param.Interface()
		}
		result, err := fn(in.Interface(), arg)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:" + name, OrigError: err}
		}
		return pongo2.AsValue(result), nil
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterEllipsize is render.Ellipsize; {{ text|ellipsize:50 }} sets the limit.
func filterEllipsize(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in == nil || in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	limit := render.DefaultTruncateLength
	if param != nil && param.IsNumber() {
		limit = param.Integer()
	}
	return pongo2.AsValue(render.Ellipsize(in.String(), limit)), nil
}
