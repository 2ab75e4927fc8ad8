package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/nexus/internal/contract"
	"github.com/spf13/pflag"
)

// facetValue is a pflag.Value restricted to "all" plus a fixed set of
// canonical facet values.
type facetValue struct {
	value   string
	allowed []string
}

var _ pflag.Value = (*facetValue)(nil)

func newFacetValue[T ~string](choices []T) *facetValue {
	allowed := make([]string, 0, len(choices)+1)
	allowed = append(allowed, contract.FacetAll)
	for _, c := range choices {
		allowed = append(allowed, string(c))
	}
	return &facetValue{value: contract.FacetAll, allowed: allowed}
}

func (f *facetValue) String() string { return f.value }

func (f *facetValue) Set(raw string) error {
	v := strings.ToLower(strings.TrimSpace(raw))
	if !slices.Contains(f.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(f.allowed, "|"))
	}
	f.value = v
	return nil
}

func (f *facetValue) Type() string { return strings.Join(f.allowed, "|") }

// listFlags binds the flags shared by every list command.
type listFlags struct {
	search string
	in     []string
	facet  *facetValue
}

func (l *listFlags) register(fs *pflag.FlagSet, facetName, facetUsage string) {
	fs.StringVarP(&l.search, "search", "s", "", "Case-insensitive search term")
	fs.StringSliceVar(&l.in, "in", nil, "Fields to search (default depends on the list)")
	fs.Var(l.facet, facetName, facetUsage)
}

func (l *listFlags) request() contract.ListRequest {
	req := contract.NewListRequest()
	req.Search = l.search
	req.Facet = l.facet.String()
	return req
}
