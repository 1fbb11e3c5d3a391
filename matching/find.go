package matching

import (
	"fmt"
	"strings"

	"fortio.org/log"

	"github.com/ldemailly/submatch/graph"
)

// Filter selects the candidate filtering strength.
type Filter int

const (
	// FilterLDF is the label and degree prefilter.
	FilterLDF Filter = iota
	// FilterGQL adds the bipartite matching feasibility refinement.
	FilterGQL
	// FilterNLF adds neighbor label multiset dominance on top of LDF.
	FilterNLF
)

func (f Filter) String() string {
	switch f {
	case FilterLDF:
		return "LDF"
	case FilterGQL:
		return "GQL"
	case FilterNLF:
		return "NLF"
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

// ParseFilter accepts the filter names LDF, GQL and NLF, case
// insensitively.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToUpper(s) {
	case "LDF":
		return FilterLDF, nil
	case "GQL":
		return FilterGQL, nil
	case "NLF":
		return FilterNLF, nil
	}
	return 0, fmt.Errorf("unsupported filter %q", s)
}

// Order selects the matching order strategy.
type Order int

// OrderGQL is the greedy minimum-candidates frontier order.
const OrderGQL Order = iota

func (o Order) String() string {
	if o == OrderGQL {
		return "GQL"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// Enumeration selects the enumeration strategy.
type Enumeration int

// EnumerationGQL is the iterative backtracking DFS.
const EnumerationGQL Enumeration = iota

func (e Enumeration) String() string {
	if e == EnumerationGQL {
		return "GQL"
	}
	return fmt.Sprintf("Enumeration(%d)", int(e))
}

// Config selects the pipeline stages.
type Config struct {
	Filter      Filter
	Order       Order
	Enumeration Enumeration
}

// DefaultConfig is {LDF, GQL, GQL}.
func DefaultConfig() Config {
	return Config{Filter: FilterLDF, Order: OrderGQL, Enumeration: EnumerationGQL}
}

func (c Config) String() string {
	return fmt.Sprintf("%v/%v/%v", c.Filter, c.Order, c.Enumeration)
}

// Validate rejects unknown stage selectors.
func (c Config) Validate() error {
	if c.Filter != FilterLDF && c.Filter != FilterGQL && c.Filter != FilterNLF {
		return fmt.Errorf("unsupported filter %v", c.Filter)
	}
	if c.Order != OrderGQL {
		return fmt.Errorf("unsupported order %v", c.Order)
	}
	if c.Enumeration != EnumerationGQL {
		return fmt.Errorf("unsupported enumeration %v", c.Enumeration)
	}
	return nil
}

// LoadConfig returns the graph loading options the configuration
// needs: only the NLF filter requires neighbor label frequencies.
func (c Config) LoadConfig() graph.LoadConfig {
	return graph.LoadConfig{NeighborLabelFrequency: c.Filter == FilterNLF}
}

// Find returns the number of embeddings of queryGraph in dataGraph.
func Find(dataGraph, queryGraph *graph.Graph, config Config) int {
	return FindWith(dataGraph, queryGraph, nil, config)
}

// FindWith runs filter, sort, order and enumeration, invoking visit
// for every embedding found. An empty candidate set short-circuits to
// zero without firing the visitor. The visitor must not mutate the
// graphs or the embedding slice.
func FindWith(dataGraph, queryGraph *graph.Graph, visit Visitor, config Config) int {
	candidates := runFilter(dataGraph, queryGraph, config.Filter)
	if candidates == nil {
		log.LogVf("No candidates after %v filter, no embeddings", config.Filter)
		return 0
	}

	// sorted rows enable binary search and set intersection
	candidates.Sort()

	order := GQLOrder(dataGraph, queryGraph, candidates)

	return EnumerateWith(dataGraph, queryGraph, candidates, order, visit)
}

func runFilter(dataGraph, queryGraph *graph.Graph, filter Filter) *Candidates {
	switch filter {
	case FilterGQL:
		return GQLFilter(dataGraph, queryGraph)
	case FilterNLF:
		return NLFFilter(dataGraph, queryGraph)
	default:
		return LDFFilter(dataGraph, queryGraph)
	}
}
