// Command submatch finds every embedding of a small labeled query
// graph inside a larger labeled data graph (subgraph isomorphism).
// Graphs are given in the t/v/e text format, see the graph package.
package main

import (
	"flag"
	"os"
	"time"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/ldemailly/submatch/graph"
	"github.com/ldemailly/submatch/matching"
)

func main() {
	var (
		queryPath  string
		dataPath   string
		filterName string
		dumpDot    bool
	)
	flag.StringVar(&queryPath, "q", "", "Path to the query graph file (required)")
	flag.StringVar(&queryPath, "query-graph", "", "Long form of -q")
	flag.StringVar(&dataPath, "d", "", "Path to the data graph file (required)")
	flag.StringVar(&dataPath, "data-graph", "", "Long form of -d")
	flag.StringVar(&filterName, "f", "LDF", "Candidate filter: LDF, NLF or GQL")
	flag.StringVar(&filterName, "filter", "LDF", "Long form of -f")
	flag.BoolVar(&dumpDot, "dot", false, "Print the query graph in DOT format after loading")

	cli.ArgsHelp = "-q <query graph> -d <data graph> [-f LDF|NLF|GQL]"
	cli.MinArgs = 0
	cli.MaxArgs = 0
	cli.Main()

	if queryPath == "" || dataPath == "" {
		log.Fatalf("Both a query graph (-q) and a data graph (-d) are required")
	}
	filter, err := matching.ParseFilter(filterName)
	if err != nil {
		log.Fatalf("Bad -f flag: %v", err)
	}
	config := matching.DefaultConfig()
	config.Filter = filter

	total := time.Now()
	loading := time.Now()

	queryGraph := measure("Load query graph", func() *graph.Graph {
		return mustLoad(queryPath, config.LoadConfig())
	})
	dataGraph := measure("Load data graph", func() *graph.Graph {
		return mustLoad(dataPath, config.LoadConfig())
	})
	loadingTime := time.Since(loading)

	log.Infof("Query graph: %v", queryGraph)
	log.Infof("Data graph: %v", dataGraph)

	if dumpDot {
		if err := graph.WriteDot(os.Stdout, queryGraph); err != nil {
			log.Fatalf("Writing DOT output: %v", err)
		}
	}

	matchingStart := time.Now()

	candidates := measure("Filter candidates", func() *matching.Candidates {
		return filterCandidates(dataGraph, queryGraph, config.Filter)
	})
	if candidates == nil {
		log.Infof("No candidates left after %v filter", config.Filter)
		log.Infof("Embedding count = 0")
		return
	}
	// sorting candidates to support set intersection
	candidates.Sort()
	log.Infof("Candidate counts: %v", candidates)

	order := measure("Generate matching order", func() []int {
		return matching.GQLOrder(dataGraph, queryGraph, candidates)
	})
	log.Infof("Matching order: %v", order)

	embeddingCount := measure("Enumerate", func() int {
		return matching.Enumerate(dataGraph, queryGraph, candidates, order)
	})
	log.Infof("Embedding count = %d", embeddingCount)

	log.Infof("Loading time = %v", loadingTime)
	log.Infof("Matching time = %v", time.Since(matchingStart))
	log.Infof("Total runtime = %v", time.Since(total))
}

func mustLoad(path string, cfg graph.LoadConfig) *graph.Graph {
	g, err := graph.Load(path, cfg)
	if err != nil {
		log.Fatalf("Loading %s: %v", path, err)
	}
	return g
}

func filterCandidates(dataGraph, queryGraph *graph.Graph, filter matching.Filter) *matching.Candidates {
	switch filter {
	case matching.FilterGQL:
		return matching.GQLFilter(dataGraph, queryGraph)
	case matching.FilterNLF:
		return matching.NLFFilter(dataGraph, queryGraph)
	default:
		return matching.LDFFilter(dataGraph, queryGraph)
	}
}

func measure[R any](desc string, f func() R) R {
	log.LogVf("Start :: %s", desc)
	start := time.Now()
	result := f()
	log.Infof("%s took %v", desc, time.Since(start))
	return result
}
