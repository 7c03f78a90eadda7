package sym

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/symdex/core"
	"github.com/katalvlaran/symdex/resolve"
)

var (
	setupOnce sync.Once
	catalog   *core.Module
	resolver  *resolve.Resolver
)

// setup builds the shipped catalog and its resolver exactly once. The
// data is compiled in, so a build failure is a bug in this package, not
// a runtime condition — it panics, in the manner of regexp.MustCompile.
func setup() {
	root, err := core.Build(entries()...)
	if err != nil {
		panic(fmt.Sprintf("sym: built-in catalog is invalid: %v", err))
	}

	catalog = root
	resolver = resolve.New(root)
}

// Catalog returns the root module of the built-in catalog. The returned
// tree is immutable and safe for concurrent use.
func Catalog() *core.Module {
	setupOnce.Do(setup)

	return catalog
}

// Resolver returns the process-wide resolver over the built-in catalog.
func Resolver() *resolve.Resolver {
	setupOnce.Do(setup)

	return resolver
}

// Resolve looks up a dotted name in the built-in catalog. It is
// shorthand for Resolver().Resolve(name, opts...).
func Resolve(name string, opts ...resolve.Option) (resolve.Resolution, error) {
	return Resolver().Resolve(name, opts...)
}
