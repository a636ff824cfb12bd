// Package zebr0 resolves configuration keys against a remote key-value
// repository, with stage/project/global fallback, value filters and `{key}`
// templating.
//
// The module is organized into packages by concern:
//
//   - params: the local parameter cache (url, project, stage)
//   - remote: the single-GET HTTP fetcher and its error taxonomy
//   - testutil: an in-process key-value server for tests
//   - cmd/zebr0: the command-line tool
//
// # Quick Start
//
//	import (
//	    zebr0 "github.com/zebr0/zebr0-go"
//	    "github.com/zebr0/zebr0-go/params"
//	)
//
//	p, _ := params.Load(params.DefaultDir)
//	client := zebr0.NewClient(zebr0.ClientConfig{Parameters: p})
//
//	value, err := client.Resolve(ctx, "database-password")
//
// Resolution tries "<stage>/<key>", then "<project>/<key>", then the bare
// key, returning the first hit. A resolved value can be post-processed by a
// Filter (strip, render, json, sh, hash, lookup) through Client.Apply, and
// arbitrary text can be templated with Client.Render.
package zebr0
