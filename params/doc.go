// Package params persists the three identity values a resolution client
// needs: the remote repository URL, the project name and the deployment
// stage.
//
// Each value is stored as its own flat file under a configurable directory,
// so a partial write can never corrupt an unrelated field:
//
//	/etc/zebr0/url
//	/etc/zebr0/project
//	/etc/zebr0/stage
//
// # Bootstrap precedence
//
// Bootstrap merges three layers, highest priority first:
//  1. Values supplied for this run (command-line flags)
//  2. Previously persisted values
//  3. Built-in defaults (DefaultURL, empty project, empty stage)
//
// Bootstrapping twice with no new values is idempotent: the persisted files
// are byte-identical across runs.
//
// # Load
//
// Load reads the persisted values back and fails with ErrNotBootstrapped if
// any of the three files is absent. Empty project and stage are legal
// persisted values; presence of the files, not non-emptiness, is what makes
// a directory bootstrapped.
package params
