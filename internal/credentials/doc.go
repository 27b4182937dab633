// Package credentials locates a JSON credential file, loads it, and mirrors
// its entries into the persisted env file and the process environment.
//
// The main entry point is [Store]:
//
//   - [Store.Locate] resolves the credential file from an explicit path or an
//     ordered list of candidate locations (first existing path wins);
//   - [Store.Load] reads and decodes the file and merges it into the env file
//     and the [Environment]; failures never escape, they are reported through
//     [LoadResult] and logged;
//   - [Store.Get] looks a key up in loaded credentials with fallback to the
//     [Environment].
//
// The filesystem, the environment and the clock are injected so the package
// can be exercised without touching the host.
package credentials
