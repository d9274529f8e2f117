// Package binding maintains the many-to-one mapping from raw input codes to
// semantic actions.
//
// Table is the in-memory mapping with per-key and wholesale mutation. Loader
// reads binding files in JSON, TOML or YAML and validates them against the
// application's action set. Watcher observes a bindings file with fsnotify
// and hot-swaps the table contents when the user edits the file.
package binding
