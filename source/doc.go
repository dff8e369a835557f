// Package source reads and writes the inputs a trendarr store is fed from.
//
// Two sources are supported:
//
//   - Action logs: JSON lines, one {"type", "payload"} envelope per line.
//     Blank lines and lines starting with '#' are skipped.
//   - Radarr exports: the JSON array returned by Radarr's /api/v3/movie
//     endpoint, saved to a file. Movies are converted to trending.Movie so
//     they can be paginated into an action log.
//
// Neither source touches the network.
package source
