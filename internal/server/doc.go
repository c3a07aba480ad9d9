// Package server serves the weekly plan dataset over HTTP.
//
// Routes:
//
//	GET /api/diet   the dataset file as JSON, in file order
//	GET /healthz    {"status":"ok"}
//	GET /           static assets; index.html for the root
//
// The dataset file is read on every request, so edits show up without a
// restart. It may be JSON or YAML (.yaml/.yml); both are served as JSON.
// A file that cannot be read answers 500 {"error":"Failed to load diet
// data"}; a file with the wrong shape answers 500 {"error":"Invalid diet
// data format"}.
//
// Without a configured static directory the server falls back to a small
// embedded page that lists the plan.
package server
