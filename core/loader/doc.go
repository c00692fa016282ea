// Package loader registers the HTTP features (graph, ingest, integrity) and mounts
// the enabled ones on the fiber router.
//
// A feature is disabled, not failed, when a backend it needs is missing: the graph
// feature without a record source, integrity without a storage client. Disabled
// features are logged and skipped by LoadAll. Registering two features under one name
// is an error, as is any Load failure.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(graph.NewFeature(...))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
