// Package webhook provides the entry point for the Workload Operator's
// admission control layer.
//
// This package orchestrates the setup of the controller-runtime webhook
// server, including:
//
//  1. Certificate Management: It delegates to the 'cert' subpackage to
//     ensure TLS certificates are present (either self-signed or externally
//     provisioned) before the server starts.
//
//  2. Handler Registration: It registers the admission handlers (from the
//     'handlers' subpackage) to their corresponding API paths
//     (e.g. /mutate-..., /validate-...).
//
// Usage:
//
//	if err := webhook.Setup(mgr, opts); err != nil {
//	    setupLog.Error(err, "unable to setup webhook")
//	    os.Exit(1)
//	}
package webhook
