// Package cert handles the lifecycle of the TLS certificates used by the
// admission webhook server.
//
// Two modes are supported:
//
//  1. Self-signed: the package generates a root CA and a server certificate
//     in-memory, persists them to a Kubernetes Secret, writes them to the
//     local filesystem for controller-runtime, and patches the webhook
//     configurations with the CA bundle. Certificates within 30 days of
//     expiry are rotated on startup.
//
//  2. External (e.g. cert-manager): certificates are provisioned outside
//     the operator and mounted into the container; the webhook server is
//     simply pointed at the mount directory and this package stays idle.
package cert
