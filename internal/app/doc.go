// Package app wires the application together: site configuration, logging,
// the term and document stores, and the concurrent recipe validation run.
package app
