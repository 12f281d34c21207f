// Package mock provides hand-written mock implementations of the scraperbot
// domain interfaces for use in tests.
package mock
