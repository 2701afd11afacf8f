// Package lib holds supporting code that does not belong to a single layer.
//
// token issues and verifies the access tokens guests authenticate with.
package lib
