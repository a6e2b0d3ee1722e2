// Package types defines the interfaces shared between pathkit's
// packages, chiefly the LinkFS capability consumed by link resolution.
package types
