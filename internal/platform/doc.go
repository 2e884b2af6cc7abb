// Package platform wraps the filesystem calls the materializer needs so that
// permission handling behaves the same on Unix and Windows.
package platform
