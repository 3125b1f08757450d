// Package platform contains OS integration used by the demo: locating the
// user's pictures, listing image files for cards and opening a file with the
// system viewer.
package platform
