// Package pathmap rewrites production paths between workstation
// platforms and the render-farm share.
//
// Artists on macOS and Linux reference the shared project storage
// through a local mount, while render nodes and Windows workstations
// see the same storage as a drive letter. Every transform here is a
// pure string rewrite driven by an explicit Mapper; whether the target
// actually exists is the caller's concern.
package pathmap
