// Package oci extracts semantic versions from container image references.
//
// Image references are parsed with the distribution reference package using
// Docker-style normalization, and the tag is interpreted as a semantic
// version when requested.
//
// # Usage
//
//	ref, err := oci.ParseReference("nvcr.io/nvidia/cuda:v12.4.1")
//	if err != nil {
//	    return err
//	}
//
//	v, err := ref.TagVersion()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v) // 12.4.1
//
// Tags are parsed leniently (leading zeros allowed) and a single leading "v"
// is stripped, since both are common in registry tags. Tags that are not
// versions at all ("latest", "stable") return an error from TagVersion;
// use TagVersionOrZero when a fallback to 0.0.0 is acceptable.
package oci
