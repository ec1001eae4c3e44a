// Package paired implements the reference dataset loader for the common
// "paired file" layout: a root directory with one subdirectory per split,
// each holding input images and their targets related by a fixed filename
// substitution rule:
//
//	root/
//	  train/
//	    0_image.png
//	    0_mask.png
//	    1_image.png
//	    1_mask.png
//	  val/
//	    ...
//
// A concrete dataset is described by an immutable Config (name, archive URL,
// checksum, split names, suffix rule, classes). Construction validates the
// configuration, verifies or acquires the data, and builds an immutable
// sample index; the resulting Dataset is read-only and safe for concurrent
// use.
package paired
